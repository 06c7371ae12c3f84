package catalog

import (
	"strings"
	"testing"

	"github.com/appdock/appdock/internal/model"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := New(
		AppSpec{
			Name:    "Vim",
			Windows: "https://example.com/gvim.exe",
			Linux:   "package:vim",
			Mac:     "brew:vim",
		},
		AppSpec{
			Name:    "Editor",
			Windows: "https://example.com/editor-setup.exe",
		},
		AppSpec{
			Name:  "Spotify",
			Linux: "snap:spotify",
			Mac:   "https://example.com/Spotify.dmg",
		},
	)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return c
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New(AppSpec{Name: "", Linux: "package:vim"})
	if err == nil {
		t.Fatal("New() accepted an application with empty name")
	}
}

func TestNew_RejectsDuplicateName(t *testing.T) {
	_, err := New(
		AppSpec{Name: "Vim", Linux: "package:vim"},
		AppSpec{Name: "Vim", Mac: "brew:vim"},
	)
	if err == nil {
		t.Fatal("New() accepted a duplicate application name")
	}
	if !strings.Contains(err.Error(), "Vim") {
		t.Errorf("Duplicate error does not name the application: %v", err)
	}
}

func TestNew_RejectsMalformedToken(t *testing.T) {
	_, err := New(AppSpec{Name: "Broken", Linux: "package:has space"})
	if err == nil {
		t.Fatal("New() accepted a malformed action token")
	}

	// Error should identify the application and the platform
	if !strings.Contains(err.Error(), "Broken") {
		t.Errorf("Parse error does not name the application: %v", err)
	}
	if !strings.Contains(err.Error(), "linux") {
		t.Errorf("Parse error does not name the platform: %v", err)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := testCatalog(t)

	entry, ok := c.Lookup("Vim")
	if !ok {
		t.Fatal("Lookup(Vim) reported not found")
	}
	if entry.Name != "Vim" {
		t.Errorf("Lookup(Vim).Name = %s, expected Vim", entry.Name)
	}

	if _, ok := c.Lookup("NoSuchApp"); ok {
		t.Error("Lookup(NoSuchApp) reported found")
	}
}

func TestCatalog_ResolveAction(t *testing.T) {
	c := testCatalog(t)

	action, ok := c.ResolveAction("Vim", model.OSLinux)
	if !ok {
		t.Fatal("ResolveAction(Vim, linux) reported not found")
	}
	ref, refOK := action.(PackageRef)
	if !refOK {
		t.Fatalf("ResolveAction(Vim, linux) = %T, expected PackageRef", action)
	}
	if ref.Manager != ManagerApt || ref.Package != "vim" {
		t.Errorf("ResolveAction(Vim, linux) = %s:%s, expected apt:vim", ref.Manager, ref.Package)
	}

	// Known application, unsupported platform
	if _, ok := c.ResolveAction("Editor", model.OSMac); ok {
		t.Error("ResolveAction(Editor, mac) reported an action for an unsupported platform")
	}

	// Unknown application
	if _, ok := c.ResolveAction("NoSuchApp", model.OSWindows); ok {
		t.Error("ResolveAction(NoSuchApp, windows) reported an action")
	}
}

func TestApplicationEntry_Supports(t *testing.T) {
	c := testCatalog(t)
	entry, _ := c.Lookup("Editor")

	tests := []struct {
		os       model.OS
		expected bool
	}{
		{model.OSWindows, true},
		{model.OSLinux, false},
		{model.OSMac, false},
	}

	for _, test := range tests {
		if result := entry.Supports(test.os); result != test.expected {
			t.Errorf("Supports(%s) = %v, expected %v", test.os, result, test.expected)
		}
	}
}

func TestCatalog_NamesSorted(t *testing.T) {
	c := testCatalog(t)

	names := c.Names()
	expected := []string{"Editor", "Spotify", "Vim"}

	if len(names) != len(expected) {
		t.Fatalf("Names() returned %d names, expected %d", len(names), len(expected))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}

	// Mutating the returned slice must not affect the catalog
	names[0] = "Mutated"
	if c.Names()[0] != "Editor" {
		t.Error("Names() exposes internal state")
	}
}

func TestBuiltin(t *testing.T) {
	c := Builtin()

	if c.Len() != 9 {
		t.Fatalf("Builtin() has %d applications, expected 9", c.Len())
	}

	// Every built-in application must resolve on the platforms its row names
	for _, name := range c.Names() {
		entry, ok := c.Lookup(name)
		if !ok {
			t.Fatalf("Builtin() lists %s but Lookup fails", name)
		}
		supported := 0
		for _, os := range []model.OS{model.OSWindows, model.OSLinux, model.OSMac} {
			if entry.Supports(os) {
				supported++
			}
		}
		if supported == 0 {
			t.Errorf("Builtin() entry %s supports no platform", name)
		}
	}

	// Spot-check a few rows
	action, ok := c.ResolveAction("Vim", model.OSLinux)
	if !ok {
		t.Fatal("Builtin() has no action for Vim on linux")
	}
	if ref, refOK := action.(PackageRef); !refOK || ref.Manager != ManagerApt || ref.Package != "vim" {
		t.Errorf("Builtin() Vim/linux = %#v, expected apt:vim", action)
	}

	action, ok = c.ResolveAction("Spotify", model.OSLinux)
	if !ok {
		t.Fatal("Builtin() has no action for Spotify on linux")
	}
	if ref, refOK := action.(PackageRef); !refOK || ref.Manager != ManagerSnap || ref.Package != "spotify" {
		t.Errorf("Builtin() Spotify/linux = %#v, expected snap:spotify", action)
	}

	action, ok = c.ResolveAction("Visual Studio Code", model.OSWindows)
	if !ok {
		t.Fatal("Builtin() has no action for Visual Studio Code on windows")
	}
	if _, dlOK := action.(DirectDownload); !dlOK {
		t.Errorf("Builtin() Visual Studio Code/windows = %T, expected DirectDownload", action)
	}
}
