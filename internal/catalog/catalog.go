package catalog

import (
	"fmt"
	"sort"

	"github.com/appdock/appdock/internal/model"
)

// AppSpec is the raw table row for one application: a name plus an optional
// action token per platform. A token is either a download URL or a
// "package:x" / "brew:x" / "snap:x" reference; an empty field means the
// application is unsupported on that platform.
type AppSpec struct {
	Name    string
	Windows string
	Linux   string
	Mac     string
}

// ApplicationEntry is one installable item with its parsed per-platform
// actions. Entries are built once by New and never mutated afterwards.
type ApplicationEntry struct {
	Name    string
	actions map[model.OS]InstallAction
}

// ActionFor returns the install action for the given platform. The second
// return is false when the application has no action there.
func (e ApplicationEntry) ActionFor(os model.OS) (InstallAction, bool) {
	action, ok := e.actions[os]
	return action, ok
}

// Supports reports whether the application has an action for the platform
func (e ApplicationEntry) Supports(os model.OS) bool {
	_, ok := e.actions[os]
	return ok
}

// Catalog is an immutable mapping from application name to its per-platform
// install actions. It is constructed explicitly and passed to the engine;
// there is no package-level table.
type Catalog struct {
	entries map[string]ApplicationEntry
	names   []string
}

// New builds a catalog from raw table rows, parsing every action token up
// front. It fails on the first malformed token, duplicate name, or empty
// name, so a catalog that constructs is a catalog that dispatches cleanly.
func New(specs ...AppSpec) (*Catalog, error) {
	entries := make(map[string]ApplicationEntry, len(specs))
	names := make([]string, 0, len(specs))

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("application with empty name")
		}
		if _, exists := entries[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate application %q", spec.Name)
		}

		actions := make(map[model.OS]InstallAction, 3)
		tokens := map[model.OS]string{
			model.OSWindows: spec.Windows,
			model.OSLinux:   spec.Linux,
			model.OSMac:     spec.Mac,
		}
		for os, token := range tokens {
			if token == "" {
				continue
			}
			action, err := parseAction(token)
			if err != nil {
				return nil, fmt.Errorf("%s (%s): %w", spec.Name, os, err)
			}
			actions[os] = action
		}

		entries[spec.Name] = ApplicationEntry{Name: spec.Name, actions: actions}
		names = append(names, spec.Name)
	}

	sort.Strings(names)

	return &Catalog{entries: entries, names: names}, nil
}

// Lookup returns the entry for name. Absence is a normal not-found result,
// never an error.
func (c *Catalog) Lookup(name string) (ApplicationEntry, bool) {
	entry, ok := c.entries[name]
	return entry, ok
}

// ResolveAction returns the action for (name, os). The second return is false
// both when the application is unknown and when it is known but has no action
// for os; callers that need to tell the two apart use Lookup plus ActionFor.
func (c *Catalog) ResolveAction(name string, os model.OS) (InstallAction, bool) {
	entry, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	return entry.ActionFor(os)
}

// Names returns all application names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of applications in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}
