package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Manager names an external package manager an action can point at
type Manager string

const (
	ManagerApt  Manager = "apt"
	ManagerBrew Manager = "brew"
	ManagerSnap Manager = "snap"
)

// String returns the string representation of Manager
func (m Manager) String() string {
	return string(m)
}

// Raw table token prefixes. The bare-URL form carries no prefix.
const (
	prefixPackage = "package:"
	prefixBrew    = "brew:"
	prefixSnap    = "snap:"
)

// InstallAction describes how one application is obtained on one platform.
// It is a closed set: DirectDownload or PackageRef.
type InstallAction interface {
	isInstallAction()
}

// DirectDownload fetches an installer file from URL and hands it to the OS
type DirectDownload struct {
	URL string
}

func (DirectDownload) isInstallAction() {}

// PackageRef names a package to be installed through an external package
// manager. The engine only ever prints the matching command; it never runs it.
type PackageRef struct {
	Manager Manager
	Package string
}

func (PackageRef) isInstallAction() {}

// parseAction converts one raw table token into a typed action. Tokens are
// parsed here, once, at catalog construction; dispatch never sees raw strings.
func parseAction(token string) (InstallAction, error) {
	switch {
	case strings.HasPrefix(token, prefixPackage):
		return newPackageRef(ManagerApt, strings.TrimPrefix(token, prefixPackage))
	case strings.HasPrefix(token, prefixBrew):
		return newPackageRef(ManagerBrew, strings.TrimPrefix(token, prefixBrew))
	case strings.HasPrefix(token, prefixSnap):
		return newPackageRef(ManagerSnap, strings.TrimPrefix(token, prefixSnap))
	default:
		return newDirectDownload(token)
	}
}

func newDirectDownload(raw string) (InstallAction, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty action token")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid download URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("download URL %q must be absolute http(s)", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("download URL %q has no host", raw)
	}

	return DirectDownload{URL: raw}, nil
}

func newPackageRef(manager Manager, pkg string) (InstallAction, error) {
	if pkg == "" {
		return nil, fmt.Errorf("%s reference has empty package name", manager)
	}
	if strings.ContainsAny(pkg, "/\\") {
		return nil, fmt.Errorf("%s package %q must not contain path separators", manager, pkg)
	}
	if strings.ContainsAny(pkg, " \t\n") {
		return nil, fmt.Errorf("%s package %q must not contain whitespace", manager, pkg)
	}

	return PackageRef{Manager: manager, Package: pkg}, nil
}
