package model

// OS identifies one of the platforms the catalog can carry install actions
// for. The values double as the catalog's per-platform keys, so they are part
// of the table format and must stay stable.
type OS string

const (
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSMac     OS = "mac"

	// OSUnknown is reported when the host system is none of the above.
	// No catalog entry ever carries an action for it.
	OSUnknown OS = "unknown"
)

// String returns the string representation of OS
func (o OS) String() string {
	return string(o)
}

// Known returns true for the three platforms the catalog can target
func (o OS) Known() bool {
	return o == OSWindows || o == OSLinux || o == OSMac
}

// InstallerExt returns the filename extension used for installer artifacts
// downloaded on this platform: .exe on windows, .dmg on mac, .deb otherwise.
func (o OS) InstallerExt() string {
	switch o {
	case OSWindows:
		return ".exe"
	case OSMac:
		return ".dmg"
	default:
		return ".deb"
	}
}

// DisplayName returns a capitalized name suitable for UI labels
func (o OS) DisplayName() string {
	switch o {
	case OSWindows:
		return "Windows"
	case OSLinux:
		return "Linux"
	case OSMac:
		return "Mac"
	default:
		return "Unknown"
	}
}
