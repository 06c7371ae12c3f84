package platform

import (
	"runtime"

	"github.com/appdock/appdock/internal/model"
)

// Operating system identifiers as reported by runtime.GOOS
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Detect returns the platform identifier for the current host. Hosts outside
// the supported set report model.OSUnknown and resolve no catalog actions.
func Detect() model.OS {
	switch runtime.GOOS {
	case OSWindows:
		return model.OSWindows
	case OSLinux:
		return model.OSLinux
	case OSDarwin:
		return model.OSMac
	default:
		return model.OSUnknown
	}
}
