package platform

import (
	"runtime"
	"testing"

	"github.com/appdock/appdock/internal/model"
)

func TestDetect(t *testing.T) {
	detected := Detect()

	switch runtime.GOOS {
	case OSWindows:
		if detected != model.OSWindows {
			t.Errorf("Detect() = %s on windows host, expected %s", detected, model.OSWindows)
		}
	case OSLinux:
		if detected != model.OSLinux {
			t.Errorf("Detect() = %s on linux host, expected %s", detected, model.OSLinux)
		}
	case OSDarwin:
		if detected != model.OSMac {
			t.Errorf("Detect() = %s on darwin host, expected %s", detected, model.OSMac)
		}
	default:
		if detected != model.OSUnknown {
			t.Errorf("Detect() = %s on %s host, expected %s", detected, runtime.GOOS, model.OSUnknown)
		}
	}
}
