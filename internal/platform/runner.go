package platform

import (
	"os/exec"
	"runtime"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// ExecRunner invokes external tools through os/exec. It satisfies the
// dispatch engine's CommandRunner contract.
type ExecRunner struct{}

// Probe reports whether a named tool resolves on PATH
func (ExecRunner) Probe(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// Launch opens or executes a local file with the OS default handler:
// "cmd /c start" on Windows, "open" on macOS, "xdg-open" elsewhere.
func (ExecRunner) Launch(path string) error {
	switch runtime.GOOS {
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", path).Run()
	case OSDarwin:
		return exec.Command(OpenCommand, path).Run()
	default:
		return exec.Command(XDGOpenCommand, path).Run()
	}
}
