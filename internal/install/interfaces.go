package install

import "github.com/appdock/appdock/internal/model"

// Dispatcher defines the interface the UI drives installation runs through.
type Dispatcher interface {
	// Run starts a sequential run over the selection and returns its event channel
	Run(selection []string, hostOS model.OS) (<-chan Event, error)

	// SetDownloadDirectory changes where future runs write downloaded installers
	SetDownloadDirectory(dir string)
}

// TransferProvider defines the interface for fetching remote files to disk.
// Fetch must create or overwrite the destination path.
type TransferProvider interface {
	Fetch(url, destPath string) error
}

// CommandRunner defines the interface for external tool interaction.
type CommandRunner interface {
	// Probe reports whether a named external tool is available on this host
	Probe(tool string) bool

	// Launch opens or executes a local file with the OS default handler
	Launch(path string) error
}
