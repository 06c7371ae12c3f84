package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// InstallerDownloadsDirName is the subdirectory of the user's Downloads
// folder that downloaded installers land in.
const InstallerDownloadsDirName = "InstallerDownloads"

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// DefaultDownloadDir returns the default directory downloaded installers are
// written to: <home>/Downloads/InstallerDownloads. The directory itself is
// created lazily by the engine.
func DefaultDownloadDir() (string, error) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(downloadsDir, InstallerDownloadsDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// SanitizeFileName turns an application name into a safe file name: spaces
// become underscores, and characters that are path separators or otherwise
// unsafe on common filesystems are dropped.
func SanitizeFileName(name string) string {
	sanitized := strings.ReplaceAll(name, " ", "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, sanitized)
}

// OpenDirectory opens a directory in the system file manager
func OpenDirectory(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	default:
		return exec.Command(XDGOpenCommand, absPath).Run()
	}
}
