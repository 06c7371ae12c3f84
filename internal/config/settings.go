package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/appdock/appdock/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir          = "download_directory"
	KeyConfirmBeforeInstall = "confirm_before_install"
	KeyNotifyOnComplete     = "notify_on_complete"
)

// Default values
const (
	DefaultConfirmBeforeInstall = true
	DefaultNotifyOnComplete     = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.DefaultDownloadDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), platform.InstallerDownloadsDirName)
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetConfirmBeforeInstall returns whether installs need a confirmation dialog
func (s *Settings) GetConfirmBeforeInstall() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmBeforeInstall, DefaultConfirmBeforeInstall)
}

// SetConfirmBeforeInstall sets whether installs need a confirmation dialog
func (s *Settings) SetConfirmBeforeInstall(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmBeforeInstall, confirm)
}

// GetNotifyOnComplete returns whether a system notification is sent when a
// run finishes
func (s *Settings) GetNotifyOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnComplete, DefaultNotifyOnComplete)
}

// SetNotifyOnComplete sets whether a system notification is sent when a run
// finishes
func (s *Settings) SetNotifyOnComplete(notify bool) {
	s.app.Preferences().SetBool(KeyNotifyOnComplete, notify)
}
