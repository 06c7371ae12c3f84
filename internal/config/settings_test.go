package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestConfirmBeforeInstall(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetConfirmBeforeInstall() {
		t.Error("Confirm before install should default to true")
	}

	// Test setting custom value
	settings.SetConfirmBeforeInstall(false)
	if settings.GetConfirmBeforeInstall() {
		t.Error("Confirm before install should be false after disabling")
	}
}

func TestNotifyOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetNotifyOnComplete() {
		t.Error("Notify on complete should default to true")
	}

	// Test setting custom value
	settings.SetNotifyOnComplete(false)
	if settings.GetNotifyOnComplete() {
		t.Error("Notify on complete should be false after disabling")
	}
}
