package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/appdock/appdock/internal/config"
	"github.com/appdock/appdock/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	downloadDirEntry *widget.Entry
	confirmCheck     *widget.Check
	notifyCheck      *widget.Check
}

// NewSettingsDialog creates a new settings dialog. The onSaved callback runs
// after a confirmed save, before the confirmation popup.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	resetDirBtn := widget.NewButton("Reset", sd.onResetDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(browseDirBtn, resetDirBtn), sd.downloadDirEntry)

	// Behavior toggles
	sd.confirmCheck = widget.NewCheck("Ask for confirmation before installing", nil)
	sd.notifyCheck = widget.NewCheck("Notify when an installation run completes", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Download Directory:"),
		downloadDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Installation Settings"),
		widget.NewSeparator(),

		sd.confirmCheck,
		sd.notifyCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmBeforeInstall())
	sd.notifyCheck.SetChecked(sd.settings.GetNotifyOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onResetDirectory restores the platform default download directory
func (sd *SettingsDialog) onResetDirectory() {
	dir, err := platform.DefaultDownloadDir()
	if err != nil {
		log.Printf("Failed to resolve default download directory: %v", err)
		return
	}
	sd.downloadDirEntry.SetText(dir)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save download directory
	downloadDir := sd.downloadDirEntry.Text
	if downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	// Save installation behavior toggles
	sd.settings.SetConfirmBeforeInstall(sd.confirmCheck.Checked)
	sd.settings.SetNotifyOnComplete(sd.notifyCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
