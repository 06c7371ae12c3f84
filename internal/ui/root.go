package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/appdock/appdock/internal/catalog"
	"github.com/appdock/appdock/internal/config"
	"github.com/appdock/appdock/internal/install"
	"github.com/appdock/appdock/internal/model"
	"github.com/appdock/appdock/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	hostOS   model.OS
	engine   install.Dispatcher
	settings *config.Settings

	// Application checklist
	appNames  []string
	appChecks map[string]*widget.Check

	// Controls
	installBtn *widget.Button

	// Installation log console
	consoleLines  []string
	consoleText   *widget.Label
	consoleScroll *container.Scroll
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, engine install.Dispatcher) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Detect the platform once; it selects catalog actions for the whole session
	hostOS := platform.Detect()

	ui := &RootUI{
		window:    window,
		hostOS:    hostOS,
		engine:    engine,
		settings:  settings,
		appNames:  cat.Names(),
		appChecks: make(map[string]*widget.Check),
	}

	log.Printf("RootUI initialized: %d applications, platform %s", len(ui.appNames), hostOS)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Header with title and platform subtitle
	title := widget.NewLabel(HeaderTitle)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(fmt.Sprintf(SubtitleFormat, ui.hostOS.DisplayName()))
	subtitle.Alignment = fyne.TextAlignCenter

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create downloads folder button
	folderBtn := widget.NewButton(IconFolder, ui.onOpenDownloads)
	folderBtn.Importance = widget.LowImportance

	header := container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(settingsBtn, folderBtn),
		container.NewVBox(title, subtitle),
	)
	top := container.NewVBox(header, widget.NewSeparator())

	// Scrollable application checklist
	checkList := container.NewVBox()
	for _, name := range ui.appNames {
		check := widget.NewCheck(name, nil)
		ui.appChecks[name] = check
		checkList.Add(check)
	}
	checkScroll := container.NewVScroll(checkList)

	// Selection buttons
	selectAllBtn := widget.NewButton(SelectAllLabel, ui.onSelectAll)
	deselectAllBtn := widget.NewButton(DeselectAllLabel, ui.onDeselectAll)
	selectionRow := container.NewHBox(selectAllBtn, deselectAllBtn)

	// Install button
	ui.installBtn = widget.NewButton(InstallButtonLabel, ui.onInstallClick)
	ui.installBtn.Importance = widget.HighImportance

	// Installation log console
	ui.consoleText = widget.NewLabel("")
	ui.consoleText.TextStyle = fyne.TextStyle{Monospace: true}
	ui.consoleText.Wrapping = fyne.TextWrapBreak
	ui.consoleScroll = container.NewVScroll(ui.consoleText)
	ui.consoleScroll.SetMinSize(fyne.NewSize(0, ConsoleMinHeight))

	bottom := container.NewVBox(
		selectionRow,
		widget.NewSeparator(),
		ui.installBtn,
		widget.NewLabel(ConsoleHeaderText),
		ui.consoleScroll,
	)

	// Create main layout
	content := container.NewBorder(
		top,         // top
		bottom,      // bottom
		nil,         // left
		nil,         // right
		checkScroll, // center - scrollable checklist
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// onSelectAll checks every application in the list
func (ui *RootUI) onSelectAll() {
	for _, check := range ui.appChecks {
		check.SetChecked(true)
	}
}

// onDeselectAll unchecks every application in the list
func (ui *RootUI) onDeselectAll() {
	for _, check := range ui.appChecks {
		check.SetChecked(false)
	}
}

// selectedApps returns the checked application names in checklist order
func (ui *RootUI) selectedApps() []string {
	var selected []string
	for _, name := range ui.appNames {
		if check := ui.appChecks[name]; check != nil && check.Checked {
			selected = append(selected, name)
		}
	}
	return selected
}

// onInstallClick validates the selection and asks for confirmation before
// starting an installation run.
func (ui *RootUI) onInstallClick() {
	selected := ui.selectedApps()
	if len(selected) == 0 {
		dialog.ShowInformation("No Selection", "Please select at least one application to install.", ui.window)
		return
	}

	if !ui.settings.GetConfirmBeforeInstall() {
		ui.startInstallation(selected)
		return
	}

	message := fmt.Sprintf("Install %d application(s)?\n\n• %s", len(selected), strings.Join(selected, "\n• "))
	dialog.ShowConfirm("Confirm Installation", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		ui.startInstallation(selected)
	}, ui.window)
}

// startInstallation clears the console and hands the selection to the engine
func (ui *RootUI) startInstallation(selected []string) {
	ui.clearConsole()

	events, err := ui.engine.Run(selected, ui.hostOS)
	if err != nil {
		if errors.Is(err, install.ErrRunInProgress) {
			dialog.ShowInformation("Installation Running",
				"An installation run is already in progress. Please wait for it to finish.", ui.window)
			return
		}
		log.Printf("Failed to start installation run: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("Installation run started: %d application(s)", len(selected))
	ui.installBtn.Disable()

	go ui.consumeEvents(events)
}

// consumeEvents drains one run's event channel on a background goroutine
// until the terminal Completed event arrives and the channel closes.
func (ui *RootUI) consumeEvents(events <-chan install.Event) {
	for event := range events {
		switch e := event.(type) {
		case install.MessageEvent:
			ui.appendConsole(e.Text)
		case install.CompletedEvent:
			ui.onRunCompleted(e.Report)
		}
	}
}

// appendConsole adds one line to the installation log. Safe to call from any
// goroutine; the widget update happens on the UI thread.
func (ui *RootUI) appendConsole(text string) {
	fyne.Do(func() {
		ui.consoleLines = append(ui.consoleLines, text)
		ui.consoleText.SetText(strings.Join(ui.consoleLines, "\n"))
		ui.consoleScroll.ScrollToBottom()
	})
}

// clearConsole empties the installation log before a new run
func (ui *RootUI) clearConsole() {
	ui.consoleLines = nil
	ui.consoleText.SetText("")
}

// onRunCompleted handles the terminal event of an installation run
func (ui *RootUI) onRunCompleted(report model.RunReport) {
	log.Printf("Run %s completed: %s", report.RunID, report.Summary())

	// Send system notification for the finished run
	if ui.settings.GetNotifyOnComplete() {
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   "Installation Complete",
			Content: report.Summary(),
		})
	}

	fyne.Do(func() {
		ui.installBtn.Enable()
		dialog.ShowInformation("Installation Complete",
			"All selected applications have been processed. Check the log for details.", ui.window)
	})
}

// onOpenDownloads reveals the downloads directory in the system file manager
func (ui *RootUI) onOpenDownloads() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to ensure downloads directory %s: %v", dir, err)
		dialog.ShowError(err, ui.window)
		return
	}
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Failed to open downloads directory %s: %v", dir, err)
		dialog.ShowError(err, ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		// Keep the engine's download directory in sync with saved settings
		ui.engine.SetDownloadDirectory(ui.settings.GetDownloadDirectory())
	}).Show()
}
