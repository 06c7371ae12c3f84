package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/appdock/appdock/internal/catalog"
	"github.com/appdock/appdock/internal/config"
	"github.com/appdock/appdock/internal/install"
	"github.com/appdock/appdock/internal/platform"
	"github.com/appdock/appdock/internal/transfer"
	"github.com/appdock/appdock/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.appdock.appdock"
	AppName = "Software Installer"

	WindowWidth  = 600
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("AppDock v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply cozy theme
	myApp.Settings().SetTheme(ui.NewCozyTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	cat := catalog.Builtin()
	engine := install.New(cat, transfer.NewClient(), platform.ExecRunner{}, downloadsDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, cat, engine)

	// Show and run
	myWindow.ShowAndRun()
}
