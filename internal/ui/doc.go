package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the install dispatch engine and renders the
// application checklist, the installation log console, and settings.
