package install

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/appdock/appdock/internal/catalog"
	"github.com/appdock/appdock/internal/model"
	"github.com/appdock/appdock/internal/platform"
)

// Dispatch constants: probed tools, delegated command templates, and stable
// failure details surfaced in run reports.
const (
	RunIDPrefix = "run-"

	// BrewCommand is the external tool probed before delegating brew installs
	BrewCommand = "brew"

	// HomebrewInstallCommand is suggested when Homebrew itself is missing
	HomebrewInstallCommand = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`

	// Commands delegated to the user; the engine prints them, never runs them
	AptInstallTemplate  = "sudo apt-get install -y %s"
	BrewInstallTemplate = "brew install %s"
	SnapInstallTemplate = "sudo snap install %s"
	DpkgInstallTemplate = "sudo dpkg -i %s"
	AptFixBrokenCommand = "sudo apt-get install -f"

	FailureNoConfiguration = "no configuration found"
	FailureHomebrewMissing = "homebrew missing"

	// LogSeparatorWidth is the width of the "=" banner lines in the console
	LogSeparatorWidth = 50
)

// eventBufferSize is the capacity of the event channel handed to the consumer
const eventBufferSize = 100

var (
	// ErrEmptySelection is returned when Run is invoked with no applications
	ErrEmptySelection = errors.New("no applications selected")

	// ErrRunInProgress is returned while a previous run is still processing
	ErrRunInProgress = errors.New("installation run already in progress")
)

// Engine resolves selected applications against the catalog and executes
// their install actions one at a time, streaming log events as it goes.
type Engine struct {
	catalog     *catalog.Catalog
	transfer    TransferProvider
	runner      CommandRunner
	downloadDir string

	mu      sync.Mutex
	running bool
}

// New creates a new dispatch engine
func New(cat *catalog.Catalog, transfer TransferProvider, runner CommandRunner, downloadDir string) *Engine {
	return &Engine{
		catalog:     cat,
		transfer:    transfer,
		runner:      runner,
		downloadDir: downloadDir,
	}
}

// DownloadDir returns the directory downloaded installers are written to
func (e *Engine) DownloadDir() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.downloadDir
}

// SetDownloadDirectory changes where downloaded installers are written.
// A run in progress keeps the directory it started with.
func (e *Engine) SetDownloadDirectory(dir string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.downloadDir = dir
}

// Run processes the selected applications sequentially on a background worker
// and returns the event channel for this run. The channel receives Message
// events while items are processed, then exactly one Completed event, and is
// closed. Runs do not overlap: starting a second run while one is active
// fails with ErrRunInProgress, and an empty selection fails with
// ErrEmptySelection before any work starts.
func (e *Engine) Run(selection []string, hostOS model.OS) (<-chan Event, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil, ErrRunInProgress
	}
	e.running = true
	downloadDir := e.downloadDir
	e.mu.Unlock()

	// Snapshot the selection so caller-side mutation cannot affect the run
	items := make([]string, len(selection))
	copy(items, selection)

	events := make(chan Event, eventBufferSize)
	go e.process(items, hostOS, downloadDir, events)

	return events, nil
}

// process is the run worker: one item at a time, in selection order. A
// failure for one item never stops the remaining items.
func (e *Engine) process(selection []string, hostOS model.OS, downloadDir string, events chan<- Event) {
	report := model.RunReport{
		RunID:     generateRunID(),
		Platform:  hostOS,
		StartedAt: time.Now(),
	}

	emit := func(text string) {
		events <- MessageEvent{Text: text}
	}

	log.Printf("Run %s started: %d application(s) on %s", report.RunID, len(selection), hostOS)

	separator := strings.Repeat("=", LogSeparatorWidth)
	emit(separator)
	emit(fmt.Sprintf("Starting installation for %d application(s)...", len(selection)))
	emit(separator)

	for _, name := range selection {
		result := e.processItem(name, hostOS, downloadDir, emit)
		report.Results = append(report.Results, result)
		log.Printf("Run %s: %s -> %s", report.RunID, name, result.Outcome)
	}

	report.FinishedAt = time.Now()

	emit("\n" + separator)
	emit("Installation process completed!")
	emit(report.Summary())
	emit(separator)

	log.Printf("Run %s finished: %s", report.RunID, report.Summary())

	// Clear the running flag before the terminal event so a consumer reacting
	// to Completed can start the next run immediately.
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()

	events <- CompletedEvent{Report: report}
	close(events)
}

// processItem walks one application through resolve and dispatch, emitting
// its console lines and returning its report entry.
func (e *Engine) processItem(name string, hostOS model.OS, downloadDir string, emit func(string)) model.ItemResult {
	item := newItemState(name)
	emit(fmt.Sprintf("\n📦 Processing: %s", name))

	item.advance(model.StatusResolving)

	entry, known := e.catalog.Lookup(name)
	if !known {
		emit(fmt.Sprintf("❌ Error: No configuration found for %s", name))
		item.finish(model.StatusFailed, FailureNoConfiguration)
		return item.result()
	}

	action, supported := entry.ActionFor(hostOS)
	if !supported {
		emit(fmt.Sprintf("❌ Error: %s not supported on %s", name, hostOS))
		item.finish(model.StatusSkipped, fmt.Sprintf("not supported on %s", hostOS))
		return item.result()
	}

	switch act := action.(type) {
	case catalog.PackageRef:
		e.dispatchPackage(item, act, emit)
	case catalog.DirectDownload:
		e.dispatchDownload(item, act.URL, hostOS, downloadDir, emit)
	default:
		emit(fmt.Sprintf("❌ Error installing %s: unsupported action type", name))
		item.finish(model.StatusFailed, fmt.Sprintf("unsupported action type %T", action))
	}

	return item.result()
}

// dispatchPackage handles the package-manager reference variants. These are
// instructional: the matching command is printed for the user, never
// executed, and never run under sudo by the engine.
func (e *Engine) dispatchPackage(item *itemState, ref catalog.PackageRef, emit func(string)) {
	switch ref.Manager {
	case catalog.ManagerApt:
		cmd := fmt.Sprintf(AptInstallTemplate, ref.Package)
		emit(fmt.Sprintf("Installing %s via package manager...", item.app))
		emit(fmt.Sprintf("ℹ️  Package: %s", ref.Package))
		emit("⚠️  This requires sudo privileges. Please run the following command manually:")
		emit("    " + cmd)
		item.finish(model.StatusDelegated, cmd)

	case catalog.ManagerBrew:
		emit(fmt.Sprintf("Installing %s via Homebrew...", item.app))
		emit(fmt.Sprintf("ℹ️  Package: %s", ref.Package))
		if !e.runner.Probe(BrewCommand) {
			emit("❌ Homebrew not found. Please install Homebrew first:")
			emit("    " + HomebrewInstallCommand)
			item.finish(model.StatusFailed, FailureHomebrewMissing)
			return
		}
		cmd := fmt.Sprintf(BrewInstallTemplate, ref.Package)
		emit(fmt.Sprintf("⚠️  Please run: %s", cmd))
		item.finish(model.StatusDelegated, cmd)

	case catalog.ManagerSnap:
		cmd := fmt.Sprintf(SnapInstallTemplate, ref.Package)
		emit(fmt.Sprintf("Installing %s via Snap...", item.app))
		emit(fmt.Sprintf("ℹ️  Package: %s", ref.Package))
		emit(fmt.Sprintf("⚠️  Please run: %s", cmd))
		item.finish(model.StatusDelegated, cmd)

	default:
		emit(fmt.Sprintf("❌ Error installing %s: unknown package manager %q", item.app, ref.Manager))
		item.finish(model.StatusFailed, fmt.Sprintf("unknown package manager %q", ref.Manager))
	}
}

// dispatchDownload fetches a direct-download installer into the downloads
// directory and hands it to the platform opener.
func (e *Engine) dispatchDownload(item *itemState, url string, hostOS model.OS, downloadDir string, emit func(string)) {
	emit(fmt.Sprintf("Downloading %s...", item.app))

	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		emit(fmt.Sprintf("❌ Error installing %s: %v", item.app, err))
		item.finish(model.StatusFailed, fmt.Sprintf("cannot create downloads directory: %v", err))
		return
	}

	filename := platform.SanitizeFileName(item.app) + hostOS.InstallerExt()
	destPath := filepath.Join(downloadDir, filename)

	item.advance(model.StatusDownloading)
	emit(fmt.Sprintf("⬇️  Downloading to: %s", destPath))

	if err := e.transfer.Fetch(url, destPath); err != nil {
		emit(fmt.Sprintf("❌ Download failed: %v", err))
		emit(fmt.Sprintf("ℹ️  You can manually download from: %s", url))
		item.finish(model.StatusFailed, fmt.Sprintf("download failed: %v", err))
		return
	}
	emit("✅ Downloaded successfully!")

	e.openArtifact(item, destPath, hostOS, emit)
}

// openArtifact finishes a successful download: windows and mac hand the file
// to the OS opener, everything else gets manual dpkg instructions. A launch
// failure keeps the downloaded file in place for manual use.
func (e *Engine) openArtifact(item *itemState, path string, hostOS model.OS, emit func(string)) {
	switch hostOS {
	case model.OSWindows:
		emit("ℹ️  Opening installer...")
		if err := e.runner.Launch(path); err != nil {
			emit(fmt.Sprintf("❌ Launch failed: %v", err))
			emit(fmt.Sprintf("ℹ️  Installer saved at: %s", path))
			item.finish(model.StatusFailed, fmt.Sprintf("launch failed: %v", err))
			return
		}
		emit("✅ Installer launched. Please follow the installation wizard.")
		item.finish(model.StatusSucceeded, path)

	case model.OSMac:
		emit("ℹ️  Opening DMG file...")
		if err := e.runner.Launch(path); err != nil {
			emit(fmt.Sprintf("❌ Launch failed: %v", err))
			emit(fmt.Sprintf("ℹ️  Installer saved at: %s", path))
			item.finish(model.StatusFailed, fmt.Sprintf("launch failed: %v", err))
			return
		}
		emit("✅ DMG opened. Please drag the app to Applications folder.")
		item.finish(model.StatusSucceeded, path)

	default:
		emit("ℹ️  To install, run:")
		emit("    " + fmt.Sprintf(DpkgInstallTemplate, path))
		emit("    " + AptFixBrokenCommand)
		item.finish(model.StatusSucceeded, path)
	}
}

// itemState tracks one selection entry through the dispatch lifecycle
type itemState struct {
	app    string
	status model.ItemStatus
	detail string
}

func newItemState(app string) *itemState {
	return &itemState{app: app, status: model.StatusPending}
}

// advance moves the item to a later non-terminal stage. Terminal states
// absorb: once reached, the item never transitions again.
func (s *itemState) advance(next model.ItemStatus) {
	if s.status.IsTerminal() {
		return
	}
	s.status = next
}

// finish parks the item in a terminal status with its report detail
func (s *itemState) finish(status model.ItemStatus, detail string) {
	if s.status.IsTerminal() {
		return
	}
	s.status = status
	s.detail = detail
}

// result folds the item's terminal status into its report entry. An item
// that somehow never reached a terminal status still gets exactly one entry,
// recorded as failed.
func (s *itemState) result() model.ItemResult {
	outcome, terminal := s.status.Outcome()
	if !terminal {
		outcome = model.OutcomeFailed
		if s.detail == "" {
			s.detail = fmt.Sprintf("dispatch ended in non-terminal state %s", s.status)
		}
	}
	return model.ItemResult{App: s.app, Outcome: outcome, Detail: s.detail}
}

// generateRunID returns a unique identifier for one installation run
func generateRunID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
