package model

// ItemStatus represents the processing state of one selected application
type ItemStatus string

const (
	// StatusPending means the application is queued but not yet processed
	StatusPending ItemStatus = "Pending"

	// StatusResolving means the catalog lookup for the application is in progress
	StatusResolving ItemStatus = "Resolving"

	// StatusDownloading means an installer file transfer is in progress
	StatusDownloading ItemStatus = "Downloading"

	// StatusSkipped means the application is not available on this platform
	StatusSkipped ItemStatus = "Skipped"

	// StatusDelegated means manual package-manager instructions were printed
	StatusDelegated ItemStatus = "Delegated"

	// StatusSucceeded means the installer was downloaded and handed to the OS
	StatusSucceeded ItemStatus = "Succeeded"

	// StatusFailed means processing ended with an error for this application
	StatusFailed ItemStatus = "Failed"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is still being worked on
func (s ItemStatus) IsActive() bool {
	return s == StatusResolving || s == StatusDownloading
}

// IsTerminal returns true if the status is absorbing; an item never leaves a
// terminal status once it has reached one.
func (s ItemStatus) IsTerminal() bool {
	return s == StatusSkipped || s == StatusDelegated || s == StatusSucceeded || s == StatusFailed
}

// Outcome maps a terminal status to its outcome kind. The second return is
// false while the item is still pending or active.
func (s ItemStatus) Outcome() (OutcomeKind, bool) {
	switch s {
	case StatusSkipped:
		return OutcomeSkippedUnsupported, true
	case StatusDelegated:
		return OutcomeDelegatedToUser, true
	case StatusSucceeded:
		return OutcomeSucceeded, true
	case StatusFailed:
		return OutcomeFailed, true
	default:
		return "", false
	}
}

// OutcomeKind classifies the terminal result recorded for one application
type OutcomeKind string

const (
	// OutcomeSucceeded means the installer was fetched and handed to the OS
	OutcomeSucceeded OutcomeKind = "Succeeded"

	// OutcomeSkippedUnsupported means the application has no install action for
	// the current platform
	OutcomeSkippedUnsupported OutcomeKind = "SkippedUnsupported"

	// OutcomeFailed means processing ended with an error
	OutcomeFailed OutcomeKind = "Failed"

	// OutcomeDelegatedToUser means instructions were printed but no action was
	// taken by the program itself
	OutcomeDelegatedToUser OutcomeKind = "DelegatedToUser"
)

// String returns the string representation of OutcomeKind
func (k OutcomeKind) String() string {
	return string(k)
}
