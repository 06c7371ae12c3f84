package model

import (
	"fmt"
	"time"
)

// ItemResult records the terminal outcome for one selected application
type ItemResult struct {
	App     string
	Outcome OutcomeKind
	Detail  string // failure reason or delegation note, empty on plain success
}

// RunReport is the ordered record of one completed installation run. Results
// holds exactly one entry per selected application, in selection order,
// regardless of individual failures.
type RunReport struct {
	RunID      string
	Platform   OS
	Results    []ItemResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of applications the run processed
func (r *RunReport) Total() int {
	return len(r.Results)
}

// Count returns how many applications ended with the given outcome kind
func (r *RunReport) Count(kind OutcomeKind) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == kind {
			n++
		}
	}
	return n
}

// Summary returns a one-line human-readable tally of the run. Delegated
// installs are counted separately from succeeded ones; the engine never
// collapses the two.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%d installed, %d delegated, %d skipped, %d failed",
		r.Count(OutcomeSucceeded),
		r.Count(OutcomeDelegatedToUser),
		r.Count(OutcomeSkippedUnsupported),
		r.Count(OutcomeFailed))
}

// Failures returns the results that ended in OutcomeFailed, in run order
func (r *RunReport) Failures() []ItemResult {
	var failed []ItemResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
