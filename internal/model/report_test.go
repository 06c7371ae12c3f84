package model

import (
	"testing"
	"time"
)

func TestRunReport_Counts(t *testing.T) {
	report := &RunReport{
		RunID:    "run-test",
		Platform: OSLinux,
		Results: []ItemResult{
			{App: "Vim", Outcome: OutcomeDelegatedToUser},
			{App: "Visual Studio Code", Outcome: OutcomeSucceeded},
			{App: "NoSuchApp", Outcome: OutcomeFailed, Detail: "no configuration found"},
			{App: "Steam", Outcome: OutcomeDelegatedToUser},
			{App: "Spotify", Outcome: OutcomeSkippedUnsupported},
		},
	}

	if report.Total() != 5 {
		t.Errorf("Total() = %d, expected 5", report.Total())
	}

	tests := []struct {
		kind     OutcomeKind
		expected int
	}{
		{OutcomeSucceeded, 1},
		{OutcomeDelegatedToUser, 2},
		{OutcomeSkippedUnsupported, 1},
		{OutcomeFailed, 1},
	}

	for _, test := range tests {
		result := report.Count(test.kind)
		if result != test.expected {
			t.Errorf("Count(%s) = %d, expected %d", test.kind, result, test.expected)
		}
	}
}

func TestRunReport_Summary(t *testing.T) {
	report := &RunReport{
		Results: []ItemResult{
			{App: "Visual Studio Code", Outcome: OutcomeSucceeded},
			{App: "Vim", Outcome: OutcomeDelegatedToUser},
		},
	}

	expected := "1 installed, 1 delegated, 0 skipped, 0 failed"
	if result := report.Summary(); result != expected {
		t.Errorf("Summary() = %q, expected %q", result, expected)
	}
}

func TestRunReport_Failures(t *testing.T) {
	report := &RunReport{
		Results: []ItemResult{
			{App: "A", Outcome: OutcomeSucceeded},
			{App: "B", Outcome: OutcomeFailed, Detail: "download failed"},
			{App: "C", Outcome: OutcomeFailed, Detail: "homebrew missing"},
		},
	}

	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("Failures() returned %d results, expected 2", len(failures))
	}
	if failures[0].App != "B" || failures[1].App != "C" {
		t.Errorf("Failures() order = %s,%s, expected B,C", failures[0].App, failures[1].App)
	}
	if failures[0].Detail != "download failed" {
		t.Errorf("Failures()[0].Detail = %q, expected %q", failures[0].Detail, "download failed")
	}
}

func TestRunReport_Timestamps(t *testing.T) {
	started := time.Now()
	finished := started.Add(2 * time.Second)

	report := &RunReport{
		RunID:      "run-abc",
		Platform:   OSWindows,
		StartedAt:  started,
		FinishedAt: finished,
	}

	if !report.FinishedAt.After(report.StartedAt) {
		t.Error("FinishedAt should be after StartedAt")
	}
	if report.Platform != OSWindows {
		t.Errorf("Platform = %s, expected %s", report.Platform, OSWindows)
	}
}
