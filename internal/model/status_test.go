package model

import "testing"

func TestItemStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusResolving, true},
		{StatusDownloading, true},
		{StatusSkipped, false},
		{StatusDelegated, false},
		{StatusSucceeded, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusResolving, false},
		{StatusDownloading, false},
		{StatusSkipped, true},
		{StatusDelegated, true},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_Outcome(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		outcome  OutcomeKind
		terminal bool
	}{
		{StatusPending, "", false},
		{StatusResolving, "", false},
		{StatusDownloading, "", false},
		{StatusSkipped, OutcomeSkippedUnsupported, true},
		{StatusDelegated, OutcomeDelegatedToUser, true},
		{StatusSucceeded, OutcomeSucceeded, true},
		{StatusFailed, OutcomeFailed, true},
	}

	for _, test := range tests {
		outcome, ok := test.status.Outcome()
		if ok != test.terminal {
			t.Errorf("ItemStatus(%s).Outcome() ok = %v, expected %v", test.status, ok, test.terminal)
		}
		if outcome != test.outcome {
			t.Errorf("ItemStatus(%s).Outcome() = %s, expected %s", test.status, outcome, test.outcome)
		}
	}
}

func TestItemStatus_String(t *testing.T) {
	status := StatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("ItemStatus.String() = %s, expected %s", result, expected)
	}
}
