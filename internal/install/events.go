package install

import "github.com/appdock/appdock/internal/model"

// EventKind discriminates the events emitted during a run
type EventKind string

const (
	EventKindMessage   EventKind = "Message"
	EventKindCompleted EventKind = "Completed"
)

// Event is one unit of streamed progress information produced by a run.
// A run emits zero or more Message events followed by exactly one Completed
// event, after which the event channel is closed.
type Event interface {
	Kind() EventKind
}

// MessageEvent carries one console log line
type MessageEvent struct {
	Text string
}

// Kind returns the event kind
func (MessageEvent) Kind() EventKind { return EventKindMessage }

// CompletedEvent is the terminal event of a run carrying the full report
type CompletedEvent struct {
	Report model.RunReport
}

// Kind returns the event kind
func (CompletedEvent) Kind() EventKind { return EventKindCompleted }
