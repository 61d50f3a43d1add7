package filter

import (
	"context"
	"time"

	"github.com/asaidimu/go-sift/core/rows"
)

// EventType identifies a filter lifecycle event.
type EventType string

const (
	FilterStart   EventType = "filter:start"
	FilterSuccess EventType = "filter:success"
	FilterFailed  EventType = "filter:failed"
	RowDropped    EventType = "row:dropped"
)

// Event describes one step of a filter pass. Input, Output, Attribute and
// RowID are populated where applicable for the event type.
type Event struct {
	Type         EventType `json:"type"`                   // The type of event (e.g., 'filter:start', 'row:dropped').
	Timestamp    int64     `json:"timestamp"`              // Timestamp when the event occurred (Unix milliseconds).
	Operation    string    `json:"operation"`              // The operation being performed (always 'filter' today).
	InvocationID string    `json:"invocationId"`           // Identifier shared by all events of one filter call.
	Input        int       `json:"input"`                  // Row count entering the pass.
	Output       *int      `json:"output,omitempty"`       // Row count surviving the pass.
	Attribute    *string   `json:"attribute,omitempty"`    // Attribute that disqualified a row.
	RowID        *rows.ID  `json:"rowId,omitempty"`        // Identifier of a dropped row.
	Error        *string   `json:"error,omitempty"`        // Error message if the call failed.
	Duration     *int64    `json:"duration,omitempty"`     // Duration of the call in milliseconds.
}

// RegisterSubscriptionOptions configures an engine-scoped subscription.
type RegisterSubscriptionOptions struct {
	Event       EventType
	Callback    func(ctx context.Context, event Event) error
	Label       *string
	Description *string
}

// SubscriptionInfo records an active subscription and how to undo it.
type SubscriptionInfo struct {
	Event       EventType
	Unsubscribe func()
	Label       *string
	Description *string
}

func createEvent(
	eventType EventType,
	invocationID string,
	input int,
	output *int,
	attribute *string,
	rowID *rows.ID,
	err *string,
	startTime time.Time,
) Event {
	var duration *int64
	if !startTime.IsZero() {
		d := time.Since(startTime).Milliseconds()
		duration = &d
	}

	return Event{
		Type:         eventType,
		Timestamp:    time.Now().UnixMilli(),
		Operation:    "filter",
		InvocationID: invocationID,
		Input:        input,
		Output:       output,
		Attribute:    attribute,
		RowID:        rowID,
		Error:        err,
		Duration:     duration,
	}
}
