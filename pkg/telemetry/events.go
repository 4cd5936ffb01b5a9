package telemetry

import "context"

// Event is emitted by a Decoder for every decoded buffer.
type Event interface {
	// EventName is a short stable name, e.g. for topics and metrics.
	EventName() string
}

// FrameAccepted reports a new current frame.
type FrameAccepted struct {
	Frame *Frame
}

// EventName implements Event.
func (e *FrameAccepted) EventName() string { return "frame" }

// FrameRejected reports a dropped buffer. State is unchanged.
type FrameRejected struct {
	Reason Reason
	Err    error
	Size   int
}

// EventName implements Event.
func (e *FrameRejected) EventName() string { return "reject" }

// SequenceReset reports a packet counter regression on an accepted frame,
// presumably because the unit restarted.
type SequenceReset struct {
	Previous uint32
	Current  uint32
}

// EventName implements Event.
func (e *SequenceReset) EventName() string { return "reset" }

// EventHandler receives decoder events.
type EventHandler interface {
	HandleEvent(context.Context, Event)
}

// HandleEventFunc is func type of EventHandler.
type HandleEventFunc func(context.Context, Event)

// HandleEvent implements EventHandler.
func (f HandleEventFunc) HandleEvent(ctx context.Context, ev Event) {
	f(ctx, ev)
}
