package telemetry

import (
	"context"
	"sync"
	"sync/atomic"
)

// Decoder owns the current telemetry state.
//
// Decode calls are serialized; Current may be called from any goroutine and
// always observes a whole frame. Handlers run synchronously inside Decode, in
// commit order, and must not call Decode.
type Decoder struct {
	lock     sync.Mutex
	handlers []EventHandler
	current  atomic.Pointer[Frame]
}

// NewDecoder creates a Decoder holding the all-zero frame.
func NewDecoder(handlers ...EventHandler) *Decoder {
	d := &Decoder{handlers: handlers}
	d.current.Store(ZeroFrame())
	return d
}

// AddHandler registers more event handlers.
func (d *Decoder) AddHandler(handlers ...EventHandler) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.handlers = append(d.handlers, handlers...)
}

// Current returns the last accepted frame, or the all-zero frame.
func (d *Decoder) Current() *Frame {
	if f := d.current.Load(); f != nil {
		return f
	}
	return ZeroFrame()
}

// Decode validates and decodes raw. On success the frame replaces the
// current state and reset tells whether the packet counter went backwards.
// On failure the state is unchanged and FrameRejected is emitted.
func (d *Decoder) Decode(ctx context.Context, raw []byte) (frame *Frame, reset bool, err error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	frame, err = Parse(raw)
	if err != nil {
		d.notify(ctx, &FrameRejected{Reason: ReasonOf(err), Err: err, Size: len(raw)})
		return nil, false, err
	}

	prev := d.Current()
	if frame.PacketCount() < prev.PacketCount() {
		reset = true
		d.notify(ctx, &SequenceReset{Previous: prev.PacketCount(), Current: frame.PacketCount()})
	}
	d.current.Store(frame)
	d.notify(ctx, &FrameAccepted{Frame: frame})
	return frame, reset, nil
}

func (d *Decoder) notify(ctx context.Context, ev Event) {
	for _, h := range d.handlers {
		h.HandleEvent(ctx, ev)
	}
}
