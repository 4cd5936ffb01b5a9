package link

import (
	"bufio"
	"context"
	"io"
	"sync/atomic"

	"github.com/golang/glog"
)

// Defaults of a Receiver.
const (
	DefaultDelimiter    byte = '\n'
	DefaultMaxFrameSize      = 512
)

// BufferHandler is called for every buffer received.
type BufferHandler interface {
	HandleBuffer(context.Context, []byte)
}

// HandleBufferFunc is func type of BufferHandler.
type HandleBufferFunc func(context.Context, []byte)

// HandleBuffer implements BufferHandler.
func (f HandleBufferFunc) HandleBuffer(ctx context.Context, buf []byte) {
	f(ctx, buf)
}

// Receiver reads delimiter terminated buffers from a byte stream.
type Receiver struct {
	Reader       io.Reader
	Handler      BufferHandler
	Delimiter    byte
	MaxFrameSize int

	received atomic.Uint64
	dropped  atomic.Uint64
}

// NewReceiver creates a Receiver with defaults.
func NewReceiver(r io.Reader, h BufferHandler) *Receiver {
	return &Receiver{
		Reader:       r,
		Handler:      h,
		Delimiter:    DefaultDelimiter,
		MaxFrameSize: DefaultMaxFrameSize,
	}
}

// Received returns the number of buffers delivered.
func (r *Receiver) Received() uint64 {
	return r.received.Load()
}

// Dropped returns the number of bytes discarded because no delimiter showed
// up within MaxFrameSize.
func (r *Receiver) Dropped() uint64 {
	return r.dropped.Load()
}

// Run reads until the context is canceled or the reader fails.
// Reaching the end of the stream is not an error.
func (r *Receiver) Run(ctx context.Context) error {
	bufCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.readLoop(subCtx, bufCh, errCh)
	for {
		select {
		case buf := <-bufCh:
			r.received.Add(1)
			if h := r.Handler; h != nil {
				h.HandleBuffer(ctx, buf)
			}
		case err := <-errCh:
			if err == io.EOF {
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Receiver) readLoop(ctx context.Context, bufCh chan []byte, errCh chan error) {
	delim, size := r.Delimiter, r.MaxFrameSize
	if delim == 0 {
		delim = DefaultDelimiter
	}
	if size <= 0 {
		size = DefaultMaxFrameSize
	}
	br := bufio.NewReaderSize(r.Reader, size)
	var discarding bool
	for {
		line, err := br.ReadSlice(delim)
		switch err {
		case nil:
			if discarding {
				// tail of an oversized line.
				r.dropped.Add(uint64(len(line)))
				discarding = false
				continue
			}
			buf := make([]byte, len(line))
			copy(buf, line)
			select {
			case bufCh <- buf:
			case <-ctx.Done():
				return
			}
		case bufio.ErrBufferFull:
			if !discarding {
				glog.Warningf("link: no delimiter within %d bytes, discarding", len(line))
			}
			r.dropped.Add(uint64(len(line)))
			discarding = true
		default:
			if len(line) > 0 {
				glog.V(2).Infof("link: %d trailing bytes without delimiter", len(line))
				r.dropped.Add(uint64(len(line)))
			}
			errCh <- err
			return
		}
	}
}
