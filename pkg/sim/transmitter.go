package sim

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/golang/glog"
)

// Corrupt returns a copy of raw with one decimal digit changed.
// raw is returned unchanged if it contains no digit.
func Corrupt(raw []byte, r *rand.Rand) []byte {
	out := append([]byte(nil), raw...)
	var digits []int
	for n, c := range out {
		if c >= '0' && c <= '9' {
			digits = append(digits, n)
		}
	}
	if len(digits) == 0 {
		return out
	}
	pos := digits[r.Intn(len(digits))]
	out[pos] = '0' + (out[pos]-'0'+byte(1+r.Intn(9)))%10
	return out
}

// Transmitter writes the frames of a Flight to Out, like the radio of the unit.
type Transmitter struct {
	Flight *Flight
	Out    io.Writer
	// CorruptRate is the probability a frame is damaged in the air.
	CorruptRate float64
	// RestartAt power-cycles the unit after that many frames if positive.
	RestartAt int
	// Realtime paces frames at the flight interval.
	Realtime bool

	rand *rand.Rand
	sent int
}

// NewTransmitter creates a Transmitter.
func NewTransmitter(flight *Flight, out io.Writer, seed int64) *Transmitter {
	return &Transmitter{
		Flight:   flight,
		Out:      out,
		Realtime: true,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

// Sent returns the number of frames written.
func (t *Transmitter) Sent() int {
	return t.sent
}

// Step writes one frame.
func (t *Transmitter) Step() error {
	if t.RestartAt > 0 && t.sent == t.RestartAt {
		glog.Infof("sim: unit restarted after %d frames", t.sent)
		t.Flight.Restart()
	}
	raw := t.Flight.NextFrame()
	if t.CorruptRate > 0 && t.rand.Float64() < t.CorruptRate {
		raw = Corrupt(raw, t.rand)
		glog.V(2).Infof("sim: corrupted frame %d", t.sent)
	}
	if _, err := t.Out.Write(raw); err != nil {
		return err
	}
	t.sent++
	return nil
}

// Run implements Runnable. It returns when the flight has landed.
func (t *Transmitter) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if t.Realtime {
		ticker := time.NewTicker(t.Flight.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for !t.Flight.Landed() {
		if err := t.Step(); err != nil {
			return err
		}
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
	glog.Infof("sim: landed after %s, %d frames", t.Flight.Elapsed(), t.sent)
	return nil
}
