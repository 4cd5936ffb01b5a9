package station

import (
	"context"
	"sync"
	"time"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

// Stats counts decoder events.
type Stats struct {
	lock     sync.Mutex
	snapshot StatsSnapshot
}

// StatsSnapshot is a copy of the counters.
type StatsSnapshot struct {
	Accepted     uint64            `json:"accepted"`
	Rejected     uint64            `json:"rejected"`
	Resets       uint64            `json:"resets"`
	Reasons      map[string]uint64 `json:"reasons,omitempty"`
	LastAccepted time.Time         `json:"last_accepted"`
	LastRejected time.Time         `json:"last_rejected"`
}

// HandleEvent implements telemetry.EventHandler.
func (s *Stats) HandleEvent(_ context.Context, ev telemetry.Event) {
	now := time.Now()
	s.lock.Lock()
	defer s.lock.Unlock()
	switch e := ev.(type) {
	case *telemetry.FrameAccepted:
		s.snapshot.Accepted++
		s.snapshot.LastAccepted = now
	case *telemetry.FrameRejected:
		s.snapshot.Rejected++
		s.snapshot.LastRejected = now
		if s.snapshot.Reasons == nil {
			s.snapshot.Reasons = make(map[string]uint64)
		}
		s.snapshot.Reasons[e.Reason.String()]++
	case *telemetry.SequenceReset:
		s.snapshot.Resets++
	}
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	snapshot := s.snapshot
	snapshot.Reasons = make(map[string]uint64, len(s.snapshot.Reasons))
	for reason, count := range s.snapshot.Reasons {
		snapshot.Reasons[reason] = count
	}
	return snapshot
}

// LossRate is the fraction of received buffers rejected.
func (s StatsSnapshot) LossRate() float64 {
	total := s.Accepted + s.Rejected
	if total == 0 {
		return 0
	}
	return float64(s.Rejected) / float64(total)
}
