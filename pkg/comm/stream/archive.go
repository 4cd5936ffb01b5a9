package stream

import (
	"context"
	"os"
	"sync"

	"github.com/golang/glog"

	"github.com/kaansat/groundstation/pkg/msgs"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

// Archive is a telemetry.EventHandler appending every event,
// encoded as for the relays, to a file.
type Archive struct {
	Station string

	lock sync.Mutex
	file *os.File
	rw   *ReadWriter
}

// OpenArchive opens the file for appending.
func OpenArchive(path, station string) (*Archive, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Archive{Station: station, file: f, rw: New(f)}, nil
}

// HandleEvent implements telemetry.EventHandler.
func (a *Archive) HandleEvent(_ context.Context, ev telemetry.Event) {
	data, err := msgs.EncodeEvent(ev, a.Station)
	if err != nil {
		glog.Errorf("archive: encode %s: %v", ev.EventName(), err)
		return
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.rw == nil {
		return
	}
	if err := a.rw.WritePacket(data); err != nil {
		glog.Errorf("archive: %v", err)
	}
}

// Close implements io.Closer.
func (a *Archive) Close() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.rw == nil {
		return nil
	}
	a.rw = nil
	return a.file.Close()
}
