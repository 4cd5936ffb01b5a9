package websocket

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/kaansat/groundstation/pkg/msgs"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

// DefaultBacklog is the number of packets buffered per client.
const DefaultBacklog = 64

// Feed broadcasts decoder events to websocket clients.
// A client which can't keep up loses packets, never the decoder.
type Feed struct {
	Station string
	Addr    string
	Backlog int

	lock    sync.RWMutex
	clients map[*client]struct{}
	dropped uint64
}

type client struct {
	packets chan []byte
}

// NewFeed creates a Feed.
func NewFeed(station, addr string) *Feed {
	return &Feed{Station: station, Addr: addr, Backlog: DefaultBacklog}
}

// Clients returns the number of connected clients.
func (f *Feed) Clients() int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return len(f.clients)
}

// Dropped returns the number of packets not delivered to slow clients.
func (f *Feed) Dropped() uint64 {
	return atomic.LoadUint64(&f.dropped)
}

// HandleEvent implements telemetry.EventHandler.
func (f *Feed) HandleEvent(_ context.Context, ev telemetry.Event) {
	if f.Clients() == 0 {
		return
	}
	data, err := msgs.EncodeEvent(ev, f.Station)
	if err != nil {
		glog.Errorf("websocket: encode %s: %v", ev.EventName(), err)
		return
	}
	f.lock.RLock()
	defer f.lock.RUnlock()
	for c := range f.clients {
		select {
		case c.packets <- data:
		default:
			atomic.AddUint64(&f.dropped, 1)
		}
	}
}

// ServeHTTP implements http.Handler.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(f.serveConn).ServeHTTP(w, r)
}

// Run implements Runnable.
func (f *Feed) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/events", f)
	server := &http.Server{Addr: f.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		glog.Infof("websocket: serving on %s", f.Addr)
		errCh <- server.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		server.Close()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}

func (f *Feed) serveConn(conn *websocket.Conn) {
	backlog := f.Backlog
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	c := &client{packets: make(chan []byte, backlog)}
	f.lock.Lock()
	if f.clients == nil {
		f.clients = make(map[*client]struct{})
	}
	f.clients[c] = struct{}{}
	f.lock.Unlock()
	glog.V(2).Infof("websocket: client %s connected", conn.Request().RemoteAddr)

	defer func() {
		f.lock.Lock()
		delete(f.clients, c)
		f.lock.Unlock()
		conn.Close()
		glog.V(2).Infof("websocket: client %s disconnected", conn.Request().RemoteAddr)
	}()

	rw := New(conn)
	closed := make(chan struct{})
	go func() {
		// clients don't send; a read error means the peer went away.
		var discard []byte
		for websocket.Message.Receive(conn, &discard) == nil {
		}
		close(closed)
	}()
	for {
		select {
		case pkt := <-c.packets:
			if err := rw.WritePacket(pkt); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
