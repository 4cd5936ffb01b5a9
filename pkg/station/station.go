// Package station wires a telemetry decoder to its link, logs and relays.
package station

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/kaansat/groundstation/pkg/comm/mqtt"
	"github.com/kaansat/groundstation/pkg/comm/stream"
	"github.com/kaansat/groundstation/pkg/comm/websocket"
	"github.com/kaansat/groundstation/pkg/csvlog"
	fx "github.com/kaansat/groundstation/pkg/framework"
	"github.com/kaansat/groundstation/pkg/link"
	"github.com/kaansat/groundstation/pkg/telemetry"
	"github.com/kaansat/groundstation/pkg/track"
)

// Meta is published retained on the relays while the station is up.
type Meta struct {
	Station string    `json:"station"`
	Source  string    `json:"source"`
	Started time.Time `json:"started"`
}

// Station receives, decodes and distributes telemetry.
type Station struct {
	Config  *Config
	Decoder *telemetry.Decoder
	Stats   *Stats
	Track   *track.Recorder

	// optional
	CSV       *csvlog.Logger
	Archive   *stream.Archive
	Publisher *mqtt.Publisher
	Feed      *websocket.Feed

	receiver atomic.Pointer[link.Receiver]
}

// New creates a Station from config.
func New(conf *Config) (*Station, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	s := &Station{
		Config:  conf,
		Decoder: telemetry.NewDecoder(),
		Stats:   &Stats{},
		Track:   track.NewRecorder(conf.Track),
	}
	s.Decoder.AddHandler(s.Stats)
	s.Decoder.AddHandler(s.Track)
	if conf.CSV.Filename != "" {
		logger, err := csvlog.Open(conf.CSV)
		if err != nil {
			return nil, fmt.Errorf("open CSV log error: %w", err)
		}
		s.CSV = logger
		s.Decoder.AddHandler(logger)
	}
	if conf.Archive != "" {
		archive, err := stream.OpenArchive(conf.Archive, conf.StationID)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open archive error: %w", err)
		}
		s.Archive = archive
		s.Decoder.AddHandler(archive)
	}
	if conf.MQTTBrokerURL != "" {
		pub, err := mqtt.NewPublisher(conf.MQTTBrokerURL, conf.StationID, s.Meta())
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("create MQTT publisher error: %w", err)
		}
		s.Publisher = pub
		s.Decoder.AddHandler(pub)
	}
	if conf.FeedAddr != "" {
		s.Feed = websocket.NewFeed(conf.StationID, conf.FeedAddr)
		s.Decoder.AddHandler(s.Feed)
	}
	return s, nil
}

// MustNewStation creates Station and fails on error.
func (c *Config) MustNewStation() *Station {
	s, err := New(c)
	if err != nil {
		log.Fatalln(err)
	}
	return s
}

// Meta describes the station.
func (s *Station) Meta() Meta {
	source := s.Config.Device
	if source == "" {
		source = s.Config.Capture
	}
	return Meta{Station: s.Config.StationID, Source: source, Started: time.Now().UTC()}
}

// HandleBuffer implements link.BufferHandler.
func (s *Station) HandleBuffer(ctx context.Context, buf []byte) {
	frame, reset, err := s.Decoder.Decode(ctx, buf)
	if err != nil {
		glog.Warningf("frame rejected (%s, %d bytes): %v", telemetry.ReasonOf(err), len(buf), err)
		return
	}
	if reset {
		glog.Warningf("packet count went back to %d, unit restarted?", frame.PacketCount())
	}
	glog.V(2).Infof("frame #%d alt=%.1f", frame.PacketCount(), frame.Altitude())
}

// Received returns the number of buffers read from a serial device.
func (s *Station) Received() uint64 {
	if r := s.receiver.Load(); r != nil {
		return r.Received()
	}
	return 0
}

// Runnables returns the relays to run along with the link.
func (s *Station) Runnables() []fx.Runnable {
	var runnables []fx.Runnable
	if s.Publisher != nil {
		runnables = append(runnables, fx.NamedRun("mqtt", s.Publisher))
	}
	if s.Feed != nil {
		runnables = append(runnables, fx.NamedRun("feed", s.Feed))
	}
	return runnables
}

// Run runs the station until the context is canceled or the link ends.
func (s *Station) Run(ctx context.Context) error {
	return s.run(fx.NewRunnerWith(ctx))
}

// RunWithSignals is Run stopping on SIGINT/SIGTERM.
func (s *Station) RunWithSignals() error {
	return s.run(fx.NewRunner().HandleSignals())
}

func (s *Station) run(runner *fx.Runner) error {
	linkRun := s.linkRunnable()
	// the station is done when its link is.
	runner.Go(fx.NamedRun("link", fx.RunFunc(func(ctx context.Context) error {
		defer runner.Stop()
		return linkRun.Run(ctx)
	})))
	runner.Go(s.Runnables()...)
	err := runner.Wait()
	if closeErr := s.Close(); closeErr != nil {
		var errs fx.AggregatedError
		errs.Add(err).Add(closeErr)
		err = errs.Aggregate()
	}
	return err
}

// Close releases files.
func (s *Station) Close() error {
	var errs fx.AggregatedError
	if s.CSV != nil {
		errs.Add(s.CSV.Close())
	}
	if s.Archive != nil {
		errs.Add(s.Archive.Close())
	}
	return errs.Aggregate()
}

func (s *Station) linkRunnable() fx.Runnable {
	conf := s.Config
	if conf.Capture != "" {
		glog.Infof("replaying %s", conf.Capture)
		return &link.Tail{Path: conf.Capture, Follow: conf.Follow, Handler: s}
	}
	return fx.RunFunc(func(ctx context.Context) error {
		dev, err := link.OpenSerial(conf.Device, conf.Baud)
		if err != nil {
			return fmt.Errorf("open %s error: %w", conf.Device, err)
		}
		glog.Infof("listening on %s at %d baud", conf.Device, conf.Baud)
		receiver := link.NewReceiver(dev, s)
		s.receiver.Store(receiver)
		return fx.RunWithContextCloser(ctx, dev, func() error {
			return receiver.Run(ctx)
		})
	})
}

var _ io.Closer = (*Station)(nil)
