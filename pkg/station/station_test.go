package station

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaansat/groundstation/pkg/sim"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

func TestConfigLoad(t *testing.T) {
	conf := NewConfig()
	conf.StationID = "gs-test"
	require.NoError(t, conf.Load(strings.NewReader(`
device: /dev/ttyUSB1
baud: 57600
mqtt_url: mqtt://broker:1883/cansat/
csv:
  filename: /var/log/cansat/frames.csv
  max_size: 5
`)))
	require.Equal(t, "gs-test", conf.StationID)
	require.Equal(t, "/dev/ttyUSB1", conf.Device)
	require.Equal(t, 57600, conf.Baud)
	require.Equal(t, "mqtt://broker:1883/cansat/", conf.MQTTBrokerURL)
	require.Equal(t, "/var/log/cansat/frames.csv", conf.CSV.Filename)
	require.Equal(t, 5, conf.CSV.MaxSize)
	require.Equal(t, defaultConfig.CSV.MaxBackups, conf.CSV.MaxBackups)
	require.NoError(t, conf.Validate())

	require.NoError(t, NewConfig().Load(strings.NewReader("")))
	require.Error(t, NewConfig().Load(strings.NewReader("baud: fast")))
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		conf   Config
		expect error
	}{
		{"device", Config{StationID: "a", Device: "/dev/ttyS0"}, nil},
		{"capture", Config{StationID: "a", Capture: "in.log"}, nil},
		{"no id", Config{Device: "/dev/ttyS0"}, ErrNoStationID},
		{"no source", Config{StationID: "a"}, ErrNoSource},
		{"both", Config{StationID: "a", Device: "/dev/ttyS0", Capture: "in.log"}, ErrTooManySources},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.conf.Validate())
		})
	}
}

func TestStats(t *testing.T) {
	var stats Stats
	ctx := context.TODO()
	stats.HandleEvent(ctx, &telemetry.FrameAccepted{})
	stats.HandleEvent(ctx, &telemetry.FrameAccepted{})
	stats.HandleEvent(ctx, &telemetry.FrameRejected{Reason: telemetry.ReasonChecksumMismatch})
	stats.HandleEvent(ctx, &telemetry.FrameRejected{Reason: telemetry.ReasonChecksumMismatch})
	stats.HandleEvent(ctx, &telemetry.FrameRejected{Reason: telemetry.ReasonMissingHeader})
	stats.HandleEvent(ctx, &telemetry.SequenceReset{Previous: 2, Current: 1})

	snapshot := stats.Snapshot()
	require.Equal(t, uint64(2), snapshot.Accepted)
	require.Equal(t, uint64(3), snapshot.Rejected)
	require.Equal(t, uint64(1), snapshot.Resets)
	require.Equal(t, map[string]uint64{"checksum-mismatch": 2, "missing-header": 1}, snapshot.Reasons)
	require.InDelta(t, 0.6, snapshot.LossRate(), 1e-9)
	require.False(t, snapshot.LastAccepted.IsZero())

	snapshot.Reasons["none"] = 1
	require.Len(t, stats.Snapshot().Reasons, 2)
	require.Zero(t, StatsSnapshot{}.LossRate())
}

func TestStationReplay(t *testing.T) {
	dir := t.TempDir()
	profile := sim.DefaultProfile()
	profile.Apogee, profile.DescentRate = 150, 15
	flight := sim.NewFlight(profile, 7)

	var capture bytes.Buffer
	var frames int
	for !flight.Landed() {
		capture.Write(flight.NextFrame())
		frames++
		if frames == 4 {
			capture.WriteString("HDR,noise,\r\n")
		}
	}
	capturePath := filepath.Join(dir, "capture.log")
	require.NoError(t, os.WriteFile(capturePath, capture.Bytes(), 0644))

	conf := NewConfig()
	conf.StationID = "gs-test"
	conf.Device = ""
	conf.MQTTBrokerURL = ""
	conf.Capture = capturePath
	conf.CSV.Filename = filepath.Join(dir, "frames.csv")
	conf.Archive = filepath.Join(dir, "events.bin")
	s, err := New(conf)
	require.NoError(t, err)
	require.Nil(t, s.Publisher)
	require.Nil(t, s.Feed)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, s.Run(ctx))

	snapshot := s.Stats.Snapshot()
	require.Equal(t, uint64(frames), snapshot.Accepted)
	require.Equal(t, uint64(1), snapshot.Rejected)
	require.Equal(t, uint64(1), snapshot.Reasons["field-count-mismatch"])
	require.Equal(t, uint32(frames), s.Decoder.Current().PacketCount())
	require.Equal(t, frames-3, s.Track.Len())
	require.Equal(t, uint64(frames), s.CSV.Rows())

	info, err := os.Stat(conf.Archive)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestHandleBuffer(t *testing.T) {
	s, err := New(&Config{StationID: "gs-test", Capture: "unused"})
	require.NoError(t, err)
	flight := sim.NewFlight(sim.DefaultProfile(), 1)
	ctx := context.TODO()

	s.HandleBuffer(ctx, flight.NextFrame())
	s.HandleBuffer(ctx, []byte("garbage"))
	s.HandleBuffer(ctx, flight.NextFrame())
	flight.Restart()
	s.HandleBuffer(ctx, flight.NextFrame())

	snapshot := s.Stats.Snapshot()
	require.Equal(t, uint64(3), snapshot.Accepted)
	require.Equal(t, uint64(1), snapshot.Rejected)
	require.Equal(t, uint64(1), snapshot.Resets)
	require.Equal(t, uint32(1), s.Decoder.Current().PacketCount())
	require.Zero(t, s.Received())
	require.NoError(t, s.Close())
}
