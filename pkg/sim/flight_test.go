package sim

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

func testProfile() Profile {
	p := DefaultProfile()
	p.Start = time.Date(2018, 6, 9, 14, 0, 0, 0, time.UTC)
	return p
}

func TestFlightDecodes(t *testing.T) {
	f := NewFlight(testProfile(), 1)
	d := telemetry.NewDecoder()
	var apogee float64
	for n := 1; !f.Landed(); n++ {
		frame, reset, err := d.Decode(context.TODO(), f.NextFrame())
		require.NoError(t, err)
		require.False(t, reset)
		require.Equal(t, uint32(n), frame.PacketCount())
		require.Equal(t, uint32(1), frame.TeamID())
		if frame.Altitude() > apogee {
			apogee = frame.Altitude()
		}
		if n <= coldStartFrames {
			require.Zero(t, frame.GPSSatelliteCount())
		} else {
			require.NotZero(t, frame.GPSSatelliteCount())
		}
	}
	require.InDelta(t, 750, apogee, 1)
	require.InDelta(t, 0, d.Current().Altitude(), 1)
	require.Equal(t, f.Duration()/time.Second+1, time.Duration(d.Current().PacketCount()))
}

func TestFlightRestart(t *testing.T) {
	f := NewFlight(testProfile(), 2)
	d := telemetry.NewDecoder()
	for n := 0; n < 5; n++ {
		_, _, err := d.Decode(context.TODO(), f.NextFrame())
		require.NoError(t, err)
	}
	f.Restart()
	frame, reset, err := d.Decode(context.TODO(), f.NextFrame())
	require.NoError(t, err)
	require.True(t, reset)
	require.Equal(t, uint32(1), frame.PacketCount())
	require.Zero(t, frame.MissionTime())
	require.Equal(t, testProfile().Start.Add(5*time.Second), frame.GPSTime())
}

func TestCorrupt(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	f := NewFlight(testProfile(), 3)
	for n := 0; n < 100; n++ {
		raw := f.NextFrame()
		bad := Corrupt(raw, r)
		require.Len(t, bad, len(raw))
		require.NotEqual(t, raw, bad)
		_, err := telemetry.Parse(bad)
		require.Error(t, err)
	}
	require.Equal(t, []byte("HDR"), Corrupt([]byte("HDR"), r))
}

func TestTransmitter(t *testing.T) {
	var out bytes.Buffer
	p := testProfile()
	p.Apogee, p.DescentRate = 150, 15
	tx := NewTransmitter(NewFlight(p, 4), &out, 4)
	tx.Realtime = false
	tx.CorruptRate = 0.5
	tx.RestartAt = 5
	require.NoError(t, tx.Run(context.TODO()))
	require.Equal(t, 13, tx.Sent())

	var accepted, rejected, resets int
	d := telemetry.NewDecoder(telemetry.HandleEventFunc(func(_ context.Context, ev telemetry.Event) {
		switch ev.(type) {
		case *telemetry.FrameAccepted:
			accepted++
		case *telemetry.FrameRejected:
			rejected++
		case *telemetry.SequenceReset:
			resets++
		}
	}))
	for _, line := range bytes.SplitAfter(out.Bytes(), []byte("\n")) {
		if len(line) > 0 {
			d.Decode(context.TODO(), line)
		}
	}
	require.Equal(t, 13, accepted+rejected)
	require.NotZero(t, rejected)
	require.NotZero(t, accepted)
	require.LessOrEqual(t, resets, 1)
}

func TestAngleProject(t *testing.T) {
	testCases := []struct {
		heading     Angle
		north, east float64
	}{
		{AngleFromDegrees(0), 10, 0},
		{AngleFromDegrees(90), 0, 10},
		{AngleFromDegrees(180).AddDegrees(90), 0, -10},
		{AngleFromRadians(-math.Pi / 2).AddDegrees(360), 0, -10},
	}
	for _, tc := range testCases {
		north, east := tc.heading.Project(10)
		require.InDelta(t, tc.north, north, 1e-9)
		require.InDelta(t, tc.east, east, 1e-9)
	}
	require.InDelta(t, -90, AngleFromDegrees(270).Degrees(), 1e-9)
	require.InDelta(t, math.Pi/2, AngleFromDegrees(90).Radians(), 1e-9)
}
