package track

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

func gpsFrame(t *testing.T, sats uint64, lat, lng, alt float64, at time.Time) *telemetry.FrameAccepted {
	fields := telemetry.ZeroFields()
	fields[telemetry.FieldHeader] = telemetry.Text(telemetry.HeaderMarker)
	fields[telemetry.FieldGPSSatelliteCount] = telemetry.Uint(sats)
	fields[telemetry.FieldGPSLatitude] = telemetry.Float(lat)
	fields[telemetry.FieldGPSLongitude] = telemetry.Float(lng)
	fields[telemetry.FieldGPSAltitude] = telemetry.Float(alt)
	fields[telemetry.FieldGPSTime] = telemetry.Timestamp(at)
	frame, err := telemetry.NewFrame(fields)
	require.NoError(t, err)
	return &telemetry.FrameAccepted{Frame: frame}
}

func TestRecorder(t *testing.T) {
	ctx := context.TODO()
	start := time.Date(2018, 6, 9, 14, 0, 0, 0, time.UTC)
	r := NewRecorder("flight")
	_, ok := r.Last()
	require.False(t, ok)
	require.Zero(t, r.DistanceFromLaunch())

	r.HandleEvent(ctx, gpsFrame(t, 0, 1, 1, 1, start))
	require.Zero(t, r.Len())

	r.HandleEvent(ctx, gpsFrame(t, 6, 21.0, -101.0, 1800, start))
	r.HandleEvent(ctx, gpsFrame(t, 6, 21.0, -100.99, 2100, start.Add(time.Second)))
	r.HandleEvent(ctx, &telemetry.SequenceReset{Previous: 2, Current: 0})
	r.HandleEvent(ctx, &telemetry.SequenceReset{Previous: 0, Current: 0})
	r.HandleEvent(ctx, gpsFrame(t, 5, 21.0, -100.98, 1900, start.Add(2*time.Second)))
	require.Equal(t, 3, r.Len())
	require.Equal(t, 2, r.Segments())

	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, 1900.0, last.Altitude)

	// 0.02 degrees of longitude at 21N is roughly 2.08 km.
	require.InDelta(t, 2076, r.DistanceFromLaunch(), 10)
	// only within-segment legs count
	require.InDelta(t, 1038, r.Length(), 5)

	var buf bytes.Buffer
	require.NoError(t, r.WriteGPX(&buf))
	doc, err := gpx.ParseBytes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, doc.Tracks, 1)
	require.Equal(t, "flight", doc.Tracks[0].Name)
	require.Len(t, doc.Tracks[0].Segments, 2)
	require.Len(t, doc.Tracks[0].Segments[0].Points, 2)
	pt := doc.Tracks[0].Segments[1].Points[0]
	require.InDelta(t, -100.98, pt.Longitude, 1e-9)
	require.Equal(t, 1900.0, pt.Elevation.Value())
	require.True(t, start.Add(2*time.Second).Equal(pt.Timestamp))
}
