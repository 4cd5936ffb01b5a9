package sh

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaansat/groundstation/pkg/sim"
	"github.com/kaansat/groundstation/pkg/station"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

func testFrame(t *testing.T) *telemetry.Frame {
	fields := telemetry.ZeroFields()
	fields[telemetry.FieldHeader] = telemetry.Text(telemetry.HeaderMarker)
	fields[telemetry.FieldPacketCount] = telemetry.Uint(42)
	fields[telemetry.FieldAltitude] = telemetry.Float(512.5)
	fields[telemetry.FieldGPSTime] = telemetry.Timestamp(time.Date(2018, 6, 9, 14, 0, 0, 0, time.UTC))
	frame, err := telemetry.Parse(telemetry.Encode(fields))
	require.NoError(t, err)
	return frame
}

func TestFrameJSON(t *testing.T) {
	out, err := json.Marshal(FrameJSON(testFrame(t)))
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, telemetry.FieldCount)
	require.Equal(t, "HDR", decoded["header"])
	require.Equal(t, 42.0, decoded["packet_count"])
	require.Equal(t, 512.5, decoded["altitude"])
	require.Equal(t, "2018-06-09T14:00:00Z", decoded["gps_time"])
}

func TestFormatFrame(t *testing.T) {
	lines := strings.Split(FormatFrame(testFrame(t)), "\n")
	require.Len(t, lines, telemetry.FieldCount)
	require.Equal(t, []string{"header", "HDR"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"altitude", "512.5"}, strings.Fields(lines[telemetry.FieldAltitude]))
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(station.StatsSnapshot{
		Accepted: 3,
		Rejected: 6,
		Reasons: map[string]uint64{
			"missing-trailer":   1,
			"checksum-mismatch": 3,
			"missing-header":    2,
		},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "accepted 3, rejected 6 (66.7%), resets 0", lines[0])
	require.Equal(t, []string{"checksum-mismatch", "3"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"missing-header", "2"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"missing-trailer", "1"}, strings.Fields(lines[3]))
}

func TestSettleReplaysCapture(t *testing.T) {
	profile := sim.DefaultProfile()
	profile.Apogee, profile.DescentRate = 150, 15
	flight := sim.NewFlight(profile, 5)
	var capture bytes.Buffer
	var frames uint64
	for !flight.Landed() {
		capture.Write(flight.NextFrame())
		frames++
	}
	path := filepath.Join(t.TempDir(), "capture.log")
	require.NoError(t, os.WriteFile(path, capture.Bytes(), 0644))

	st, err := station.New(&station.Config{StationID: "gs-test", Capture: path})
	require.NoError(t, err)
	s := &Shell{Station: st}
	s.Start()
	s.Settle(10 * time.Second)
	require.Equal(t, frames, st.Stats.Snapshot().Accepted)
	require.Equal(t, uint32(frames), st.Decoder.Current().PacketCount())
	require.NoError(t, s.Stop())
}

func TestSettleTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	st, err := station.New(&station.Config{StationID: "gs-test", Capture: path, Follow: true})
	require.NoError(t, err)
	s := &Shell{Station: st}
	s.Settle(time.Second)
	s.Start()
	s.Settle(100 * time.Millisecond)
	require.Zero(t, st.Stats.Snapshot().Accepted)
	s.Stop()
}
