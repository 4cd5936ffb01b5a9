package msgs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

func testFrame(t *testing.T) *telemetry.Frame {
	fields := telemetry.ZeroFields()
	fields[telemetry.FieldHeader] = telemetry.Text(telemetry.HeaderMarker)
	fields[telemetry.FieldTeamID] = telemetry.Uint(1)
	fields[telemetry.FieldPacketCount] = telemetry.Uint(42)
	fields[telemetry.FieldMissionTime] = telemetry.Uint(61500)
	fields[telemetry.FieldAltitude] = telemetry.Float(305.2)
	fields[telemetry.FieldGPSTime] = telemetry.Timestamp(time.Unix(1540000000, 0))
	fields[telemetry.FieldGPSLatitude] = telemetry.Float(21.152)
	fields[telemetry.FieldAccelerometerZ] = telemetry.Float(9.81)
	fields[telemetry.FieldGyroscopeY] = telemetry.Float(-2.25)
	frame, err := telemetry.Parse(telemetry.Encode(fields))
	require.NoError(t, err)
	return frame
}

func TestEventRelay(t *testing.T) {
	frame := testFrame(t)
	testCases := []struct {
		name   string
		event  telemetry.Event
		typeID uint32
		check  func(t *testing.T, msg Message)
	}{
		{
			name:   "accepted",
			event:  &telemetry.FrameAccepted{Frame: frame},
			typeID: FrameTypeID,
			check: func(t *testing.T, msg Message) {
				relayed, err := msg.(*Frame).Telemetry()
				require.NoError(t, err)
				require.Equal(t, frame.Fields(), relayed.Fields())
			},
		},
		{
			name:   "rejected",
			event:  &telemetry.FrameRejected{Reason: telemetry.ReasonChecksumMismatch, Err: telemetry.ErrChecksumMismatch, Size: 120},
			typeID: FrameRejectedTypeID,
			check: func(t *testing.T, msg Message) {
				rejected := msg.(*FrameRejected)
				require.Equal(t, telemetry.ReasonChecksumMismatch, telemetry.ParseReason(rejected.Reason))
				require.Equal(t, telemetry.ErrChecksumMismatch.Error(), rejected.Error)
				require.Equal(t, uint32(120), rejected.Size)
			},
		},
		{
			name:   "reset",
			event:  &telemetry.SequenceReset{Previous: 50, Current: 3},
			typeID: SequenceResetTypeID,
			check: func(t *testing.T, msg Message) {
				reset := msg.(*SequenceReset)
				require.Equal(t, uint32(50), reset.Previous)
				require.Equal(t, uint32(3), reset.Current)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeEvent(tc.event, "gs-1")
			require.NoError(t, err)
			typed, err := DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, tc.typeID, typed.TypeId)
			require.Equal(t, "gs-1", typed.Station)
			require.True(t, typed.IsEvent())
			msg, err := typed.Decode()
			require.NoError(t, err)
			tc.check(t, msg)
		})
	}
}

type unknownEvent struct{}

func (unknownEvent) EventName() string { return "unknown" }

func TestUnknown(t *testing.T) {
	_, err := FromEvent(unknownEvent{})
	require.True(t, errors.Is(err, ErrUnknownEvent))

	typed := &Typed{}
	typed.TypeId = GroupCustom | 1
	_, err = typed.Decode()
	require.Equal(t, &ErrUnknownType{TypeID: GroupCustom | 1}, err)

	_, err = TypedFrom(nil)
	require.Equal(t, ErrNotSerializable, err)
}
