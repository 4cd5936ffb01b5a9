package msgs

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"

	pb "github.com/kaansat/groundstation/pkg/proto/telemetry/v1"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

// TypeID Groups
const (
	GroupTelemetry uint32 = 0x00010000
	GroupCustom    uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	FrameTypeID         uint32 = TypeIDKindEvent | GroupTelemetry | 0x0001
	FrameRejectedTypeID uint32 = TypeIDKindEvent | GroupTelemetry | 0x0002
	SequenceResetTypeID uint32 = TypeIDKindEvent | GroupTelemetry | 0x0003
)

// ErrUnknownEvent indicates an event with no relay message.
var ErrUnknownEvent = errors.New("unknown telemetry event")

// Frame relays an accepted telemetry frame.
type Frame struct {
	pb.Frame
}

// NewFrame converts an accepted frame.
func NewFrame(f *telemetry.Frame) *Frame {
	acc, gyro := f.Accelerometer(), f.Gyroscope()
	return &Frame{Frame: pb.Frame{
		Header:              f.Header(),
		TeamId:              f.TeamID(),
		PacketCount:         f.PacketCount(),
		MissionTimeMs:       uint64(f.MissionTime() / time.Millisecond),
		Altitude:            f.Altitude(),
		BatteryVoltage:      f.BatteryVoltage(),
		RelativeHumidity:    f.RelativeHumidity(),
		UvIndex:             f.UVIndex(),
		InternalTemperature: f.InternalTemperature(),
		ExternalTemperature: f.ExternalTemperature(),
		AtmosphericPressure: f.AtmosphericPressure(),
		GpsTime:             f.GPSTime().Unix(),
		GpsAltitude:         f.GPSAltitude(),
		GpsVelocity:         f.GPSVelocity(),
		GpsLatitude:         f.GPSLatitude(),
		GpsLongitude:        f.GPSLongitude(),
		GpsSatelliteCount:   f.GPSSatelliteCount(),
		Accelerometer:       &pb.Vector3{X: acc.X, Y: acc.Y, Z: acc.Z},
		Gyroscope:           &pb.Vector3{X: gyro.X, Y: gyro.Y, Z: gyro.Z},
		Checksum:            f.Checksum(),
	}}
}

// Telemetry converts the relayed frame back.
func (m *Frame) Telemetry() (*telemetry.Frame, error) {
	fields := telemetry.ZeroFields()
	fields[telemetry.FieldHeader] = telemetry.Text(m.Header)
	fields[telemetry.FieldTeamID] = telemetry.Uint(uint64(m.TeamId))
	fields[telemetry.FieldPacketCount] = telemetry.Uint(uint64(m.PacketCount))
	fields[telemetry.FieldMissionTime] = telemetry.Uint(m.MissionTimeMs)
	fields[telemetry.FieldAltitude] = telemetry.Float(m.Altitude)
	fields[telemetry.FieldBatteryVoltage] = telemetry.Float(m.BatteryVoltage)
	fields[telemetry.FieldRelativeHumidity] = telemetry.Float(m.RelativeHumidity)
	fields[telemetry.FieldUVIndex] = telemetry.Float(m.UvIndex)
	fields[telemetry.FieldInternalTemp] = telemetry.Float(m.InternalTemperature)
	fields[telemetry.FieldExternalTemp] = telemetry.Float(m.ExternalTemperature)
	fields[telemetry.FieldAtmPressure] = telemetry.Float(m.AtmosphericPressure)
	fields[telemetry.FieldGPSTime] = telemetry.Timestamp(time.Unix(m.GpsTime, 0))
	fields[telemetry.FieldGPSAltitude] = telemetry.Float(m.GpsAltitude)
	fields[telemetry.FieldGPSVelocity] = telemetry.Float(m.GpsVelocity)
	fields[telemetry.FieldGPSLatitude] = telemetry.Float(m.GpsLatitude)
	fields[telemetry.FieldGPSLongitude] = telemetry.Float(m.GpsLongitude)
	fields[telemetry.FieldGPSSatelliteCount] = telemetry.Uint(uint64(m.GpsSatelliteCount))
	if v := m.Accelerometer; v != nil {
		fields[telemetry.FieldAccelerometerX] = telemetry.Float(v.X)
		fields[telemetry.FieldAccelerometerY] = telemetry.Float(v.Y)
		fields[telemetry.FieldAccelerometerZ] = telemetry.Float(v.Z)
	}
	if v := m.Gyroscope; v != nil {
		fields[telemetry.FieldGyroscopeX] = telemetry.Float(v.X)
		fields[telemetry.FieldGyroscopeY] = telemetry.Float(v.Y)
		fields[telemetry.FieldGyroscopeZ] = telemetry.Float(v.Z)
	}
	fields[telemetry.FieldChecksum] = telemetry.Uint(uint64(m.Checksum))
	return telemetry.NewFrame(fields)
}

// NewMessage implements Message.
func (m *Frame) NewMessage() Message { return &Frame{} }

// TypeID implements SerializableMessage.
func (m *Frame) TypeID() uint32 { return FrameTypeID }

// Serializable implements SerializableMessage.
func (m *Frame) Serializable() proto.Message { return &m.Frame }

// FrameRejected relays a dropped buffer.
type FrameRejected struct {
	pb.FrameRejected
}

// NewMessage implements Message.
func (m *FrameRejected) NewMessage() Message { return &FrameRejected{} }

// TypeID implements SerializableMessage.
func (m *FrameRejected) TypeID() uint32 { return FrameRejectedTypeID }

// Serializable implements SerializableMessage.
func (m *FrameRejected) Serializable() proto.Message { return &m.FrameRejected }

// SequenceReset relays a packet counter regression.
type SequenceReset struct {
	pb.SequenceReset
}

// NewMessage implements Message.
func (m *SequenceReset) NewMessage() Message { return &SequenceReset{} }

// TypeID implements SerializableMessage.
func (m *SequenceReset) TypeID() uint32 { return SequenceResetTypeID }

// Serializable implements SerializableMessage.
func (m *SequenceReset) Serializable() proto.Message { return &m.SequenceReset }

// FromEvent converts a decoder event into its relay message.
func FromEvent(ev telemetry.Event) (SerializableMessage, error) {
	switch e := ev.(type) {
	case *telemetry.FrameAccepted:
		return NewFrame(e.Frame), nil
	case *telemetry.FrameRejected:
		msg := &FrameRejected{}
		msg.Reason, msg.Size = e.Reason.String(), uint32(e.Size)
		if e.Err != nil {
			msg.Error = e.Err.Error()
		}
		return msg, nil
	case *telemetry.SequenceReset:
		msg := &SequenceReset{}
		msg.Previous, msg.Current = e.Previous, e.Current
		return msg, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}

// EncodeEvent converts an event and wraps it for the wire.
func EncodeEvent(ev telemetry.Event, station string) ([]byte, error) {
	msg, err := FromEvent(ev)
	if err != nil {
		return nil, err
	}
	typed, err := TypedFrom(msg)
	if err != nil {
		return nil, err
	}
	typed.Station = station
	return typed.Encode()
}
