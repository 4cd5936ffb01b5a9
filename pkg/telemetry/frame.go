package telemetry

import (
	"fmt"
	"time"
)

// Fields holds one Value per schema field, indexed by FieldIndex.
type Fields [FieldCount]Value

// ZeroFields returns the all-zero field set.
func ZeroFields() Fields {
	var fields Fields
	for i, def := range schema {
		fields[i] = Zero(def.Type)
	}
	return fields
}

// Vector3 is a three-axis reading.
type Vector3 struct {
	X, Y, Z float64
}

// Frame is an accepted telemetry frame. It's immutable once created.
type Frame struct {
	fields Fields
}

var zeroFrame = &Frame{fields: ZeroFields()}

// ZeroFrame returns the all-zero frame held before anything is accepted.
func ZeroFrame() *Frame {
	return zeroFrame
}

// NewFrame creates a Frame from fields whose types match the schema.
func NewFrame(fields Fields) (*Frame, error) {
	for i, def := range schema {
		if fields[i].Type() != def.Type {
			return nil, fmt.Errorf("telemetry: field %s is %s, want %s", def.Name, fields[i].Type(), def.Type)
		}
	}
	return &Frame{fields: fields}, nil
}

// DecodeTokens verifies the checksum of validated tokens and, if it matches,
// coerces every token into its schema type. Any parse failure rejects the
// whole frame with a *FieldError.
func DecodeTokens(tokens []string) (*Frame, error) {
	if len(tokens) != FieldCount {
		return nil, ErrFieldCountMismatch
	}
	if _, err := VerifyChecksum(tokens); err != nil {
		return nil, err
	}
	f := &Frame{}
	for i, def := range schema {
		v, err := ParseValue(def.Type, tokens[i])
		if err != nil {
			return nil, &FieldError{Field: def.Index, Token: tokens[i], Err: err}
		}
		f.fields[i] = v
	}
	return f, nil
}

// Parse validates and decodes a raw frame without touching any state.
func Parse(raw []byte) (*Frame, error) {
	tokens, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	return DecodeTokens(tokens)
}

// Encode builds the wire form of fields, computing a fresh checksum.
// The checksum field of fields is ignored.
func Encode(fields Fields) []byte {
	tokens := make([]string, FieldCount)
	for i := range fields {
		tokens[i] = fields[i].String()
	}
	tokens[FieldChecksum] = Uint(uint64(Checksum(tokens))).String()

	buf := ChecksumBody(tokens)
	buf = append(buf, tokens[FieldChecksum]...)
	return append(buf, TrailerMarker...)
}

// Fields returns a copy of all field values.
func (f *Frame) Fields() Fields { return f.fields }

// Value returns the value of a field, or the zero Value if i is out of range.
func (f *Frame) Value(i FieldIndex) Value {
	if !i.IsValid() {
		return Value{}
	}
	return f.fields[i]
}

// Header returns the header text.
func (f *Frame) Header() string { return f.fields[FieldHeader].Text() }

// TeamID returns the team ID.
func (f *Frame) TeamID() uint32 { return uint32(f.fields[FieldTeamID].Uint()) }

// PacketCount returns the sequence counter.
func (f *Frame) PacketCount() uint32 { return uint32(f.fields[FieldPacketCount].Uint()) }

// MissionTime returns the time since the unit booted, transmitted in milliseconds.
func (f *Frame) MissionTime() time.Duration {
	return time.Duration(f.fields[FieldMissionTime].Uint()) * time.Millisecond
}

// Altitude returns the barometric altitude in meters.
func (f *Frame) Altitude() float64 { return f.fields[FieldAltitude].Float() }

// BatteryVoltage returns the battery voltage in volts.
func (f *Frame) BatteryVoltage() float64 { return f.fields[FieldBatteryVoltage].Float() }

// RelativeHumidity returns the relative humidity in percent.
func (f *Frame) RelativeHumidity() float64 { return f.fields[FieldRelativeHumidity].Float() }

// UVIndex returns the UV radiation index.
func (f *Frame) UVIndex() float64 { return f.fields[FieldUVIndex].Float() }

// InternalTemperature returns the temperature inside the unit in °C.
func (f *Frame) InternalTemperature() float64 { return f.fields[FieldInternalTemp].Float() }

// ExternalTemperature returns the ambient temperature in °C.
func (f *Frame) ExternalTemperature() float64 { return f.fields[FieldExternalTemp].Float() }

// AtmosphericPressure returns the pressure in hPa.
func (f *Frame) AtmosphericPressure() float64 { return f.fields[FieldAtmPressure].Float() }

// GPSTime returns the GPS fix time.
func (f *Frame) GPSTime() time.Time { return f.fields[FieldGPSTime].Time() }

// GPSAltitude returns the GPS altitude in meters.
func (f *Frame) GPSAltitude() float64 { return f.fields[FieldGPSAltitude].Float() }

// GPSVelocity returns the GPS ground speed in m/s.
func (f *Frame) GPSVelocity() float64 { return f.fields[FieldGPSVelocity].Float() }

// GPSLatitude returns the latitude in degrees.
func (f *Frame) GPSLatitude() float64 { return f.fields[FieldGPSLatitude].Float() }

// GPSLongitude returns the longitude in degrees.
func (f *Frame) GPSLongitude() float64 { return f.fields[FieldGPSLongitude].Float() }

// GPSSatelliteCount returns the number of satellites in view.
func (f *Frame) GPSSatelliteCount() uint32 { return uint32(f.fields[FieldGPSSatelliteCount].Uint()) }

// Accelerometer returns the linear acceleration vector.
func (f *Frame) Accelerometer() Vector3 {
	return f.vector(FieldAccelerometerX, FieldAccelerometerY, FieldAccelerometerZ)
}

// Gyroscope returns the angular rate vector.
func (f *Frame) Gyroscope() Vector3 {
	return f.vector(FieldGyroscopeX, FieldGyroscopeY, FieldGyroscopeZ)
}

// Checksum returns the transmitted checksum.
func (f *Frame) Checksum() uint32 { return uint32(f.fields[FieldChecksum].Uint()) }

func (f *Frame) vector(x, y, z FieldIndex) Vector3 {
	return Vector3{X: f.fields[x].Float(), Y: f.fields[y].Float(), Z: f.fields[z].Float()}
}
