package telemetry

// Wire markers of a telemetry frame.
const (
	// HeaderMarker starts every frame. It is also the text of the header field.
	HeaderMarker = "HDR"
	// Separator delimits fields, including after the last non-checksum field.
	Separator = ','
	// TrailerMarker ends every frame: the firmware emits a dangling separator
	// after the checksum followed by CRLF.
	TrailerMarker = ",\r\n"
)

// FieldType is the semantic type of a schema field.
type FieldType int

// Field types.
const (
	TypeUint FieldType = iota
	TypeInt
	TypeFloat
	TypeTimestamp
	TypeText
)

var fieldTypeNames = [...]string{
	TypeUint:      "uint",
	TypeInt:       "int",
	TypeFloat:     "float",
	TypeTimestamp: "timestamp",
	TypeText:      "text",
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	if t < 0 || int(t) >= len(fieldTypeNames) {
		return "unknown"
	}
	return fieldTypeNames[t]
}

// FieldIndex is the position of a field in a frame.
type FieldIndex int

// Field positions, in transmission order.
const (
	FieldHeader FieldIndex = iota
	FieldTeamID
	FieldPacketCount
	FieldMissionTime
	FieldAltitude
	FieldBatteryVoltage
	FieldRelativeHumidity
	FieldUVIndex
	FieldInternalTemp
	FieldExternalTemp
	FieldAtmPressure
	FieldGPSTime
	FieldGPSAltitude
	FieldGPSVelocity
	FieldGPSLatitude
	FieldGPSLongitude
	FieldGPSSatelliteCount
	FieldAccelerometerX
	FieldAccelerometerY
	FieldAccelerometerZ
	FieldGyroscopeX
	FieldGyroscopeY
	FieldGyroscopeZ
	FieldChecksum

	// FieldCount is the number of tokens in every valid frame.
	FieldCount int = iota
)

// FieldDef describes one field of the frame schema.
type FieldDef struct {
	Index FieldIndex
	Name  string
	Type  FieldType
}

var schema = [FieldCount]FieldDef{
	{FieldHeader, "header", TypeText},
	{FieldTeamID, "team_id", TypeUint},
	{FieldPacketCount, "packet_count", TypeUint},
	{FieldMissionTime, "mission_time", TypeUint},
	{FieldAltitude, "altitude", TypeFloat},
	{FieldBatteryVoltage, "battery_voltage", TypeFloat},
	{FieldRelativeHumidity, "relative_humidity", TypeFloat},
	{FieldUVIndex, "uv_index", TypeFloat},
	{FieldInternalTemp, "internal_temperature", TypeFloat},
	{FieldExternalTemp, "external_temperature", TypeFloat},
	{FieldAtmPressure, "atmospheric_pressure", TypeFloat},
	{FieldGPSTime, "gps_time", TypeTimestamp},
	{FieldGPSAltitude, "gps_altitude", TypeFloat},
	{FieldGPSVelocity, "gps_velocity", TypeFloat},
	{FieldGPSLatitude, "gps_latitude", TypeFloat},
	{FieldGPSLongitude, "gps_longitude", TypeFloat},
	{FieldGPSSatelliteCount, "gps_satellite_count", TypeUint},
	{FieldAccelerometerX, "accelerometer_x", TypeFloat},
	{FieldAccelerometerY, "accelerometer_y", TypeFloat},
	{FieldAccelerometerZ, "accelerometer_z", TypeFloat},
	{FieldGyroscopeX, "gyroscope_x", TypeFloat},
	{FieldGyroscopeY, "gyroscope_y", TypeFloat},
	{FieldGyroscopeZ, "gyroscope_z", TypeFloat},
	{FieldChecksum, "checksum", TypeUint},
}

// Schema returns a copy of the frame schema.
func Schema() []FieldDef {
	defs := make([]FieldDef, FieldCount)
	copy(defs, schema[:])
	return defs
}

// Def returns the schema definition of a field.
func (i FieldIndex) Def() FieldDef {
	if !i.IsValid() {
		return FieldDef{Index: i}
	}
	return schema[i]
}

// IsValid indicates the index addresses a schema field.
func (i FieldIndex) IsValid() bool {
	return i >= 0 && int(i) < FieldCount
}

// String returns the schema name of the field.
func (i FieldIndex) String() string {
	if !i.IsValid() {
		return "invalid"
	}
	return schema[i].Name
}
