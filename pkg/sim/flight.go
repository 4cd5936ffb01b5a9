package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

const (
	gravity          = 9.80665
	metersPerDegree  = 111320.0
	seaLevelPressure = 1013.25 // hPa
	coldStartFrames  = 3
)

// Position is a point on the globe.
type Position struct {
	Latitude  float64
	Longitude float64
	Altitude  float64 // meters above sea level
}

// Profile describes a simulated flight.
type Profile struct {
	TeamID      uint32
	Launch      Position
	Apogee      float64 // meters above launch
	AscentRate  float64 // m/s
	DescentRate float64 // m/s
	WindSpeed   float64 // m/s
	WindHeading Angle
	Start       time.Time
	Interval    time.Duration
}

// DefaultProfile returns a 750m flight under a parachute.
func DefaultProfile() Profile {
	return Profile{
		TeamID:      1,
		Launch:      Position{Latitude: 21.8818, Longitude: -102.2916, Altitude: 1880},
		Apogee:      750,
		AscentRate:  75,
		DescentRate: 6,
		WindSpeed:   3,
		WindHeading: AngleFromDegrees(60),
		Start:       time.Now().UTC(),
		Interval:    time.Second,
	}
}

// Flight produces the frames of a flight, one per Interval.
type Flight struct {
	Profile

	rand    *rand.Rand
	elapsed time.Duration
	bootAt  time.Duration
	counter uint32
	frames  int
}

// NewFlight creates a Flight.
func NewFlight(p Profile, seed int64) *Flight {
	if p.Interval <= 0 {
		p.Interval = time.Second
	}
	return &Flight{Profile: p, rand: rand.New(rand.NewSource(seed))}
}

// Elapsed returns the simulated time since launch.
func (f *Flight) Elapsed() time.Duration {
	return f.elapsed
}

// Duration returns the time from launch to touchdown.
func (f *Flight) Duration() time.Duration {
	return time.Duration((f.ascentTime() + f.Apogee/f.DescentRate) * float64(time.Second))
}

// Landed tells whether the frame at touchdown was produced.
func (f *Flight) Landed() bool {
	return f.elapsed > f.Duration()
}

// Restart simulates a power cycle of the unit: the packet counter and
// mission time start over while the flight goes on.
func (f *Flight) Restart() {
	f.counter = 0
	f.bootAt = f.elapsed
}

// Next returns the fields of the next frame.
func (f *Flight) Next() telemetry.Fields {
	f.counter++
	f.frames++
	t := f.elapsed.Seconds()
	alt, rate := f.altitude(t)
	airborne := math.Min(t, f.Duration().Seconds())
	north, east := f.WindHeading.Project(f.WindSpeed * airborne)
	lat := f.Launch.Latitude + north/metersPerDegree
	lng := f.Launch.Longitude + east/(metersPerDegree*math.Cos(f.Launch.Latitude*math.Pi/180))
	asl := f.Launch.Altitude + alt

	fields := telemetry.ZeroFields()
	fields[telemetry.FieldHeader] = telemetry.Text(telemetry.HeaderMarker)
	fields[telemetry.FieldTeamID] = telemetry.Uint(uint64(f.TeamID))
	fields[telemetry.FieldPacketCount] = telemetry.Uint(uint64(f.counter))
	fields[telemetry.FieldMissionTime] = telemetry.Uint(uint64((f.elapsed - f.bootAt) / time.Millisecond))
	fields[telemetry.FieldAltitude] = telemetry.Float(round(alt+f.noise(0.5), 1))
	fields[telemetry.FieldBatteryVoltage] = telemetry.Float(round(8.4-0.0008*t, 2))
	fields[telemetry.FieldRelativeHumidity] = telemetry.Float(round(math.Max(0, 45-alt/50)+f.noise(0.5), 1))
	fields[telemetry.FieldUVIndex] = telemetry.Float(round(3+alt/500, 1))
	fields[telemetry.FieldInternalTemp] = telemetry.Float(round(28+f.noise(0.2), 1))
	fields[telemetry.FieldExternalTemp] = telemetry.Float(round(15-0.0065*asl+f.noise(0.2), 1))
	fields[telemetry.FieldAtmPressure] = telemetry.Float(round(pressureAt(asl), 1))
	fields[telemetry.FieldGPSTime] = telemetry.Timestamp(f.Start.Add(f.elapsed))
	if f.frames > coldStartFrames {
		fields[telemetry.FieldGPSAltitude] = telemetry.Float(round(asl+f.noise(2), 1))
		fields[telemetry.FieldGPSVelocity] = telemetry.Float(round(math.Hypot(rate, f.WindSpeed), 2))
		fields[telemetry.FieldGPSLatitude] = telemetry.Float(round(lat, 6))
		fields[telemetry.FieldGPSLongitude] = telemetry.Float(round(lng, 6))
		fields[telemetry.FieldGPSSatelliteCount] = telemetry.Uint(uint64(7 + f.rand.Intn(3)))
	}
	fields[telemetry.FieldAccelerometerX] = telemetry.Float(round(f.noise(0.05), 2))
	fields[telemetry.FieldAccelerometerY] = telemetry.Float(round(f.noise(0.05), 2))
	fields[telemetry.FieldAccelerometerZ] = telemetry.Float(round(gravity+f.noise(0.05), 2))
	fields[telemetry.FieldGyroscopeX] = telemetry.Float(round(f.noise(2), 2))
	fields[telemetry.FieldGyroscopeY] = telemetry.Float(round(f.noise(2), 2))
	fields[telemetry.FieldGyroscopeZ] = telemetry.Float(round(f.noise(15), 2))

	f.elapsed += f.Interval
	return fields
}

// NextFrame returns the encoded next frame.
func (f *Flight) NextFrame() []byte {
	return telemetry.Encode(f.Next())
}

func (f *Flight) ascentTime() float64 {
	return f.Apogee / f.AscentRate
}

// altitude returns height above launch and vertical speed at t seconds.
func (f *Flight) altitude(t float64) (float64, float64) {
	up := f.ascentTime()
	if t < up {
		return f.AscentRate * t, f.AscentRate
	}
	alt := f.Apogee - f.DescentRate*(t-up)
	if alt <= 0 {
		return 0, 0
	}
	return alt, -f.DescentRate
}

func (f *Flight) noise(amplitude float64) float64 {
	return (f.rand.Float64()*2 - 1) * amplitude
}

func pressureAt(altitude float64) float64 {
	return seaLevelPressure * math.Pow(1-2.25577e-5*altitude, 5.25588)
}

func round(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}
