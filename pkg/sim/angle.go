package sim

import "math"

// Angle is the common representation of angle,
// supporting multiple units.
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(normalizeRadians(r))
}

// AddDegrees adds degress to current angle.
func (a Angle) AddDegrees(d float64) Angle {
	return Angle(normalizeRadians(float64(a) + d*math.Pi/180.0))
}

// Radians gets angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Project splits a distance travelled along a compass heading
// into north and east components.
func (a Angle) Project(dist float64) (north, east float64) {
	return dist * math.Cos(float64(a)), dist * math.Sin(float64(a))
}

func normalizeRadians(r float64) float64 {
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}
