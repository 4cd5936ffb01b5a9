package telemetry

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// Value is one typed field of a frame.
// The zero Value of each type is what the all-zero frame carries.
type Value struct {
	typ FieldType
	u   uint64
	i   int64
	f   float64
	t   time.Time
	s   string
}

// Uint creates an unsigned integer Value.
func Uint(v uint64) Value { return Value{typ: TypeUint, u: v} }

// Int creates a signed integer Value.
func Int(v int64) Value { return Value{typ: TypeInt, i: v} }

// Float creates a floating point Value.
func Float(v float64) Value { return Value{typ: TypeFloat, f: v} }

// Timestamp creates a timestamp Value with second precision.
func Timestamp(t time.Time) Value { return Value{typ: TypeTimestamp, t: time.Unix(t.Unix(), 0).UTC()} }

// Text creates a raw text Value.
func Text(s string) Value { return Value{typ: TypeText, s: s} }

// Zero returns the zero Value of a type.
func Zero(typ FieldType) Value {
	if typ == TypeTimestamp {
		return Timestamp(time.Unix(0, 0))
	}
	return Value{typ: typ}
}

// Type returns the semantic type.
func (v Value) Type() FieldType { return v.typ }

// Uint returns the value of an unsigned integer.
func (v Value) Uint() uint64 { return v.u }

// Int returns the value of a signed integer.
func (v Value) Int() int64 { return v.i }

// Float returns the value of a floating point.
func (v Value) Float() float64 { return v.f }

// Time returns the value of a timestamp.
func (v Value) Time() time.Time { return v.t }

// Text returns the value of raw text.
func (v Value) Text() string { return v.s }

// String formats the value the way it's transmitted.
func (v Value) String() string {
	switch v.typ {
	case TypeUint:
		return strconv.FormatUint(v.u, 10)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case TypeTimestamp:
		return strconv.FormatInt(v.t.Unix(), 10)
	default:
		return v.s
	}
}

var errNotFinite = errors.New("not a finite number")

// ParseValue coerces a token into typ. Integers are 32 bits wide on the wire;
// timestamps are base-10 Unix seconds.
func ParseValue(typ FieldType, token string) (Value, error) {
	switch typ {
	case TypeUint:
		n, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return Value{}, err
		}
		return Uint(n), nil
	case TypeInt:
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return Value{}, err
		}
		return Int(n), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, errNotFinite
		}
		return Float(f), nil
	case TypeTimestamp:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Timestamp(time.Unix(n, 0)), nil
	default:
		return Text(token), nil
	}
}
