package telemetry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFrame indicates an empty input buffer.
	ErrEmptyFrame = errors.New("telemetry: empty frame")
	// ErrMissingHeader indicates the buffer doesn't start with HeaderMarker.
	ErrMissingHeader = errors.New("telemetry: missing header marker")
	// ErrMissingTrailer indicates the buffer doesn't end with TrailerMarker.
	ErrMissingTrailer = errors.New("telemetry: missing trailer marker")
	// ErrFieldCountMismatch indicates the body doesn't split into FieldCount tokens.
	ErrFieldCountMismatch = errors.New("telemetry: field count mismatch")
	// ErrChecksumUnparsable indicates the checksum token is not a base-10 uint32.
	ErrChecksumUnparsable = errors.New("telemetry: checksum unparsable")
	// ErrChecksumMismatch indicates the transmitted checksum doesn't match the body.
	ErrChecksumMismatch = errors.New("telemetry: checksum mismatch")
	// ErrFieldParse indicates a field token can't be coerced into its type.
	ErrFieldParse = errors.New("telemetry: field parse error")
)

// FieldError reports a field which failed type coercion.
type FieldError struct {
	Field FieldIndex
	Token string
	Err   error
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s %q: %v", ErrFieldParse, e.Field, e.Token, e.Err)
}

// Unwrap exposes ErrFieldParse and the underlying parse error.
func (e *FieldError) Unwrap() []error {
	return []error{ErrFieldParse, e.Err}
}

// Reason classifies why a frame was rejected.
type Reason int

// Reject reasons.
const (
	ReasonNone Reason = iota
	ReasonEmptyFrame
	ReasonMissingHeader
	ReasonMissingTrailer
	ReasonFieldCountMismatch
	ReasonChecksumUnparsable
	ReasonChecksumMismatch
	ReasonFieldParseError
	ReasonUnknown
)

var reasonNames = [...]string{
	ReasonNone:               "none",
	ReasonEmptyFrame:         "empty-frame",
	ReasonMissingHeader:      "missing-header",
	ReasonMissingTrailer:     "missing-trailer",
	ReasonFieldCountMismatch: "field-count-mismatch",
	ReasonChecksumUnparsable: "checksum-unparsable",
	ReasonChecksumMismatch:   "checksum-mismatch",
	ReasonFieldParseError:    "field-parse-error",
	ReasonUnknown:            "unknown",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return reasonNames[ReasonUnknown]
	}
	return reasonNames[r]
}

// ParseReason is the reverse of Reason.String.
func ParseReason(s string) Reason {
	for r, name := range reasonNames {
		if name == s {
			return Reason(r)
		}
	}
	return ReasonUnknown
}

var reasonErrors = []struct {
	err    error
	reason Reason
}{
	{ErrEmptyFrame, ReasonEmptyFrame},
	{ErrMissingHeader, ReasonMissingHeader},
	{ErrMissingTrailer, ReasonMissingTrailer},
	{ErrFieldCountMismatch, ReasonFieldCountMismatch},
	{ErrChecksumUnparsable, ReasonChecksumUnparsable},
	{ErrChecksumMismatch, ReasonChecksumMismatch},
	{ErrFieldParse, ReasonFieldParseError},
}

// ReasonOf classifies an error returned by Validate, DecodeTokens or Decoder.Decode.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, re := range reasonErrors {
		if errors.Is(err, re.err) {
			return re.reason
		}
	}
	return ReasonUnknown
}
