package telemetry

import (
	"bytes"
	"strings"
)

// Validate checks the structure of a raw frame and splits its body into
// tokens. No field is interpreted.
func Validate(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyFrame
	}
	if !bytes.HasPrefix(raw, []byte(HeaderMarker)) {
		return nil, ErrMissingHeader
	}
	if !bytes.HasSuffix(raw, []byte(TrailerMarker)) {
		return nil, ErrMissingTrailer
	}
	body := string(raw[:len(raw)-len(TrailerMarker)])
	if strings.Count(body, string(Separator))+1 != FieldCount {
		return nil, ErrFieldCountMismatch
	}
	return strings.Split(body, string(Separator)), nil
}
