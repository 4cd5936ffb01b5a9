package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := string(sampleFrame(sampleBody(12, "305.2")))
	testCases := []struct {
		name   string
		raw    string
		expect error
	}{
		{"empty", "", ErrEmptyFrame},
		{"no header", "XDR" + valid[len(HeaderMarker):], ErrMissingHeader},
		{"header only", HeaderMarker, ErrMissingTrailer},
		{"no trailer", strings.TrimSuffix(valid, TrailerMarker), ErrMissingTrailer},
		{"lf only", strings.TrimSuffix(valid, TrailerMarker) + "\n", ErrMissingTrailer},
		{"too few fields", "HDR,1,2,3" + TrailerMarker, ErrFieldCountMismatch},
		{"too many fields", strings.Replace(valid, "HDR,", "HDR,0,", 1), ErrFieldCountMismatch},
		{"missing header wins over trailer", "garbage", ErrMissingHeader},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Validate([]byte(tc.raw))
			require.Equal(t, tc.expect, err)
			require.Nil(t, tokens)
		})
	}

	tokens, err := Validate([]byte(valid))
	require.NoError(t, err)
	require.Len(t, tokens, FieldCount)
	require.Equal(t, HeaderMarker, tokens[FieldHeader])
	require.Equal(t, "305.2", tokens[FieldAltitude])
}

func TestSchema(t *testing.T) {
	defs := Schema()
	require.Len(t, defs, FieldCount)
	for i, def := range defs {
		require.Equal(t, FieldIndex(i), def.Index)
		require.NotEmpty(t, def.Name)
	}
	require.Equal(t, FieldChecksum, defs[len(defs)-1].Index)

	defs[0].Name = "changed"
	require.Equal(t, "header", FieldHeader.Def().Name)
	require.Equal(t, "invalid", FieldIndex(FieldCount).String())
}
