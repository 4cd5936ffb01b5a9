package stream

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaansat/groundstation/pkg/msgs"
	"github.com/kaansat/groundstation/pkg/telemetry"
)

func TestReadWriter(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte("abc")))
	require.NoError(t, rw.WritePacket(nil))
	require.Equal(t, []byte{3, 0, 0, 0, 'a', 'b', 'c', 0, 0, 0, 0}, buf.Bytes())

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)

	buf.Write([]byte{5, 0, 0, 0, 'x'})
	_, err = rw.ReadPacket()
	require.Equal(t, io.ErrUnexpectedEOF, err)

	buf.Reset()
	buf.Write([]byte{0xff, 0xff, 0xff, 0xff})
	_, err = rw.ReadPacket()
	require.Equal(t, ErrPacketTooLarge, err)
}

func TestArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	a, err := OpenArchive(path, "gs1")
	require.NoError(t, err)
	ctx := context.TODO()
	a.HandleEvent(ctx, &telemetry.SequenceReset{Previous: 8, Current: 2})
	a.HandleEvent(ctx, &telemetry.FrameRejected{Reason: telemetry.ReasonMissingTrailer, Size: 17})
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	a.HandleEvent(ctx, &telemetry.SequenceReset{Previous: 2, Current: 1})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rw := New(struct {
		io.Reader
		io.Writer
	}{f, io.Discard})

	var types []uint32
	for {
		pkt, err := rw.ReadPacket()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		typed, err := msgs.DecodeTyped(pkt)
		require.NoError(t, err)
		require.Equal(t, "gs1", typed.Station)
		types = append(types, typed.TypeId)
	}
	require.Equal(t, []uint32{msgs.SequenceResetTypeID, msgs.FrameRejectedTypeID}, types)
}
