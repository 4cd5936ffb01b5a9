package link

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufferCollector struct {
	lock sync.Mutex
	bufs []string
}

func (c *bufferCollector) HandleBuffer(_ context.Context, buf []byte) {
	c.lock.Lock()
	c.bufs = append(c.bufs, string(buf))
	c.lock.Unlock()
}

func TestReceiver(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		maxSize int
		expect  []string
		dropped uint64
	}{
		{
			name:   "lines keep delimiter",
			input:  "HDR,1,\r\nHDR,2,\r\n",
			expect: []string{"HDR,1,\r\n", "HDR,2,\r\n"},
		},
		{
			name:    "trailing partial dropped",
			input:   "HDR,1,\r\nHDR,2",
			expect:  []string{"HDR,1,\r\n"},
			dropped: 5,
		},
		{
			name:    "oversized line discarded",
			input:   strings.Repeat("x", 40) + "\nHDR,3,\r\n",
			maxSize: 16,
			expect:  []string{"HDR,3,\r\n"},
			dropped: 41,
		},
		{
			name:  "empty stream",
			input: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &bufferCollector{}
			r := NewReceiver(strings.NewReader(tc.input), c)
			if tc.maxSize > 0 {
				r.MaxFrameSize = tc.maxSize
			}
			require.NoError(t, r.Run(context.TODO()))
			require.Equal(t, tc.expect, c.bufs)
			require.Equal(t, uint64(len(tc.expect)), r.Received())
			require.Equal(t, tc.dropped, r.Dropped())
		})
	}
}

func TestReceiverCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	got := make(chan string, 1)
	r := NewReceiver(pr, HandleBufferFunc(func(_ context.Context, buf []byte) {
		got <- string(buf)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	_, err := pw.Write([]byte("HDR,9,\r\n"))
	require.NoError(t, err)
	require.Equal(t, "HDR,9,\r\n", <-got)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	require.NoError(t, os.WriteFile(path, []byte("HDR,1,\r\nHDR,2,\n"), 0644))
	c := &bufferCollector{}
	tl := &Tail{Path: path, Handler: c}
	require.NoError(t, tl.Run(context.TODO()))
	require.Equal(t, []string{"HDR,1,\r\n", "HDR,2,\r\n"}, c.bufs)
}
