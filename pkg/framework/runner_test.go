package framework

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerStopsOthersOnFailure(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRunner()
	r.Go(
		NamedRun("fails", RunFunc(func(ctx context.Context) error {
			return errBoom
		})),
		NamedRun("waits", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
	)
	err := r.Wait()
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, "boom", err.Error())
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	time.AfterFunc(10*time.Millisecond, r.Stop)
	require.NoError(t, r.Wait())
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(io.EOF, nil, io.ErrUnexpectedEOF)
	err := errs.Aggregate()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, "Multiple errors:\nEOF\nunexpected EOF", err.Error())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRunWithContextCloser(t *testing.T) {
	unblock := make(chan struct{})
	closed := 0
	closer := closerFunc(func() error {
		closed++
		close(unblock)
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	err := RunWithContextCloser(ctx, closer, func() error {
		<-unblock
		return io.EOF
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 1, closed)
}
