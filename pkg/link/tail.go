package link

import (
	"context"
	"strings"

	"github.com/golang/glog"
	"github.com/hpcloud/tail"
)

// Tail replays a capture file line by line, optionally following it as it
// grows (e.g. a file written by another receiver).
type Tail struct {
	Path    string
	Follow  bool
	Handler BufferHandler
}

// Run implements Runnable. Line endings are restored to CRLF as sent on air.
func (t *Tail) Run(ctx context.Context) error {
	tl, err := tail.TailFile(t.Path, tail.Config{
		Follow:    t.Follow,
		ReOpen:    t.Follow,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return err
	}
	defer tl.Cleanup()
	for {
		select {
		case line, ok := <-tl.Lines:
			if !ok {
				return tl.Wait()
			}
			if line.Err != nil {
				glog.Warningf("link: tail %s: %v", t.Path, line.Err)
				continue
			}
			if h := t.Handler; h != nil {
				h.HandleBuffer(ctx, []byte(strings.TrimRight(line.Text, "\r")+"\r\n"))
			}
		case <-ctx.Done():
			tl.Stop()
			return ctx.Err()
		}
	}
}
