// Package csvlog records accepted frames as CSV rows in rotated files.
package csvlog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"sync"

	"github.com/golang/glog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kaansat/groundstation/pkg/telemetry"
)

// Options configures the log files.
type Options struct {
	Filename   string `yaml:"filename"`
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of backups
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`
}

// DefaultMaxSize is the file size in megabytes when Options.MaxSize is 0.
const DefaultMaxSize = 100

// ErrClosed is returned when using a closed Logger.
var ErrClosed = errors.New("csvlog: closed")

// Logger is a telemetry.EventHandler writing one row per accepted frame.
// Every file, rotated or not, starts with the header row.
type Logger struct {
	lock    sync.Mutex
	out     *lumberjack.Logger
	buf     bytes.Buffer
	writer  *csv.Writer
	enabled bool
	rows    uint64

	// bytes in the current file and the limit it's rotated at.
	size    int64
	maxSize int64
}

// Header returns the column names.
func Header() []string {
	defs := telemetry.Schema()
	names := make([]string, len(defs))
	for n, def := range defs {
		names[n] = def.Name
	}
	return names
}

// Open creates a Logger. The header row is written when the file is new.
func Open(opts Options) (*Logger, error) {
	info, err := os.Stat(opts.Filename)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	l := &Logger{
		out: &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		},
		enabled: true,
		maxSize: int64(opts.MaxSize) * 1024 * 1024,
	}
	if l.maxSize <= 0 {
		l.maxSize = DefaultMaxSize * 1024 * 1024
	}
	l.writer = csv.NewWriter(&l.buf)
	if info != nil {
		l.size = info.Size()
	}
	if l.size == 0 {
		if err := l.write(Header()); err != nil {
			l.out.Close()
			return nil, err
		}
	}
	return l, nil
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	l.lock.Lock()
	l.enabled = enabled
	l.lock.Unlock()
}

// Enabled tells whether rows are being written.
func (l *Logger) Enabled() bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.enabled
}

// Rows returns the number of rows written since Open.
func (l *Logger) Rows() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.rows
}

// HandleEvent implements telemetry.EventHandler.
func (l *Logger) HandleEvent(_ context.Context, ev telemetry.Event) {
	accepted, ok := ev.(*telemetry.FrameAccepted)
	if !ok {
		return
	}
	fields := accepted.Frame.Fields()
	row := make([]string, len(fields))
	for n, val := range fields {
		row[n] = val.String()
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	if !l.enabled || l.writer == nil {
		return
	}
	if err := l.write(row); err != nil {
		glog.Errorf("csvlog: %v", err)
		return
	}
	l.rows++
}

// Rotate closes the current file and starts a new one.
func (l *Logger) Rotate() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.writer == nil {
		return ErrClosed
	}
	return l.rotate()
}

// Close implements io.Closer.
func (l *Logger) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.writer == nil {
		return nil
	}
	l.writer = nil
	return l.out.Close()
}

func (l *Logger) rotate() error {
	if err := l.out.Rotate(); err != nil {
		return err
	}
	l.size = 0
	return l.write(Header())
}

// write encodes row and appends it to the current file. The file is
// rotated here, before lumberjack would do it without a header.
func (l *Logger) write(row []string) error {
	l.buf.Reset()
	l.writer.Write(row)
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		return err
	}
	if l.size > 0 && l.size+int64(l.buf.Len()) >= l.maxSize {
		data := append([]byte(nil), l.buf.Bytes()...)
		if err := l.rotate(); err != nil {
			return err
		}
		l.buf.Reset()
		l.buf.Write(data)
	}
	n, err := l.out.Write(l.buf.Bytes())
	l.size += int64(n)
	return err
}
