package link

import "errors"

var (
	// ErrUnsupportedBaud indicates a baud rate the tty can't be set to.
	ErrUnsupportedBaud = errors.New("link: unsupported baud rate")
)
