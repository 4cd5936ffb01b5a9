//go:build !linux

package link

import (
	"os"

	"github.com/golang/glog"
)

// OpenSerial opens the device as is; line settings are left to the OS.
func OpenSerial(path string, baud int) (*os.File, error) {
	glog.Warningf("link: baud rate %d not applied to %s on this platform", baud, path)
	return os.OpenFile(path, os.O_RDWR, 0)
}
