//go:build linux || freebsd

package netpbm

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data; metadata is settled by the rename.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
