//go:build !linux && !freebsd

package netpbm

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
