package mmfile

import (
	"io"
	"os"
)

func noop() error { return nil }

// readAll is used for pipes, devices and platforms without mmap.
func readAll(f *os.File) ([]byte, func() error, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
