//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/stegkit/pkg/types"
)

// Map maps the file at path read-only and returns its contents with a
// release function.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		return readAll(f)
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, noop, nil
	}
	if size > math.MaxInt {
		return nil, nil, types.Wrap(types.ErrKindResource, "mmfile: file too large to map",
			fmt.Errorf("%s is %d bytes", path, size))
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		if err := unix.Munmap(data); err != nil && !errors.Is(err, unix.EINVAL) {
			return fmt.Errorf("mmfile: unmap %s: %w", path, err)
		}
		return nil
	}
	return data, release, nil
}
