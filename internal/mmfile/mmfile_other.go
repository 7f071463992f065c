//go:build !unix

package mmfile

import "os"

// Map reads the whole file; mapping is not used on this platform.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return readAll(f)
}
