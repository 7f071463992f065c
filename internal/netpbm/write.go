package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/stegkit/internal/buf"
	"github.com/joshuapare/stegkit/internal/mmfile"
	"github.com/joshuapare/stegkit/pkg/types"
)

// Read maps the file at path and decodes it.
func Read(path string) (*Image, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer release()

	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to w: header (magic, comments, size, maxval) then the
// raster.
func Encode(w io.Writer, img *Image) error {
	n, err := img.Dimension()
	if err != nil {
		return err
	}
	if len(img.Pixels) != n {
		return types.Errorf(types.ErrKindInvalidArgument,
			"netpbm: %d samples for a %dx%d %s", len(img.Pixels), img.Width, img.Height, img.Format)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", img.Format)
	for _, c := range img.Comments {
		// A newline inside a comment would end it early.
		fmt.Fprintf(bw, "# %s\n", strings.ReplaceAll(c, "\n", " "))
	}
	fmt.Fprintf(bw, "%d %d\n%d\n", img.Width, img.Height, img.MaxVal)

	size := buf.SampleSize(img.MaxVal)
	var sample [2]byte
	for i, v := range img.Pixels {
		if v < 0 || v > img.MaxVal {
			return types.Errorf(types.ErrKindInvalidArgument,
				"netpbm: sample %d at %d outside [0, %d]", v, i, img.MaxVal)
		}
		if size == 1 {
			sample[0] = byte(v)
		} else {
			buf.PutU16BE(sample[:], uint16(v))
		}
		if _, err := bw.Write(sample[:size]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write encodes img into path. The data goes to a temporary file in the same
// directory which is synced and then renamed over path.
func Write(path string, img *Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = Encode(f, img); err != nil {
		return err
	}
	if err = syncFile(f); err != nil {
		return fmt.Errorf("netpbm: sync %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
