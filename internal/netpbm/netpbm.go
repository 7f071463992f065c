// Package netpbm reads and writes binary Netpbm pixel maps: PGM (P5,
// grayscale) and PPM (P6, RGB).
//
// Samples are flattened into one []int in file order (row-major, RGB
// interleaved for P6), which is the pixel buffer the steg package works on.
// Maxval below 256 means one byte per sample, otherwise two bytes big-endian.
package netpbm

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/joshuapare/stegkit/internal/buf"
	"github.com/joshuapare/stegkit/pkg/types"
)

// Format is the magic number of a supported pixel map.
type Format string

const (
	PGM Format = "P5"
	PPM Format = "P6"
)

// Channels returns the samples per pixel.
func (f Format) Channels() int {
	if f == PPM {
		return 3
	}
	return 1
}

const maxMaxVal = 65535

// Image is a decoded pixel map.
type Image struct {
	Format   Format
	Width    int
	Height   int
	MaxVal   int
	Comments []string // header comments without the leading '#'
	Pixels   []int
}

// New returns a zeroed image after checking its header fields.
func New(format Format, width, height, maxval int) (*Image, error) {
	img := &Image{Format: format, Width: width, Height: height, MaxVal: maxval}
	n, err := img.Dimension()
	if err != nil {
		return nil, err
	}
	img.Pixels = make([]int, n)
	return img, nil
}

// Dimension returns width*height*channels, the length of Pixels.
func (img *Image) Dimension() (int, error) {
	if img.Format != PGM && img.Format != PPM {
		return 0, types.Errorf(types.ErrKindFormat, "netpbm: unsupported format %q", string(img.Format))
	}
	if img.Width <= 0 || img.Height <= 0 {
		return 0, types.Errorf(types.ErrKindFormat, "netpbm: bad size %dx%d", img.Width, img.Height)
	}
	if img.MaxVal < 1 || img.MaxVal > maxMaxVal {
		return 0, types.Errorf(types.ErrKindFormat, "netpbm: maxval %d outside [1, %d]", img.MaxVal, maxMaxVal)
	}
	n, ok := buf.MulOverflowSafe(img.Width, img.Height)
	if ok {
		n, ok = buf.MulOverflowSafe(n, img.Format.Channels())
	}
	if !ok {
		return 0, types.Errorf(types.ErrKindResource, "netpbm: %dx%d image overflows", img.Width, img.Height)
	}
	return n, nil
}

// Decode parses a complete P5 or P6 file held in data. Samples are copied
// out, so data may be released afterwards.
func Decode(data []byte) (*Image, error) {
	p := &parser{data: data}
	magic, err := p.token()
	if err != nil {
		return nil, err
	}
	img := &Image{Format: Format(magic)}
	if img.Format != PGM && img.Format != PPM {
		return nil, fmt.Errorf("%w: magic %q", types.ErrNotPixelMap, magic)
	}

	for _, field := range []*int{&img.Width, &img.Height, &img.MaxVal} {
		if *field, err = p.number(); err != nil {
			return nil, err
		}
	}
	// Exactly one whitespace byte separates maxval from the raster.
	if p.pos >= len(data) || !isSpace(data[p.pos]) {
		return nil, types.Errorf(types.ErrKindFormat, "netpbm: no separator before raster at offset %d", p.pos)
	}
	p.pos++
	img.Comments = p.comments

	n, err := img.Dimension()
	if err != nil {
		return nil, err
	}
	size := buf.SampleSize(img.MaxVal)
	rasterLen, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return nil, types.Errorf(types.ErrKindResource, "netpbm: raster of %d samples overflows", n)
	}
	raster, ok := buf.Slice(data, p.pos, rasterLen)
	if !ok {
		return nil, types.Errorf(types.ErrKindFormat,
			"netpbm: raster truncated, need %d bytes at offset %d, have %d", rasterLen, p.pos, len(data)-p.pos)
	}

	img.Pixels = make([]int, n)
	for i := range img.Pixels {
		var v int
		if size == 1 {
			v = int(raster[i])
		} else {
			v = int(buf.U16BE(raster[2*i:]))
		}
		if v > img.MaxVal {
			return nil, types.Errorf(types.ErrKindFormat, "netpbm: sample %d at %d exceeds maxval %d", v, i, img.MaxVal)
		}
		img.Pixels[i] = v
	}
	return img, nil
}

type parser struct {
	data     []byte
	pos      int
	comments []string
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skip advances over whitespace and '#' comments, collecting the comments.
func (p *parser) skip() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case c == '#':
			end := bytes.IndexAny(p.data[p.pos:], "\r\n")
			if end < 0 {
				end = len(p.data) - p.pos
			}
			p.comments = append(p.comments, string(bytes.TrimSpace(p.data[p.pos+1:p.pos+end])))
			p.pos += end
		default:
			return
		}
	}
}

func (p *parser) token() (string, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.data) && !isSpace(p.data[p.pos]) && p.data[p.pos] != '#' {
		p.pos++
	}
	if start == p.pos {
		return "", types.ErrNotPixelMap
	}
	return string(p.data[start:p.pos]), nil
}

func (p *parser) number() (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, fmt.Errorf("netpbm: header truncated: %w", err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, types.Errorf(types.ErrKindFormat, "netpbm: bad header number %q", tok)
	}
	return v, nil
}
