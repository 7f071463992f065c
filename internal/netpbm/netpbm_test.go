package netpbm

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stegkit/pkg/types"
)

func TestDecode_PGM(t *testing.T) {
	data := []byte("P5\n# made by hand\n3 2\n# second\n255\n\x00\x01\x02\xfd\xfe\xff")

	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, PGM, img.Format)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 255, img.MaxVal)
	assert.Equal(t, []string{"made by hand", "second"}, img.Comments)
	assert.Equal(t, []int{0, 1, 2, 253, 254, 255}, img.Pixels)
}

func TestDecode_PPM16(t *testing.T) {
	data := []byte("P6 1 1 65535\n\x00\x01\x12\x34\xff\xff")

	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, PPM, img.Format)
	assert.Equal(t, []int{1, 0x1234, 0xffff}, img.Pixels)
	n, err := img.Dimension()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDecode_RasterMayStartWithWhitespaceByte(t *testing.T) {
	// The raster's first sample is '\n' (10); only one separator is consumed.
	img, err := Decode([]byte("P5 2 1 255\n\n\x07"))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 7}, img.Pixels)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", types.ErrNotPixelMap},
		{"ascii pgm", "P2 1 1 255\n0", types.ErrNotPixelMap},
		{"png", "\x89PNG\r\n\x1a\n", types.ErrNotPixelMap},
		{"truncated header", "P5 4 4", types.ErrNotPixelMap},
		{"bad number", "P5 4 x 255\n", &types.Error{Kind: types.ErrKindFormat}},
		{"zero width", "P5 0 4 255\n", &types.Error{Kind: types.ErrKindFormat}},
		{"maxval too big", "P5 1 1 70000\n\x00\x00", &types.Error{Kind: types.ErrKindFormat}},
		{"short raster", "P6 2 2 255\n\x00\x00\x00", &types.Error{Kind: types.ErrKindFormat}},
		{"sample above maxval", "P5 1 1 100\n\xc8", &types.Error{Kind: types.ErrKindFormat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, maxval := range []int{1, 255, 1023} {
		img, err := New(PPM, 4, 3, maxval)
		require.NoError(t, err)
		for i := range img.Pixels {
			img.Pixels[i] = (i * 37) % (maxval + 1)
		}
		img.Comments = []string{"stegkit"}

		var out bytes.Buffer
		require.NoError(t, Encode(&out, img))

		got, err := Decode(out.Bytes())
		require.NoError(t, err)
		require.Equal(t, img, got)
	}
}

func TestEncode_RejectsBadSamples(t *testing.T) {
	img, err := New(PGM, 2, 1, 255)
	require.NoError(t, err)
	img.Pixels[1] = 256
	require.ErrorIs(t, Encode(&bytes.Buffer{}, img), types.ErrInvalidArgument)

	img.Pixels = img.Pixels[:1]
	require.ErrorIs(t, Encode(&bytes.Buffer{}, img), types.ErrInvalidArgument)
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.pgm")

	img, err := New(PGM, 8, 8, 255)
	require.NoError(t, err)
	for i := range img.Pixels {
		img.Pixels[i] = i * 4
	}
	require.NoError(t, Write(path, img))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, img.Pixels, got.Pixels)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestDimension_Overflow(t *testing.T) {
	img := &Image{Format: PPM, Width: math.MaxInt / 2, Height: 3, MaxVal: 255}
	_, err := img.Dimension()
	require.ErrorIs(t, err, types.ErrResourceExhausted)
}
