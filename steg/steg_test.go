package steg

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stegkit/internal/testutil"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/prefix"
)

func cover(seed uint64, n, maxval int) []int { return testutil.Pixels(seed, n, maxval) }

func seeded(seed uint64) *rand.Rand { return testutil.Rand(seed) }

func TestRoundTrip_AllModes(t *testing.T) {
	payloads := map[string][]byte{
		"empty": {},
		"text":  []byte("Hidden in plain sight."),
		"binary": func() []byte {
			b := make([]byte, 300)
			for i := range b {
				b[i] = byte(i * 7)
			}
			return b
		}(),
	}
	modes := []Options{
		{Mode: types.ModeSequential},
		{Mode: types.ModeKeyed, TraversalKey: "walk order"},
		{Mode: types.ModeHamming},
		{Mode: types.ModeSequential, PermutationKey: "scramble"},
		{Mode: types.ModeKeyed, TraversalKey: "walk order", PermutationKey: "scramble"},
		{Mode: types.ModeHamming, PermutationKey: "scramble"},
	}

	for name, payload := range payloads {
		for _, base := range modes {
			t.Run(name+"/"+base.Mode.String()+"/"+base.PermutationKey, func(t *testing.T) {
				pixels := cover(11, 64*64, 255)
				opts := base
				opts.Rand = seeded(7)

				rep, err := Encode(payload, pixels, 255, opts)
				require.NoError(t, err)
				require.Equal(t, len(payload)*8, rep.PayloadBits)
				require.Equal(t, prefix.Length(len(pixels)), rep.PrefixLength)
				require.False(t, rep.Fallback)

				for _, v := range pixels {
					require.GreaterOrEqual(t, v, 0)
					require.LessOrEqual(t, v, 255)
				}

				msg, err := Decode(pixels, base)
				require.NoError(t, err)
				require.Equal(t, payload, msg.Data)
				require.Empty(t, msg.Extension)
			})
		}
	}
}

func TestRoundTrip_FileMode(t *testing.T) {
	for _, ext := range []string{".txt", ".c", ".jpeg", ""} {
		t.Run(ext, func(t *testing.T) {
			pixels := cover(3, 4096, 255)
			data := []byte("%PDF-1.4 pretend file body")
			opts := Options{Mode: types.ModeHamming, File: true, Extension: ext, PermutationKey: "k"}
			opts.Rand = seeded(1)

			rep, err := Encode(data, pixels, 255, opts)
			require.NoError(t, err)
			require.Equal(t, len(data)*8+types.ExtensionSuffixBits, rep.PayloadBits)

			opts.Rand, opts.Extension = nil, ""
			msg, err := Decode(pixels, opts)
			require.NoError(t, err)
			require.Equal(t, data, msg.Data)
			require.Equal(t, ext, msg.Extension)
		})
	}
}

func TestHamming_ChangesFewerPixels(t *testing.T) {
	payload := bytes.Repeat([]byte{0xA5, 0x3C}, 32)

	seq := cover(5, 100_000, 255)
	repSeq, err := Encode(payload, seq, 255, Options{Rand: seeded(2)})
	require.NoError(t, err)

	ham := cover(5, 100_000, 255)
	repHam, err := Encode(payload, ham, 255, Options{Mode: types.ModeHamming, Rand: seeded(2)})
	require.NoError(t, err)

	require.Equal(t, types.ModeHamming, repHam.Mode)
	require.Greater(t, repHam.Rows, 2)
	require.Equal(t, 1<<repHam.Rows-1, repHam.Columns)
	require.Less(t, repHam.Modified, repSeq.Modified)
	blocks := (repHam.PayloadBits + repHam.Rows - 1) / repHam.Rows
	require.LessOrEqual(t, repHam.Modified, blocks)
	require.Less(t, repHam.ModifiedRatio(), repSeq.ModifiedRatio())
}

func TestHamming_FallbackToSequential(t *testing.T) {
	const dimension = 1000
	// Sequential capacity but more than 2 bits per 3 pixels.
	payload := make([]byte, (dimension-prefix.Length(dimension))/8)
	for i := range payload {
		payload[i] = byte(i)
	}
	pixels := cover(9, dimension, 255)

	rep, err := Encode(payload, pixels, 255, Options{Mode: types.ModeHamming, Rand: seeded(4)})
	require.NoError(t, err)
	require.True(t, rep.Fallback)
	require.Equal(t, types.ModeSequential, rep.Mode)

	msg, err := Decode(pixels, Options{Mode: types.ModeHamming})
	require.NoError(t, err)
	require.True(t, msg.Fallback)
	require.Equal(t, payload, msg.Data)
}

func TestEncode_CapacityBoundary(t *testing.T) {
	// dimension 32: prefix 6, 26 payload bits -> 3 bytes fit, 4 do not.
	pixels := cover(1, 32, 255)
	_, err := Encode([]byte{1, 2, 3}, pixels, 255, Options{Rand: seeded(1)})
	require.NoError(t, err)

	pixels = cover(1, 32, 255)
	before := append([]int(nil), pixels...)
	_, err = Encode([]byte{1, 2, 3, 4}, pixels, 255, Options{Rand: seeded(1)})
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
	require.Equal(t, before, pixels, "failed encode must not touch pixels")
}

func TestEncode_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		pixels []int
		maxval int
		opts   Options
	}{
		{"unknown mode", cover(1, 256, 255), 255, Options{Mode: types.Mode(9)}},
		{"keyed without key", cover(1, 256, 255), 255, Options{Mode: types.ModeKeyed}},
		{"pixel out of range", []int{0, 1, 300, 4, 5, 6, 7, 8}, 255, Options{}},
		{"zero maxval", make([]int, 64), 0, Options{}},
		{"long extension", cover(1, 4096, 255), 255, Options{File: true, Extension: ".tiff2"}},
		{"extension without file", cover(1, 4096, 255), 255, Options{Extension: ".txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]int(nil), tt.pixels...)
			tt.opts.Rand = seeded(1)
			_, err := Encode([]byte("x"), tt.pixels, tt.maxval, tt.opts)
			require.ErrorIs(t, err, types.ErrInvalidArgument)
			require.Equal(t, before, tt.pixels)
		})
	}
}

func TestDecode_WrongKeys(t *testing.T) {
	payload := []byte("only with the right passphrase")

	t.Run("traversal", func(t *testing.T) {
		pixels := cover(2, 8192, 255)
		_, err := Encode(payload, pixels, 255, Options{Mode: types.ModeKeyed, TraversalKey: "right", Rand: seeded(3)})
		require.NoError(t, err)

		msg, err := Decode(pixels, Options{Mode: types.ModeKeyed, TraversalKey: "wrong"})
		require.NoError(t, err)
		assert.NotEqual(t, payload, msg.Data)
	})

	t.Run("permutation", func(t *testing.T) {
		pixels := cover(2, 8192, 255)
		_, err := Encode(payload, pixels, 255, Options{PermutationKey: "right", Rand: seeded(3)})
		require.NoError(t, err)

		msg, err := Decode(pixels, Options{PermutationKey: "wrong"})
		require.NoError(t, err)
		assert.NotEqual(t, payload, msg.Data)
	})
}

func TestDecode_NoPayload(t *testing.T) {
	// All LSBs set: prefix value 2^len - 1 exceeds the dimension.
	pixels := make([]int, 100)
	for i := range pixels {
		pixels[i] = 1
	}
	_, err := Decode(pixels, Options{})
	require.ErrorIs(t, err, types.ErrNoPayload)
}

func TestDecode_FileTooShort(t *testing.T) {
	pixels := cover(4, 1024, 255)
	_, err := Encode([]byte("ab"), pixels, 255, Options{Rand: seeded(1)})
	require.NoError(t, err)

	_, err = Decode(pixels, Options{File: true})
	require.ErrorIs(t, err, types.ErrNoPayload)
}

func TestEncode_Deterministic(t *testing.T) {
	a := cover(6, 2048, 255)
	b := append([]int(nil), a...)

	_, err := Encode([]byte("same seed"), a, 255, Options{Mode: types.ModeKeyed, TraversalKey: "k", Rand: seeded(42)})
	require.NoError(t, err)
	_, err = Encode([]byte("same seed"), b, 255, Options{Mode: types.ModeKeyed, TraversalKey: "k", Rand: seeded(42)})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEncode_Logs(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Encode([]byte("log me"), cover(1, 4096, 255), 255,
		Options{Mode: types.ModeHamming, Rand: seeded(1), Logger: log})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "mode=hamming")
	assert.Contains(t, out.String(), "modified=")
}

func TestCapacity(t *testing.T) {
	// 4096 pixels: prefix 13, 4083 payload bits.
	assert.Equal(t, 4083/8, Capacity(4096, types.ModeSequential, false))
	assert.Equal(t, 4083/8, Capacity(4096, types.ModeKeyed, false))
	assert.Equal(t, (4083-40)/8, Capacity(4096, types.ModeSequential, true))
	assert.Equal(t, 4083/3*2/8, Capacity(4096, types.ModeHamming, false))
	assert.Equal(t, 0, Capacity(10, types.ModeSequential, true))

	// The advertised capacity must actually encode without fallback.
	for _, mode := range []types.Mode{types.ModeSequential, types.ModeHamming} {
		n := Capacity(4096, mode, true)
		pixels := cover(8, 4096, 255)
		rep, err := Encode(make([]byte, n), pixels, 255, Options{Mode: mode, File: true, Extension: ".bin", Rand: seeded(1)})
		require.NoError(t, err)
		require.False(t, rep.Fallback)
	}
}

func TestSixteenBitSamples(t *testing.T) {
	pixels := cover(12, 3000, 65535)
	pixels[0], pixels[1] = 0, 65535
	opts := Options{Mode: types.ModeKeyed, TraversalKey: "deep", Rand: seeded(5)}

	_, err := Encode([]byte("sixteen bit"), pixels, 65535, opts)
	require.NoError(t, err)
	msg, err := Decode(pixels, opts)
	require.NoError(t, err)
	require.Equal(t, []byte("sixteen bit"), msg.Data)
}
