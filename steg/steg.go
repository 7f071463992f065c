package steg

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/stegkit/internal/buf"
	"github.com/joshuapare/stegkit/internal/pixel"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/bitstream"
	"github.com/joshuapare/stegkit/steg/hamming"
	"github.com/joshuapare/stegkit/steg/lsb"
	"github.com/joshuapare/stegkit/steg/permute"
	"github.com/joshuapare/stegkit/steg/prefix"
)

// layout is the placement decision shared by Encode and Decode. Both sides
// derive it from (dimension, payloadBits, Options) alone.
type layout struct {
	mode     types.Mode
	fallback bool
	matrix   *hamming.Matrix
	path     lsb.Path
}

func plan(dimension, prefixLength, payloadBits int, opts Options) (layout, error) {
	l := layout{mode: opts.Mode}
	switch opts.Mode {
	case types.ModeKeyed:
		l.path = lsb.Keyed(permute.KeyFrom(opts.TraversalKey), dimension, prefixLength)
		return l, nil
	case types.ModeHamming:
		rows, columns := hamming.BestSize(dimension-prefixLength, payloadBits)
		if columns <= 2 {
			l.mode, l.fallback = types.ModeSequential, true
			break
		}
		m, err := hamming.Generate(rows, columns)
		if err != nil {
			return layout{}, err
		}
		l.matrix = m
		return l, nil
	}
	l.path = lsb.Sequential(prefixLength)
	return l, nil
}

func (l layout) attrs() []any {
	a := []any{slog.String("mode", l.mode.String()), slog.Bool("fallback", l.fallback)}
	if l.matrix != nil {
		a = append(a, slog.Int("rows", l.matrix.Rows()), slog.Int("columns", l.matrix.Columns()))
	}
	return a
}

// Encode hides payload in pixels (values in [0, maxIntensity]) and reports
// the layout it used. pixels is modified in place; on error it is unchanged.
func Encode(payload []byte, pixels []int, maxIntensity int, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := pixel.Validate(pixels, maxIntensity); err != nil {
		return nil, err
	}
	if _, ok := buf.MulOverflowSafe(len(payload), 8); !ok {
		return nil, types.Errorf(types.ErrKindResource, "steg: %d-byte payload overflows the bit count", len(payload))
	}

	bits := bitstream.FromBytes(payload)
	if opts.File {
		var err error
		if bits, err = bitstream.AppendExtension(bits, opts.Extension); err != nil {
			return nil, err
		}
	}
	if opts.PermutationKey != "" {
		permute.Forward(permute.KeyFrom(opts.PermutationKey), bits, 0)
	}

	dimension := len(pixels)
	if err := prefix.Check(dimension, len(bits)); err != nil {
		return nil, fmt.Errorf("steg: encode: %w", err)
	}
	prefixLength := prefix.Length(dimension)

	l, err := plan(dimension, prefixLength, len(bits), opts)
	if err != nil {
		return nil, err
	}
	log := opts.logger()
	log.Debug("steg: encode layout",
		append(l.attrs(), slog.Int("dimension", dimension), slog.Int("prefix", prefixLength), slog.Int("bits", len(bits)))...)

	rng := opts.rng()
	if _, err := prefix.Embed(pixels, maxIntensity, len(bits), rng); err != nil {
		return nil, err
	}

	rep := &Report{
		Dimension:    dimension,
		PrefixLength: prefixLength,
		PayloadBits:  len(bits),
		Mode:         l.mode,
		Fallback:     l.fallback,
	}
	if l.matrix != nil {
		rep.Rows, rep.Columns = l.matrix.Rows(), l.matrix.Columns()
		rep.Modified, err = hamming.Embed(pixels, maxIntensity, prefixLength, bits, l.matrix, rng)
	} else {
		rep.Modified, err = lsb.Embed(pixels, maxIntensity, bits, l.path, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("steg: encode: %w", err)
	}

	log.Debug("steg: encode done", slog.Int("modified", rep.Modified))
	return rep, nil
}

// Decode recovers the payload hidden in pixels with the same options the
// encoder used. A buffer whose prefix does not describe a payload fails with
// types.ErrNoPayload.
func Decode(pixels []int, opts Options) (*Message, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	h, err := prefix.Read(pixels)
	if err != nil {
		return nil, fmt.Errorf("steg: decode: %w", err)
	}
	payloadBits := h.PayloadBits()
	if opts.File && payloadBits < types.ExtensionSuffixBits {
		return nil, &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  "steg: decode: payload too short for a file",
			Err:  fmt.Errorf("%d bits, suffix alone is %d", payloadBits, types.ExtensionSuffixBits),
		}
	}

	l, err := plan(len(pixels), h.Length, payloadBits, opts)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("steg: decode layout",
		append(l.attrs(), slog.Int("prefix", h.Length), slog.Int("bits", payloadBits))...)

	var bits bitstream.Bits
	if l.matrix != nil {
		bits, err = hamming.Extract(pixels, h.Length, payloadBits, l.matrix)
	} else {
		bits, err = lsb.Extract(pixels, payloadBits, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("steg: decode: %w", err)
	}

	if opts.PermutationKey != "" {
		permute.Inverse(permute.KeyFrom(opts.PermutationKey), bits, 0)
	}

	msg := &Message{Mode: l.mode, Fallback: l.fallback}
	if opts.File {
		if bits, msg.Extension, err = bitstream.SplitExtension(bits); err != nil {
			return nil, err
		}
	}
	msg.Data, _ = bitstream.ToBytes(bits)
	return msg, nil
}

// Capacity returns the largest payload in bytes a buffer of dimension pixels
// can carry in mode. For ModeHamming it is the syndrome-coded capacity with
// the densest code; larger payloads still encode through the sequential
// fallback. In file mode the extension suffix is subtracted.
func Capacity(dimension int, mode types.Mode, file bool) int {
	bits := prefix.Capacity(dimension)
	if mode == types.ModeHamming {
		rows := types.MinHammingRows
		bits = hamming.Capacity(bits, rows, 1<<rows-1)
	}
	if file {
		bits -= types.ExtensionSuffixBits
	}
	return max(bits/8, 0)
}
