package steg

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/joshuapare/stegkit/pkg/types"
)

// Options control one Encode or Decode call. Decode must be given the same
// Mode, TraversalKey, PermutationKey and File as the matching Encode.
type Options struct {
	// Mode selects how payload bits are placed after the prefix.
	Mode types.Mode

	// TraversalKey is the passphrase for ModeKeyed. Required in that mode,
	// ignored otherwise.
	TraversalKey string

	// PermutationKey, when non-empty, scrambles the payload bit order
	// (including the extension suffix) before embedding.
	PermutationKey string

	// File marks a file payload: a 40-bit extension suffix is carried after
	// the data.
	File bool

	// Extension is stored in file mode, e.g. ".txt". Empty means none.
	Extension string

	// Rand supplies the nudge direction draws. Nil seeds a generator from the
	// clock. Decoding never draws.
	Rand *rand.Rand

	// Logger receives debug records about layout decisions. Nil discards.
	Logger *slog.Logger
}

func (o Options) validate() error {
	if !o.Mode.Valid() {
		return types.Errorf(types.ErrKindInvalidArgument, "steg: unknown mode %d", int(o.Mode))
	}
	if o.Mode == types.ModeKeyed && o.TraversalKey == "" {
		return types.Errorf(types.ErrKindInvalidArgument, "steg: keyed mode needs a traversal key")
	}
	if !o.File && o.Extension != "" {
		return types.Errorf(types.ErrKindInvalidArgument,
			"steg: extension %q given without file mode", o.Extension)
	}
	return nil
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32|now<<32))
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Report describes what Encode wrote.
type Report struct {
	Dimension    int
	PrefixLength int
	PayloadBits  int        // bits after the prefix, suffix included
	Mode         types.Mode // mode actually used
	Fallback     bool       // Hamming requested, sequential used
	Rows         int        // Hamming code size, zero otherwise
	Columns      int
	Modified     int // payload pixels changed (prefix excluded)
}

// ModifiedRatio returns changed pixels per embedded payload bit.
func (r *Report) ModifiedRatio() float64 {
	if r.PayloadBits == 0 {
		return 0
	}
	return float64(r.Modified) / float64(r.PayloadBits)
}

// Message is a recovered payload.
type Message struct {
	Data      []byte
	Extension string // file mode only; "" when none was stored
	Mode      types.Mode
	Fallback  bool
}
