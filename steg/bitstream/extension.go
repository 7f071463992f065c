package bitstream

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/stegkit/pkg/types"
)

// AppendExtension appends the 40-bit extension suffix for ext to b and
// returns the extended stream. ext must be empty, "." or '.' followed by at
// most four Windows-1252 characters; the dot itself is not stored.
func AppendExtension(b Bits, ext string) (Bits, error) {
	field, err := encodeExtension(ext)
	if err != nil {
		return nil, err
	}
	return append(b, FromBytes(field)...), nil
}

// SplitExtension separates the trailing 40-bit suffix from b. It returns the
// payload bits before the suffix and the decoded extension ("" when the
// suffix is all zero).
func SplitExtension(b Bits) (Bits, string, error) {
	if len(b) < types.ExtensionSuffixBits {
		return nil, "", types.Errorf(types.ErrKindInvalidArgument,
			"bitstream: %d bits cannot hold a %d-bit extension suffix", len(b), types.ExtensionSuffixBits)
	}
	cut := len(b) - types.ExtensionSuffixBits
	field, _ := ToBytes(b[cut:])

	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if len(field) == 0 {
		return b[:cut], "", nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(field)
	if err != nil {
		return nil, "", types.Wrap(types.ErrKindCorrupt, "bitstream: undecodable extension suffix", err)
	}
	return b[:cut], "." + string(decoded), nil
}

func encodeExtension(ext string) ([]byte, error) {
	field := make([]byte, types.ExtensionSuffixBytes)
	if ext == "" || ext == "." {
		return field, nil
	}
	if ext[0] != '.' {
		return nil, types.Errorf(types.ErrKindInvalidArgument,
			"bitstream: extension %q must start with '.'", ext)
	}
	if n := utf8.RuneCountInString(ext); n > types.MaxExtensionLen {
		return nil, types.Errorf(types.ErrKindInvalidArgument,
			"bitstream: extension %q has %d characters, at most %d allowed", ext, n, types.MaxExtensionLen)
	}
	encoded, err := charmap.Windows1252.NewEncoder().String(ext[1:])
	if err != nil {
		return nil, types.Wrap(types.ErrKindInvalidArgument,
			"bitstream: extension "+ext+" is not representable in Windows-1252", err)
	}
	if bytes.IndexByte([]byte(encoded), 0) >= 0 {
		return nil, types.Errorf(types.ErrKindInvalidArgument, "bitstream: extension %q contains NUL", ext)
	}
	copy(field, encoded)
	return field, nil
}
