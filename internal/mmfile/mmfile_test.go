package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.pgm")
	want := []byte("P5\n2 2\n255\n\x00\x01\x02\x03")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)

	require.NoError(t, release())
	require.NoError(t, release(), "second release is a no-op")
}

func TestMap_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pgm")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, release)
	require.NoError(t, release())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.ppm"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
