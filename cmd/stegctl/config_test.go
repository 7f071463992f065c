package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stegkit/internal/netpbm"
)

func TestProfileApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stegctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: keyed
key: from-profile
permute_key: mix
seed: 7
log:
  level: debug
`), 0o644))

	p, err := loadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "keyed", p.Mode)
	require.Equal(t, uint64(7), p.Seed)
	require.Equal(t, "debug", p.Log.Level)

	var f codecFlags
	var seed uint64
	var level string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&f.mode, "mode", "sequential", "")
	fs.StringVar(&f.key, "key", "", "")
	fs.StringVar(&f.permuteKey, "permute-key", "", "")
	fs.Uint64Var(&seed, "seed", 0, "")
	fs.StringVar(&level, "log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--key", "from-flag"}))

	require.NoError(t, p.apply(fs))
	require.Equal(t, "keyed", f.mode)
	require.Equal(t, "from-flag", f.key, "explicit flag wins")
	require.Equal(t, "mix", f.permuteKey)
	require.Equal(t, uint64(7), seed)
	require.Equal(t, "debug", level)
}

func TestLoadProfile_Errors(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unterminated"), 0o644))
	_, err = loadProfile(path)
	require.Error(t, err)
}

func TestRootCommand_ConfigProfile(t *testing.T) {
	resetFlags()
	cover := writeCover(t, netpbm.PGM, 32, 32)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pgm")
	cfg := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("mode: keyed\nkey: profile-key\n"), 0o644))

	rootCmd.SetArgs([]string{"hide", cover, out, "--text", "via profile", "--config", cfg, "--seed", "3"})
	_, err := captureOutput(t, func() error { return rootCmd.Execute() })
	require.NoError(t, err)

	resetFlags()
	revealFlags = codecFlags{mode: "keyed", key: "profile-key"}
	output, err := captureOutput(t, func() error { return runReveal([]string{out}) })
	require.NoError(t, err)
	require.Equal(t, "via profile\n", output)
	configPath = ""
}
