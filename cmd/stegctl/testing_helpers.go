package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/stegkit/internal/netpbm"
	"github.com/joshuapare/stegkit/internal/testutil"
)

// writeCover creates a random w x h cover image in a temp dir and returns its path.
func writeCover(t *testing.T, format netpbm.Format, w, h int) string {
	t.Helper()
	return testutil.WriteCover(t, format, w, h)
}

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, true
	hideFlags = codecFlags{mode: "sequential"}
	hideText, hideFile, hideExt, hideSeed = "", "", "", 1
	revealFlags = codecFlags{mode: "sequential"}
	revealFileOut, revealClipboard = "", false
	capacitySize, capacityFile = 0, false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON and decodes it into v
func assertJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
