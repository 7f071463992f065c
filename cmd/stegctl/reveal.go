package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/joshuapare/stegkit/internal/logger"
	"github.com/joshuapare/stegkit/internal/netpbm"
	"github.com/joshuapare/stegkit/steg"
)

var (
	revealFlags     codecFlags
	revealFileOut   string
	revealClipboard bool
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func init() {
	rootCmd.AddCommand(newRevealCmd())
}

func newRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal <image>",
		Short: "Recover hidden text or a hidden file",
		Long: `The reveal command extracts the payload from <image>. The mode and
passphrases must match the ones used to hide it.

A text payload is printed. With --file-out the payload is treated as a file
and written to <base> plus the stored extension.

Example:
  stegctl reveal out.ppm
  stegctl reveal out.ppm --mode keyed --key walk --clipboard
  stegctl reveal out.pgm --mode hamming --file-out recovered`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReveal(args)
		},
	}
	revealFlags.register(cmd)
	cmd.Flags().StringVarP(&revealFileOut, "file-out", "o", "", "Recover a file to <base>.<stored extension>")
	cmd.Flags().BoolVar(&revealClipboard, "clipboard", false, "Copy a recovered text message to the clipboard")
	return cmd
}

func runReveal(args []string) error {
	imagePath := args[0]

	opts, err := revealFlags.options()
	if err != nil {
		return err
	}
	opts.File = revealFileOut != ""

	printVerbose("Reading image: %s\n", imagePath)
	img, err := netpbm.Read(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	msg, err := steg.Decode(img.Pixels, opts)
	if err != nil {
		return err
	}
	logger.Info("reveal", "image", imagePath, "mode", msg.Mode.String(), "bytes", len(msg.Data))

	if opts.File {
		return writeRevealed(revealFileOut, msg)
	}

	if revealClipboard {
		if err := copyToClipboard(string(msg.Data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		printVerbose("Copied %d bytes to the clipboard\n", len(msg.Data))
	}
	if jsonOut {
		return printJSON(map[string]any{
			"mode":    msg.Mode.String(),
			"bytes":   len(msg.Data),
			"message": string(msg.Data),
		})
	}
	fmt.Fprintln(os.Stdout, string(msg.Data))
	return nil
}

func writeRevealed(base string, msg *steg.Message) error {
	path := base + msg.Extension
	if err := os.WriteFile(path, msg.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if jsonOut {
		return printJSON(map[string]any{
			"mode":      msg.Mode.String(),
			"bytes":     len(msg.Data),
			"extension": msg.Extension,
			"path":      path,
		})
	}
	printInfo("Recovered %d bytes to %s\n", len(msg.Data), path)
	return nil
}
