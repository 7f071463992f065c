package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stegkit/internal/logger"
	"github.com/joshuapare/stegkit/internal/netpbm"
	"github.com/joshuapare/stegkit/steg"
)

var (
	hideFlags codecFlags
	hideText  string
	hideFile  string
	hideExt   string
	hideSeed  uint64
)

func init() {
	rootCmd.AddCommand(newHideCmd())
}

func newHideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hide <cover> <output>",
		Short: "Hide text or a file in a PGM/PPM image",
		Long: `The hide command embeds a payload into the pixel LSBs of <cover> and
writes the result to <output>. The cover file itself is not modified.

Example:
  stegctl hide cover.ppm out.ppm --text "meet at noon"
  stegctl hide cover.pgm out.pgm --file secret.pdf --mode hamming
  stegctl hide cover.ppm out.ppm --text hi --mode keyed --key walk --permute-key mix`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHide(args)
		},
	}
	hideFlags.register(cmd)
	cmd.Flags().StringVarP(&hideText, "text", "t", "", "Text message to hide")
	cmd.Flags().StringVarP(&hideFile, "file", "f", "", "File to hide (its extension is stored)")
	cmd.Flags().StringVar(&hideExt, "ext", "", "Override the stored extension, e.g. .txt")
	cmd.Flags().Uint64Var(&hideSeed, "seed", 0, "Seed for the pixel nudge direction (0 = clock)")
	return cmd
}

// hideResult is the --json form of a hide run.
type hideResult struct {
	Cover        string  `json:"cover"`
	Output       string  `json:"output"`
	PayloadBytes int     `json:"payload_bytes"`
	PayloadBits  int     `json:"payload_bits"`
	PrefixLength int     `json:"prefix_length"`
	Mode         string  `json:"mode"`
	Fallback     bool    `json:"fallback,omitempty"`
	Rows         int     `json:"rows,omitempty"`
	Columns      int     `json:"columns,omitempty"`
	Modified     int     `json:"modified"`
	Ratio        float64 `json:"modified_per_bit"`
}

func runHide(args []string) error {
	coverPath, outPath := args[0], args[1]

	opts, err := hideFlags.options()
	if err != nil {
		return err
	}

	var payload []byte
	switch {
	case hideText != "" && hideFile != "":
		return errors.New("use either --text or --file, not both")
	case hideFile != "":
		if payload, err = os.ReadFile(hideFile); err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		opts.File = true
		opts.Extension = filepath.Ext(hideFile)
		if hideExt != "" {
			opts.Extension = hideExt
		}
	case hideText != "":
		payload = []byte(hideText)
	default:
		return errors.New("nothing to hide: give --text or --file")
	}
	if hideSeed != 0 {
		opts.Rand = rand.New(rand.NewPCG(hideSeed, hideSeed))
	}

	printVerbose("Reading cover: %s\n", coverPath)
	img, err := netpbm.Read(coverPath)
	if err != nil {
		return fmt.Errorf("failed to read cover: %w", err)
	}

	rep, err := steg.Encode(payload, img.Pixels, img.MaxVal, opts)
	if err != nil {
		return err
	}
	logger.Info("hide", "cover", coverPath, "output", outPath, "mode", rep.Mode.String(),
		"bits", rep.PayloadBits, "modified", rep.Modified)

	if err := netpbm.Write(outPath, img); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	res := hideResult{
		Cover:        coverPath,
		Output:       outPath,
		PayloadBytes: len(payload),
		PayloadBits:  rep.PayloadBits,
		PrefixLength: rep.PrefixLength,
		Mode:         rep.Mode.String(),
		Fallback:     rep.Fallback,
		Rows:         rep.Rows,
		Columns:      rep.Columns,
		Modified:     rep.Modified,
		Ratio:        rep.ModifiedRatio(),
	}
	if jsonOut {
		return printJSON(res)
	}

	printInfo("Hid %d bytes in %s\n", res.PayloadBytes, outPath)
	printInfo("  Mode: %s\n", res.Mode)
	if res.Fallback {
		printInfo("  Payload too large for Hamming coding, used sequential placement\n")
	}
	if res.Rows > 0 {
		printInfo("  Hamming code: %d bits per %d pixels\n", res.Rows, res.Columns)
	}
	printInfo("  Pixels modified: %d (%.4f per payload bit)\n", res.Modified, res.Ratio)
	printVerbose("  Prefix: %d bits, payload: %d bits\n", res.PrefixLength, res.PayloadBits)
	return nil
}
