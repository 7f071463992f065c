package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stegkit/internal/netpbm"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg/prefix"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <image>",
		Short: "Show the pixel-map header and the hidden length prefix",
		Long: `The info command prints the PGM/PPM header of <image> and decodes the
length prefix from its first pixel LSBs. A valid prefix only means the image
may carry a payload; an untouched image can decode to a plausible length.

Example:
  stegctl info out.ppm
  stegctl info out.ppm --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type imageInfo struct {
	Image        string   `json:"image"`
	Format       string   `json:"format"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	MaxVal       int      `json:"maxval"`
	Comments     []string `json:"comments,omitempty"`
	Dimension    int      `json:"dimension"`
	PrefixLength int      `json:"prefix_length"`
	PayloadBits  *int     `json:"payload_bits"`
}

func runInfo(args []string) error {
	path := args[0]
	printVerbose("Reading image: %s\n", path)

	img, err := netpbm.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	info := imageInfo{
		Image:        path,
		Format:       string(img.Format),
		Width:        img.Width,
		Height:       img.Height,
		MaxVal:       img.MaxVal,
		Comments:     img.Comments,
		Dimension:    len(img.Pixels),
		PrefixLength: prefix.Length(len(img.Pixels)),
	}
	h, err := prefix.Read(img.Pixels)
	switch {
	case err == nil:
		bits := h.PayloadBits()
		info.PayloadBits = &bits
	case errors.Is(err, types.ErrNoPayload):
	default:
		return err
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nImage Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Format: %s (%d channel)\n", info.Format, img.Format.Channels())
	printInfo("  Size: %dx%d, maxval %d\n", info.Width, info.Height, info.MaxVal)
	if len(info.Comments) > 0 {
		printInfo("  Comments: %s\n", paint(dimStyle, strings.Join(info.Comments, " | ")))
	}
	printInfo("  Samples: %d\n", info.Dimension)
	printInfo("\nPrefix:\n")
	printInfo("  Length: %d bits\n", info.PrefixLength)
	if info.PayloadBits != nil {
		printInfo("  Payload: %s\n", paint(okStyle, fmt.Sprintf("%d bits (%d bytes)", *info.PayloadBits, *info.PayloadBits/8)))
	} else {
		printInfo("  Payload: %s\n", paint(warnStyle, "none"))
	}
	return nil
}
