package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stegkit/internal/netpbm"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg"
	"github.com/joshuapare/stegkit/steg/hamming"
	"github.com/joshuapare/stegkit/steg/prefix"
)

var (
	capacitySize int
	capacityFile bool
)

func init() {
	rootCmd.AddCommand(newCapacityCmd())
}

func newCapacityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity <image>",
		Short: "Show how many bytes an image can hide per mode",
		Long: `The capacity command prints the largest payload each mode can hide in
<image>. With --size it also shows the Hamming code hide would choose for a
payload of that many bytes.

Example:
  stegctl capacity cover.ppm
  stegctl capacity cover.ppm --size 2048 --file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapacity(args)
		},
	}
	cmd.Flags().IntVarP(&capacitySize, "size", "s", 0, "Payload size in bytes to plan for")
	cmd.Flags().BoolVar(&capacityFile, "file", false, "Account for the stored file extension")
	return cmd
}

type capacityPlan struct {
	PayloadBits int    `json:"payload_bits"`
	Fits        bool   `json:"fits"`
	Mode        string `json:"mode"`
	Rows        int    `json:"rows,omitempty"`
	Columns     int    `json:"columns,omitempty"`
}

type capacityReport struct {
	Image        string         `json:"image"`
	Dimension    int            `json:"dimension"`
	PrefixLength int            `json:"prefix_length"`
	Bytes        map[string]int `json:"bytes"`
	Plan         *capacityPlan  `json:"plan,omitempty"`
}

func runCapacity(args []string) error {
	img, err := netpbm.Read(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	dimension := len(img.Pixels)

	rep := capacityReport{
		Image:        args[0],
		Dimension:    dimension,
		PrefixLength: prefix.Length(dimension),
		Bytes:        map[string]int{},
	}
	modes := []types.Mode{types.ModeSequential, types.ModeKeyed, types.ModeHamming}
	for _, m := range modes {
		rep.Bytes[m.String()] = steg.Capacity(dimension, m, capacityFile)
	}
	if capacitySize > 0 {
		rep.Plan = planFor(dimension, capacitySize)
	}

	if jsonOut {
		return printJSON(rep)
	}

	printInfo("%s: %d samples, %d-bit prefix\n\n", args[0], rep.Dimension, rep.PrefixLength)
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		rows = append(rows, []string{m.String(), strconv.Itoa(rep.Bytes[m.String()])})
	}
	printInfo("%s\n", renderTable([]string{"Mode", "Max bytes"}, rows))

	if p := rep.Plan; p != nil {
		printInfo("\nPlan for %d bytes (%d bits):\n", capacitySize, p.PayloadBits)
		switch {
		case !p.Fits:
			printInfo("  %s\n", paint(warnStyle, "does not fit in any mode"))
		case p.Rows > 0:
			printInfo("  %s hamming, %d bits per %d pixels\n", paint(okStyle, "fits:"), p.Rows, p.Columns)
		default:
			printInfo("  %s sequential only (hamming falls back)\n", paint(okStyle, "fits:"))
		}
	}
	return nil
}

func planFor(dimension, size int) *capacityPlan {
	bits := size * 8
	if capacityFile {
		bits += types.ExtensionSuffixBits
	}
	p := &capacityPlan{PayloadBits: bits, Mode: types.ModeSequential.String()}
	if prefix.Check(dimension, bits) != nil {
		return p
	}
	p.Fits = true
	rows, columns := hamming.BestSize(prefix.Capacity(dimension), bits)
	if columns > 2 {
		p.Mode, p.Rows, p.Columns = types.ModeHamming.String(), rows, columns
	}
	return p
}
