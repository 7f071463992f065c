package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stegkit/internal/logger"
	"github.com/joshuapare/stegkit/pkg/types"
	"github.com/joshuapare/stegkit/steg"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	logDir     string
	logLevel   string
)

var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "stegctl",
	Short: "Hide data in the least-significant bits of PGM/PPM images",
	Long: `stegctl hides text or files in binary PGM (P5) and PPM (P6) images and
recovers them. Payloads can be placed sequentially, along a passphrase-keyed
pixel order, or with Hamming syndrome coding that changes fewer pixels.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "YAML profile with default mode, keys and logging")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write daily JSON logs to this directory")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// setup applies the --config profile to flags left at their defaults and
// initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		p, err := loadProfile(configPath)
		if err != nil {
			return err
		}
		if err := p.apply(cmd.Flags()); err != nil {
			return err
		}
	}

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	// Without --log-dir, records go to stderr only in verbose mode.
	closeLog, err = logger.Init(logger.Options{
		Enabled: logDir != "" || verbose,
		LogDir:  logDir,
		Level:   level,
	})
	return err
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to distinct statuses for scripts.
func exitCode(err error) int {
	switch types.KindOf(err) {
	case types.ErrKindCapacity:
		return 3
	case types.ErrKindCorrupt:
		return 4
	case types.ErrKindFormat:
		return 5
	default:
		return 1
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// codecFlags are the flags hide and reveal must agree on.
type codecFlags struct {
	mode       string
	key        string
	permuteKey string
}

func (f *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "sequential", "Embedding mode: sequential, keyed, hamming")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "Traversal passphrase (keyed mode)")
	cmd.Flags().StringVarP(&f.permuteKey, "permute-key", "p", "", "Passphrase that scrambles the payload bit order")
}

func (f *codecFlags) options() (steg.Options, error) {
	mode, err := types.ParseMode(f.mode)
	if err != nil {
		return steg.Options{}, err
	}
	return steg.Options{
		Mode:           mode,
		TraversalKey:   f.key,
		PermutationKey: f.permuteKey,
		Logger:         logger.L,
	}, nil
}
