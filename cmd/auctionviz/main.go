package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudx-io/auctionviz/config"
	"github.com/cloudx-io/auctionviz/logging"
)

var version = "0.1.0-dev"

// Exit codes
const (
	exitOK      = 0
	exitInvalid = 1 // validation failed
	exitError   = 2 // invalid input or runtime error
)

// exitCodeError carries a specific exit code out of a command.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

// app holds what every subcommand needs once the persistent flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	format string
	out    io.Writer
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

func exitCode(err error) int {
	var coded *exitCodeError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}

	rootCmd := &cobra.Command{
		Use:   "auctionviz",
		Short: "Replay, chart and validate jewel auction games",
		Long: `auctionviz drives recorded jewel auction games through the step controller
and derives the analytics a renderer needs: phase-sampled score and income
series, the live score line, standings and a history fingerprint.

Recordings are JSON or CBOR files holding either a bare snapshot array or a
{"kinds": [...], "history": [...]} object.

Exit Codes:
  0 - Success
  1 - Validation failed
  2 - Invalid input or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			format, _ := cmd.Flags().GetString("format")
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format: %s (must be text or json)", format)
			}

			a.cfg = cfg
			a.format = format
			a.logger = logging.NewLogger(cfg.Logging.Level, stderr)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug, or trace")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text or json")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newReportCmd(a),
		newValidateCmd(a),
		newReplayCmd(a),
		newConvertCmd(a),
	)
	return rootCmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.format == "json" {
				return writeJSON(a.out, map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(a.out, "auctionviz version %s\n", version)
			return err
		},
	}
}
