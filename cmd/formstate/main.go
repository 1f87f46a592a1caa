package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// errInvalid signals a completed run whose findings should fail the process.
var errInvalid = errors.New("formstate: value is invalid")

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "formstate: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	logger *log.Logger
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:           "formstate",
		Short:         "Evaluate schema-driven editor state",
		Long:          "Inspect values against JSON Schema or OpenAPI documents: validation messages, conditional visibility, titles and defaults.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd, a.stderr)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		a.checkCmd(),
		a.defaultsCmd(),
		a.lintCmd(),
	)
	return root
}

func newLogger(cmd *cobra.Command, w io.Writer) (*log.Logger, error) {
	rawLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-json flag: %w", err)
	}

	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(rawLevel)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", rawLevel)
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "formstate",
	}
	if asJSON {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}
