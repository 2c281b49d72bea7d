// Package cmd implements the dcmscan command tree.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dicomscan/dicomscan/pkg/dicom/reader"
	"github.com/dicomscan/dicomscan/pkg/logging"
	"github.com/dicomscan/dicomscan/pkg/util"
)

type rootOptions struct {
	logLevel string
	logFile  string
	jsonLogs bool

	logger *slog.Logger
	runID  string
}

// NewRoot builds the dcmscan command tree.
func NewRoot() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dcmscan",
		Short:         "Parse DICOM files and assemble CT/MR scans",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			_ = level.UnmarshalText([]byte(opts.logLevel))

			out := os.Stderr
			if opts.logFile != "" {
				opts.logger = logging.Logger(logging.RotatingWriter(opts.logFile), opts.jsonLogs, level)
			} else {
				opts.logger = logging.Logger(out, opts.jsonLogs, level)
			}
			opts.runID = util.NewRunID()
			opts.logger = opts.logger.With("run_id", opts.runID)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "rotate logs to this file instead of stderr")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "emit logs as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newScanCmd(opts))
	root.AddCommand(newHUCmd(opts))
	root.AddCommand(newRoundtripCmd(opts))

	return root
}

func (o *rootOptions) reader() *reader.Reader {
	return reader.New(reader.WithLogger(o.logger))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dcmscan version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("dcmscan (development build)")
			return nil
		},
	}
}
