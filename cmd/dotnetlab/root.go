package main

import (
	"io"
	"strings"

	"github.com/phuslu/log"
	"github.com/pkg/errors"
	"github.com/r4dulf/DotNetLab2/internal/demo"
	"github.com/spf13/cobra"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

type config struct {
	logLevel string
	noColor  bool
}

func (c config) validate() error {
	for _, l := range logLevels {
		if strings.EqualFold(c.logLevel, l) {
			return nil
		}
	}
	return errors.Errorf("unknown log level %q, expected one of %s", c.logLevel, strings.Join(logLevels, ", "))
}

func newRootCommand() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:           "dotnetlab",
		Short:         "Print a walkthrough of the string, slice and association list helpers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			return demo.Run(cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "log level: "+strings.Join(logLevels, ", "))
	cmd.Flags().BoolVar(&cfg.noColor, "no-color", false, "disable colored log output")

	return cmd
}

// executeAndReport runs cmd and logs a failure to stderr exactly once
func executeAndReport(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil {
		logger := newLogger(stderr, config{logLevel: "error", noColor: true})
		logger.Error().Err(err).Msg("dotnetlab failed")
	}
	return err
}

func newLogger(w io.Writer, cfg config) log.Logger {
	return log.Logger{
		Level:      log.ParseLevel(strings.ToLower(cfg.logLevel)),
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput: !cfg.noColor,
			Writer:      w,
		},
	}
}
