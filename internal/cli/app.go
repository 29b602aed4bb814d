// Package cli defines the carline commands.
package cli

import (
	gocontext "context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/carline/internal/config"
	"github.com/example/carline/internal/logging"
	"github.com/example/carline/internal/wire"
)

// NewContext returns the root context for a command.
func NewContext() gocontext.Context {
	return gocontext.Background()
}

// addAppFlags registers the flags shared by commands that build an App.
// Flags override values from the config file.
func addAppFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", ".", "Directory holding .carline/config.json")
	cmd.Flags().String("backend", "", "Storage backend (memory|sqlite)")
	cmd.Flags().String("log-level", "", "Log level (debug|info|warn|error)")
	cmd.Flags().String("log-format", "", "Log format (auto|console|json)")
	cmd.Flags().StringSlice("line", nil, "Line id to show (repeatable)")
}

// loadConfig reads the config file named by --dir and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Backend = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := cmd.Flags().GetStringSlice("line"); len(v) > 0 {
		cfg.Lines = v
	}
	if cmd.Flags().Lookup("listen") != nil {
		if v, _ := cmd.Flags().GetString("listen"); v != "" {
			cfg.Listen = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildApp loads config, creates the logger on logOut and assembles the App.
func buildApp(cmd *cobra.Command, logOut io.Writer) (*wire.App, zerolog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger, err := logging.New(logOut, cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	a, err := wire.New(cfg, logger)
	if err != nil {
		return nil, logger, fmt.Errorf("failed to start: %w", err)
	}
	return a, logger, nil
}
