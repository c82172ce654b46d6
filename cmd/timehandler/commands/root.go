package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/app"
	"reactor.de/timehandler/internal/domain"
	"reactor.de/timehandler/internal/infra/clock"
	"reactor.de/timehandler/internal/infra/config"
	"reactor.de/timehandler/internal/infra/logging"
	"reactor.de/timehandler/internal/pathutil"
	"reactor.de/timehandler/internal/ui"
)

// AppContext holds all the dependencies for the application.
// It is attached to the command's context for access in RunE functions.
type AppContext struct {
	Service *app.Service
	Config  *domain.Config
	Loader  *config.YAMLConfigLoader
	Writer  domain.ConfigWriter
}

var appContextKey = &struct{}{}

// newClock is swapped by tests to pin the time.
var newClock = clock.NewService

type fileLogger interface {
	domain.Logger
	io.Closer
}

// newFileLogger is swapped by tests to observe when the log file is closed.
var newFileLogger = func(path string) (fileLogger, error) {
	l, err := logging.NewFileLogger(path)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// session holds what a single run opens and must release afterwards,
// whether or not the command succeeded.
type session struct {
	closers []io.Closer
}

func (s *session) onClose(c io.Closer) {
	s.closers = append(s.closers, c)
}

func (s *session) close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// run executes cmd and releases the session. The command's error wins
// over a close error.
func (s *session) run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if closeErr := s.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(version string, s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timehandler",
		Short: "Print, parse and compare dates in any IANA timezone",
		Long: ui.Banner(version) + `
timehandler prints the current date and time in the formats used by
documents and log files, parses dates back, and computes differences
between dates. Every command accepts --tz with an IANA timezone name
such as Europe/London; without it the configured default or the host's
local zone is used.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Do not run dependency injection for help or completion.
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			flagPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			configPath, err := pathutil.ConfigPath(flagPath)
			if err != nil {
				return fmt.Errorf("could not determine config file location: %w", err)
			}

			loader := config.NewYAMLConfigLoader(configPath)
			appCtx := &AppContext{
				Loader: loader,
				Writer: config.NewYAMLConfigUpdater(configPath, loader),
			}

			// Config subcommands inspect or repair the file, so they must run
			// even when it does not load.
			if isConfigCommand(cmd) {
				cmd.SetContext(context.WithValue(cmd.Context(), appContextKey, appCtx))
				return nil
			}

			cfg, err := appCtx.Loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Dependency Injection
			var logger domain.Logger = logging.NopLogger{}
			if cfg.LogFile != "" {
				fl, err := newFileLogger(cfg.LogFile)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				s.onClose(fl)
				logger = fl
			}
			clk := newClock()
			if cfg.NTPServer != "" {
				clk = clock.NewNTPService(clk, cfg.NTPServer, logger)
			}
			appCtx.Config = cfg
			appCtx.Service = app.NewService(clk, logger, cfg)

			ctx := context.WithValue(cmd.Context(), appContextKey, appCtx)
			cmd.SetContext(ctx)

			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (env: "+pathutil.ConfigEnv+")")
	rootCmd.PersistentFlags().String("tz", "", "IANA timezone, e.g. Europe/London (default: configured zone or local)")

	// Add subcommands
	rootCmd.AddCommand(
		newNowCmd(),
		newDateCmd(),
		newTimeCmd(),
		newDocxCmd(),
		newTimestampCmd(),
		newLogstampCmd(),
		newParseCmd(),
		newFormatCmd(),
		newDiffCmd(),
		newZoneCmd(),
		newNTPCmd(),
		newDemoCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute(version string) error {
	var s session
	return s.run(newRootCmd(version, &s))
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}
