package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"reactor.de/timehandler/internal/infra/config"
	"reactor.de/timehandler/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigValidateCmd(), newConfigSetCmd(), newConfigPathCmd())
	return cmd
}

// config validate
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the syntax and schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := getApp(cmd).Loader
			name := filepath.Base(loader.Path())

			ui.Action("Validating %s", loader.Path())
			data, err := os.ReadFile(loader.Path())
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%s not found, run 'timehandler config set' to create it", name)
			}
			if err != nil {
				return fmt.Errorf("could not read %s: %w", name, err)
			}
			if err := loader.Validate(data); err != nil {
				return err
			}
			ui.Success("%s is valid", name)

			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			if cfg.Timezone == "" {
				ui.Info("No timezone configured, the host's local zone is used")
			}
			return nil
		},
	}
}

// config set
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value in the configuration file, keeping comments",
		Example: `  timehandler config set timezone Europe/London
  timehandler config set formats.date "%d.%m.%Y"`,
		ValidArgs: config.SettableKeys,
		Args:      cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx := getApp(cmd)
			loader := appCtx.Loader
			_, statErr := os.Stat(loader.Path())
			if err := appCtx.Writer.Set(args[0], args[1]); err != nil {
				return err
			}
			if errors.Is(statErr, fs.ErrNotExist) {
				ui.Info("Created %s", loader.Path())
			}
			ui.Success("Set %s to %q in %s", args[0], args[1], loader.Path())
			return nil
		},
	}
}

// config path
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), getApp(cmd).Loader.Path())
			return err
		},
	}
}
