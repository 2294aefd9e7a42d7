package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allanrobert0203/tp/internal/app"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change the settings stored in config.toml.

Keys:
  app.prefs_file         preferences file, relative to the config directory
  app.log_file           log file used while the terminal UI runs
  storage.backend        json, sqlite or memory
  storage.on_load_error  empty (start with no candidates) or fail`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, _, err := app.OpenConfig(options())
	if err != nil {
		return err
	}

	cfg, err := svc.Get()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration (%s)\n", svc.Path())
	values := configValues(cfg)
	for _, key := range svc.Keys() {
		fmt.Fprintf(out, "  %-22s %s\n", key, values[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, _, err := app.OpenConfig(options())
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func configValues(cfg domain.AppConfig) map[string]string {
	return map[string]string{
		services.KeyPrefsFile:   cfg.PrefsFile,
		services.KeyLogFile:     cfg.LogFile,
		services.KeyBackend:     fmt.Sprintf("%s (%s)", cfg.Storage.Backend, cfg.Storage.Backend.Description()),
		services.KeyOnLoadError: cfg.Storage.OnLoadError.String(),
	}
}
