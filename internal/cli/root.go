package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationInteractive marks commands that draw on the terminal and must
// never log to it.
const annotationInteractive = "holocron/interactive"

// NewRootCmd creates the root Cobra command for the holocron CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, search and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *loggingResult

	cmd := &cobra.Command{
		Use:     "holocron",
		Short:   "Browse, search and page through a remote character catalogue",
		Long:    "holocron fetches a cursor-paginated collection (SWAPI people by default), sorts it by name and lets you search and page through it.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			logResult = setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "overlay configuration file (sections replace those of the main config)")
	cmd.PersistentFlags().String("base-url", "", "collection URL to fetch (overrides source.base_url)")
	cmd.AddCommand(NewBrowseCmd(), NewSearchCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse characters interactively
  holocron browse

  # Search non-interactively and print the first page as a table
  holocron search skywalker

  # Second page of all characters as JSON, tallest first
  holocron search --page 2 --sort height:desc --output json

  # Use a different endpoint
  holocron search --base-url https://swapi.dev/api/people/ lu

  # Create the default configuration file
  holocron config init`

// loadConfig builds the effective configuration: defaults, the config file,
// the environment, the --config overlay and finally flags.
func loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		cmd.PrintErrf("Warning: ignoring configuration file: %v\n", err)
		cfg = config.Default()
		cfg.ApplyEnv()
	}

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err = config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config: %w", err)
		}
		// Environment still outranks any file.
		cfg.ApplyEnv()
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.Source.BaseURL = baseURL
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
