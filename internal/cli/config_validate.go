package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file, any --config overlay and HOLOCRON_* environment
overrides for syntax and semantic correctness:
- schema_version satisfies the supported range
- source.base_url is an absolute http(s) URL
- timeout, max_pages and requests_per_second are in range
- output format, log level and log format are known values`,
		Example: `  # Validate current configuration
  holocron config validate

  # Validate and show the effective settings
  holocron config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	// Parse errors are fatal here, unlike at startup.
	if _, err := config.Load(config.DefaultConfigPath()); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Base URL: %s\n", cfg.Source.BaseURL)
	cmd.Printf("  Timeout: %s\n", cfg.Source.Timeout)
	cmd.Printf("  Max pages: %d\n", cfg.Source.MaxPages)
	if cfg.Source.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", cfg.Source.RequestsPerSecond)
	} else {
		cmd.Println("  Requests per second: unlimited")
	}
	cmd.Printf("  Locale: %s\n", cfg.Display.Locale)
	cmd.Printf("  Output format: %s\n", cfg.Display.OutputFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
