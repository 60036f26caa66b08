package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration as YAML after files, environment and flags are applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  holocron config show
  HOLOCRON_TIMEOUT=5s holocron config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GetGlobalConfig().ToYAML()
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
