package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/catalog"
	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/source"
	"github.com/rshade/holocron/internal/tui"
)

// ErrNotInteractive is returned by browse when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("browse needs an interactive terminal; use 'holocron search' instead")

// progressBuffer is the number of undelivered progress snapshots kept;
// older ones are dropped rather than blocking the fetch.
const progressBuffer = 8

// NewBrowseCmd creates the interactive browse command.
func NewBrowseCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalogue interactively",
		Long: `Opens a full-screen browser. The collection is fetched once, sorted by name,
and filtered as you type: entities whose name starts with the query come first,
followed by entities matching on name, gender, height or eye colour.`,
		Example: `  holocron browse
  holocron browse --query sky`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsInteractiveTerminal() {
				return ErrNotInteractive
			}
			return runBrowse(cmd, query)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "initial search query")
	return cmd
}

func runBrowse(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	progress := make(chan source.ProgressSnapshot, progressBuffer)
	client, err := newSourceClient(cfg, source.WithProgressCallback(func(s source.ProgressSnapshot) {
		select {
		case progress <- s:
		default:
		}
	}))
	if err != nil {
		return err
	}
	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	model := tui.NewBrowseModel(ctx, catalog.NewLoader(client), store,
		tui.WithTitle(cfg.Display.Title),
		tui.WithProgress(progress),
		tui.WithInitialQuery(query),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	// Leaving from the error screen still reports the failure.
	if d := model.Display(); d.Failed() {
		return fmt.Errorf("loading catalogue: %w", d.Err)
	}
	return nil
}
