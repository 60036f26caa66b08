package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/catalog"
	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/tui"
)

// Output formats.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

type searchOptions struct {
	page     int
	pageSize int
	sort     string
	output   string
	plain    bool
	color    bool
}

// SearchResult is the structured output of the search command.
type SearchResult struct {
	Query        string           `json:"query"`
	Pagination   pagination.Meta  `json:"pagination"`
	ExactMatches int              `json:"exact_matches"`
	BaselineSize int              `json:"baseline_size"`
	Results      []catalog.Entity `json:"results"`
	Suggestions  []string         `json:"suggestions,omitempty"`
}

// NewSearchCmd creates the non-interactive search command.
func NewSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalogue and print one page of results",
		Long: `Fetches the collection, ranks it against the query and prints one page.

Arguments are joined with single spaces to form the query. With no query the
whole catalogue is listed in name order. Results whose name starts with the
query come first; --sort re-orders the ranked results by a field instead.`,
		Example: `  holocron search sky
  holocron search --page 3
  holocron search blue --sort height:desc --output json
  holocron search --output ndjson | jq .name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", pagination.DefaultPage, "page number to print (1-based)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", pagination.DefaultPageSize,
		fmt.Sprintf("entities per page (%d-%d)", pagination.MinPageSize, pagination.MaxPageSize))
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort ranked results by field[:asc|desc] (name, gender, height, mass, birthYear, eyeColor)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json or ndjson (default from display.output_format)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable table styling")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style the table even when stdout is not a terminal")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	params, err := searchParams(opts)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = cfg.Display.OutputFormat
	}
	if !slices.Contains(config.ValidOutputFormats, output) {
		return fmt.Errorf("unsupported output format: %s", output)
	}

	client, err := newSourceClient(cfg)
	if err != nil {
		return err
	}
	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	sorter := catalog.NewFieldSorter(store.Comparator())
	if params.IsSorted() && !sorter.IsValidField(params.SortField) {
		return fmt.Errorf("invalid sort field %q (valid: %s)",
			params.SortField, strings.Join(sorter.GetValidFields(), ", "))
	}

	if err = catalog.NewLoader(client).LoadInto(ctx, store); err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}
	store.SetQuery(query)

	ranked := store.Ranking().Items
	if params.IsSorted() {
		ranked = sorter.Sort(ranked, params.SortField, params.SortOrder)
	}
	display := store.Display()

	result := SearchResult{
		Query:        query,
		Pagination:   pagination.MetaFor(*params, len(ranked)),
		ExactMatches: display.ExactMatches,
		BaselineSize: display.BaselineSize,
		Results:      pagination.Page(ranked, params.Page, params.PageSize),
		Suggestions:  display.Suggestions,
	}

	logger.Debug().Ctx(ctx).
		Str("query", query).
		Int("matches", result.Pagination.TotalItems).
		Int("page", params.Page).
		Msg("search complete")

	w := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		return renderJSON(w, result)
	case outputNDJSON:
		return renderNDJSON(w, result.Results)
	default:
		mode := tui.DetectOutputMode(opts.color, false, opts.plain)
		return renderSearchTable(w, cfg.Display.Title, result, display, mode != tui.OutputModePlain)
	}
}

func searchParams(opts searchOptions) (*pagination.Params, error) {
	params := pagination.NewParams()
	params.Page = opts.page
	params.PageSize = opts.pageSize

	field, order, err := pagination.ParseSort(opts.sort)
	if err != nil {
		return nil, fmt.Errorf("invalid --sort: %w", err)
	}
	params.SortField = field
	params.SortOrder = order

	if err = params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func renderJSON(w io.Writer, result SearchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderNDJSON(w io.Writer, entities []catalog.Entity) error {
	enc := json.NewEncoder(w)
	for _, e := range entities {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func renderSearchTable(w io.Writer, title string, result SearchResult, display catalog.Display, styled bool) error {
	header := title
	if styled {
		header = tui.TitleStyle.Render(title)
	}

	status := display
	status.Page = result.Pagination.CurrentPage
	status.TotalPages = result.Pagination.TotalPages

	var body string
	switch {
	case display.BaselineSize == 0:
		body = "The catalogue is empty."
	case display.NoMatches():
		body = tui.RenderNoMatches(display)
	case len(result.Results) == 0:
		body = fmt.Sprintf("Page %d is past the last page (%d).", result.Pagination.CurrentPage, result.Pagination.TotalPages)
	default:
		offset := (result.Pagination.CurrentPage - 1) * result.Pagination.PageSize
		body = tui.RenderTable(result.Results, offset, styled) + "\n" + tui.RenderStatusLine(status)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", header, body)
	return err
}
