package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/uistate/internal/config"
	"github.com/rshade/uistate/internal/dataset"
	"github.com/rshade/uistate/internal/pagination"
	"github.com/rshade/uistate/internal/tui"
)

// BrowseFlags holds the flags of the browse command.
type BrowseFlags struct {
	Page     int
	PageSize int
	Debounce time.Duration
	Filter   string
	Sort     string
	Output   string
	NoTUI    bool
}

func newBrowseCmd() *cobra.Command {
	var flags BrowseFlags

	cmd := &cobra.Command{
		Use:   "browse FILE...",
		Short: "Page through the records of one or more dataset files",
		Long: `Load YAML or JSON sequences of mappings and page through them.

On a terminal an interactive browser opens: press / to edit the filter, which is
applied once typing pauses for the debounce delay. Otherwise the requested page
is printed in the selected output format.`,
		Example: `  uistate browse regions.yaml
  uistate browse regions.yaml --filter eu --debounce 300ms
  uistate browse regions.yaml --page 3 --page-size 20 --output yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.Page, "page", pagination.DefaultPage, "page to show (1-based)")
	cmd.Flags().IntVar(&flags.PageSize, "page-size", 0, "records per page (0 = use config)")
	cmd.Flags().DurationVar(&flags.Debounce, "debounce", 0, "filter debounce delay (default from config)")
	cmd.Flags().StringVar(&flags.Filter, "filter", "", "only show records containing this text")
	cmd.Flags().StringVar(&flags.Sort, "sort", "", "sort by field, as 'field' or 'field:asc|desc'")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", outputTable, "non-interactive output format: table, json or yaml")
	cmd.Flags().BoolVar(&flags.NoTUI, "no-tui", false, "print the page even when attached to a terminal")

	return cmd
}

// runBrowse loads the datasets and either runs the interactive browser or
// renders a single page.
func runBrowse(cmd *cobra.Command, args []string, flags BrowseFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	params := pagination.Params{
		Page:     flags.Page,
		PageSize: cfg.Browse.PageSize,
	}
	if cmd.Flags().Changed("page-size") {
		params.PageSize = flags.PageSize
	}

	field, order, err := pagination.ParseSort(flags.Sort)
	if err != nil {
		return err
	}
	params.SortField = field
	params.SortOrder = order
	if err := params.Validate(); err != nil {
		return err
	}

	delay := cfg.Browse.Debounce
	if cmd.Flags().Changed("debounce") {
		delay = flags.Debounce
	}

	format := strings.ToLower(flags.Output)
	if !isValidOutputFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, flags.Output)
	}

	records, err := dataset.LoadFiles(ctx, args...)
	if err != nil {
		return err
	}

	if params.SortField != "" {
		sorter := dataset.NewSorter(records)
		if !sorter.IsValidField(params.SortField) {
			return fmt.Errorf("%w: %q (valid: %s)", pagination.ErrInvalidSortField,
				params.SortField, strings.Join(sorter.GetValidFields(), ", "))
		}
		records = sorter.Sort(records, params.SortField, params.SortOrder)
	}

	logger.Debug().Ctx(ctx).
		Int("records", len(records)).
		Int("page", params.Page).
		Int("page_size", params.PageSize).
		Dur("debounce", delay).
		Msg("browse starting")

	if !flags.NoTUI && isInteractive(cmd) {
		return tui.RunBrowser(ctx, records, tui.BrowserOptions{
			Title:    strings.Join(args, ", "),
			PageSize: params.PageSize,
			Page:     params.Page,
			Debounce: delay,
			Filter:   flags.Filter,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	pager, err := pagination.NewPaginator(params, dataset.Filter(records, flags.Filter))
	if err != nil {
		return err
	}
	return renderPage(cmd.OutOrStdout(), format, pager)
}

// isInteractive reports whether both ends of the command are terminals.
func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isTerminal(in) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(out)
}
