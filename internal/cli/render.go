package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/uistate/internal/dataset"
	"github.com/rshade/uistate/internal/pagination"
)

// Output formats for non-interactive browsing.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// ErrUnknownOutputFormat is returned for an unsupported --output value.
var ErrUnknownOutputFormat = errors.New("unknown output format (use table, json or yaml)")

var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // shared number formatter

func isValidOutputFormat(format string) bool {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return true
	default:
		return false
	}
}

// pageOutput is the JSON and YAML document for one page.
type pageOutput struct {
	Records    []map[string]string       `json:"records"    yaml:"records"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

func newPageOutput(pager *pagination.Paginator[dataset.Record]) pageOutput {
	page := pager.PaginatedData()
	out := pageOutput{
		Records:    make([]map[string]string, len(page)),
		Pagination: pager.Meta(),
	}
	for i, r := range page {
		out.Records[i] = r.Map()
	}
	return out
}

func renderPage(w io.Writer, format string, pager *pagination.Paginator[dataset.Record]) error {
	switch format {
	case outputJSON:
		return renderPageJSON(w, pager)
	case outputYAML:
		return renderPageYAML(w, pager)
	default:
		return renderPageTable(w, pager)
	}
}

// renderPageJSON renders the current page and its metadata as JSON.
func renderPageJSON(w io.Writer, pager *pagination.Paginator[dataset.Record]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newPageOutput(pager))
}

// renderPageYAML renders the current page and its metadata as YAML.
func renderPageYAML(w io.Writer, pager *pagination.Paginator[dataset.Record]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // YAML indent.
	if err := enc.Encode(newPageOutput(pager)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// renderPageTable renders the current page as an aligned table followed by a
// page summary.
func renderPageTable(w io.Writer, pager *pagination.Paginator[dataset.Record]) error {
	page := pager.PaginatedData()
	meta := pager.Meta()

	if len(page) == 0 {
		fmt.Fprintln(w, "No records on this page")
	} else {
		columns := dataset.Columns(page)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.

		headers := make([]string, len(columns))
		for i, c := range columns {
			headers[i] = strings.ToUpper(c)
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))

		for _, r := range page {
			cells := make([]string, len(columns))
			for i, c := range columns {
				v, ok := r.Get(c)
				if !ok {
					v = "-"
				}
				cells[i] = v
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	_, err := printer.Fprintf(w, "Page %d of %d (%d records)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	return err
}
