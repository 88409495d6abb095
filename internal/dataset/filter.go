package dataset

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/rshade/uistate/internal/pagination"
)

// Filter returns the records with at least one field key or value containing
// query, compared case-insensitively with Unicode case folding. An empty or
// blank query returns records unchanged.
func Filter(records []Record, query string) []Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(query)

	filtered := []Record{}
	for _, r := range records {
		if matches(fold, r, needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matches(fold cases.Caser, r Record, needle string) bool {
	for _, f := range r.Fields {
		if strings.Contains(fold.String(f.Value), needle) ||
			strings.Contains(fold.String(f.Key), needle) {
			return true
		}
	}
	return false
}

// NewSorter returns a pagination.Sorter that can order records by any field
// present in records. Numeric values compare numerically; records missing the
// field sort first.
func NewSorter(records []Record) *pagination.Sorter[Record] {
	sorter := pagination.NewSorter[Record]()
	for _, col := range Columns(records) {
		sorter.Register(col, func(a, b Record) bool {
			va, _ := a.Get(col)
			vb, _ := b.Get(col)
			return compareValues(va, vb) < 0
		})
	}
	return sorter
}
