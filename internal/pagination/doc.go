// Package pagination provides page-based navigation over in-memory datasets.
//
// This package contains the pagination logic shared by the browse command and
// the interactive browser, including:
//   - Paginator: 1-indexed page state with clamped next/previous navigation
//   - Params: page, page-size and sort flags with validation
//   - PaginationMeta: response metadata for a paginated view
//   - Sorter: generic field-keyed sorting with field validation
//
// Total pages and the visible slice are derived from the dataset, the page size
// and the current page on every read, so replacing the dataset or changing the
// page size never leaves stale derived state behind.
package pagination
