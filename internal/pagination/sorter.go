package pagination

import (
	"sort"
)

// LessFunc reports whether a sorts before b in ascending order.
type LessFunc[T any] func(a, b T) bool

// Sorter sorts items by a named field.
type Sorter[T any] struct {
	fields map[string]LessFunc[T]
}

// NewSorter creates a Sorter with no sortable fields.
func NewSorter[T any]() *Sorter[T] {
	return &Sorter[T]{fields: make(map[string]LessFunc[T])}
}

// Register makes field sortable with the given ascending comparison.
func (s *Sorter[T]) Register(field string, less LessFunc[T]) *Sorter[T] {
	s.fields[field] = less
	return s
}

// IsValidField checks if the field is valid for sorting.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *Sorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields) // Return in consistent order
	return fields
}

// Sort sorts items by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *Sorter[T]) Sort(items []T, field, order string) []T {
	less, ok := s.fields[field]
	if !ok {
		return items
	}

	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
