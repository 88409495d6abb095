package pagination

import "fmt"

// Option configures a Paginator.
type Option func(*options)

type options struct {
	pageSize    int
	initialPage int
}

// WithPageSize sets the number of items per page.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

// WithInitialPage sets the 1-based page the paginator starts on.
func WithInitialPage(page int) Option {
	return func(o *options) {
		o.initialPage = page
	}
}

// Paginator holds the current page over a dataset it does not own.
// It is not safe for concurrent use.
type Paginator[T any] struct {
	items       []T
	pageSize    int
	currentPage int
}

// New creates a Paginator over items, starting on DefaultPage with
// DefaultPageSize items per page unless overridden.
// It returns ErrInvalidPageSize if the page size is not positive and
// ErrInvalidPage if the initial page is below MinPage.
func New[T any](items []T, opts ...Option) (*Paginator[T], error) {
	o := options{
		pageSize:    DefaultPageSize,
		initialPage: DefaultPage,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.pageSize < MinPageSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, o.pageSize)
	}
	if o.initialPage < MinPage {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, o.initialPage)
	}

	return &Paginator[T]{
		items:       items,
		pageSize:    o.pageSize,
		currentPage: o.initialPage,
	}, nil
}

// CurrentPage returns the 1-based active page.
func (p *Paginator[T]) CurrentPage() int {
	return p.currentPage
}

// PageSize returns the number of items per page.
func (p *Paginator[T]) PageSize() int {
	return p.pageSize
}

// Items returns the full dataset.
func (p *Paginator[T]) Items() []T {
	return p.items
}

// TotalItems returns the dataset length.
func (p *Paginator[T]) TotalItems() int {
	return len(p.items)
}

// TotalPages returns ceil(len(items) / pageSize), which is 0 for an empty
// dataset.
func (p *Paginator[T]) TotalPages() int {
	return pageCount(len(p.items), p.pageSize)
}

// pageCount returns ceil(n / size) without overflowing for sizes near
// math.MaxInt. size must be positive.
func pageCount(n, size int) int {
	pages := n / size
	if n%size != 0 {
		pages++
	}
	return pages
}

// PaginatedData returns the items on the current page. The result is empty,
// not nil, when the current page lies beyond the data.
// The returned slice shares storage with the dataset but has its capacity
// capped, so appending to it never overwrites the following page.
func (p *Paginator[T]) PaginatedData() []T {
	// Compare page indexes before multiplying so huge pages cannot wrap.
	if p.currentPage-1 >= p.TotalPages() {
		return []T{}
	}
	start := (p.currentPage - 1) * p.pageSize
	end := start + min(p.pageSize, len(p.items)-start)
	return p.items[start:end:end]
}

// NextPage advances to the following page, stopping at the last page.
// With an empty dataset the current page stays at MinPage.
func (p *Paginator[T]) NextPage() {
	total := p.TotalPages()
	if total == 0 {
		p.currentPage = MinPage
		return
	}
	if p.currentPage >= total {
		p.currentPage = total
		return
	}
	p.currentPage++
}

// PrevPage moves to the preceding page, stopping at MinPage.
func (p *Paginator[T]) PrevPage() {
	p.currentPage = max(p.currentPage-1, MinPage)
}

// HasNext reports whether NextPage would move forward.
func (p *Paginator[T]) HasNext() bool {
	return p.currentPage < p.TotalPages()
}

// HasPrev reports whether PrevPage would move back.
func (p *Paginator[T]) HasPrev() bool {
	return p.currentPage > MinPage
}

// SetItems replaces the dataset. The current page is left untouched; a page
// beyond the new data yields an empty slice until navigation brings it back.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
}

// SetPageSize changes the number of items per page.
func (p *Paginator[T]) SetPageSize(n int) error {
	if n < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	p.pageSize = n
	return nil
}

// Meta returns the metadata describing the current view.
func (p *Paginator[T]) Meta() PaginationMeta {
	return NewPaginationMeta(p.currentPage, p.pageSize, len(p.items))
}
