package pagination

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestNew_Defaults(t *testing.T) {
	p, err := New(seq(3))
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, p.CurrentPage())
	assert.Equal(t, DefaultPageSize, p.PageSize())
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 3, p.TotalItems())
	assert.Equal(t, []int{1, 2, 3}, p.PaginatedData())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "zero page size", opts: []Option{WithPageSize(0)}, wantErr: ErrInvalidPageSize},
		{name: "negative page size", opts: []Option{WithPageSize(-5)}, wantErr: ErrInvalidPageSize},
		{name: "zero initial page", opts: []Option{WithInitialPage(0)}, wantErr: ErrInvalidPage},
		{name: "negative initial page", opts: []Option{WithInitialPage(-1)}, wantErr: ErrInvalidPage},
		{name: "valid", opts: []Option{WithPageSize(1), WithInitialPage(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(seq(5), tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestPaginator_TwentyFiveItems(t *testing.T) {
	items := seq(25)
	p, err := New(items, WithPageSize(10), WithInitialPage(1))
	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalPages())

	p.NextPage()
	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.PaginatedData())

	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage())
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
}

func TestPaginator_EmptyDataset(t *testing.T) {
	p, err := New([]string{}, WithPageSize(10))
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, p.PaginatedData())
	assert.NotNil(t, p.PaginatedData())

	p.PrevPage()
	assert.Equal(t, 1, p.CurrentPage())

	p.NextPage()
	assert.Equal(t, 1, p.CurrentPage(), "empty dataset keeps the first page")
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrev())
}

func TestPaginator_NilDataset(t *testing.T) {
	p, err := New[int](nil)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalPages())
	assert.Equal(t, []int{}, p.PaginatedData())
}

func TestPaginator_SliceCorrectness(t *testing.T) {
	for length := 0; length <= 23; length++ {
		items := seq(length)
		for size := 1; size <= 7; size++ {
			pages := (length + size - 1) / size
			for page := 1; page <= pages+2; page++ {
				p, err := New(items, WithPageSize(size), WithInitialPage(page))
				require.NoError(t, err)

				start := min((page-1)*size, length)
				end := min(page*size, length)
				assert.Equal(t, items[start:end], p.PaginatedData(),
					"length=%d size=%d page=%d", length, size, page)
			}
		}
	}
}

func TestPaginator_NavigationBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for length := 0; length <= 30; length += 3 {
		for size := 1; size <= 8; size++ {
			p, err := New(seq(length), WithPageSize(size))
			require.NoError(t, err)

			for step := 0; step < 50; step++ {
				if rng.Intn(2) == 0 {
					p.NextPage()
				} else {
					p.PrevPage()
				}
				assert.GreaterOrEqual(t, p.CurrentPage(), 1)
				assert.LessOrEqual(t, p.CurrentPage(), max(p.TotalPages(), 1))
			}
		}
	}
}

func TestPaginator_PrevPage(t *testing.T) {
	p, err := New(seq(30), WithPageSize(10), WithInitialPage(3))
	require.NoError(t, err)

	p.PrevPage()
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, seq(20)[10:], p.PaginatedData())

	p.PrevPage()
	p.PrevPage()
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPaginator_DatasetShrinks(t *testing.T) {
	p, err := New(seq(50), WithPageSize(10), WithInitialPage(5))
	require.NoError(t, err)

	p.SetItems(seq(12))
	assert.Equal(t, 5, p.CurrentPage(), "replacing items does not move the page")
	assert.Equal(t, 2, p.TotalPages())
	assert.Empty(t, p.PaginatedData())

	p.NextPage()
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, []int{11, 12}, p.PaginatedData())
}

func TestPaginator_SetPageSize(t *testing.T) {
	p, err := New(seq(25), WithPageSize(10), WithInitialPage(2))
	require.NoError(t, err)

	require.NoError(t, p.SetPageSize(5))
	assert.Equal(t, 5, p.TotalPages())
	assert.Equal(t, []int{6, 7, 8, 9, 10}, p.PaginatedData())

	err = p.SetPageSize(0)
	require.ErrorIs(t, err, ErrInvalidPageSize)
	assert.Equal(t, 5, p.PageSize())
}

func TestPaginator_PageDataDoesNotAliasNextPage(t *testing.T) {
	items := seq(6)
	p, err := New(items, WithPageSize(3))
	require.NoError(t, err)

	page := p.PaginatedData()
	_ = append(page, 99)
	assert.Equal(t, 4, items[3])
}

func TestPaginator_Meta(t *testing.T) {
	p, err := New(seq(25), WithPageSize(10), WithInitialPage(2))
	require.NoError(t, err)

	assert.Equal(t, PaginationMeta{
		CurrentPage: 2,
		PageSize:    10,
		TotalPages:  3,
		TotalItems:  25,
		HasPrevious: true,
		HasNext:     true,
	}, p.Meta())
}

func TestPaginator_ExtremeValues(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		pageSize  int
		page      int
		wantPages int
		wantLen   int
	}{
		{name: "page far beyond data", items: 25, pageSize: 10, page: math.MaxInt / 5, wantPages: 3, wantLen: 0},
		{name: "max page", items: 25, pageSize: 10, page: math.MaxInt, wantPages: 3, wantLen: 0},
		{name: "max page size", items: 5, pageSize: math.MaxInt, page: 1, wantPages: 1, wantLen: 5},
		{name: "max page size second page", items: 5, pageSize: math.MaxInt, page: 2, wantPages: 1, wantLen: 0},
		{name: "max page and page size", items: 5, pageSize: math.MaxInt, page: math.MaxInt, wantPages: 1, wantLen: 0},
		{name: "max page size empty", items: 0, pageSize: math.MaxInt, page: 1, wantPages: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(seq(tt.items), WithPageSize(tt.pageSize), WithInitialPage(tt.page))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPages, p.TotalPages())
			assert.Equal(t, tt.wantPages, p.Meta().TotalPages)

			data := p.PaginatedData()
			require.NotNil(t, data)
			assert.Len(t, data, tt.wantLen)

			p.NextPage()
			assert.GreaterOrEqual(t, p.CurrentPage(), MinPage)
			assert.LessOrEqual(t, p.CurrentPage(), max(tt.wantPages, MinPage))
		})
	}
}
