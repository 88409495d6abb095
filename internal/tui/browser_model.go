package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/uistate/internal/dataset"
	"github.com/rshade/uistate/internal/debounce"
	"github.com/rshade/uistate/internal/logging"
	"github.com/rshade/uistate/internal/pagination"
)

// ViewState is the interaction mode of the browser.
type ViewState int

// Browser view states.
const (
	ViewStateList ViewState = iota
	ViewStateFilter
	ViewStateQuitting
)

// BrowserOptions configures a BrowserModel.
type BrowserOptions struct {
	Title    string
	PageSize int
	Page     int
	Debounce time.Duration
	Filter   string
}

// BrowserModel is the Bubble Tea model for paging through records with a
// debounced filter.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	state ViewState
	title string

	// all is the unfiltered dataset; rows pages over the filtered view.
	all      []dataset.Record
	rows     *pagination.Paginator[dataset.Record]
	pageSize int

	filter    *debounce.Tracker[string]
	textInput textinput.Model
	indicator paginator.Model

	width  int
	height int

	logger zerolog.Logger
}

// NewBrowserModel creates a browser over records. The initial filter is
// applied immediately; later edits go through the debounce tracker.
func NewBrowserModel(ctx context.Context, records []dataset.Record, opts BrowserOptions) (BrowserModel, error) {
	if opts.PageSize == 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.Page == 0 {
		opts.Page = pagination.DefaultPage
	}

	rows, err := pagination.New(
		dataset.Filter(records, opts.Filter),
		pagination.WithPageSize(opts.PageSize),
		pagination.WithInitialPage(opts.Page),
	)
	if err != nil {
		return BrowserModel{}, fmt.Errorf("creating paginator: %w", err)
	}

	m := BrowserModel{
		state:     ViewStateList,
		title:     opts.Title,
		all:       records,
		rows:      rows,
		pageSize:  opts.PageSize,
		filter:    debounce.NewTracker(opts.Filter, opts.Debounce),
		textInput: newFilterInput(opts.Filter),
		indicator: newIndicator(),
		width:     defaultWidth,
		height:    defaultHeight,
		logger:    logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
	}
	return m, nil
}

func newFilterInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "type to filter records"
	ti.CharLimit = 256
	ti.SetValue(value)
	return ti
}

func newIndicator() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = ActiveDotStyle.Render("•")
	p.InactiveDot = InactiveDotStyle.Render("•")
	return p
}

// Init initializes the model (Bubble Tea interface).
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case debounce.CommitMsg:
		if m.filter.Update(msg) {
			m.applyFilter(m.filter.Value())
		}
		return m, nil
	case tea.KeyMsg:
		if m.state == ViewStateFilter {
			return m.handleFilterKey(msg)
		}
		return m.handleListKey(msg)
	}

	if m.state == ViewStateFilter {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowserModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		return m.quit()
	case keyEnter, keyEsc:
		m.state = ViewStateList
		m.textInput.Blur()
		return m, nil
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if after := m.textInput.Value(); after != before {
		return m, tea.Batch(cmd, m.filter.Observe(after))
	}
	return m, cmd
}

func (m BrowserModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keySlash:
		m.state = ViewStateFilter
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			return m, m.filter.Observe("")
		}
		return m, nil
	case keyRight, keyL, keyPgDown:
		m.rows.NextPage()
		return m, nil
	case keyLeft, keyH, keyPgUp:
		m.rows.PrevPage()
		return m, nil
	}
	return m, nil
}

// quit tears down the filter session so no commit lands after exit.
func (m BrowserModel) quit() (tea.Model, tea.Cmd) {
	m.filter.Close()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

// applyFilter starts a fresh pagination session over the records matching
// query, so results are always shown from the first page.
func (m *BrowserModel) applyFilter(query string) {
	rows, err := pagination.New(dataset.Filter(m.all, query), pagination.WithPageSize(m.pageSize))
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to repaginate filtered records")
		return
	}
	m.rows = rows
	m.logger.Debug().
		Str("filter", query).
		Int("matches", rows.TotalItems()).
		Msg("filter applied")
}

// Close releases the filter session. It is safe to call more than once.
func (m BrowserModel) Close() {
	m.filter.Close()
}

// State returns the current view state.
func (m BrowserModel) State() ViewState {
	return m.state
}

// Page returns the paginator backing the current view.
func (m BrowserModel) Page() *pagination.Paginator[dataset.Record] {
	return m.rows
}

// FilterValue returns the committed filter text.
func (m BrowserModel) FilterValue() string {
	return m.filter.Value()
}
