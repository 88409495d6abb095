package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/uistate/internal/dataset"
)

// maxDotPages is the page count above which the indicator switches from dots
// to "n/m".
const maxDotPages = 20

var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // shared number formatter

// View renders the browser (Bubble Tea interface).
func (m BrowserModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var b strings.Builder

	title := m.title
	if title == "" {
		title = "uistate"
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")

	page := m.rows.PaginatedData()
	if len(page) == 0 {
		b.WriteString(MutedStyle.Render("No records to show"))
		b.WriteString("\n")
	}
	line := lipgloss.NewStyle().MaxWidth(m.width)
	for _, r := range page {
		b.WriteString(line.Render(renderRecord(r)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("←/h prev • →/l next • / filter • esc clear • q quit"))
	return b.String()
}

func (m BrowserModel) renderFilterLine() string {
	var line string
	switch {
	case m.state == ViewStateFilter:
		line = m.textInput.View()
	case m.textInput.Value() != "":
		line = "Filter: " + m.textInput.Value()
	default:
		line = MutedStyle.Render("Press / to filter")
	}

	if m.filter.Pending() {
		line += " " + PendingStyle.Render("(updating…)")
	}
	return line
}

func (m BrowserModel) renderFooter() string {
	total := m.rows.TotalPages()
	summary := printer.Sprintf("Page %d of %d · %d records", m.rows.CurrentPage(), total, m.rows.TotalItems())
	return m.pageIndicator() + "  " + MutedStyle.Render(summary)
}

// pageIndicator renders the bubbles paginator for the current page.
func (m BrowserModel) pageIndicator() string {
	p := m.indicator
	p.TotalPages = max(m.rows.TotalPages(), 1)
	p.Page = min(m.rows.CurrentPage(), p.TotalPages) - 1
	if p.TotalPages > maxDotPages {
		p.Type = paginator.Arabic
	}
	return p.View()
}

func renderRecord(r dataset.Record) string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = KeyStyle.Render(f.Key+"=") + f.Value
	}
	return strings.Join(parts, "  ")
}
