package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/uistate/internal/dataset"
)

// RunBrowser runs the interactive browser until the user quits or ctx is
// cancelled. The filter session is always torn down on return.
func RunBrowser(
	ctx context.Context,
	records []dataset.Record,
	opts BrowserOptions,
	in io.Reader,
	out io.Writer,
) error {
	m, err := NewBrowserModel(ctx, records, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
