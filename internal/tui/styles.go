package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorAccent = lipgloss.Color("63")
	ColorMuted  = lipgloss.Color("241")
	ColorOK     = lipgloss.Color("42")
	ColorWarn   = lipgloss.Color("214")
)

// Shared styles.
var (
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent) //nolint:gochecknoglobals // style table
	MutedStyle       = lipgloss.NewStyle().Foreground(ColorMuted)             //nolint:gochecknoglobals // style table
	KeyStyle         = lipgloss.NewStyle().Foreground(ColorAccent)            //nolint:gochecknoglobals // style table
	PendingStyle     = lipgloss.NewStyle().Foreground(ColorWarn).Italic(true) //nolint:gochecknoglobals // style table
	ActiveDotStyle   = lipgloss.NewStyle().Foreground(ColorOK)                //nolint:gochecknoglobals // style table
	InactiveDotStyle = lipgloss.NewStyle().Foreground(ColorMuted)             //nolint:gochecknoglobals // style table
)

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keyRight  = "right"
	keyLeft   = "left"
	keyPgDown = "pgdown"
	keyPgUp   = "pgup"
	keyL      = "l"
	keyH      = "h"
)

// Layout defaults before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)
