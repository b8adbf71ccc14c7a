package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// Glyphs used on the board canvas.
const (
	runeDot    = '●'
	runeChosen = '◉'
	runeBurst  = '✶'
	runeFaded  = '·'
	runeLinkH  = '─'
	runeLinkV  = '│'
)

// glyphKind selects the style a canvas cell is drawn with.
type glyphKind uint8

const (
	glyphBlank glyphKind = iota
	glyphDot
	glyphChosen
	glyphLink
	glyphCursor
	glyphBurst
	glyphFaded
)

// Theme maps color ids to terminal styles. The engine only knows integer
// colors; everything visual lives here.
type Theme struct {
	dots   []lipgloss.Style
	chosen []lipgloss.Style
	links  []lipgloss.Style
	blank  lipgloss.Style
	cursor lipgloss.Style
	faded  lipgloss.Style

	Title  lipgloss.Style
	HUD    lipgloss.Style
	Loop   lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Board  lipgloss.Style
}

// NewTheme builds a theme from a palette of lipgloss color strings.
func NewTheme(palette []string) Theme {
	t := Theme{
		blank:  lipgloss.NewStyle(),
		cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		faded:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUD:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Loop:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}

	for _, c := range palette {
		color := lipgloss.Color(c)
		t.dots = append(t.dots, lipgloss.NewStyle().Foreground(color))
		t.chosen = append(t.chosen, lipgloss.NewStyle().Foreground(color).Bold(true).Reverse(true))
		t.links = append(t.links, lipgloss.NewStyle().Foreground(color).Bold(true))
	}
	return t
}

// style returns the style for a canvas cell.
func (t Theme) style(kind glyphKind, color dots.Color) lipgloss.Style {
	pick := func(styles []lipgloss.Style) lipgloss.Style {
		if color < 0 || int(color) >= len(styles) {
			return t.faded
		}
		return styles[color]
	}

	switch kind {
	case glyphDot, glyphBurst:
		return pick(t.dots)
	case glyphChosen:
		return pick(t.chosen)
	case glyphLink:
		return pick(t.links)
	case glyphCursor:
		return t.cursor
	case glyphFaded:
		return t.faded
	default:
		return t.blank
	}
}

// Swatch renders a single dot in the given color, for the HUD.
func (t Theme) Swatch(color dots.Color) string {
	return t.style(glyphDot, color).Render(string(runeDot))
}
