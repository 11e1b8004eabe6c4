package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-submarine/internal/core"
)

// foregrounds maps core.Color to ANSI/256 color codes.
var foregrounds = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorBrown:        "94",
	core.ColorGray:         "245",
}

// Palette holds one lipgloss style per cell color.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds a palette painting every cell over the given background.
// An empty background keeps the terminal's own.
func NewPalette(background string) Palette {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}

	styles := make(map[core.Color]lipgloss.Style, len(foregrounds)+1)
	styles[core.ColorDefault] = base
	for c, fg := range foregrounds {
		styles[c] = base.Foreground(lipgloss.Color(fg))
	}
	return Palette{styles: styles}
}

// seaPalette paints the playfield over deep water.
var seaPalette = NewPalette("17")

// RenderScreen converts a Screen buffer to a styled string using the sea palette.
func RenderScreen(s *core.Screen) string {
	return seaPalette.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[color]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
