package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dasher/internal/core"
)

// cellColors maps core.Color to ANSI 256 palette indices.
var cellColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// cellStyle returns the style a cell color is drawn with.
func cellStyle(c core.Color) lipgloss.Style {
	fg, ok := cellColors[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	style := lipgloss.NewStyle().Foreground(fg)
	if c == core.ColorBrightRed {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string. Consecutive
// cells of one color share a single style so each row needs few escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var segment strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		segment.Reset()
		current := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(cellStyle(current).Render(segment.String()))
				segment.Reset()
				current = cell.Color
			}
			segment.WriteRune(cell.Rune)
		}
		if segment.Len() > 0 {
			sb.WriteString(cellStyle(current).Render(segment.String()))
		}
	}
	return sb.String()
}
