package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Runes used to paint board cells.
const (
	BlockRune = '█'
	HeadRune  = '▓'
	ShadeRune = '░'
)

// ansiColors maps core.Color to its ANSI palette index. Colors missing here
// render unstyled.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var plain = lipgloss.NewStyle()

func styleFor(c core.Color) lipgloss.Style {
	code, ok := ansiColors[c]
	if !ok {
		return plain
	}
	return plain.Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string, one line per
// row. Each same-colored run on a row is styled once.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	runes := make([]rune, 0, s.Width())
	for y := range rows {
		var line strings.Builder
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			runes = runes[:0]
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				runes = append(runes, s.GetCell(x, y).Rune)
			}
			if color == core.ColorDefault {
				line.WriteString(string(runes))
				continue
			}
			line.WriteString(styleFor(color).Render(string(runes)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// Paint executes draw commands on dst. Board cell (x, y) covers cellWidth
// screen columns starting at (x*cellWidth, y+top).
func Paint(dst *core.Screen, cmds []snake.DrawCommand, cellWidth, top int) {
	for _, cmd := range cmds {
		r := cmd.Rect.Scale(cellWidth, 1).Offset(0, top)
		switch cmd.Kind {
		case snake.DrawBlock:
			fill := BlockRune
			if cmd.Head {
				fill = HeadRune
			}
			dst.DrawRect(r, fill, cmd.Color)
		case snake.DrawRect:
			dst.DrawRect(r, BlockRune, cmd.Color)
		case snake.DrawTint:
			dst.Tint(r, ShadeRune, cmd.Color)
		}
	}
}
