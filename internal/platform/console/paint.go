// Package console hosts the game directly on a tcell screen, without Bubble Tea.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Runes used to paint board cells.
const (
	blockRune = '█'
	headRune  = '▓'
	shadeRune = '░'
)

// colors maps core.Color to the same ANSI palette entries the Bubble Tea
// renderer uses.
var colors = map[core.Color]tcell.Color{
	core.ColorDefault:       tcell.ColorDefault,
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// Style returns the foreground style for a color.
func Style(c core.Color) tcell.Style {
	fg, ok := colors[c]
	if !ok {
		fg = tcell.ColorDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// Canvas is the part of tcell.Screen that painting needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
}

// Paint executes draw commands. Board cell (x, y) covers cellWidth
// columns starting at (x*cellWidth, y+top).
func Paint(s Canvas, cmds []snake.DrawCommand, cellWidth, top int) {
	for _, cmd := range cmds {
		r := cmd.Rect.Scale(cellWidth, 1).Offset(0, top)
		switch cmd.Kind {
		case snake.DrawBlock:
			fill := blockRune
			if cmd.Head {
				fill = headRune
			}
			fillRect(s, r, fill, Style(cmd.Color))
		case snake.DrawRect:
			fillRect(s, r, blockRune, Style(cmd.Color))
		case snake.DrawTint:
			tintRect(s, r, Style(cmd.Color))
		}
	}
}

func fillRect(s Canvas, r core.Rect, fill rune, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetContent(x, y, fill, nil, style)
		}
	}
}

// tintRect recolors what is already drawn; empty cells get a shade rune.
func tintRect(s Canvas, r core.Rect, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch, _, _, _ := s.GetContent(x, y)
			if ch == ' ' || ch == 0 {
				ch = shadeRune
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawText writes text on one row. Cells off screen are dropped by tcell.
func drawText(s Canvas, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
