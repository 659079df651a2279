package tui

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// Rows reserved around the board: the HUD above and the help footer below.
const (
	hudRows    = 1
	footerRows = 1
)

// RequiredSize returns the terminal size needed to show a board.
func RequiredSize(boardW, boardH, cellWidth int) (w, h int) {
	return boardW * cellWidth, boardH + hudRows + footerRows
}

// FitBoard returns the largest board that fits a terminal, never smaller
// than the minimum playable board.
func FitBoard(termW, termH, cellWidth int) (w, h int) {
	w = termW / max(cellWidth, 1)
	h = termH - hudRows - footerRows
	return max(w, snake.MinWidth), max(h, snake.MinHeight)
}
