package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DrawRequest is everything a renderer needs to show one frame.
// It is a value copy; holding on to it never aliases game state.
type DrawRequest struct {
	Width, Height int
	Snake         []Cell // Head first
	Food          Cell
	HasFood       bool
	Border        [4]core.Rect // Top, bottom, left, right
	GameOver      bool
	Overlay       core.Rect // Whole board; meaningful only when GameOver
}

// DrawRequest assembles the current frame without mutating the game.
func (g *Game) DrawRequest() DrawRequest {
	w, h := g.width, g.height
	return DrawRequest{
		Width:   w,
		Height:  h,
		Snake:   g.snake.Body(),
		Food:    g.food,
		HasFood: g.hasFood,
		Border: [4]core.Rect{
			core.NewRect(0, 0, w, 1),
			core.NewRect(0, h-1, w, 1),
			core.NewRect(0, 0, 1, h),
			core.NewRect(w-1, 0, 1, h),
		},
		GameOver: g.phase == PhaseGameOver,
		Overlay:  core.NewRect(0, 0, w, h),
	}
}

// Palette assigns colors to the drawable elements.
type Palette struct {
	Snake   core.Color
	Food    core.Color
	Border  core.Color
	Overlay core.Color
}

// DefaultPalette returns the colors used when no configuration overrides them.
func DefaultPalette() Palette {
	return Palette{
		Snake:   core.ColorBrightGreen,
		Food:    core.ColorBrightRed,
		Border:  core.ColorBlue,
		Overlay: core.ColorRed,
	}
}

// DrawKind selects the primitive a DrawCommand asks for.
type DrawKind int

const (
	// DrawBlock fills the single cell at Rect.X, Rect.Y.
	DrawBlock DrawKind = iota
	// DrawRect fills the whole rectangle.
	DrawRect
	// DrawTint recolors what is already inside the rectangle.
	DrawTint
)

// DrawCommand is one request to the renderer, in board coordinates.
type DrawCommand struct {
	Kind  DrawKind
	Rect  core.Rect
	Color core.Color
	Head  bool // Set on the block for the snake's head
}

// Commands flattens the request into an ordered command list:
// border, food, snake from tail to head, then the game-over tint.
func (r DrawRequest) Commands(p Palette) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(r.Border)+len(r.Snake)+2)

	for _, b := range r.Border {
		cmds = append(cmds, DrawCommand{Kind: DrawRect, Rect: b, Color: p.Border})
	}

	if r.HasFood {
		cmds = append(cmds, DrawCommand{
			Kind:  DrawBlock,
			Rect:  core.NewRect(r.Food.X, r.Food.Y, 1, 1),
			Color: p.Food,
		})
	}

	for i := len(r.Snake) - 1; i >= 0; i-- {
		seg := r.Snake[i]
		cmds = append(cmds, DrawCommand{
			Kind:  DrawBlock,
			Rect:  core.NewRect(seg.X, seg.Y, 1, 1),
			Color: p.Snake,
			Head:  i == 0,
		})
	}

	if r.GameOver {
		cmds = append(cmds, DrawCommand{Kind: DrawTint, Rect: r.Overlay, Color: p.Overlay})
	}

	return cmds
}
