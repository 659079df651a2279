package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot captures the observable game state for determinism testing and debugging.
type Snapshot struct {
	Frames   uint64
	Phase    Phase
	Outcome  Outcome
	Body     []Cell
	Dir      Direction
	Food     Cell
	HasFood  bool
	Waiting  time.Duration
	SnakeLen int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:   g.frames,
		Phase:    g.phase,
		Outcome:  g.outcome,
		Body:     g.snake.Body(),
		Dir:      g.snake.HeadDirection(),
		Food:     g.food,
		HasFood:  g.hasFood,
		Waiting:  g.waiting,
		SnakeLen: g.snake.Len(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.snake.HeadPosition()
	fmt.Fprintf(&b, "Frames: %d, Phase: %s, Outcome: %s\n", g.frames, g.phase, g.outcome)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n",
		g.snake.Len(), g.snake.HeadDirection(), head.X, head.Y)
	if g.hasFood {
		fmt.Fprintf(&b, "Food: (%d, %d)\n", g.food.X, g.food.Y)
	} else {
		b.WriteString("Food: none\n")
	}
	return b.String()
}
