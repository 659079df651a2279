// Package snake implements the snake simulation: a snake moving on a walled
// board, growing when it eats food, with an automatic restart after each
// collision. It contains no rendering or input code; front-ends drive it
// through Update, RequestDirection and DrawRequest.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	// MovingPeriod is how long the snake waits between automatic steps.
	MovingPeriod = 200 * time.Millisecond
	// RestartTime is how long the game-over screen stays up.
	RestartTime = 1 * time.Second

	// InitialX and InitialY locate the tail of a freshly spawned snake.
	InitialX = 2
	InitialY = 2

	// MinWidth and MinHeight are the smallest boards that hold the
	// initial snake strictly inside the border.
	MinWidth  = InitialX + 4
	MinHeight = InitialY + 2
)

// ErrBoardTooSmall is returned by New for boards below MinWidth x MinHeight.
var ErrBoardTooSmall = errors.New("snake: board too small")

// Phase is the macro-state of the simulation.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome records why the last round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Game owns the board, the snake and the food, and drives the
// playing/game-over lifecycle.
type Game struct {
	width  int
	height int
	rng    *rand.Rand
	frames uint64

	snake   *Snake
	food    Cell
	hasFood bool

	waiting time.Duration // Time since the last move (or since game over)
	phase   Phase
	outcome Outcome
}

// New creates a game on a width x height board, border included.
// The seed drives food placement.
func New(width, height int, seed int64) (*Game, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, width, height, MinWidth, MinHeight)
	}

	g := &Game{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.Restart()
	return g, nil
}

// Restart puts the game back into its freshly constructed state.
// The RNG keeps running so consecutive rounds get different food.
func (g *Game) Restart() {
	g.snake = NewSnake(InitialX, InitialY)
	g.food = Cell{}
	g.hasFood = false
	g.waiting = 0
	g.phase = PhasePlaying
	g.outcome = OutcomeNone
}

// Update advances the simulation clock by dt. It is called once per frame.
func (g *Game) Update(dt time.Duration) {
	g.frames++
	g.waiting += dt

	if g.phase == PhaseGameOver {
		if g.waiting > RestartTime {
			g.Restart()
		}
		return
	}

	if !g.hasFood {
		g.addFood()
		if g.phase == PhaseGameOver {
			return
		}
	}

	if g.waiting > MovingPeriod {
		g.move(g.snake.HeadDirection())
	}
}

// RequestDirection applies a player's direction request. A reversal of the
// current heading is dropped; anything else moves the snake one step right
// away and restarts the movement timer.
func (g *Game) RequestDirection(dir Direction) {
	if g.phase == PhaseGameOver {
		return
	}
	if dir == g.snake.HeadDirection().Opposite() {
		return
	}
	g.move(dir)
}

// HandleAction maps a logical input action onto RequestDirection.
// ActionOther repeats the current heading; host-only actions are ignored.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionUp:
		g.RequestDirection(DirUp)
	case core.ActionDown:
		g.RequestDirection(DirDown)
	case core.ActionLeft:
		g.RequestDirection(DirLeft)
	case core.ActionRight:
		g.RequestDirection(DirRight)
	case core.ActionOther:
		g.RequestDirection(g.snake.HeadDirection())
	}
}

// move runs one step: look ahead, check collisions, then either commit the
// move (eating if the head lands on food) or end the round with the snake
// left where it was.
func (g *Game) move(dir Direction) {
	next := g.snake.NextHead(dir)

	switch {
	case !g.insideBorder(next):
		g.endRound(OutcomeWall)
	case g.snake.OverlapTail(next):
		g.endRound(OutcomeSelf)
	default:
		g.snake.MoveForward(dir)
		if g.hasFood && g.food == g.snake.HeadPosition() {
			g.hasFood = false
			g.snake.RestoreTail()
		}
	}

	g.waiting = 0
}

// addFood places food, ending the round when no free cell is left.
func (g *Game) addFood() {
	c, ok := SpawnFood(g.rng, g.width, g.height, g.snake)
	if !ok {
		g.endRound(OutcomeBoardFull)
		g.waiting = 0
		return
	}
	g.food = c
	g.hasFood = true
}

func (g *Game) endRound(o Outcome) {
	g.phase = PhaseGameOver
	g.outcome = o
}

// insideBorder reports whether c lies strictly inside the border ring.
func (g *Game) insideBorder(c Cell) bool {
	return c.X > 0 && c.X < g.width-1 && c.Y > 0 && c.Y < g.height-1
}

// Width returns the board width including the border.
func (g *Game) Width() int { return g.width }

// Height returns the board height including the border.
func (g *Game) Height() int { return g.height }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Outcome returns why the current or last round ended.
func (g *Game) Outcome() Outcome { return g.outcome }

// Snake returns the snake. Callers must treat it as read-only.
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (Cell, bool) { return g.food, g.hasFood }

// Waiting returns the time accumulated since the last move or game over.
func (g *Game) Waiting() time.Duration { return g.waiting }

// Frames returns the number of Update calls so far.
func (g *Game) Frames() uint64 { return g.frames }

// RestartIn returns the time left before an automatic restart,
// or zero while playing.
func (g *Game) RestartIn() time.Duration {
	if g.phase != PhaseGameOver {
		return 0
	}
	return max(RestartTime-g.waiting, 0)
}
