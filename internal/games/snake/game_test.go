package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, width, height int) *Game {
	t.Helper()
	g, err := New(width, height, 42)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return g
}

func TestNewGameInitialState(t *testing.T) {
	for _, size := range [][2]int{{MinWidth, MinHeight}, {20, 20}, {80, 24}} {
		g := newTestGame(t, size[0], size[1])

		if head := g.Snake().HeadPosition(); head != (Cell{X: 4, Y: 2}) {
			t.Errorf("%v: expected head (4, 2), got %+v", size, head)
		}
		if g.Snake().Len() != 3 {
			t.Errorf("%v: expected length 3, got %d", size, g.Snake().Len())
		}
		if g.Phase() != PhasePlaying {
			t.Errorf("%v: game should start playing, got %s", size, g.Phase())
		}
		if _, ok := g.Food(); ok {
			t.Errorf("%v: food should be absent until the first update", size)
		}
	}
}

func TestNewGameTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		ok   bool
	}{
		{MinWidth, MinHeight, true},
		{MinWidth - 1, MinHeight, false},
		{MinWidth, MinHeight - 1, false},
		{0, 0, false},
	}

	for _, tc := range tests {
		_, err := New(tc.w, tc.h, 1)
		if tc.ok && err != nil {
			t.Errorf("New(%d, %d) unexpected error: %v", tc.w, tc.h, err)
		}
		if !tc.ok && !errors.Is(err, ErrBoardTooSmall) {
			t.Errorf("New(%d, %d) error = %v, expected ErrBoardTooSmall", tc.w, tc.h, err)
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.Update(100 * time.Millisecond)
	before := g.Snapshot()

	g.RequestDirection(DirLeft)

	after := g.Snapshot()
	if after.Dir != DirRight {
		t.Errorf("Reversal should be ignored, heading is %s", after.Dir)
	}
	if !reflect.DeepEqual(after.Body, before.Body) {
		t.Errorf("Reversal should not move the snake: %v -> %v", before.Body, after.Body)
	}
	if after.Waiting != before.Waiting {
		t.Errorf("Reversal should not reset the timer: %v -> %v", before.Waiting, after.Waiting)
	}
}

func TestRequestDirectionMovesImmediately(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.Update(150 * time.Millisecond)

	g.RequestDirection(DirDown)

	if g.Snake().HeadDirection() != DirDown {
		t.Errorf("Expected heading down, got %s", g.Snake().HeadDirection())
	}
	if head := g.Snake().HeadPosition(); head != (Cell{X: 4, Y: 3}) {
		t.Errorf("Expected immediate move to (4, 3), got %+v", head)
	}
	if g.Waiting() != 0 {
		t.Errorf("Requested move should reset the timer, got %v", g.Waiting())
	}
}

func TestRequestSameDirectionMoves(t *testing.T) {
	g := newTestGame(t, 20, 20)

	g.RequestDirection(DirRight)

	if head := g.Snake().HeadPosition(); head != (Cell{X: 5, Y: 2}) {
		t.Errorf("Re-requesting the heading should step forward, head at %+v", head)
	}
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		action core.Action
		head   Cell
	}{
		{core.ActionUp, Cell{X: 4, Y: 1}},
		{core.ActionDown, Cell{X: 4, Y: 3}},
		{core.ActionLeft, Cell{X: 4, Y: 2}}, // reversal, ignored
		{core.ActionRight, Cell{X: 5, Y: 2}},
		{core.ActionOther, Cell{X: 5, Y: 2}},
		{core.ActionHelp, Cell{X: 4, Y: 2}},
		{core.ActionQuit, Cell{X: 4, Y: 2}},
	}

	for _, tc := range tests {
		g := newTestGame(t, 20, 20)
		g.HandleAction(tc.action)
		if head := g.Snake().HeadPosition(); head != tc.head {
			t.Errorf("HandleAction(%s): head at %+v, expected %+v", tc.action, head, tc.head)
		}
	}
}

func TestTimedMoveNeedsFullPeriod(t *testing.T) {
	g := newTestGame(t, 20, 20)

	g.Update(MovingPeriod)
	if head := g.Snake().HeadPosition(); head != (Cell{X: 4, Y: 2}) {
		t.Fatalf("Snake should not move at exactly the period, head at %+v", head)
	}

	g.Update(time.Millisecond)
	if head := g.Snake().HeadPosition(); head != (Cell{X: 5, Y: 2}) {
		t.Errorf("Snake should move once the period is exceeded, head at %+v", head)
	}
	if g.Waiting() != 0 {
		t.Errorf("Timed move should reset the timer, got %v", g.Waiting())
	}
}

func TestTimedMoveIndependentOfFrameRate(t *testing.T) {
	g := newTestGame(t, 20, 20)
	frame := 16 * time.Millisecond

	for range 12 { // 192ms
		g.Update(frame)
	}
	if head := g.Snake().HeadPosition(); head != (Cell{X: 4, Y: 2}) {
		t.Fatalf("Snake moved early, head at %+v", head)
	}

	g.Update(frame) // 208ms
	if head := g.Snake().HeadPosition(); head != (Cell{X: 5, Y: 2}) {
		t.Errorf("Snake should have moved after 13 frames, head at %+v", head)
	}
}

func TestUpdateSpawnsFood(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.Update(time.Millisecond)

	food, ok := g.Food()
	if !ok {
		t.Fatal("First update should spawn food")
	}
	if g.Snake().OverlapTail(food) {
		t.Errorf("Food spawned on snake at %+v", food)
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.food = Cell{X: 5, Y: 2}
	g.hasFood = true

	g.Update(MovingPeriod + time.Millisecond)

	if g.Snake().Len() != 4 {
		t.Errorf("Snake should grow by 1 after eating, got length %d", g.Snake().Len())
	}
	if _, ok := g.Food(); ok {
		t.Error("Food should be gone after eating")
	}
	want := []Cell{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	if !reflect.DeepEqual(g.Snake().Body(), want) {
		t.Errorf("Body after eating = %v, expected %v", g.Snake().Body(), want)
	}

	// Next update respawns food away from the longer body
	g.Update(time.Millisecond)
	food, ok := g.Food()
	if !ok || g.Snake().OverlapTail(food) {
		t.Errorf("Expected fresh food off the snake, got (%+v, %v)", food, ok)
	}
}

func TestEatingViaRequestedMove(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.food = Cell{X: 4, Y: 3}
	g.hasFood = true

	g.RequestDirection(DirDown)

	if g.Snake().Len() != 4 {
		t.Errorf("Requested move onto food should grow the snake, got length %d", g.Snake().Len())
	}
	if _, ok := g.Food(); ok {
		t.Error("Food should be gone after eating")
	}
}

func TestWallCollision(t *testing.T) {
	const width, height = 10, 8

	tests := []struct {
		name string
		body []Cell
		dir  Direction
	}{
		{"top", []Cell{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}, DirUp},
		{"bottom", []Cell{{X: 4, Y: 6}, {X: 4, Y: 5}, {X: 4, Y: 4}}, DirDown},
		{"left", []Cell{{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}, DirLeft},
		{"right", []Cell{{X: 8, Y: 3}, {X: 7, Y: 3}, {X: 6, Y: 3}}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, width, height)
			g.snake = &Snake{body: append([]Cell(nil), tc.body...), direction: tc.dir}

			g.Update(MovingPeriod + time.Millisecond)

			if g.Phase() != PhaseGameOver {
				t.Fatalf("Game should be over after hitting the %s wall", tc.name)
			}
			if g.Outcome() != OutcomeWall {
				t.Errorf("Expected outcome wall, got %s", g.Outcome())
			}
			if !reflect.DeepEqual(g.Snake().Body(), tc.body) {
				t.Errorf("Body should be unchanged: %v, expected %v", g.Snake().Body(), tc.body)
			}
			if g.Waiting() != 0 {
				t.Errorf("Timer should reset on game over, got %v", g.Waiting())
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 10, 10)
	body := []Cell{
		{X: 5, Y: 5}, // Head, came up from (5, 6)
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.snake = &Snake{body: append([]Cell(nil), body...), direction: DirUp}

	// Turning right puts the head on (6, 5)
	g.RequestDirection(DirRight)

	if g.Phase() != PhaseGameOver {
		t.Fatal("Game should be over after self collision")
	}
	if g.Outcome() != OutcomeSelf {
		t.Errorf("Expected outcome self, got %s", g.Outcome())
	}
	if !reflect.DeepEqual(g.Snake().Body(), body) {
		t.Errorf("Body should be unchanged after self collision: %v", g.Snake().Body())
	}
	if g.Snake().HeadDirection() != DirUp {
		t.Errorf("Heading should be unchanged after a rejected move, got %s", g.Snake().HeadDirection())
	}
}

func TestGameOverFreezesAndRestarts(t *testing.T) {
	g := newTestGame(t, 10, 8)
	g.snake = &Snake{body: []Cell{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}, direction: DirUp}
	g.RequestDirection(DirUp)
	if g.Phase() != PhaseGameOver {
		t.Fatal("Expected game over")
	}
	frozen := g.Snapshot()

	// Input and ticks are ignored while game over
	g.RequestDirection(DirRight)
	g.Update(RestartTime)
	after := g.Snapshot()
	if after.Phase != PhaseGameOver {
		t.Fatal("Game should still be over at exactly RestartTime")
	}
	if !reflect.DeepEqual(after.Body, frozen.Body) || after.Dir != frozen.Dir {
		t.Error("Snake must not move while game over")
	}
	if after.HasFood != frozen.HasFood {
		t.Error("Food must not change while game over")
	}
	if g.RestartIn() != 0 {
		t.Errorf("RestartIn at the deadline should be 0, got %v", g.RestartIn())
	}

	g.Update(time.Millisecond)
	if g.Phase() != PhasePlaying {
		t.Fatal("Game should restart once RestartTime is exceeded")
	}
	if head := g.Snake().HeadPosition(); head != (Cell{X: 4, Y: 2}) {
		t.Errorf("Restarted snake head at %+v, expected (4, 2)", head)
	}
}

func TestRestartMatchesFreshGame(t *testing.T) {
	g := newTestGame(t, 12, 10)
	for range 10 {
		g.Update(MovingPeriod + time.Millisecond)
	}
	g.RequestDirection(DirDown)
	g.Restart()

	fresh := newTestGame(t, 12, 10)
	got, want := g.Snapshot(), fresh.Snapshot()

	if !reflect.DeepEqual(got.Body, want.Body) {
		t.Errorf("Body after restart = %v, expected %v", got.Body, want.Body)
	}
	if got.Dir != want.Dir || got.Phase != want.Phase || got.Outcome != want.Outcome {
		t.Errorf("State after restart = %s/%s/%s, expected %s/%s/%s",
			got.Dir, got.Phase, got.Outcome, want.Dir, want.Phase, want.Outcome)
	}
	if got.HasFood || got.Waiting != 0 {
		t.Errorf("Restart should clear food and timer, got food=%v waiting=%v", got.HasFood, got.Waiting)
	}
	if g.Width() != fresh.Width() || g.Height() != fresh.Height() {
		t.Error("Restart must keep the board dimensions")
	}
}

func TestBoardFullEndsRound(t *testing.T) {
	g := newTestGame(t, MinWidth, MinHeight)
	g.snake = fillInterior(MinWidth, MinHeight)

	g.Update(time.Millisecond)

	if g.Phase() != PhaseGameOver || g.Outcome() != OutcomeBoardFull {
		t.Errorf("Full board should end the round, got %s/%s", g.Phase(), g.Outcome())
	}

	g.Update(RestartTime + time.Millisecond)
	if g.Phase() != PhasePlaying {
		t.Error("Full board round should restart like any other")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	g1, _ := New(30, 20, 12345)
	g2, _ := New(30, 20, 12345)

	for i := range 300 {
		if i == 20 {
			g1.RequestDirection(DirDown)
			g2.RequestDirection(DirDown)
		}
		if i == 40 {
			g1.RequestDirection(DirLeft)
			g2.RequestDirection(DirLeft)
		}
		g1.Update(16 * time.Millisecond)
		g2.Update(16 * time.Millisecond)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots diverged:\n%s\n%s", g1.DebugState(), g2.DebugState())
	}
}

func TestPlayingInvariants(t *testing.T) {
	const width, height = 12, 9
	g, _ := New(width, height, 7)
	rng := rand.New(rand.NewSource(99))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	rounds := 0

	for range 5000 {
		if rng.Intn(4) == 0 {
			g.RequestDirection(dirs[rng.Intn(len(dirs))])
		}
		wasOver := g.Phase() == PhaseGameOver
		g.Update(time.Duration(rng.Intn(60)) * time.Millisecond)
		if wasOver && g.Phase() == PhasePlaying {
			rounds++
		}

		if g.Phase() != PhasePlaying {
			continue
		}
		head := g.Snake().HeadPosition()
		if head.X < 1 || head.X > width-2 || head.Y < 1 || head.Y > height-2 {
			t.Fatalf("Head left the interior while playing: %+v", head)
		}
		seen := make(map[Cell]bool)
		for _, c := range g.Snake().Body() {
			if seen[c] {
				t.Fatalf("Duplicate segment %+v in %v", c, g.Snake().Body())
			}
			seen[c] = true
		}
		if food, ok := g.Food(); ok && g.Snake().OverlapTail(food) {
			t.Fatalf("Food %+v under the snake", food)
		}
	}

	if rounds == 0 {
		t.Error("Expected at least one automatic restart during random play")
	}
}

func TestStatus(t *testing.T) {
	g := newTestGame(t, 10, 8)
	if got := g.Status(); got != "heading right  length 3" {
		t.Errorf("Status while playing = %q", got)
	}

	g.snake = &Snake{body: []Cell{{X: 8, Y: 3}, {X: 7, Y: 3}, {X: 6, Y: 3}}, direction: DirRight}
	g.RequestDirection(DirRight)
	g.Update(400 * time.Millisecond)
	if got := g.Status(); got != "GAME OVER (wall)  length 3  restart in 0.6s" {
		t.Errorf("Status after game over = %q", got)
	}
}
