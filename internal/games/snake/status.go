package snake

import "fmt"

// Status returns a one-line summary of the game for a HUD.
func (g *Game) Status() string {
	if g.phase == PhaseGameOver {
		return fmt.Sprintf("GAME OVER (%s)  length %d  restart in %.1fs",
			g.outcome, g.snake.Len(), g.RestartIn().Seconds())
	}
	return fmt.Sprintf("heading %s  length %d", g.snake.HeadDirection(), g.snake.Len())
}
