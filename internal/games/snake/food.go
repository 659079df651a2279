package snake

import "math/rand"

// SpawnFood picks a random interior cell (1..width-2, 1..height-2) that the
// snake does not occupy. Random sampling is tried first and bounded; after
// that the free cells are enumerated so a crowded board still terminates.
// Returns false when the snake fills the whole interior.
func SpawnFood(rng *rand.Rand, width, height int, s *Snake) (Cell, bool) {
	innerW, innerH := width-2, height-2
	if innerW <= 0 || innerH <= 0 {
		return Cell{}, false
	}

	attempts := maxSpawnAttempts(innerW, innerH)
	for range attempts {
		c := Cell{X: 1 + rng.Intn(innerW), Y: 1 + rng.Intn(innerH)}
		if !s.OverlapTail(c) {
			return c, true
		}
	}

	var free []Cell
	for y := 1; y <= innerH; y++ {
		for x := 1; x <= innerW; x++ {
			c := Cell{X: x, Y: y}
			if !s.OverlapTail(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}

func maxSpawnAttempts(innerW, innerH int) int {
	return 4 * innerW * innerH
}
