package snake

// Snake is an ordered body of cells, head first.
// The most recently dropped tail cell is kept so a following RestoreTail
// can grow the snake without recomputing geometry.
type Snake struct {
	body           []Cell // Head at index 0
	direction      Direction
	lastRemoved    Cell
	hasLastRemoved bool
}

// NewSnake creates a three-segment snake whose tail sits at (x, y),
// heading right.
func NewSnake(x, y int) *Snake {
	return &Snake{
		body: []Cell{
			{X: x + 2, Y: y}, // Head
			{X: x + 1, Y: y},
			{X: x, Y: y},
		},
		direction: DirRight,
	}
}

// HeadPosition returns the head cell.
func (s *Snake) HeadPosition() Cell {
	return s.body[0]
}

// HeadDirection returns the current heading.
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// NextHead returns the cell the head would occupy after one step in dir.
// The snake is not modified.
func (s *Snake) NextHead(dir Direction) Cell {
	return s.HeadPosition().Step(dir)
}

// MoveForward turns the snake to dir and advances it one cell.
// The length is unchanged; the dropped tail is cached for RestoreTail.
// Callers must reject reversals before calling.
func (s *Snake) MoveForward(dir Direction) {
	s.direction = dir
	head := s.NextHead(dir)

	last := len(s.body) - 1
	s.lastRemoved = s.body[last]
	s.hasLastRemoved = true

	// Shift in place: drop the tail, push the new head.
	copy(s.body[1:], s.body[:last])
	s.body[0] = head
}

// RestoreTail re-appends the last dropped tail cell, growing the snake by one.
// It is a no-op when nothing has been dropped since the previous restore.
func (s *Snake) RestoreTail() {
	if !s.hasLastRemoved {
		return
	}
	s.body = append(s.body, s.lastRemoved)
	s.hasLastRemoved = false
}

// OverlapTail reports whether c is occupied by any segment.
func (s *Snake) OverlapTail(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
