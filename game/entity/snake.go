package entity

import (
	"classic-snake/game/types"
)

// Snake keeps its cells in a buffer allocated once for the whole board.
// cells[0] is the head. The slot just past the logical end holds the cell
// the tail left on the last shift, so growing reuses it.
type Snake struct {
	cells     []types.Point
	bodyParts int
	Direction types.Direction
}

// NewSnake stacks bodyParts segments on start, heading in dir. capacity is
// the largest length the snake may reach.
func NewSnake(start types.Point, bodyParts, capacity int, dir types.Direction) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	if bodyParts > capacity {
		bodyParts = capacity
	}
	if bodyParts < 1 {
		bodyParts = 1
	}
	cells := make([]types.Point, capacity+1)
	for i := range cells {
		cells[i] = start
	}
	return &Snake{
		cells:     cells,
		bodyParts: bodyParts,
		Direction: dir,
	}
}

// Shift copies every segment onto the one behind it, tail first, so the
// body follows the head's trail. The head cell itself is left in place.
func (s *Snake) Shift() {
	for i := s.bodyParts; i > 0; i-- {
		s.cells[i] = s.cells[i-1]
	}
}

// MoveHead advances the head one cell in the current direction.
func (s *Snake) MoveHead(unit int) {
	s.cells[0] = s.cells[0].Step(s.Direction, unit)
}

// Grow lengthens the snake by one. The new tail is the cell the old tail
// just left.
func (s *Snake) Grow() {
	if s.bodyParts < s.Capacity() {
		s.bodyParts++
	}
}

func (s *Snake) GetHead() types.Point {
	return s.cells[0]
}

// Len returns the number of body parts.
func (s *Snake) Len() int {
	return s.bodyParts
}

// Capacity returns the largest length the snake can reach.
func (s *Snake) Capacity() int {
	return len(s.cells) - 1
}

// Segment returns cell i. Index Len() is valid and holds the trailing slot.
func (s *Snake) Segment(i int) types.Point {
	return s.cells[i]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, s.bodyParts)
	copy(body, s.cells[:s.bodyParts])
	return body
}

// SetDirection changes heading unless dir would turn the head straight back
// into the neck. It reports whether the direction was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
