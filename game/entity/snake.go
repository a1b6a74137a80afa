package entity

import (
	"arcade-snake/game/types"
)

// Snake is a head plus the trail of cells it occupied before. The body
// front is the most recent former head, the back is the tail.
type Snake struct {
	Head types.Point
	body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Head: startPos,
		body: make([]types.Point, 0),
	}
}

// Move pushes the current head onto the body front and puts the head at newHead.
func (s *Snake) Move(newHead types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = s.Head
	s.Head = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 0 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Body returns a copy of the body, front (newest) to back (tail).
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

// BodyContains reports whether p is one of the body cells. The head itself is
// not part of the body.
func (s *Snake) BodyContains(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
