package manager

import (
	"arcade-snake/game/entity"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "hit the wall"
	case SelfCollision:
		return "bit itself"
	default:
		return "alive"
	}
}

type CollisionManager struct {
	size int
}

func NewCollisionManager(size int) *CollisionManager {
	return &CollisionManager{
		size: size,
	}
}

// Check classifies the snake's current head. It has no side effects.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	if !snake.Head.InBounds(cm.size) {
		return WallCollision
	}
	if snake.BodyContains(snake.Head) {
		return SelfCollision
	}
	return NoCollision
}
