package manager

import (
	"arcade-snake/game/types"
)

// Rand is the coordinate generator fruit placement draws from. Intn returns
// a uniform integer in [0, n). *rand.Rand from golang.org/x/exp/rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	size int
	rng  Rand
}

func NewFoodManager(size int, rng Rand) *FoodManager {
	return &FoodManager{
		size: size,
		rng:  rng,
	}
}

// GenerateFood draws x then y uniformly from the board. The snake's cells are
// not excluded, so a fruit can land under the body.
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.size),
		Y: fm.rng.Intn(fm.size),
	}
}
