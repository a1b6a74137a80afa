package types_test

import (
	"testing"

	"arcade-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestDirectionDelta(t *testing.T) {
	assert.Equal(t, types.Point{X: 0, Y: -1}, types.Up.Delta())
	assert.Equal(t, types.Point{X: 0, Y: 1}, types.Down.Delta())
	assert.Equal(t, types.Point{X: -1, Y: 0}, types.Left.Delta())
	assert.Equal(t, types.Point{X: 1, Y: 0}, types.Right.Delta())
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range types.Directions {
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, types.Point{}, d.Delta().Add(d.Opposite().Delta()))
	}
}

func TestDirectionsProbeOrder(t *testing.T) {
	assert.Equal(t, [...]types.Direction{types.Right, types.Left, types.Up, types.Down}, types.Directions)
	assert.Equal(t, "right", types.Right.String())
	assert.Equal(t, "unknown", types.Direction(42).String())
}

func TestPointInBounds(t *testing.T) {
	assert.True(t, types.Point{X: 0, Y: 0}.InBounds(1))
	assert.True(t, types.Point{X: 15, Y: 15}.InBounds(16))
	assert.False(t, types.Point{X: 16, Y: 0}.InBounds(16))
	assert.False(t, types.Point{X: 0, Y: 16}.InBounds(16))
	assert.False(t, types.Point{X: -1, Y: 3}.InBounds(16))
	assert.False(t, types.Point{X: 3, Y: -1}.InBounds(16))
}
