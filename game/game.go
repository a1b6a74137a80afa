package game

import (
	"arcade-snake/game/entity"
	"arcade-snake/game/manager"
	"arcade-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Game is the state of one round: the snake, its heading, the fruit and the
// score on a square board. It is replaced wholesale on restart.
type Game struct {
	id        string
	size      int
	snake     *entity.Snake
	direction types.Direction
	fruit     types.Point
	score     int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// New starts a round on a size x size board with the head at (0,0) heading
// right. The first fruit is drawn from rng.
func New(size int, rng manager.Rand) *Game {
	g := &Game{
		id:           uuid.New().String(),
		size:         size,
		snake:        entity.NewSnake(types.Point{X: 0, Y: 0}),
		direction:    types.Right,
		collisionMgr: manager.NewCollisionManager(size),
		foodMgr:      manager.NewFoodManager(size, rng),
	}
	g.fruit = g.foodMgr.GenerateFood()
	glog.V(1).Infof("[game:%s] new round, board %dx%d, fruit at %v", g.id, size, size, g.fruit)
	return g
}

// IsOver reports whether the head left the board or ran into the body.
func (g *Game) IsOver() bool {
	return g.Cause() != manager.NoCollision
}

// Cause tells why the round ended, NoCollision while it is still running.
func (g *Game) Cause() manager.CollisionType {
	return g.collisionMgr.Check(g.snake)
}

// SetDirection changes the heading unless d points straight back, which
// would run the head into the neck. It reports whether d was taken.
func (g *Game) SetDirection(d types.Direction) bool {
	if d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Advance moves the snake one cell. Eating the fruit grows the snake by one
// and places a new fruit; otherwise the tail follows. Advance does nothing
// once the round is over.
func (g *Game) Advance() {
	if g.IsOver() {
		glog.Warningf("[game:%s] advance after game over ignored", g.id)
		return
	}

	newHead := g.snake.Head.Add(g.direction.Delta())
	g.snake.Move(newHead)

	if newHead == g.fruit {
		g.score++
		g.fruit = g.foodMgr.GenerateFood()
		glog.V(2).Infof("[game:%s] ate fruit at %v, score %d, next fruit at %v", g.id, newHead, g.score, g.fruit)
	} else {
		g.snake.RemoveTail()
	}
	glog.V(3).Infof("[game:%s] head %v heading %s", g.id, g.snake.Head, g.direction)
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Size() int {
	return g.size
}

func (g *Game) Head() types.Point {
	return g.snake.Head
}

// Body returns the former heads, most recent first.
func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

// Length counts the head and the body.
func (g *Game) Length() int {
	return g.snake.Len() + 1
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Fruit() types.Point {
	return g.fruit
}

func (g *Game) Score() int {
	return g.score
}
