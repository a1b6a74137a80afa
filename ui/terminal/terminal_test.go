package terminal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"arcade-snake/game"
	"arcade-snake/game/types"
	"arcade-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	values []int
	calls  int
}

func (r *fixedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func fixed(values ...int) *fixedRand {
	return &fixedRand{values: values}
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Elapsed() time.Duration {
	return c.now
}

type noKeys struct {
	held types.Direction
}

func (k noKeys) Held(d types.Direction) bool { return d == k.held }
func (noKeys) RestartRequested() bool        { return false }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		c, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(c)
	}
	return strings.TrimRight(b.String(), " ")
}

func cellRune(screen tcell.Screen, p types.Point) rune {
	x, y := terminal.Transform(p)
	c, _, _, _ := screen.GetContent(x, y)
	return c
}

func TestTransform(t *testing.T) {
	x, y := terminal.Transform(types.Point{X: 0, Y: 0})
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	x, y = terminal.Transform(types.Point{X: 3, Y: 4})
	assert.Equal(t, 7, x)
	assert.Equal(t, 6, y)
}

func TestRendererDrawsBoard(t *testing.T) {
	screen := newScreen(t)
	session := game.NewSession(game.DefaultConfig(), fixed(5), &fakeClock{})

	terminal.NewRenderer(screen).Draw(session)

	assert.Equal(t, "SCORE: 0  BEST: 0", row(screen, 0))
	assert.Equal(t, '@', cellRune(screen, types.Point{X: 0, Y: 0}))
	assert.Equal(t, '*', cellRune(screen, types.Point{X: 5, Y: 5}))
	assert.Equal(t, ' ', cellRune(screen, types.Point{X: 1, Y: 0}))

	assert.Equal(t, "+"+strings.Repeat("-", 32)+"+", row(screen, 1))
	assert.Equal(t, "+"+strings.Repeat("-", 32)+"+", row(screen, 18))
	c, _, _, _ := screen.GetContent(0, 10)
	assert.Equal(t, '|', c)
}

func TestRendererDrawsBody(t *testing.T) {
	screen := newScreen(t)
	clock := &fakeClock{}
	// the first fruit is on (1,1), the second one in the far corner
	session := game.NewSession(game.DefaultConfig(), fixed(1, 1, 15, 15), clock)

	clock.now = 301 * time.Millisecond
	session.Step(noKeys{held: types.Right})
	session.Step(noKeys{held: types.Down})
	clock.now = 602 * time.Millisecond
	session.Step(noKeys{held: types.Down})
	require.Equal(t, 1, session.Game().Score())

	terminal.NewRenderer(screen).Draw(session)

	assert.Equal(t, "SCORE: 1  BEST: 0", row(screen, 0))
	assert.Equal(t, '@', cellRune(screen, types.Point{X: 1, Y: 1}))
	assert.Equal(t, 'o', cellRune(screen, types.Point{X: 1, Y: 0}))
}

func TestRendererDrawsGameOver(t *testing.T) {
	screen := newScreen(t)
	clock := &fakeClock{}
	session := game.NewSession(game.DefaultConfig(), fixed(5), clock)

	session.Step(noKeys{held: types.Up})
	clock.now = 301 * time.Millisecond
	session.Step(noKeys{held: types.Up})
	require.True(t, session.Game().IsOver())

	terminal.NewRenderer(screen).Draw(session)

	assert.Equal(t, "Game Over. Press [enter] to play again.", row(screen, 0))
	assert.Contains(t, row(screen, 1), "hit the wall")
	assert.Contains(t, row(screen, 1), "over 1 rounds")
}

func TestLoopQuitsOnEscape(t *testing.T) {
	screen := newScreen(t)
	cfg := game.DefaultConfig()
	cfg.Frontend = game.FrontendTerminal
	session := game.NewSession(cfg, fixed(5), game.NewSystemClock())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.NoError(t, terminal.Loop(ctx, screen, session, cfg))
	assert.NoError(t, ctx.Err(), "loop should stop on escape, not on the deadline")
}

func TestLoopStopsWhenContextIsDone(t *testing.T) {
	screen := newScreen(t)
	cfg := game.DefaultConfig()
	session := game.NewSession(cfg, fixed(5), game.NewSystemClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, terminal.Loop(ctx, screen, session, cfg))
}
