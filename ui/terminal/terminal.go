// Package terminal plays the game on a tcell screen.
package terminal

import (
	"context"
	"fmt"
	"time"

	"arcade-snake/game"
	"arcade-snake/game/manager"
	"arcade-snake/game/types"
	"arcade-snake/ui/snapshot"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

const snapshotCellSize = 32

// keyState collects the key events of one frame. tcell only reports presses,
// so a direction counts as held during the frame its key was pressed in.
type keyState struct {
	held     map[types.Direction]bool
	restart  bool
	snapshot bool
	quit     bool
}

func newKeyState() *keyState {
	return &keyState{held: make(map[types.Direction]bool)}
}

func (k *keyState) Held(d types.Direction) bool {
	return k.held[d]
}

func (k *keyState) RestartRequested() bool {
	return k.restart
}

func (k *keyState) handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.held[types.Up] = true
	case tcell.KeyDown:
		k.held[types.Down] = true
	case tcell.KeyLeft:
		k.held[types.Left] = true
	case tcell.KeyRight:
		k.held[types.Right] = true
	case tcell.KeyEnter:
		k.restart = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			k.snapshot = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

func (k *keyState) reset() {
	for d := range k.held {
		delete(k.held, d)
	}
	k.restart = false
	k.snapshot = false
}

// Transform maps a grid cell to the left column and row of its two screen cells.
func Transform(p types.Point) (int, int) {
	return 1 + 2*p.X, 2 + p.Y
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func style(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var (
	headStyle  = style(rgb(snapshot.Head.R, snapshot.Head.G, snapshot.Head.B))
	bodyStyle  = style(rgb(snapshot.Body.R, snapshot.Body.G, snapshot.Body.B))
	fruitStyle = style(rgb(snapshot.Fruit.R, snapshot.Fruit.G, snapshot.Fruit.B))
)

func (r *Renderer) drawText(x, y int, st tcell.Style, text string) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, st)
		x++
	}
}

func (r *Renderer) drawCell(p types.Point, size int, c rune, st tcell.Style) {
	if !p.InBounds(size) {
		return
	}
	x, y := Transform(p)
	r.screen.SetContent(x, y, c, nil, st)
	r.screen.SetContent(x+1, y, c, nil, st)
}

func (r *Renderer) Draw(s *game.Session) {
	r.screen.Clear()
	defer r.screen.Show()

	g := s.Game()
	stats := s.Stats()
	if g.IsOver() {
		r.drawText(0, 0, tcell.StyleDefault, "Game Over. Press [enter] to play again.")
		r.drawText(0, 1, tcell.StyleDefault, fmt.Sprintf("The snake %s. Score %d, best %d over %d rounds.",
			g.Cause(), g.Score(), stats.GetHighScore(), stats.GetRounds()))
		return
	}

	r.drawText(0, 0, tcell.StyleDefault, fmt.Sprintf("SCORE: %d  BEST: %d", g.Score(), stats.GetHighScore()))

	size := g.Size()
	right, bottom := 1+2*size, 2+size
	r.screen.SetContent(0, 1, '+', nil, tcell.StyleDefault)
	r.screen.SetContent(right, 1, '+', nil, tcell.StyleDefault)
	r.screen.SetContent(0, bottom, '+', nil, tcell.StyleDefault)
	r.screen.SetContent(right, bottom, '+', nil, tcell.StyleDefault)
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 1, '-', nil, tcell.StyleDefault)
		r.screen.SetContent(x, bottom, '-', nil, tcell.StyleDefault)
	}
	for y := 2; y < bottom; y++ {
		r.screen.SetContent(0, y, '|', nil, tcell.StyleDefault)
		r.screen.SetContent(right, y, '|', nil, tcell.StyleDefault)
	}

	for _, p := range g.Body() {
		r.drawCell(p, size, 'o', bodyStyle)
	}
	r.drawCell(g.Head(), size, '@', headStyle)
	r.drawCell(g.Fruit(), size, '*', fruitStyle)
}

// Run plays on the controlling terminal until ctx is cancelled or the player
// quits with Escape, Ctrl-C or q.
func Run(ctx context.Context, cfg game.Config, rng manager.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	defer screen.Fini()

	session := game.NewSession(cfg, rng, game.NewSystemClock())
	return Loop(ctx, screen, session, cfg)
}

// Loop drives session on an initialised screen. Frames are drawn at cfg.FPS;
// the session decides when the snake moves.
func Loop(ctx context.Context, screen tcell.Screen, session *game.Session, cfg game.Config) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	frames := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frames.Stop()

	renderer := NewRenderer(screen)
	keys := newKeyState()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := event.(type) {
			case *tcell.EventKey:
				keys.handle(ev)
				if keys.quit {
					glog.Infof("player quit after %d rounds", session.Stats().GetRounds())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventError:
				glog.Warningf("tcell error: %s", ev.Error())
			}
		case <-frames.C:
			session.Step(keys)
			if keys.snapshot {
				if _, err := snapshot.Save(session.Game(), cfg.SnapshotDir, snapshotCellSize); err != nil {
					glog.Warningf("snapshot failed: %v", err)
				}
			}
			keys.reset()
			renderer.Draw(session)
		}
	}
}
