package ui

import (
	"time"

	"arcade-snake/game"
	"arcade-snake/game/manager"
	"arcade-snake/game/types"
	"arcade-snake/ui/snapshot"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

const snapshotCellSize = 32

var directionKeys = map[types.Direction]int32{
	types.Up:    rl.KeyUp,
	types.Down:  rl.KeyDown,
	types.Left:  rl.KeyLeft,
	types.Right: rl.KeyRight,
}

// keyboard samples raylib's key state.
type keyboard struct{}

func (keyboard) Held(d types.Direction) bool {
	return rl.IsKeyDown(directionKeys[d])
}

func (keyboard) RestartRequested() bool {
	return rl.IsKeyDown(rl.KeyEnter)
}

// windowClock is raylib's time since InitWindow.
type windowClock struct{}

func (windowClock) Elapsed() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// RunWindow plays in a raylib window until it is closed.
func RunWindow(cfg game.Config, rng manager.Rand) {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	session := game.NewSession(cfg, rng, windowClock{})
	renderer := NewRenderer()
	input := keyboard{}

	for !rl.WindowShouldClose() {
		session.Step(input)

		if rl.IsKeyPressed(rl.KeyP) {
			if _, err := snapshot.Save(session.Game(), cfg.SnapshotDir, snapshotCellSize); err != nil {
				glog.Warningf("snapshot failed: %v", err)
			}
		}

		renderer.Draw(session)
	}
	glog.Infof("window closed after %d rounds, best score %d",
		session.Stats().GetRounds(), session.Stats().GetHighScore())
}
