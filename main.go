package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arcade-snake/game"
	"arcade-snake/ui"
	"arcade-snake/ui/terminal"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := game.DefaultConfig()
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between two moves of the snake")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames drawn per second")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Fruit placement seed (0 = current time)")
	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Front end to play in: window or terminal")
	flag.StringVar(&cfg.SnapshotDir, "snapshots", cfg.SnapshotDir, "Directory board snapshots (key P) are written to")
	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "Initial window width in pixels")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "Initial window height in pixels")
	flag.Parse()
	defer glog.Flush()

	if err := cfg.Validate(); err != nil {
		glog.Exitf("%v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	glog.Infof("starting %s front end, seed %d, tick %s", cfg.Frontend, seed, cfg.TickInterval)
	rng := rand.New(rand.NewSource(seed))

	switch cfg.Frontend {
	case game.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := terminal.Run(ctx, cfg, rng); err != nil {
			glog.Errorf("terminal: %v", err)
			glog.Flush()
			os.Exit(1)
		}
	default:
		ui.RunWindow(cfg, rng)
	}
}
