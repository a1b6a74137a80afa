package game

import (
	"errors"
	"fmt"
	"time"

	"arcade-snake/game/types"
)

// Front ends understood by main.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a play session. Seed 0 means seed from the
// current time.
type Config struct {
	BoardSize    int
	TickInterval time.Duration
	FPS          int
	Seed         uint64
	Frontend     string
	SnapshotDir  string
	WindowWidth  int
	WindowHeight int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BoardSize:    types.Squares,
		TickInterval: types.TickInterval,
		FPS:          60,
		Seed:         0,
		Frontend:     FrontendWindow,
		SnapshotDir:  ".",
		WindowWidth:  800,
		WindowHeight: 800,
	}
}

func (c Config) Validate() error {
	if c.BoardSize <= 0 {
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidConfig, c.BoardSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	switch c.Frontend {
	case FrontendWindow:
		if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
			return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
		}
	case FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	return nil
}
