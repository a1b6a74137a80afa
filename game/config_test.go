package game_test

import (
	"errors"
	"testing"

	"arcade-snake/game"
	"arcade-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, types.Squares, cfg.BoardSize)
	assert.Equal(t, types.TickInterval, cfg.TickInterval)
	assert.Equal(t, game.FrontendWindow, cfg.Frontend)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*game.Config){
		"zero board":        func(c *game.Config) { c.BoardSize = 0 },
		"negative board":    func(c *game.Config) { c.BoardSize = -3 },
		"zero tick":         func(c *game.Config) { c.TickInterval = 0 },
		"zero fps":          func(c *game.Config) { c.FPS = 0 },
		"unknown frontend":  func(c *game.Config) { c.Frontend = "browser" },
		"empty window":      func(c *game.Config) { c.WindowWidth = 0 },
		"negative window h": func(c *game.Config) { c.WindowHeight = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, game.ErrInvalidConfig))
		})
	}

	t.Run("terminal ignores window size", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.Frontend = game.FrontendTerminal
		cfg.WindowWidth = 0
		assert.NoError(t, cfg.Validate())
	})
}
