package game

import (
	"time"

	"arcade-snake/game/manager"
	"arcade-snake/game/types"

	"github.com/golang/glog"
)

// Clock reports monotonic time elapsed since some fixed origin.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock measures time since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Input is the keyboard state a front end samples once per frame.
type Input interface {
	Held(d types.Direction) bool
	RestartRequested() bool
}

// Session drives rounds from a front end loop. Rendering may run at any rate;
// the game advances at most once per tick interval and accepts at most one
// direction change between two advances.
type Session struct {
	cfg   Config
	rng   manager.Rand
	clock Clock
	stats *manager.StateManager

	game       *Game
	lastUpdate time.Duration
	roundStart time.Duration
	dirLock    bool
	recorded   bool
}

func NewSession(cfg Config, rng manager.Rand, clock Clock) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   rng,
		clock: clock,
		stats: manager.NewStateManager(),
	}
	s.newRound()
	return s
}

func (s *Session) newRound() {
	s.game = New(s.cfg.BoardSize, s.rng)
	s.lastUpdate = s.clock.Elapsed()
	s.roundStart = s.lastUpdate
	s.dirLock = false
	s.recorded = false
	glog.Infof("[game:%s] round started", s.game.ID())
}

// Step runs one iteration of the front end loop.
func (s *Session) Step(in Input) {
	if s.game.IsOver() {
		if in.RestartRequested() {
			s.newRound()
		}
		return
	}

	if !s.dirLock {
		for _, d := range types.Directions {
			if in.Held(d) && s.game.SetDirection(d) {
				s.dirLock = true
				break
			}
		}
	}

	now := s.clock.Elapsed()
	if now-s.lastUpdate > s.cfg.TickInterval {
		s.lastUpdate = now
		s.game.Advance()
		s.dirLock = false
		if s.game.IsOver() {
			s.finishRound(now)
		}
	}
}

func (s *Session) finishRound(now time.Duration) {
	if s.recorded {
		return
	}
	s.recorded = true
	record := manager.RoundRecord{
		ID:       s.game.ID(),
		Score:    s.game.Score(),
		Length:   s.game.Length(),
		Cause:    s.game.Cause(),
		Duration: now - s.roundStart,
	}
	s.stats.AddRound(record)
	glog.Infof("[game:%s] game over: %s, score %d, length %d, %s",
		record.ID, record.Cause, record.Score, record.Length, record.Duration.Round(time.Millisecond))
}

// Game returns the current round. The pointer changes on restart.
func (s *Session) Game() *Game {
	return s.game
}

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}

// DirectionLocked reports whether a direction change was already taken this tick.
func (s *Session) DirectionLocked() bool {
	return s.dirLock
}
