package manager

import (
	"sync"
	"time"
)

const maxScores = 200 // Scores kept in the history

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID       string
	Score    int
	Length   int // Head plus body cells
	Cause    CollisionType
	Duration time.Duration
}

// StateManager keeps the statistics of the current process. Nothing is
// written to disk.
type StateManager struct {
	mutex        sync.RWMutex
	rounds       int
	highScore    int
	scoreHistory []int
	last         *RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

// AddRound records a finished round.
func (sm *StateManager) AddRound(record RoundRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.rounds++
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, record.Score)
	sm.last = &record
}

func (sm *StateManager) GetRounds() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.rounds
}

func (sm *StateManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// GetAverageScore averages the kept history, 0 when no round finished yet.
func (sm *StateManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, score := range sm.scoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// GetLastRound returns the most recently finished round.
func (sm *StateManager) GetLastRound() (RoundRecord, bool) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if sm.last == nil {
		return RoundRecord{}, false
	}
	return *sm.last, true
}
