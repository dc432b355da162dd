package manager

import (
	"fmt"
	"log"
	"time"
)

// RoundSummary describes one round from reset to reset.
type RoundSummary struct {
	ID       string
	Apples   int
	Length   int
	Cause    string
	Duration time.Duration
}

// StateManager keeps in-memory session statistics. Nothing is written to disk.
type StateManager struct {
	logger *log.Logger
	now    func() time.Time

	rounds      int
	totalApples int
	bestLength  int

	current RoundSummary
	started time.Time
	active  bool
}

func NewStateManager(logger *log.Logger) *StateManager {
	return &StateManager{
		logger: logger,
		now:    time.Now,
	}
}

// BeginRound starts tracking a fresh round.
func (sm *StateManager) BeginRound(id string, length int) {
	sm.current = RoundSummary{ID: id, Length: length}
	sm.started = sm.now()
	sm.active = true
	sm.observeLength(length)
}

// RecordApple notes an eaten apple and the resulting snake length.
func (sm *StateManager) RecordApple(length int) {
	sm.current.Apples++
	sm.current.Length = length
	sm.totalApples++
	sm.observeLength(length)
}

// EndRound closes the current round and logs its summary. Calling it with
// no round in progress returns the zero summary.
func (sm *StateManager) EndRound(cause string) RoundSummary {
	if !sm.active {
		return RoundSummary{}
	}
	sm.active = false
	sm.rounds++

	summary := sm.current
	summary.Cause = cause
	summary.Duration = sm.now().Sub(sm.started)

	if sm.logger != nil {
		sm.logger.Printf("round %s over: cause=%s apples=%d length=%d duration=%s best=%d",
			summary.ID, summary.Cause, summary.Apples, summary.Length,
			summary.Duration.Round(time.Millisecond), sm.bestLength)
	}
	return summary
}

func (sm *StateManager) observeLength(length int) {
	if length > sm.bestLength {
		sm.bestLength = length
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.bestLength
}

func (sm *StateManager) GetRounds() int {
	return sm.rounds
}

func (sm *StateManager) GetTotalApples() int {
	return sm.totalApples
}

func (sm *StateManager) GetCurrent() RoundSummary {
	return sm.current
}

// Title renders the window caption for the current round.
func (sm *StateManager) Title() string {
	return fmt.Sprintf("Snake - length %d, best %d", sm.current.Length, sm.bestLength)
}
