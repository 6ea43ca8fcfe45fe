package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the single high-score value.
type HighScoreStore interface {
	// LoadHighScore returns the stored value, or ok=false if none was saved.
	LoadHighScore() (score float64, ok bool, err error)
	// SaveHighScore stores a new high score.
	SaveHighScore(score float64) error
}

// ScoreTracker counts passes and keeps the high-water mark.
type ScoreTracker struct {
	current float64
	high    float64
	store   HighScoreStore
	logger  *log.Logger
}

// NewScoreTracker creates a tracker and loads the stored high score, which
// then acts as a floor. A nil store keeps the high score in memory only.
func NewScoreTracker(store HighScoreStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &ScoreTracker{store: store, logger: logger}
	t.load()
	return t
}

func (t *ScoreTracker) load() {
	if t.store == nil {
		return
	}
	score, ok, err := t.store.LoadHighScore()
	if err != nil {
		t.logger.Warn("could not load high score", "error", err)
		return
	}
	if ok && score > t.high {
		t.high = score
	}
}

// OnPass awards half a point for one passed pipe pair.
func (t *ScoreTracker) OnPass() {
	t.current += 0.5
}

// Finalize closes the run. The stored value is re-read first, so a high
// score saved elsewhere since the load raises the floor. If the run beat the
// high score, the new value is kept in memory and persisted. A persistence
// error is returned and logged but never rolls back the in-memory value.
func (t *ScoreTracker) Finalize() (newHigh bool, err error) {
	t.load()
	if t.current <= t.high {
		return false, nil
	}
	t.high = t.current

	if t.store == nil {
		return true, nil
	}
	if err := t.store.SaveHighScore(t.high); err != nil {
		t.logger.Warn("could not save high score", "score", t.high, "error", err)
		return true, fmt.Errorf("flappy: save high score: %w", err)
	}
	return true, nil
}

// Reset clears the current run's score.
func (t *ScoreTracker) Reset() {
	t.current = 0
}

// Current returns the running score in half-point steps.
func (t *ScoreTracker) Current() float64 {
	return t.current
}

// Display returns the score floored for display.
func (t *ScoreTracker) Display() int {
	return int(t.current)
}

// HighScore returns the best finalized score, including the loaded floor.
func (t *ScoreTracker) HighScore() float64 {
	return t.high
}
