package flappy

import (
	"errors"
	"testing"
)

// fakeStore records saves and can be told to fail.
type fakeStore struct {
	high    float64
	has     bool
	loadErr error
	saveErr error
	saves   []float64
}

func (s *fakeStore) LoadHighScore() (float64, bool, error) {
	if s.loadErr != nil {
		return 0, false, s.loadErr
	}
	return s.high, s.has, nil
}

func (s *fakeStore) SaveHighScore(score float64) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.high, s.has = score, true
	return nil
}

func TestScoreThreePassesBeatsStoredHigh(t *testing.T) {
	store := &fakeStore{high: 1.0, has: true}
	tr := NewScoreTracker(store, nil)

	if tr.HighScore() != 1.0 {
		t.Fatalf("loaded high score = %v, expected 1.0", tr.HighScore())
	}

	for i := 0; i < 3; i++ {
		tr.OnPass()
	}
	if tr.Current() != 1.5 {
		t.Fatalf("Current() = %v, expected 1.5", tr.Current())
	}
	if tr.Display() != 1 {
		t.Errorf("Display() = %d, expected 1", tr.Display())
	}

	newHigh, err := tr.Finalize()
	if err != nil || !newHigh {
		t.Fatalf("Finalize() = %v, %v; expected new high", newHigh, err)
	}
	if tr.HighScore() != 1.5 {
		t.Errorf("HighScore() = %v, expected 1.5", tr.HighScore())
	}
	if len(store.saves) != 1 || store.saves[0] != 1.5 {
		t.Errorf("persist calls = %v, expected [1.5]", store.saves)
	}
}

func TestScoreNoPersistWhenNotBeaten(t *testing.T) {
	store := &fakeStore{high: 5, has: true}
	tr := NewScoreTracker(store, nil)
	tr.OnPass()

	newHigh, err := tr.Finalize()
	if newHigh || err != nil {
		t.Errorf("Finalize() = %v, %v; expected no new high", newHigh, err)
	}
	if len(store.saves) != 0 {
		t.Errorf("unexpected persist calls %v", store.saves)
	}

	// Equal is not higher
	tr.Reset()
	for i := 0; i < 10; i++ {
		tr.OnPass()
	}
	if newHigh, _ := tr.Finalize(); newHigh {
		t.Error("tying the high score should not persist")
	}
}

func TestScorePersistFailureKeepsMemory(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	tr := NewScoreTracker(store, nil)
	tr.OnPass()

	newHigh, err := tr.Finalize()
	if !newHigh {
		t.Error("expected new high despite save failure")
	}
	if err == nil || !errors.Is(err, store.saveErr) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
	if tr.HighScore() != 0.5 {
		t.Errorf("in-memory high score = %v, expected 0.5", tr.HighScore())
	}
}

func TestScoreLoadFailureStartsAtZero(t *testing.T) {
	tr := NewScoreTracker(&fakeStore{loadErr: errors.New("locked")}, nil)
	if tr.HighScore() != 0 {
		t.Errorf("HighScore() = %v, expected 0", tr.HighScore())
	}
}

func TestScoreNilStore(t *testing.T) {
	tr := NewScoreTracker(nil, nil)
	tr.OnPass()
	tr.OnPass()
	if newHigh, err := tr.Finalize(); !newHigh || err != nil {
		t.Errorf("Finalize() = %v, %v", newHigh, err)
	}
	if tr.HighScore() != 1 {
		t.Errorf("HighScore() = %v, expected 1", tr.HighScore())
	}
}

func TestScoreHighMonotonicAcrossRuns(t *testing.T) {
	store := &fakeStore{high: 2, has: true}
	tr := NewScoreTracker(store, nil)

	runs := []int{1, 6, 3, 0, 9, 2} // passes per run
	best := 2.0
	for _, passes := range runs {
		tr.Reset()
		for i := 0; i < passes; i++ {
			tr.OnPass()
		}
		prev := tr.HighScore()
		tr.Finalize()

		if tr.HighScore() < prev {
			t.Fatalf("high score decreased from %v to %v", prev, tr.HighScore())
		}
		if s := float64(passes) * 0.5; s > best {
			best = s
		}
		if tr.HighScore() != best {
			t.Fatalf("high score %v, expected max %v", tr.HighScore(), best)
		}
	}
}

func TestScoreFinalizePicksUpNewerStoredHigh(t *testing.T) {
	store := &fakeStore{high: 1.0, has: true}
	tr := NewScoreTracker(store, nil)

	// Another writer raises the stored value mid-run
	store.high = 3.0
	for i := 0; i < 4; i++ {
		tr.OnPass()
	}

	newHigh, err := tr.Finalize()
	if err != nil || newHigh {
		t.Fatalf("Finalize() = %v, %v; expected no new high", newHigh, err)
	}
	if tr.HighScore() != 3.0 {
		t.Errorf("HighScore() = %v, expected 3.0", tr.HighScore())
	}
	if len(store.saves) != 0 {
		t.Errorf("persist calls = %v, expected none", store.saves)
	}
}
