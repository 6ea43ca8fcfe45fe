package config

import "testing"

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(-4, 100, 60000); got != -4 {
		t.Errorf("Speed() = %v, expected base -4", got)
	}
	if got := d.SpawnInterval(1000, 100, 60000); got != 1000 {
		t.Errorf("SpawnInterval() = %v, expected base 1000", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := d.Level(25, 0); got != 0.5 {
		t.Errorf("Level(25) = %v, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 1 {
		t.Errorf("Level(500) = %v, expected clamp to 1", got)
	}

	// Speed magnitude grows, sign kept
	if got := d.Speed(-4, 50, 0); got != -6 {
		t.Errorf("Speed at max = %v, expected -6", got)
	}
	if got := d.SpawnInterval(1000, 50, 0); got != 700 {
		t.Errorf("SpawnInterval at max = %v, expected 700", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:      ScalingConfig{SpawnReductionMs: 2000},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 5000); got != 0.75 {
		t.Errorf("Level after 5s = %v, expected 0.75", got)
	}
	// Spawn interval never drops below the floor
	if got := d.SpawnInterval(1000, 0, 60000); got != minSpawnIntervalMs {
		t.Errorf("SpawnInterval = %v, expected floor %v", got, minSpawnIntervalMs)
	}
}
