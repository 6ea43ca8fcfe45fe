package config

import "math"

// Floor for the spawn interval under maximum difficulty.
const minSpawnIntervalMs = 400

// DifficultyManager calculates dynamic obstacle parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed run time.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = (elapsedMs / 1000) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the pipe speed for the current level. The sign of baseSpeed
// is preserved; only its magnitude grows.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsedMs float64) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	level := d.Level(score, elapsedMs)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the spawn interval for the current level.
func (d *DifficultyManager) SpawnInterval(baseMs float64, score int, elapsedMs float64) float64 {
	if !d.cfg.Enabled {
		return baseMs
	}
	level := d.Level(score, elapsedMs)
	result := baseMs - level*d.cfg.Scaling.SpawnReductionMs
	return math.Max(result, math.Min(baseMs, minSpawnIntervalMs))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
