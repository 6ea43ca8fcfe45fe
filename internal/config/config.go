// Package config provides YAML-based game configuration loading, variant
// presets and difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains every tunable of the simulation.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Field      FlappyField      `yaml:"field"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the body integrator parameters.
type FlappyPhysics struct {
	Gravity          float64 `yaml:"gravity"`            // Velocity gained per reference frame
	FlapImpulse      float64 `yaml:"flap_impulse"`       // Velocity set by a flap (negative = up)
	FrameReferenceMs float64 `yaml:"frame_reference_ms"` // Elapsed ms that count as one frame of motion
}

// FlappyObstacles defines obstacle stream parameters.
// Pipe sizes are ratios of the field height so they follow the layout.
type FlappyObstacles struct {
	PipeSpeed       float64 `yaml:"pipe_speed"`        // Horizontal shift per reference frame (negative = left)
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"` // Time between pipe pairs
	PipeWidth       float64 `yaml:"pipe_width"`        // Field units
	PipeHeightRatio float64 `yaml:"pipe_height_ratio"` // Pipe height as a fraction of field height
	GapDivisor      float64 `yaml:"gap_divisor"`       // Gap = field height / divisor
	OffsetMin       float64 `yaml:"offset_min"`        // Minimum upward shift of the top pipe, fraction of pipe height
	OffsetSpan      float64 `yaml:"offset_span"`       // Random extra shift, fraction of pipe height
}

// FlappyPlayer defines the body's hitbox.
type FlappyPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	XRatio float64 `yaml:"x_ratio"` // Horizontal position as a fraction of field width
}

// FlappyField defines the logical play-field size and the smallest terminal
// that can display it.
type FlappyField struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	MinCols int     `yaml:"min_cols"`
	MinRows int     `yaml:"min_rows"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score, or seconds, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Fraction added to pipe speed at max difficulty
	SpawnReductionMs float64 `yaml:"spawn_reduction_ms"` // Spawn interval reduction at max difficulty
}

// PipeHeight returns the pipe height for the given field height.
func (c FlappyConfig) PipeHeight(fieldH float64) float64 {
	return fieldH * c.Obstacles.PipeHeightRatio
}

// PipeGap returns the vertical gap for the given field height.
func (c FlappyConfig) PipeGap(fieldH float64) float64 {
	return fieldH / c.Obstacles.GapDivisor
}

// Validate reports every tunable that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative, got %v", c.Physics.FlapImpulse)
	check(c.Physics.FrameReferenceMs > 0, "physics.frame_reference_ms must be positive, got %v", c.Physics.FrameReferenceMs)
	check(c.Obstacles.PipeSpeed < 0, "obstacles.pipe_speed must be negative, got %v", c.Obstacles.PipeSpeed)
	check(c.Obstacles.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive, got %v", c.Obstacles.SpawnIntervalMs)
	check(c.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive, got %v", c.Obstacles.PipeWidth)
	check(c.Obstacles.PipeHeightRatio > 0, "obstacles.pipe_height_ratio must be positive, got %v", c.Obstacles.PipeHeightRatio)
	check(c.Obstacles.GapDivisor > 1, "obstacles.gap_divisor must be greater than 1, got %v", c.Obstacles.GapDivisor)
	check(c.Obstacles.OffsetMin >= 0 && c.Obstacles.OffsetSpan >= 0,
		"obstacles offset band must be non-negative, got min=%v span=%v", c.Obstacles.OffsetMin, c.Obstacles.OffsetSpan)
	check(c.Obstacles.OffsetMin+c.Obstacles.OffsetSpan <= 1,
		"obstacles offset band leaves the top pipe off-field: min+span=%v", c.Obstacles.OffsetMin+c.Obstacles.OffsetSpan)
	if c.Obstacles.GapDivisor > 0 {
		// Worst-case spawns, as fractions of the field height.
		ph, gap := c.Obstacles.PipeHeightRatio, 1/c.Obstacles.GapDivisor
		lowMin, highMin := c.Obstacles.OffsetMin, c.Obstacles.OffsetMin+c.Obstacles.OffsetSpan
		check(ph*(1-lowMin)+gap <= 1,
			"obstacles gap can fall below the ground: pipe_height_ratio*(1-offset_min)+1/gap_divisor=%v", ph*(1-lowMin)+gap)
		check(ph*(2-highMin)+gap >= 1,
			"obstacles bottom pipe can float above the ground: pipe_height_ratio*(2-offset_min-offset_span)+1/gap_divisor=%v", ph*(2-highMin)+gap)
	}
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.XRatio > 0 && c.Player.XRatio < 1, "player.x_ratio must be within (0, 1), got %v", c.Player.XRatio)
	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid flappy config: %w", err)
	}
	return nil
}

// Variant names a preset of tunables.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantRelaxed Variant = "relaxed"
	VariantWide    Variant = "wide"
)

// Label names the variant in run history. The empty variant is the
// configuration as loaded.
func (v Variant) Label() string {
	if v == "" {
		return "default"
	}
	return string(v)
}

// Variants lists the known variants in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantRelaxed, VariantWide}
}

// ApplyVariant overwrites the variant-specific tunables of cfg.
// An empty variant leaves cfg unchanged, so values from a config file survive.
func ApplyVariant(cfg *FlappyConfig, v Variant) error {
	switch v {
	case "":
		return nil
	case VariantClassic:
		cfg.Obstacles.GapDivisor = 4.5
		cfg.Obstacles.SpawnIntervalMs = 1000
	case VariantRelaxed:
		cfg.Obstacles.GapDivisor = 4
		cfg.Obstacles.SpawnIntervalMs = 1200
	case VariantWide:
		cfg.Field.Width = 640
		cfg.Field.Height = 360
		cfg.Obstacles.GapDivisor = 4
		cfg.Obstacles.SpawnIntervalMs = 1200
	default:
		return fmt.Errorf("config: unknown variant %q", v)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a flag value to a preset. Empty means "use the config".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyDifficultyPreset modifies the config based on a difficulty preset.
func ApplyDifficultyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
