package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration (the classic variant).
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:          0.5,
			FlapImpulse:      -9,
			FrameReferenceMs: 16.67,
		},
		Obstacles: FlappyObstacles{
			PipeSpeed:       -4,
			SpawnIntervalMs: 1000,
			PipeWidth:       64,
			PipeHeightRatio: 0.8, // 512 on a 640 field
			GapDivisor:      4.5,
			OffsetMin:       0.25, // 128 of 512
			OffsetSpan:      0.5,  // 256 of 512
		},
		Player: FlappyPlayer{
			Width:  34,
			Height: 24,
			XRatio: 0.125,
		},
		Field: FlappyField{
			Width:   360,
			Height:  640,
			MinCols: 30,
			MinRows: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpawnReductionMs: 300,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
