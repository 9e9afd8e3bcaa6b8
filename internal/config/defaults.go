package config

import (
	_ "embed"
)

//go:embed defaults/rocks.yaml
var defaultRocksYAML []byte

// DefaultRocksConfig returns the default falling rocks configuration.
// It mirrors defaults/rocks.yaml and is used when the embedded file cannot be parsed.
func DefaultRocksConfig() RocksConfig {
	return RocksConfig{
		Board: BoardConfig{
			Width:  30,
			Height: 15,
		},
		Player: PlayerConfig{
			Glyphs:         "←☻→",
			Health:         3,
			HurtCooldownMs: 500,
		},
		Obstacles: ObstacleConfig{
			Capacity: 30,
			Glyph:    "@",
			MinWidth: 1,
			MaxWidth: 3,
		},
		Seeker: SeekerConfig{
			Enabled:      true,
			Glyph:        "▲",
			BaseRate:     150,
			Ramp:         0.002,
			MaxReduction: 120,
			ScoreGap:     100,
			GapDivisor:   225,
		},
		Spawn: SpawnConfig{
			BaseIntervalMs: 500,
			Ramp:           0.0055,
		},
		Fall: FallConfig{
			BaseRate:     300,
			Ramp:         0.004,
			MaxReduction: 240,
		},
		Scoring: ScoringConfig{
			Base:       1000,
			RateFactor: 3,
			Divisor:    20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtMs:      90000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRocksYAML
}
