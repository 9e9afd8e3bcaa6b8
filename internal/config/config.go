// Package config provides YAML-based game configuration loading and the
// difficulty scheduler for the falling rocks game.
package config

// RocksConfig contains all configuration for the falling rocks game.
type RocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Seeker     SeekerConfig     `yaml:"seeker"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Fall       FallConfig       `yaml:"fall"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playable area. Height includes the ground row,
// so the sky grid is Width x (Height-1).
type BoardConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	FitTerminal bool `yaml:"fit_terminal"` // Size the board to the terminal instead
}

// PlayerConfig defines the player element and its health.
type PlayerConfig struct {
	Glyphs         string `yaml:"glyphs"`
	Health         int    `yaml:"health"`
	HurtCooldownMs int    `yaml:"hurt_cooldown_ms"` // Hit debounce window
}

// ObstacleConfig defines the regular falling rocks and the pool size.
type ObstacleConfig struct {
	Capacity int    `yaml:"capacity"`
	Glyph    string `yaml:"glyph"`
	MinWidth int    `yaml:"min_width"`
	MaxWidth int    `yaml:"max_width"`
}

// SeekerConfig defines the fast obstacle that spawns above the player.
type SeekerConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Glyph        string  `yaml:"glyph"`
	BaseRate     float64 `yaml:"base_rate"`     // ms per row at t=0
	Ramp         float64 `yaml:"ramp"`          // rate reduction per elapsed ms
	MaxReduction float64 `yaml:"max_reduction"` // cap on the rate reduction
	ScoreGap     float64 `yaml:"score_gap"`     // base score delta between seekers
	GapDivisor   float64 `yaml:"gap_divisor"`   // elapsed ms per extra point of gap
}

// SpawnConfig defines the regular spawn interval ramp.
type SpawnConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	Ramp           float64 `yaml:"ramp"`
}

// FallConfig defines the regular fall rate ramp.
type FallConfig struct {
	BaseRate     float64 `yaml:"base_rate"`
	Ramp         float64 `yaml:"ramp"`
	MaxReduction float64 `yaml:"max_reduction"`
}

// ScoringConfig defines the despawn reward round((Base - RateFactor*rate) / Divisor).
type ScoringConfig struct {
	Base       float64 `yaml:"base"`
	RateFactor float64 `yaml:"rate_factor"`
	Divisor    float64 `yaml:"divisor"`
}

// DifficultyConfig defines how the elapsed-time ramp starts and whether it moves.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = fresh start, 1.0 = fully ramped
	MaxAtMs      float64 `yaml:"max_at_ms"`     // Elapsed time at which the ramp saturates
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
