package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LoadRocks loads the falling rocks configuration.
// Search order: customPath -> ~/.rocks/configs/rocks.yaml -> ./configs/rocks.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadRocks(customPath string) (RocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRocksConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRocks(data)
		if err != nil {
			return DefaultRocksConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRocks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rocks.yaml")); err == nil {
		if cfg, err := parseRocks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRocks(defaultRocksYAML)
	if err != nil {
		return DefaultRocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRocks decodes YAML over the defaults and validates the result.
func parseRocks(data []byte) (RocksConfig, error) {
	cfg := DefaultRocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rocks", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the file's settings.
func ApplyPreset(cfg *RocksConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Health is the other lever a preset pulls
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
	case DifficultyHard:
		cfg.Player.Health = 2
	}
}

// FitBoard sizes the board to a terminal of screenW x screenH, leaving
// one row for the HUD below the ground.
func FitBoard(cfg *RocksConfig, screenW, screenH int) {
	if !cfg.Board.FitTerminal {
		return
	}
	if screenW > 0 {
		cfg.Board.Width = screenW
	}
	if screenH > 1 {
		cfg.Board.Height = screenH - 1
	}
}

// Validate reports every setting the simulation cannot run with.
func (c RocksConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	playerW := utf8.RuneCountInString(c.Player.Glyphs)

	if c.Board.Height < 3 {
		bad("board.height must be at least 3, got %d", c.Board.Height)
	}
	if c.Board.Width < playerW {
		bad("board.width %d is narrower than the player (%d)", c.Board.Width, playerW)
	}
	if playerW == 0 {
		bad("player.glyphs must not be empty")
	}
	if strings.ContainsRune(c.Player.Glyphs, ' ') {
		bad("player.glyphs must not contain blanks")
	}
	if c.Player.Health < 1 {
		bad("player.health must be positive, got %d", c.Player.Health)
	}
	if c.Player.HurtCooldownMs < 0 {
		bad("player.hurt_cooldown_ms must not be negative, got %d", c.Player.HurtCooldownMs)
	}
	if c.Obstacles.Capacity < 2 {
		bad("obstacles.capacity must be at least 2, got %d", c.Obstacles.Capacity)
	}
	if !isGlyph(c.Obstacles.Glyph) {
		bad("obstacles.glyph must be a single non-blank character, got %q", c.Obstacles.Glyph)
	}
	if c.Obstacles.MinWidth < 1 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		bad("obstacles width range [%d, %d] is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	}
	if c.Obstacles.MaxWidth >= c.Board.Width {
		bad("obstacles.max_width %d must be less than board.width %d", c.Obstacles.MaxWidth, c.Board.Width)
	}
	if c.Seeker.Enabled {
		if !isGlyph(c.Seeker.Glyph) {
			bad("seeker.glyph must be a single non-blank character, got %q", c.Seeker.Glyph)
		}
		if c.Seeker.BaseRate-c.Seeker.MaxReduction <= 0 {
			bad("seeker rate must stay positive (base_rate %.1f, max_reduction %.1f)", c.Seeker.BaseRate, c.Seeker.MaxReduction)
		}
		if c.Seeker.GapDivisor <= 0 {
			bad("seeker.gap_divisor must be positive")
		}
	}
	if c.Fall.BaseRate-c.Fall.MaxReduction <= 0 {
		bad("fall rate must stay positive (base_rate %.1f, max_reduction %.1f)", c.Fall.BaseRate, c.Fall.MaxReduction)
	}
	if c.Spawn.BaseIntervalMs < 0 {
		bad("spawn.base_interval_ms must not be negative")
	}
	if c.Scoring.Divisor == 0 {
		bad("scoring.divisor must not be zero")
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		bad("difficulty.initial_level must be within [0, 1], got %.2f", c.Difficulty.InitialLevel)
	}
	if c.Difficulty.MaxAtMs <= 0 {
		bad("difficulty.max_at_ms must be positive")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
}

func isGlyph(s string) bool {
	return utf8.RuneCountInString(s) == 1 && s != " "
}
