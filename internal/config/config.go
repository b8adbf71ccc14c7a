// Package config provides YAML-based configuration loading and
// difficulty presets for dots.
package config

import (
	"errors"
	"fmt"
)

// DotsConfig contains all configuration for a dots game.
type DotsConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Session SessionConfig `yaml:"session"`
	View    ViewConfig    `yaml:"view"`
	Palette []string      `yaml:"palette"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Size   int `yaml:"size"`
	Colors int `yaml:"colors"`
}

// SessionConfig defines scoring and persistence.
type SessionConfig struct {
	InitialScore int  `yaml:"initial_score"`
	Persist      bool `yaml:"persist"`
}

// ViewConfig defines terminal layout and animation.
type ViewConfig struct {
	CellWidth       int  `yaml:"cell_width"`
	CellHeight      int  `yaml:"cell_height"`
	ShowChainLength bool `yaml:"show_chain_length"`
	AnimationMS     int  `yaml:"animation_ms"`
}

// ErrInvalidConfig is returned by Validate for malformed configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate reports configuration values the game cannot run with.
func (c DotsConfig) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("%w: board.size must be at least 2, got %d", ErrInvalidConfig, c.Board.Size)
	case c.Board.Colors < 1:
		return fmt.Errorf("%w: board.colors must be positive, got %d", ErrInvalidConfig, c.Board.Colors)
	case len(c.Palette) < c.Board.Colors:
		return fmt.Errorf("%w: palette has %d entries for %d colors", ErrInvalidConfig, len(c.Palette), c.Board.Colors)
	case c.Session.InitialScore < 0:
		return fmt.Errorf("%w: session.initial_score must not be negative", ErrInvalidConfig)
	case c.View.CellWidth < 1 || c.View.CellHeight < 1:
		return fmt.Errorf("%w: view cell size must be positive", ErrInvalidConfig)
	case c.View.AnimationMS < 0:
		return fmt.Errorf("%w: view.animation_ms must not be negative", ErrInvalidConfig)
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

// ColorsForPreset returns the number of dot colors for a difficulty preset.
// Fewer colors make longer chains and loops easier to find.
// Returns 0 for presets that keep the configured value.
func ColorsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// ParsePreset converts a flag value into a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
}
