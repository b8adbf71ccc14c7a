package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "dots.yaml"

// LoadDots loads the game configuration.
// Search order: customPath -> ~/.dots/configs/dots.yaml -> ./configs/dots.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. The result is validated.
func LoadDots(customPath string) (DotsConfig, error) {
	cfg := DefaultDotsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultDotsConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		candidate := DefaultDotsConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDotsYAML, &cfg); err != nil {
		return DefaultDotsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dots", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The palette must still cover the resulting color count.
func ApplyPreset(cfg *DotsConfig, preset DifficultyPreset) error {
	if n := ColorsForPreset(preset); n > 0 {
		cfg.Board.Colors = n
	}
	return cfg.Validate()
}
