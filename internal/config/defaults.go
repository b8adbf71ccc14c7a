package config

import (
	_ "embed"
)

//go:embed defaults/dots.yaml
var defaultDotsYAML []byte

// DefaultDotsConfig returns the default configuration: a 6x6 board with 5 colors.
func DefaultDotsConfig() DotsConfig {
	return DotsConfig{
		Board: BoardConfig{
			Size:   6,
			Colors: 5,
		},
		Session: SessionConfig{
			InitialScore: 0,
			Persist:      true,
		},
		View: ViewConfig{
			CellWidth:       4,
			CellHeight:      2,
			ShowChainLength: true,
			AnimationMS:     300,
		},
		Palette: []string{
			"#e74c3c", // red
			"#3498db", // blue
			"#2ecc71", // green
			"#f1c40f", // yellow
			"#9b59b6", // purple
			"#e67e22", // orange
			"#1abc9c", // teal
			"#ecf0f1", // white
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDotsYAML
}
