package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default configuration.
// Values mirror defaults/snake.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Render: RenderConfig{
			CellWidth: 2,
			Colors: ColorConfig{
				Head:   "bright_green",
				Body:   "green",
				Food:   "red",
				Text:   "white",
				Border: "gray",
			},
		},
		Speed: SpeedConfig{
			Base:          5,
			SpeedupEvery:  5,
			SpeedupAmount: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable for printing as
// a starting point for user configs.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
