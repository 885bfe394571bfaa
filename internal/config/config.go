// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"

	"termsnake/internal/core"
)

// Config contains all tunable parameters for the game.
// It is read-only after loading and shared by reference.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Render RenderConfig `yaml:"render"`
	Speed  SpeedConfig  `yaml:"speed"`
}

// GridConfig defines the playing field dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines how the grid is drawn in the terminal.
type RenderConfig struct {
	// CellWidth is how many terminal columns one grid cell occupies.
	// 2 gives roughly square cells in most fonts.
	CellWidth int         `yaml:"cell_width"`
	Colors    ColorConfig `yaml:"colors"`
}

// ColorConfig names the colors for each game element.
// Names are resolved through core.ParseColor.
type ColorConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Text   string `yaml:"text"`
	Border string `yaml:"border"`
}

// SpeedConfig defines the tick-rate curve.
// Effective rate = Base + (score / SpeedupEvery) * SpeedupAmount.
type SpeedConfig struct {
	Base          int `yaml:"base"`
	SpeedupEvery  int `yaml:"speedup_every"`
	SpeedupAmount int `yaml:"speedup_amount"`
}

// Palette holds the resolved element colors.
type Palette struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Text   core.Color
	Border core.Color
}

// Palette resolves the configured color names.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error

	if p.Head, err = core.ParseColor(c.Render.Colors.Head); err != nil {
		return p, fmt.Errorf("head: %w", err)
	}
	if p.Body, err = core.ParseColor(c.Render.Colors.Body); err != nil {
		return p, fmt.Errorf("body: %w", err)
	}
	if p.Food, err = core.ParseColor(c.Render.Colors.Food); err != nil {
		return p, fmt.Errorf("food: %w", err)
	}
	if p.Text, err = core.ParseColor(c.Render.Colors.Text); err != nil {
		return p, fmt.Errorf("text: %w", err)
	}
	if p.Border, err = core.ParseColor(c.Render.Colors.Border); err != nil {
		return p, fmt.Errorf("border: %w", err)
	}

	return p, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > 4 {
		return fmt.Errorf("cell_width must be between 1 and 4, got %d", c.Render.CellWidth)
	}
	if c.Speed.Base < 1 {
		return fmt.Errorf("speed.base must be at least 1, got %d", c.Speed.Base)
	}
	if c.Speed.SpeedupEvery < 1 {
		return fmt.Errorf("speed.speedup_every must be at least 1, got %d", c.Speed.SpeedupEvery)
	}
	if c.Speed.SpeedupAmount < 0 {
		return fmt.Errorf("speed.speedup_amount must not be negative, got %d", c.Speed.SpeedupAmount)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("colors: %w", err)
	}
	return nil
}
