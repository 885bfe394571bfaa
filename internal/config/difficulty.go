package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means "normal".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset adjusts the speed curve for a difficulty preset.
// "normal" keeps the config as-is; "fixed" disables speedup entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = maxInt(1, cfg.Speed.Base-1)
		cfg.Speed.SpeedupAmount = 1
	case DifficultyHard:
		cfg.Speed.Base += 2
		cfg.Speed.SpeedupEvery = maxInt(1, cfg.Speed.SpeedupEvery-2)
	case DifficultyFixed:
		cfg.Speed.SpeedupAmount = 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
