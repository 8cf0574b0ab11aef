package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts toy pacing for a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *HamsterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Toys.SpawnInterval += cfg.Toys.SpawnInterval / 4
		cfg.Toys.MinSpeed = max(1, cfg.Toys.MinSpeed-3)
		cfg.Toys.MaxSpeed = max(cfg.Toys.MinSpeed, cfg.Toys.MaxSpeed-3)
		cfg.Round.StartingLives++
	case DifficultyHard:
		cfg.Toys.SpawnInterval = max(1, cfg.Toys.SpawnInterval-cfg.Toys.SpawnInterval/4)
		cfg.Toys.MinSpeed += 3
		cfg.Toys.MaxSpeed += 4
	}
}
