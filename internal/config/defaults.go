package config

import (
	_ "embed"
)

//go:embed defaults/hamster.yaml
var defaultHamsterYAML []byte

// DefaultHamsterConfig returns the built-in configuration.
// It mirrors defaults/hamster.yaml and is used when the embedded file
// cannot be parsed.
func DefaultHamsterConfig() HamsterConfig {
	return HamsterConfig{
		World: WorldConfig{
			Width:  1200,
			Height: 900,
		},
		Player: PlayerConfig{
			Width:     200,
			Height:    180,
			MoveSpeed: 11,
		},
		Toys: ToysConfig{
			MinSize:       100,
			MaxSize:       150,
			MinSpeed:      10,
			MaxSpeed:      16,
			SpawnInterval: 20,
			SpawnMargin:   40,
			CullOffscreen: false,
		},
		Round: RoundConfig{
			StartingLives:   1,
			ExtraLifeScore:  300,
			LifeLostPauseMS: 500,
			GameOverDelayMS: 1000,
		},
		Input: InputConfig{
			HoldTicks: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHamsterYAML
}
