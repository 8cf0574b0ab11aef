// Package config provides YAML-based game tuning and difficulty presets
// for Hamster vs. Squeaky Toys.
package config

import (
	"errors"
	"fmt"
	"time"
)

// HamsterConfig contains every tunable of the simulation.
type HamsterConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Toys   ToysConfig   `yaml:"toys"`
	Round  RoundConfig  `yaml:"round"`
	Input  InputConfig  `yaml:"input"`
}

// WorldConfig defines the visible area in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the hamster's hitbox and speed.
type PlayerConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MoveSpeed int `yaml:"move_speed"` // World units per tick
}

// ToysConfig defines squeaky toy spawning.
type ToysConfig struct {
	MinSize       int  `yaml:"min_size"`
	MaxSize       int  `yaml:"max_size"`
	MinSpeed      int  `yaml:"min_speed"`
	MaxSpeed      int  `yaml:"max_speed"`
	SpawnInterval int  `yaml:"spawn_interval"` // Ticks between spawns
	SpawnMargin   int  `yaml:"spawn_margin"`   // Distance beyond the edge where toys appear
	CullOffscreen bool `yaml:"cull_offscreen"` // Drop toys that left the opposite edge
}

// RoundConfig defines lives and round pacing.
type RoundConfig struct {
	StartingLives   int `yaml:"starting_lives"`
	ExtraLifeScore  int `yaml:"extra_life_score"`   // Score at which the bonus life is granted
	LifeLostPauseMS int `yaml:"life_lost_pause_ms"` // Real-time freeze after losing a life
	GameOverDelayMS int `yaml:"game_over_delay_ms"` // Keys ignored on the game over screen
}

// InputConfig defines how terminal key presses become held directions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// LifeLostPause returns the life-lost freeze as a duration.
func (r RoundConfig) LifeLostPause() time.Duration {
	return time.Duration(r.LifeLostPauseMS) * time.Millisecond
}

// GameOverDelay returns the game over input delay as a duration.
func (r RoundConfig) GameOverDelay() time.Duration {
	return time.Duration(r.GameOverDelayMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c HamsterConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, errors.New("player does not fit in the world"))
	}
	if c.Player.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("player move_speed must not be negative, got %d", c.Player.MoveSpeed))
	}
	if c.Toys.MinSize <= 0 || c.Toys.MinSize > c.Toys.MaxSize {
		errs = append(errs, fmt.Errorf("toy size range [%d, %d] is invalid", c.Toys.MinSize, c.Toys.MaxSize))
	}
	if c.Toys.MaxSize > c.World.Width || c.Toys.MaxSize > c.World.Height {
		errs = append(errs, errors.New("toys do not fit in the world"))
	}
	if c.Toys.MinSpeed <= 0 || c.Toys.MinSpeed > c.Toys.MaxSpeed {
		errs = append(errs, fmt.Errorf("toy speed range [%d, %d] is invalid", c.Toys.MinSpeed, c.Toys.MaxSpeed))
	}
	if c.Toys.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("toy spawn_interval must be positive, got %d", c.Toys.SpawnInterval))
	}
	if c.Toys.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("toy spawn_margin must not be negative, got %d", c.Toys.SpawnMargin))
	}
	if c.Round.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("round starting_lives must be positive, got %d", c.Round.StartingLives))
	}
	if c.Round.LifeLostPauseMS < 0 || c.Round.GameOverDelayMS < 0 {
		errs = append(errs, errors.New("round delays must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
