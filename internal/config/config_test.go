package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg HamsterConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultHamsterConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultHamsterConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHamsterConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HamsterConfig)
		want   string
	}{
		{"inverted size", func(c *HamsterConfig) { c.Toys.MinSize = 200 }, "toy size range"},
		{"inverted speed", func(c *HamsterConfig) { c.Toys.MaxSpeed = 1 }, "toy speed range"},
		{"zero interval", func(c *HamsterConfig) { c.Toys.SpawnInterval = 0 }, "spawn_interval"},
		{"zero lives", func(c *HamsterConfig) { c.Round.StartingLives = 0 }, "starting_lives"},
		{"empty world", func(c *HamsterConfig) { c.World.Width = 0 }, "world size"},
		{"huge player", func(c *HamsterConfig) { c.Player.Height = 5000 }, "player does not fit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHamsterConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("toys:\n  spawn_interval: 7\nround:\n  extra_life_score: 120\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Toys.SpawnInterval != 7 {
		t.Errorf("SpawnInterval = %d, expected 7", cfg.Toys.SpawnInterval)
	}
	if cfg.Round.ExtraLifeScore != 120 {
		t.Errorf("ExtraLifeScore = %d, expected 120", cfg.Round.ExtraLifeScore)
	}
	// Untouched keys keep their defaults
	if cfg.World.Width != 1200 || cfg.Player.MoveSpeed != 11 {
		t.Errorf("defaults should survive a partial file, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("toys: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("toys:\n  min_speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should validate the loaded config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultHamsterConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var cfg HamsterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("marshalled YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHamsterConfig()) {
		t.Error("Marshal() output should decode back to the same config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultHamsterConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultHamsterConfig()) {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultHamsterConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Toys.SpawnInterval <= normal.Toys.SpawnInterval {
		t.Error("easy should spawn less often")
	}
	if easy.Toys.MaxSpeed >= normal.Toys.MaxSpeed {
		t.Error("easy toys should be slower")
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy config should validate: %v", err)
	}

	hard := DefaultHamsterConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Toys.SpawnInterval >= normal.Toys.SpawnInterval {
		t.Error("hard should spawn more often")
	}
	if hard.Toys.MinSpeed <= normal.Toys.MinSpeed {
		t.Error("hard toys should be faster")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard config should validate: %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HAMSTER_TEST_VALUE", "set")

	if got := GetEnv("HAMSTER_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected %q", got, "set")
	}
	if got := GetEnv("HAMSTER_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
