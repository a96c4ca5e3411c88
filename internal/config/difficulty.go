package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched. The result is not validated;
// use Resolve when the input may come from a user file.
func ApplyPreset(cfg *GoalkeeperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.8
		cfg.Keeper.Speed *= 1.25
		cfg.Keeper.Height *= 1.5
	case DifficultyHard:
		cfg.Ball.Speed *= 1.3
		cfg.Keeper.Speed *= 0.9
		cfg.Keeper.Height *= 0.8
	}
}

// Resolve loads the configuration, applies the preset and validates the
// combination. A file that is valid on its own can still be pushed out of
// range by a preset, e.g. easy on a keeper taller than 2/3 of the field.
func Resolve(customPath string, preset DifficultyPreset) (GoalkeeperConfig, error) {
	cfg, err := LoadGoalkeeper(customPath)
	if err != nil {
		return GoalkeeperConfig{}, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return GoalkeeperConfig{}, fmt.Errorf("config: difficulty %q: %w", preset, err)
	}
	return cfg, nil
}
