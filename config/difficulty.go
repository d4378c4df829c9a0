package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed difficulty.yaml
var defaultDifficultyYAML []byte

// AIParams tunes one enemy archetype. Loaded from the difficulty file so
// balance passes don't require a rebuild.
type AIParams struct {
	Tree string `yaml:"tree"` // aggressive, defensive or basic

	MaxHealth int `yaml:"max_health"`

	SightRange   float64 `yaml:"sight_range"`
	FOVDegrees   float64 `yaml:"fov_degrees"`
	HearingRange float64 `yaml:"hearing_range"`

	MoveSpeed    float64 `yaml:"move_speed"`
	RetreatSpeed float64 `yaml:"retreat_speed"`

	AttackRange    float64 `yaml:"attack_range"`
	AttackDamage   int     `yaml:"attack_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`

	PatrolRadius     float64 `yaml:"patrol_radius"`
	RetreatThreshold float64 `yaml:"retreat_threshold"`
	SearchTime       float64 `yaml:"search_time"`
	StunRecovery     float64 `yaml:"stun_recovery"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// DifficultyPreset scales enemy parameters globally.
type DifficultyPreset struct {
	DamageScale     float64 `yaml:"damage_scale"`
	SpeedScale      float64 `yaml:"speed_scale"`
	SightScale      float64 `yaml:"sight_scale"`
	HealthScale     float64 `yaml:"health_scale"`
	SpawnMultiplier float64 `yaml:"spawn_multiplier"`
}

// DifficultyFile is the on-disk shape of the difficulty config.
type DifficultyFile struct {
	Default    string                      `yaml:"default"`
	Presets    map[string]DifficultyPreset `yaml:"presets"`
	Archetypes map[string]AIParams         `yaml:"archetypes"`
}

// Difficulty holds the loaded difficulty table.
var Difficulty DifficultyFile

// AI behavior constants shared by every archetype.
const (
	AIDecisionInterval = 0.2
	AINoiseLifetime    = 5.0
	// Seconds without a sighting before each alert level decays one step.
	AlertDecaySuspicious = 10.0
	AlertDecayAlert      = 20.0
	AlertDecayCombat     = 30.0
)

// LoadDifficulty populates Difficulty from path, or from the embedded default
// when path is empty or unreadable.
func LoadDifficulty(path string) error {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read difficulty config %s: %w", path, err)
		}
		var f DifficultyFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("parse difficulty config %s: %w", path, err)
		}
		Difficulty = f
		return nil
	}
	var f DifficultyFile
	if err := yaml.Unmarshal(defaultDifficultyYAML, &f); err != nil {
		return fmt.Errorf("parse embedded difficulty config: %w", err)
	}
	Difficulty = f
	return nil
}

// ArchetypeParams returns the AI parameters for an archetype with the named
// preset applied. Unknown names fall back to the crocodile baseline and the
// normal preset.
func ArchetypeParams(archetype, preset string) AIParams {
	p, ok := Difficulty.Archetypes[archetype]
	if !ok {
		p = Difficulty.Archetypes["crocodile"]
	}
	scale, ok := Difficulty.Presets[preset]
	if !ok {
		scale = Difficulty.Presets[Difficulty.Default]
	}
	p.AttackDamage = int(float64(p.AttackDamage) * scale.DamageScale)
	p.MoveSpeed *= scale.SpeedScale
	p.RetreatSpeed *= scale.SpeedScale
	p.SightRange *= scale.SightScale
	p.MaxHealth = int(float64(p.MaxHealth) * scale.HealthScale)
	return p
}

func init() {
	// The embedded default always parses; a broken override surfaces later
	// through LoadDifficulty's error.
	if err := LoadDifficulty(""); err != nil {
		panic(err)
	}
}
