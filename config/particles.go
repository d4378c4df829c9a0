package config

import (
	"image/color"
	"math"
)

// ParticleType selects per-type physics modifiers and draw shape.
type ParticleType int

const (
	ParticleDust ParticleType = iota
	ParticleSpark
	ParticleSmoke
	ParticleLeaf
	ParticleMagic
	ParticleExplosion
	ParticleHeal
	ParticleBlood
	ParticleShield
)

func (p ParticleType) String() string {
	switch p {
	case ParticleDust:
		return "dust"
	case ParticleSpark:
		return "spark"
	case ParticleSmoke:
		return "smoke"
	case ParticleLeaf:
		return "leaf"
	case ParticleMagic:
		return "magic"
	case ParticleExplosion:
		return "explosion"
	case ParticleHeal:
		return "heal"
	case ParticleBlood:
		return "blood"
	case ParticleShield:
		return "shield"
	}
	return "unknown"
}

// ParticleBlend selects how a particle is composited.
type ParticleBlend int

const (
	BlendNormal ParticleBlend = iota
	BlendAdditive
)

// ParticleConfig describes one burst or emitter payload.
type ParticleConfig struct {
	Type     ParticleType
	Count    int
	Lifetime float64 // seconds
	SpeedMin float64
	SpeedMax float64
	SizeMin  float64
	SizeMax  float64
	Color    color.RGBA
	EndColor color.RGBA // zero value means fade the start color out
	Gravity  float64    // pixels per second squared, negative rises
	Drag     float64    // per-second velocity decay fraction
	Blend    ParticleBlend

	// Emission cone
	SpreadAngle float64 // radians
	Direction   float64 // radians, base direction
}

// ParticlePresets holds the stock effect configurations keyed by name.
var ParticlePresets map[string]ParticleConfig

func init() {
	ParticlePresets = map[string]ParticleConfig{
		"player_jump": {
			Type:        ParticleDust,
			Count:       8,
			Lifetime:    0.8,
			SpeedMin:    30,
			SpeedMax:    80,
			SizeMin:     3,
			SizeMax:     6,
			Color:       Brown,
			Gravity:     150,
			SpreadAngle: math.Pi / 3,
			Direction:   -math.Pi / 2,
		},
		"player_landing": {
			Type:        ParticleDust,
			Count:       12,
			Lifetime:    1.0,
			SpeedMin:    50,
			SpeedMax:    120,
			SizeMin:     2,
			SizeMax:     8,
			Color:       Brown,
			Gravity:     200,
			SpreadAngle: math.Pi / 2,
			Direction:   0,
		},
		"dash_trail": {
			Type:        ParticleSmoke,
			Count:       4,
			Lifetime:    0.4,
			SpeedMin:    10,
			SpeedMax:    40,
			SizeMin:     3,
			SizeMax:     6,
			Color:       LightBlue,
			Gravity:     -50,
			SpreadAngle: math.Pi / 6,
			Direction:   math.Pi,
		},
		"sword_hit": {
			Type:        ParticleSpark,
			Count:       15,
			Lifetime:    0.6,
			SpeedMin:    80,
			SpeedMax:    200,
			SizeMin:     2,
			SizeMax:     5,
			Color:       Yellow,
			Gravity:     300,
			Blend:       BlendAdditive,
			SpreadAngle: math.Pi / 4,
		},
		"crit_hit": {
			Type:        ParticleSpark,
			Count:       25,
			Lifetime:    0.8,
			SpeedMin:    120,
			SpeedMax:    260,
			SizeMin:     3,
			SizeMax:     6,
			Color:       BrightOrange,
			Gravity:     300,
			Blend:       BlendAdditive,
			SpreadAngle: math.Pi / 2,
		},
		"enemy_death": {
			Type:        ParticleExplosion,
			Count:       20,
			Lifetime:    1.5,
			SpeedMin:    60,
			SpeedMax:    180,
			SizeMin:     4,
			SizeMax:     12,
			Color:       Red,
			Gravity:     100,
			SpreadAngle: math.Pi * 2,
		},
		"magic_cast": {
			Type:        ParticleMagic,
			Count:       25,
			Lifetime:    2.0,
			SpeedMin:    20,
			SpeedMax:    80,
			SizeMin:     3,
			SizeMax:     8,
			Color:       Cyan,
			Gravity:     0,
			Blend:       BlendAdditive,
			SpreadAngle: math.Pi * 2,
		},
		"heal_effect": {
			Type:        ParticleHeal,
			Count:       15,
			Lifetime:    1.5,
			SpeedMin:    10,
			SpeedMax:    40,
			SizeMin:     4,
			SizeMax:     8,
			Color:       Green,
			Gravity:     -60,
			SpreadAngle: math.Pi * 2,
		},
		"shield_block": {
			Type:        ParticleShield,
			Count:       10,
			Lifetime:    0.5,
			SpeedMin:    50,
			SpeedMax:    140,
			SizeMin:     2,
			SizeMax:     5,
			Color:       LightBlue,
			Gravity:     0,
			Blend:       BlendAdditive,
			SpreadAngle: math.Pi / 2,
		},
		"perfect_block": {
			Type:        ParticleShield,
			Count:       24,
			Lifetime:    0.7,
			SpeedMin:    100,
			SpeedMax:    240,
			SizeMin:     3,
			SizeMax:     7,
			Color:       White,
			Gravity:     0,
			Blend:       BlendAdditive,
			SpreadAngle: math.Pi * 2,
		},
		"shield_break": {
			Type:        ParticleShield,
			Count:       30,
			Lifetime:    1.2,
			SpeedMin:    80,
			SpeedMax:    220,
			SizeMin:     3,
			SizeMax:     8,
			Color:       Blue,
			Gravity:     200,
			SpreadAngle: math.Pi * 2,
		},
		"falling_leaves": {
			Type:        ParticleLeaf,
			Count:       1,
			Lifetime:    6.0,
			SpeedMin:    10,
			SpeedMax:    30,
			SizeMin:     3,
			SizeMax:     6,
			Color:       Green,
			Gravity:     30,
			SpreadAngle: math.Pi / 3,
			Direction:   math.Pi / 2,
		},
	}
}
