package components

import "github.com/yohamta/donburi"

// DamageSource tells the damage handler who dealt the hit.
type DamageSource int

const (
	DamageFromEnvironment DamageSource = iota
	DamageFromPlayer
	DamageFromEnemy
)

type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
	HitStun    float64 // seconds
	Crit       bool
	Source     DamageSource
	SourceX    float64 // attacker position, used for shield facing checks
	SourceY    float64
	XPReward   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
