package components

import (
	"github.com/mossforge/forestfall/ai"
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Archetype string
	Params    config.AIParams
	Agent     *ai.Agent

	Direction Vector // facing, X is -1 or 1

	// Patrol ring around the spawn point
	PatrolCenter Vector
	PatrolPoints []Vector
	PatrolIndex  int
	PauseTimer   float64 // idle dwell at a patrol point

	// Search
	SearchTarget Vector
	SearchTimer  float64

	// Combat
	AttackCooldownTimer float64
	StunTimer           float64
	InvulnTimer         float64

	ActiveHitbox *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
