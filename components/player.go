package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // facing, X is -1 or 1

	// Jump feel timers, all in seconds
	CoyoteTimer  float64
	WasOnGround  bool
	JumpCutReady bool // true while ascending from a jump that can still be cut

	// Dash
	DashTimer         float64
	DashCooldownTimer float64
	DashDir           float64

	// Damage response
	InvulnTimer float64
	HurtTimer   float64

	// Progression
	XP    int
	Level int

	LastSafeX float64 // last grounded position, used for dead zone respawns
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
