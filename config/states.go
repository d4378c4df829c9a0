package config

// StateID identifies a character movement state.
type StateID int

const (
	StateNone StateID = iota

	// Player movement states, evaluated in priority order.
	Standing
	Running
	Jumping
	Falling
	Ducking
	Shielding
	Dashing
	WallSliding
	Hurt
	Dying

	// Enemy states driven by the behavior tree.
	EnemyIdle
	EnemyPatrol
	EnemySearch
	EnemyChase
	EnemyAttack
	EnemyRetreat
	EnemyStunned
	EnemyDying
	EnemyDead
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Standing:     "standing",
	Running:      "running",
	Jumping:      "jumping",
	Falling:      "falling",
	Ducking:      "ducking",
	Shielding:    "shielding",
	Dashing:      "dashing",
	WallSliding:  "wall_sliding",
	Hurt:         "hurt",
	Dying:        "dying",
	EnemyIdle:    "idle",
	EnemyPatrol:  "patrol",
	EnemySearch:  "search",
	EnemyChase:   "chase",
	EnemyAttack:  "attack",
	EnemyRetreat: "retreat",
	EnemyStunned: "stunned",
	EnemyDying:   "enemy_dying",
	EnemyDead:    "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// GameMode is the top-level scene mode.
type GameMode int

const (
	ModeMenu GameMode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// modeTransitions lists the legal mode changes. Anything absent is rejected.
var modeTransitions = map[GameMode][]GameMode{
	ModeMenu:     {ModePlaying},
	ModePlaying:  {ModePaused, ModeGameOver},
	ModePaused:   {ModePlaying, ModeMenu},
	ModeGameOver: {ModeMenu, ModePlaying},
}

// CanTransition reports whether a mode change from one mode to another is legal.
func CanTransition(from, to GameMode) bool {
	for _, m := range modeTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

// ShieldState identifies a phase of the shield lifecycle.
type ShieldState int

const (
	ShieldInactive ShieldState = iota
	ShieldRaising
	ShieldActive
	ShieldPerfectBlock
	ShieldLowering
	ShieldBroken
	ShieldRecharging
)

func (s ShieldState) String() string {
	switch s {
	case ShieldInactive:
		return "inactive"
	case ShieldRaising:
		return "raising"
	case ShieldActive:
		return "active"
	case ShieldPerfectBlock:
		return "perfect_block"
	case ShieldLowering:
		return "lowering"
	case ShieldBroken:
		return "broken"
	case ShieldRecharging:
		return "recharging"
	}
	return "unknown"
}

// AlertLevel is an enemy's awareness of the player.
type AlertLevel int

const (
	AlertUnaware AlertLevel = iota
	AlertSuspicious
	AlertAlerted
	AlertCombat
)

func (a AlertLevel) String() string {
	switch a {
	case AlertUnaware:
		return "unaware"
	case AlertSuspicious:
		return "suspicious"
	case AlertAlerted:
		return "alert"
	case AlertCombat:
		return "combat"
	}
	return "unknown"
}

// WeaponType identifies a weapon family.
type WeaponType int

const (
	WeaponFists WeaponType = iota
	WeaponSword
	WeaponGun
	WeaponMagic
)

func (w WeaponType) String() string {
	switch w {
	case WeaponFists:
		return "fists"
	case WeaponSword:
		return "sword"
	case WeaponGun:
		return "gun"
	case WeaponMagic:
		return "magic"
	}
	return "unknown"
}

// AttackType identifies an attack move.
type AttackType int

const (
	AttackLight AttackType = iota
	AttackHeavy
	AttackSpecial
	AttackDash
	AttackAerial
)

func (a AttackType) String() string {
	switch a {
	case AttackLight:
		return "light"
	case AttackHeavy:
		return "heavy"
	case AttackSpecial:
		return "special"
	case AttackDash:
		return "dash"
	case AttackAerial:
		return "aerial"
	}
	return "unknown"
}
