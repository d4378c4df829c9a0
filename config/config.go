package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second unless noted)
	MoveSpeed    float64
	Acceleration float64 // pixels per second squared
	JumpSpeed    float64
	GroundDamp   float64 // per-frame velocity multiplier at 60hz reference
	AirDamp      float64

	// Jump feel
	CoyoteTime        float64 // seconds of grace after leaving ground
	JumpBufferTime    float64 // seconds a jump press stays buffered
	JumpCutMultiplier float64 // applied to upward velocity on early release
	WallJumpFactor    float64 // fraction of JumpSpeed for wall jumps
	WallJumpPush      float64 // horizontal push-off speed

	// Wall slide
	WallSlideSpeed float64

	// Dash
	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
	DashEndDamp  float64 // velocity multiplier when the dash ends

	// Combat
	MaxHealth      int
	InvulnDuration float64 // seconds after taking damage
	HurtDuration   float64

	// Ducking
	DuckSpeedFactor float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	DuckHeight      float64
}

// ShieldConfig contains shield state machine tuning
type ShieldConfig struct {
	MaxEnergy          float64
	DrainRate          float64 // energy per second while active
	RegenRate          float64 // energy per second while regenerating
	RegenDelay         float64 // seconds after a block before regen resumes
	RaiseTime          float64
	LowerTime          float64
	PerfectWindow      float64 // seconds after raise start
	PerfectDisplayTime float64
	BreakThreshold     float64 // single-hit damage that breaks the shield
	BrokenRecoverAt    float64 // energy fraction needed to leave Broken
	RechargeTime       float64 // seconds shown in the Recharging state
	DamageReduction    float64 // fraction of damage absorbed while Active
	BrokenReduction    float64 // fraction absorbed while Broken/Recharging
	EnergyCostFactor   float64 // energy spent per point of damage blocked
	PerfectBlockXP     int
	FacingArc          float64 // radians, attack must come from the front
}

// StaminaConfig tunes the attack stamina pool
type StaminaConfig struct {
	Max        float64
	RegenRate  float64 // per second
	RegenDelay float64 // seconds after spending before regen starts
}

// ComboTier maps a hit-count threshold to its multipliers
type ComboTier struct {
	Hits             int
	DamageMultiplier float64
	XPMultiplier     float64
}

// CombatConfig contains combat system tuning
type CombatConfig struct {
	ComboWindow float64 // seconds between hits before the combo breaks
	ComboTiers  []ComboTier

	BaseHitXP        int
	CritXPMultiplier float64
	CritComboRate    float64 // extra crit chance per combo hit
	CritComboCap     float64 // ceiling on the combo-derived bonus

	HitboxHeight  float64
	HitboxOffsetX float64

	Stamina StaminaConfig

	// Hit feedback
	HitStopFramesNormal int
	HitStopFramesCrit   int
	HitStopFramesKill   int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // pixels per second squared
	MaxFallSpeed float64
	MaxDelta     float64 // clamp for dt on frame hitches
}

// ParticleLimits caps the particle pool
type ParticleLimits struct {
	MaxParticles int
	MaxEmitters  int
}

// ScoreConfig tunes run scoring
type ScoreConfig struct {
	PointsPerSecond   int
	PointsEnemyKill   int
	PointsPerfectBlock int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	BarMargin       float64
	HUDFontSize     float64
	DebugFontSize   float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	StatsStartY       float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity         float64 // pixels
	HitDuration          int     // frames
	PlayerDamageIntensity float64
	PlayerDamageDuration  int
	ShieldBreakIntensity float64
	ShieldBreakDuration  int
	DeathIntensity       float64
	DeathDuration        int
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	LerpSpeed  float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64
	LookAheadDistanceX float64
	LookAheadSmoothing float64
	SpeedThreshold     float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	ShowHitboxes bool
	ShowDebug    bool
	Level        string
	DBPath       string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Shield ShieldConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Particles ParticleLimits
var Score ScoreConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Forestfall",
	}

	Physics = PhysicsConfig{
		Gravity:      2000.0,
		MaxFallSpeed: 800.0,
		MaxDelta:     1.0 / 30.0,
	}

	Player = PlayerConfig{
		MoveSpeed:    300.0,
		Acceleration: 1200.0,
		JumpSpeed:    650.0,
		GroundDamp:   0.85,
		AirDamp:      0.98,

		CoyoteTime:        0.15,
		JumpBufferTime:    0.1,
		JumpCutMultiplier: 0.5,
		WallJumpFactor:    0.9,
		WallJumpPush:      500.0,

		WallSlideSpeed: 150.0,

		DashSpeed:    800.0,
		DashDuration: 0.2,
		DashCooldown: 1.0,
		DashEndDamp:  0.3,

		MaxHealth:      100,
		InvulnDuration: 1.0,
		HurtDuration:   0.4,

		DuckSpeedFactor: 0.4,

		CollisionWidth:  16,
		CollisionHeight: 40,
		DuckHeight:      24,
	}

	Shield = ShieldConfig{
		MaxEnergy:          100.0,
		DrainRate:          30.0,
		RegenRate:          25.0,
		RegenDelay:         2.0,
		RaiseTime:          0.1,
		LowerTime:          0.1,
		PerfectWindow:      0.15,
		PerfectDisplayTime: 0.2,
		BreakThreshold:     80.0,
		BrokenRecoverAt:    0.3,
		RechargeTime:       1.0,
		DamageReduction:    0.8,
		BrokenReduction:    0.3,
		EnergyCostFactor:   0.5,
		PerfectBlockXP:     50,
		FacingArc:          2.0, // radians, roughly a 115 degree front cone
	}

	Combat = CombatConfig{
		ComboWindow: 2.0,
		ComboTiers: []ComboTier{
			{Hits: 5, DamageMultiplier: 1.1, XPMultiplier: 1.2},
			{Hits: 10, DamageMultiplier: 1.2, XPMultiplier: 1.5},
			{Hits: 25, DamageMultiplier: 1.5, XPMultiplier: 2.0},
			{Hits: 50, DamageMultiplier: 2.0, XPMultiplier: 3.0},
			{Hits: 100, DamageMultiplier: 3.0, XPMultiplier: 5.0},
		},

		BaseHitXP:        5,
		CritXPMultiplier: 1.5,
		CritComboRate:    0.002,
		CritComboCap:     0.1,

		HitboxHeight:  40.0,
		HitboxOffsetX: 20.0,

		Stamina: StaminaConfig{
			Max:        100.0,
			RegenRate:  20.0,
			RegenDelay: 1.0,
		},

		HitStopFramesNormal: 3,
		HitStopFramesCrit:   8,
		HitStopFramesKill:   6,
	}

	Particles = ParticleLimits{
		MaxParticles: 1000,
		MaxEmitters:  64,
	}

	Score = ScoreConfig{
		PointsPerSecond:    1,
		PointsEnemyKill:    10,
		PointsPerfectBlock: 50,
	}

	UI = UIConfig{
		HealthBarWidth:  120,
		HealthBarHeight: 10,
		BarMargin:       8,
		HUDFontSize:     12,
		DebugFontSize:   10,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 30, B: 20, A: 255},
		TitleColor:        BrightGreen,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "FORESTFALL",
		TitleY:            60,
		MenuStartY:        130,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		StatsStartY:       110,
		MenuStartY:        250,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:          2.0,
		HitDuration:           5,
		PlayerDamageIntensity: 4.0,
		PlayerDamageDuration:  8,
		ShieldBreakIntensity:  6.0,
		ShieldBreakDuration:   10,
		DeathIntensity:        8.0,
		DeathDuration:         12,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		LerpSpeed:  0.10,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60.0,
		LookAheadSmoothing: 0.05,
		SpeedThreshold:     0.1,
	}

	Debug = DebugConfig{}
}
