package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	VelX       float64
	VelY       float64
	Gravity    float64 // pixels per second squared
	GroundDamp float64 // per-frame velocity multiplier at 60hz reference
	AirDamp    float64
	MaxSpeed   float64

	OnGround    *resolv.Object // ground object stood on, nil while airborne
	WallSliding *resolv.Object // wall object slid against, nil otherwise
	WallDir     int            // -1 left wall, 1 right wall, 0 none

	GravityOff bool // suspended during dashes
}

var Physics = donburi.NewComponentType[PhysicsData]()
