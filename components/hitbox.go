package components

import (
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	OwnerEntity *donburi.Entry // the entity that created this hitbox
	Attack      config.AttackData
	Lifetime    float64                 // seconds this hitbox stays live
	HitEntities map[*donburi.Entry]bool // entities already hit by this swing
	FacingRight bool
	FromPlayer  bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
