package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
)

// CreatePlayer spawns the player at a world position with full resources.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		Level:     1,
		LastSafeX: x,
		LastSafeY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Standing,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:    cfg.Physics.Gravity,
		GroundDamp: cfg.Player.GroundDamp,
		AirDamp:    cfg.Player.AirDamp,
		MaxSpeed:   cfg.Player.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Shield.SetValue(player, components.ShieldData{
		State:  cfg.ShieldInactive,
		Energy: cfg.Shield.MaxEnergy,
	})
	components.Combat.SetValue(player, components.CombatData{
		EquippedWeapon: cfg.DefaultWeapon,
		OwnedWeapons:   []string{"fists"},
		Stamina:        cfg.Combat.Stamina.Max,
		Combo: components.ComboData{
			DamageMultiplier: 1.0,
			XPMultiplier:     1.0,
		},
	})
	components.Render.SetValue(player, components.RenderData{
		Color: cfg.Blue,
		Layer: components.RenderLayerCharacter,
	})
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1,
		TargetX: 1, TargetY: 1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
