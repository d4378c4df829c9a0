package factory

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/ai"
	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
)

var enemyColors = map[string]color.RGBA{
	"ninja":      {R: 70, G: 70, B: 90, A: 255},
	"wizard":     {R: 130, G: 60, B: 170, A: 255},
	"crocodile":  {R: 50, G: 140, B: 60, A: 255},
	"dangertree": {R: 100, G: 70, B: 30, A: 255},
}

// CreateEnemy spawns an enemy of an archetype with the difficulty preset
// applied to its parameters.
func CreateEnemy(ecs *ecs.ECS, x, y float64, archetype, preset string) *donburi.Entry {
	params := cfg.ArchetypeParams(archetype, preset)

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, params.CollisionWidth, params.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, params.CollisionWidth, params.CollisionHeight))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Archetype:    archetype,
		Params:       params,
		Agent:        ai.NewAgent(params),
		Direction:    components.Vector{X: cfg.DirectionLeft},
		PatrolCenter: components.Vector{X: x, Y: y},
		PatrolPoints: patrolRing(x, y, params.PatrolRadius),
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.EnemyPatrol,
		PreviousState: cfg.StateNone,
	})
	// Enemies set their velocity directly, so damping and the speed clamp
	// are disabled.
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:    cfg.Physics.Gravity,
		GroundDamp: 1,
		AirDamp:    1,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: params.MaxHealth,
		Max:     params.MaxHealth,
	})

	col, ok := enemyColors[archetype]
	if !ok {
		col = cfg.LightRed
	}
	components.Render.SetValue(enemy, components.RenderData{
		Color: col,
		Layer: components.RenderLayerCharacter,
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return enemy
}

// patrolRing builds the waypoint loop around a spawn point. Stationary
// archetypes get no waypoints and simply hold position.
func patrolRing(x, y, radius float64) []components.Vector {
	if radius <= 0 {
		return nil
	}
	return []components.Vector{
		{X: x - radius, Y: y},
		{X: x + radius, Y: y},
	}
}
