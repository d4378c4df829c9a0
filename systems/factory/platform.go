package factory

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
	"github.com/mossforge/forestfall/tags"
)

var (
	platformColor = color.RGBA{R: 110, G: 85, B: 50, A: 255}
	floatingColor = color.RGBA{R: 90, G: 110, B: 70, A: 255}
)

// CreatePlatform spawns a one-way platform. Entities pass through from below
// and can drop through by ducking.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Render.SetValue(platform, components.RenderData{
		Color: platformColor,
		Layer: components.RenderLayerGeometry,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}

// CreateFloatingPlatform spawns a platform that tweens vertically over travel
// pixels, period seconds per leg.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel, period float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Render.SetValue(platform, components.RenderData{
		Color: floatingColor,
		Layer: components.RenderLayerGeometry,
	})

	// Vertical bounce driven by a looping tween sequence
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), float32(period), ease.Linear),
		gween.New(float32(y-travel), float32(y), float32(period), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}
