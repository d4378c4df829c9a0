package factory

import (
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
)

// CreateCamera spawns the camera starting on the given world position.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
	})
}
