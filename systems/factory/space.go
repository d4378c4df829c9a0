package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
)

const spaceCellSize = 16

// CreateSpace builds the resolv collision space sized to the level.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}
