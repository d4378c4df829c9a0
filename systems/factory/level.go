package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
	"github.com/mossforge/forestfall/leveldata"
)

// BuildLevel populates the world from parsed level data: collision space,
// geometry, dead zones, camera, player and enemies. Returns the level entry.
func BuildLevel(ecs *ecs.ECS, lvl *leveldata.Level, difficulty string) *donburi.Entry {
	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.Set(levelEntry, &components.LevelData{Level: lvl})

	CreateSpace(ecs, lvl.Width, lvl.Height)

	for _, w := range lvl.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, p := range lvl.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H)
	}
	for _, fp := range lvl.FloatingPlatforms {
		CreateFloatingPlatform(ecs, fp.X, fp.Y, fp.W, fp.H, fp.Travel, fp.Period)
	}
	for _, dz := range lvl.DeadZones {
		CreateDeadZone(ecs, dz.X, dz.Y, dz.W, dz.H)
	}

	CreateCamera(ecs, lvl.PlayerSpawnX, lvl.PlayerSpawnY)
	CreatePlayer(ecs, lvl.PlayerSpawnX, lvl.PlayerSpawnY)

	for _, spawn := range lvl.EnemySpawns {
		CreateEnemy(ecs, spawn.X, spawn.Y, spawn.Archetype, difficulty)
	}

	return levelEntry
}
