// Package leveldata provides TMX level parsing. Levels are object-layer only:
// geometry, spawns and zones come from rectangle objects, not tile grids. It
// has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var builtinLevels embed.FS

// Rect is a rectangle parsed from an object layer.
type Rect struct {
	X, Y, W, H float64
}

// EnemySpawn places one enemy of an archetype.
type EnemySpawn struct {
	X, Y      float64
	Archetype string
}

// FloatingPlatform is a platform that tweens vertically.
type FloatingPlatform struct {
	Rect
	Travel float64 // pixels of vertical travel
	Period float64 // seconds for one leg
}

// Level holds everything parsed from one TMX file.
type Level struct {
	Name   string
	Width  int
	Height int

	Walls             []Rect
	Platforms         []Rect
	FloatingPlatforms []FloatingPlatform
	DeadZones         []Rect

	PlayerSpawnX float64
	PlayerSpawnY float64
	EnemySpawns  []EnemySpawn

	WindX float64 // ambient wind applied to particles
}

// Load parses a TMX file from fsys.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		WindX:  levelMap.Properties.GetFloat("wind_x"),
	}

	hasPlayerSpawn := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				lvl.Walls = append(lvl.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "FloatingPlatforms":
			for _, o := range og.Objects {
				fp := FloatingPlatform{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				}
				if fp.Travel == 0 {
					fp.Travel = 128
				}
				if fp.Period == 0 {
					fp.Period = 2
				}
				lvl.FloatingPlatforms = append(lvl.FloatingPlatforms, fp)
			}
		case "DeadZones":
			for _, o := range og.Objects {
				lvl.DeadZones = append(lvl.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				lvl.PlayerSpawnX, lvl.PlayerSpawnY = o.X, o.Y
				hasPlayerSpawn = true
			}
		case "EnemySpawns":
			for _, o := range og.Objects {
				archetype := o.Properties.GetString("archetype")
				if archetype == "" {
					archetype = o.Type
				}
				lvl.EnemySpawns = append(lvl.EnemySpawns, EnemySpawn{
					X: o.X, Y: o.Y, Archetype: archetype,
				})
			}
		}
	}

	if !hasPlayerSpawn {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", lvl.Name)
	}
	return lvl, nil
}

// LoadBuiltin loads an embedded level by stem name.
func LoadBuiltin(name string) (*Level, error) {
	return Load(builtinLevels, "levels/"+name+".tmx")
}

// BuiltinNames lists the embedded level stems, sorted.
func BuiltinNames() []string {
	matches, err := fs.Glob(builtinLevels, "levels/*.tmx")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names
}
