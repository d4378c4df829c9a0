package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Render layers, drawn low to high.
const (
	RenderLayerGeometry  = 0
	RenderLayerCharacter = 1
)

// RenderData describes the vector shape drawn for an entity. Characters are
// colored capsule silhouettes, geometry is flat rects.
type RenderData struct {
	Color    color.RGBA
	Rotation float64
	Layer    int
}

var Render = donburi.NewComponentType[RenderData]()
