package systems

import (
	"github.com/mossforge/forestfall/components"
	"github.com/mossforge/forestfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object's cell registration and advances
// floating platforms along their tween sequences.
func UpdateObjects(e *ecs.ECS) {
	dt := DT(e)

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		seq := components.Tween.Get(entry)

		y, _, seqDone := seq.Update(float32(dt))
		obj.Y = float64(y)
		if seqDone {
			seq.Reset()
		}
	})

	for entry := range components.Object.Iter(e.World) {
		components.Object.Get(entry).Update()
	}
}
