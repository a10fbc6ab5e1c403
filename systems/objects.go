package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every trigger object onto its body's current bounds.
func UpdateObjects(ecs *ecs.ECS) {
	ts, ok := components.TriggerSpace.First(ecs.World)
	if !ok {
		return
	}
	triggers := components.TriggerSpace.Get(ts)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		obj := components.Object.Get(e)
		body := components.Body.Get(e)
		if obj.Object == nil || body.Body == nil || body.Removed() {
			return
		}
		triggers.Place(obj.Object, body.BB())
	})
}
