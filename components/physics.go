package components

import (
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
