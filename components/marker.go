package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// MarkerData is one dot of a bird's trajectory trail.
type MarkerData struct {
	Owner    donburi.Entity
	Position cp.Vector
	Variant  int
}

var Marker = donburi.NewComponentType[MarkerData]()
