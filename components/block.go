package components

import "github.com/yohamta/donburi"

type BlockData struct {
	Type     string
	Material string
	Health   float64
}

var Block = donburi.NewComponentType[BlockData]()

// PlatformData is a static grid of cells sharing one body.
type PlatformData struct {
	Width  int
	Height int
}

var Platform = donburi.NewComponentType[PlatformData]()
