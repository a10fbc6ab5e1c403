package components

import "github.com/yohamta/donburi"

type PigData struct {
	Type      string
	Health    float64
	MaxHealth float64
}

var Pig = donburi.NewComponentType[PigData]()
