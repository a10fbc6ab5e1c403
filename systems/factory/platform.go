package factory

import (
	"math"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns one static body carrying a Width × Height grid of
// cells centred on the platform position. The whole grid rotates about that
// position.
func CreatePlatform(ecs *ecs.ECS, space *physics.Space, placed leveldata.Platform, cfg config.PlatformConfig) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	size := cfg.CellSize
	left := -float64(placed.Width) * size / 2
	bottom := -float64(placed.Height) * size / 2
	cells := make([]cp.BB, 0, placed.Width*placed.Height)
	for j := 0; j < placed.Height; j++ {
		for i := 0; i < placed.Width; i++ {
			l := left + float64(i)*size
			b := bottom + float64(j)*size
			cells = append(cells, cp.BB{L: l, B: b, R: l + size, T: b + size})
		}
	}

	body := space.AddStatic(cp.Vector{X: placed.X, Y: placed.Y}, degToRad(placed.Rotation), cells, physics.Material{
		Friction: cfg.Friction,
	}, physics.CategoryPlatform)
	body.Data = platform
	components.Body.SetValue(platform, components.BodyData{Body: body})

	components.Platform.SetValue(platform, components.PlatformData{
		Width:  placed.Width,
		Height: placed.Height,
	})

	return platform
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
