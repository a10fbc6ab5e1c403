package systems

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/jakecoffman/cp"
)

func TestComputeWidth(t *testing.T) {
	ground := cp.BB{L: -10, B: -2, R: 30, T: -1}
	f := NewCameraFramer(0.5)

	tests := []struct {
		name     string
		geometry []cp.BB
		want     float64
	}{
		// |5 - -10| + max(8-5, 2 - -1) + 0.5
		{"wide", []cp.BB{{L: 5, B: -1, R: 6, T: 0}, {L: 7, B: -1, R: 8, T: 2}}, 18.5},
		// |0 - -10| + max(1, 9 - -1) + 0.5
		{"tall", []cp.BB{{L: 0, B: -1, R: 1, T: 9}}, 20.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.ComputeWidth(tt.geometry, ground)
			if !ok || math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("width = %v (%v), want %v", got, ok, tt.want)
			}
		})
	}

	if _, ok := f.ComputeWidth(nil, ground); ok {
		t.Fatal("no geometry should leave the camera alone")
	}
}

func TestFrameSetsCamera(t *testing.T) {
	env := newTestEnv(t, testSettings())
	s := env.settings
	ground := s.Physics.Ground()
	camera := factory.CreateCamera(env.ecs, 20)
	f := NewCameraFramer(s.Camera.Margin)

	if f.Frame(env.ecs.World, camera, ground) {
		t.Fatal("empty arena should not be framed")
	}
	if components.Camera.Get(camera).Width != 20 {
		t.Fatal("camera changed without geometry")
	}

	factory.CreatePig(env.ecs, env.space, leveldata.Object{Type: "BasicSmall", X: 4, Y: ground.T + 0.23}, s.Pigs["BasicSmall"])
	if !f.Frame(env.ecs.World, camera, ground) {
		t.Fatal("frame failed")
	}
	cam := components.Camera.Get(camera)
	r := s.Pigs["BasicSmall"].Radius
	want := (4 - r - ground.L) + math.Max(2*r, ground.T+0.23+r-ground.T) + s.Camera.Margin
	if math.Abs(cam.Width-want) > 1e-6 {
		t.Fatalf("width = %v, want %v", cam.Width, want)
	}
	if cam.Position.X != ground.L || cam.Position.Y != ground.B {
		t.Fatalf("camera position = %v", cam.Position)
	}
}
