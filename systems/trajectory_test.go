package systems

import (
	"testing"

	"github.com/automoto/slingshot/components"
)

func TestTrajectoryTrails(t *testing.T) {
	env := newTestEnv(t, testSettings())
	birds := env.addBirds(2)
	tr := NewTrajectoryEmitter(env.ecs, 3)

	var variants []int
	for i := 0; i < 4; i++ {
		m := tr.Emit(birds[0])
		variants = append(variants, components.Marker.Get(m).Variant)
	}
	if variants[0] != 0 || variants[1] != 1 || variants[2] != 2 || variants[3] != 0 {
		t.Fatalf("variants = %v", variants)
	}
	tr.Emit(birds[1])
	tr.Emit(birds[1])

	last := tr.Trail(birds[0].Entity())[3]
	if !tr.RemoveLast(birds[0].Entity()) || last.Valid() {
		t.Fatal("newest marker should be destroyed")
	}
	if n := len(tr.Trail(birds[0].Entity())); n != 3 {
		t.Fatalf("trail = %d, want 3", n)
	}

	if n := tr.ClearExcept(birds[1].Entity()); n != 3 {
		t.Fatalf("cleared %d markers, want 3", n)
	}
	if tr.Count() != 2 {
		t.Fatalf("count = %d, want 2", tr.Count())
	}

	tr.ClearAll()
	if tr.Count() != 0 || tr.RemoveLast(birds[1].Entity()) {
		t.Fatal("clear all should drop every trail")
	}
}
