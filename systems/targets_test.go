package systems

import (
	"testing"

	"github.com/automoto/slingshot/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestTargetRegistry(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a := archetypes.Pig.Spawn(e)
	b := archetypes.Pig.Spawn(e)

	r := NewTargetRegistry()
	if !r.Add(a) || !r.Add(b) {
		t.Fatal("add failed")
	}
	if r.Add(a) {
		t.Fatal("duplicate add should be rejected")
	}
	if r.Count() != 2 {
		t.Fatalf("count = %d", r.Count())
	}

	if !r.Remove(a) {
		t.Fatal("remove failed")
	}
	if r.Remove(a) {
		t.Fatal("second remove should report false")
	}
	if r.Add(a) {
		t.Fatal("a removed pig must not come back")
	}
	if r.Contains(a) || !r.Contains(b) {
		t.Fatal("contains mismatch")
	}

	seen := 0
	r.Each(func(*donburi.Entry) { seen++ })
	if seen != 1 {
		t.Fatalf("each visited %d pigs", seen)
	}

	r.Clear()
	if r.Count() != 0 || !r.Add(a) {
		t.Fatal("clear should reset the registry")
	}
}
