package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TrajectoryEmitter drops trail markers behind flying birds. Each bird owns
// the list of its markers, newest last.
type TrajectoryEmitter struct {
	ecs      *ecs.ECS
	variants int
	next     int
	trails   map[donburi.Entity][]*donburi.Entry
}

func NewTrajectoryEmitter(e *ecs.ECS, variants int) *TrajectoryEmitter {
	if variants < 1 {
		variants = 1
	}
	return &TrajectoryEmitter{
		ecs:      e,
		variants: variants,
		trails:   make(map[donburi.Entity][]*donburi.Entry),
	}
}

// Emit drops a marker at the bird's position. Variants cycle so the trail
// alternates between marker styles.
func (t *TrajectoryEmitter) Emit(bird *donburi.Entry) *donburi.Entry {
	if !bird.Valid() {
		return nil
	}
	owner := bird.Entity()
	pos := components.Body.Get(bird).Position()
	marker := factory.CreateTrajectoryMarker(t.ecs, owner, pos, t.next%t.variants)
	t.next++
	t.trails[owner] = append(t.trails[owner], marker)
	return marker
}

// RemoveLast destroys the newest marker of owner's trail.
func (t *TrajectoryEmitter) RemoveLast(owner donburi.Entity) bool {
	trail := t.trails[owner]
	if len(trail) == 0 {
		return false
	}
	last := trail[len(trail)-1]
	t.trails[owner] = trail[:len(trail)-1]
	t.destroy(last)
	return true
}

// ClearExcept destroys every trail but owner's. It returns how many markers
// were removed.
func (t *TrajectoryEmitter) ClearExcept(owner donburi.Entity) int {
	n := 0
	for id, trail := range t.trails {
		if id == owner {
			continue
		}
		for _, m := range trail {
			t.destroy(m)
		}
		n += len(trail)
		delete(t.trails, id)
	}
	return n
}

// ClearAll destroys every marker.
func (t *TrajectoryEmitter) ClearAll() {
	for id, trail := range t.trails {
		for _, m := range trail {
			t.destroy(m)
		}
		delete(t.trails, id)
	}
	t.next = 0
}

// Trail returns owner's markers, oldest first.
func (t *TrajectoryEmitter) Trail(owner donburi.Entity) []*donburi.Entry {
	return t.trails[owner]
}

// Count is the number of live markers.
func (t *TrajectoryEmitter) Count() int {
	n := 0
	for _, trail := range t.trails {
		n += len(trail)
	}
	return n
}

func (t *TrajectoryEmitter) destroy(marker *donburi.Entry) {
	if marker.Valid() {
		t.ecs.World.Remove(marker.Entity())
	}
}
