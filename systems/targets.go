package systems

import "github.com/yohamta/donburi"

// TargetRegistry tracks the pigs still alive. A pig that has been removed
// can never be added back.
type TargetRegistry struct {
	live    map[donburi.Entity]*donburi.Entry
	removed map[donburi.Entity]struct{}
}

func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{
		live:    make(map[donburi.Entity]*donburi.Entry),
		removed: make(map[donburi.Entity]struct{}),
	}
}

// Add registers a pig. It reports false for pigs already known or removed.
func (r *TargetRegistry) Add(pig *donburi.Entry) bool {
	id := pig.Entity()
	if _, ok := r.removed[id]; ok {
		return false
	}
	if _, ok := r.live[id]; ok {
		return false
	}
	r.live[id] = pig
	return true
}

// Remove reports whether the pig was live. Only the first call for a pig
// returns true.
func (r *TargetRegistry) Remove(pig *donburi.Entry) bool {
	id := pig.Entity()
	if _, ok := r.live[id]; !ok {
		return false
	}
	delete(r.live, id)
	r.removed[id] = struct{}{}
	return true
}

func (r *TargetRegistry) Contains(pig *donburi.Entry) bool {
	_, ok := r.live[pig.Entity()]
	return ok
}

func (r *TargetRegistry) Count() int {
	return len(r.live)
}

func (r *TargetRegistry) Each(fn func(*donburi.Entry)) {
	for _, pig := range r.live {
		fn(pig)
	}
}

// Clear forgets every pig, removed ones included. Entity ids are recycled
// by the world, so the history must not outlive the arena it came from.
func (r *TargetRegistry) Clear() {
	clear(r.live)
	clear(r.removed)
}
