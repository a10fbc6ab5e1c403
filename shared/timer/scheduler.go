// Package timer provides a game-time scheduler for delayed and repeating
// callbacks. Tasks are keyed by owner entity and purpose so that removing an
// entity can cancel everything it still had pending.
package timer

import (
	"container/heap"
	"time"

	"github.com/yohamta/donburi"
)

// Purpose identifies what a scheduled task is for.
type Purpose int

const (
	IdleHop Purpose = iota
	Trajectory
	Death
	StabilityPoll
)

func (p Purpose) String() string {
	switch p {
	case IdleHop:
		return "idle-hop"
	case Trajectory:
		return "trajectory"
	case Death:
		return "death"
	case StabilityPoll:
		return "stability-poll"
	}
	return "unknown"
}

// Key identifies a task. Scheduling a key that is already pending replaces
// the earlier task.
type Key struct {
	Owner   donburi.Entity
	Purpose Purpose
}

// MinPeriod is the shortest period a repeating task may have.
const MinPeriod = time.Millisecond

type task struct {
	key    Key
	at     time.Duration
	period time.Duration
	fn     func()
	seq    uint64
	index  int
}

type queue []*task

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs callbacks against an explicitly advanced clock. It is not
// safe for concurrent use; the game loop owns it.
type Scheduler struct {
	now     time.Duration
	delta   time.Duration
	seq     uint64
	pending queue
	byKey   map[Key]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		byKey: make(map[Key]*task),
	}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Delta returns the step passed to the latest Advance.
func (s *Scheduler) Delta() time.Duration {
	return s.delta
}

// After runs fn once, delay from now.
func (s *Scheduler) After(key Key, delay time.Duration, fn func()) {
	s.schedule(key, delay, 0, fn)
}

// Every runs fn first after delay, then every period until cancelled.
func (s *Scheduler) Every(key Key, delay, period time.Duration, fn func()) {
	if period < MinPeriod {
		period = MinPeriod
	}
	s.schedule(key, delay, period, fn)
}

func (s *Scheduler) schedule(key Key, delay, period time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.Cancel(key)
	s.seq++
	t := &task{
		key:    key,
		at:     s.now + delay,
		period: period,
		fn:     fn,
		seq:    s.seq,
	}
	heap.Push(&s.pending, t)
	s.byKey[key] = t
}

// Cancel drops the task for key. It reports whether one was pending.
func (s *Scheduler) Cancel(key Key) bool {
	t, ok := s.byKey[key]
	if !ok {
		return false
	}
	delete(s.byKey, key)
	if t.index >= 0 {
		heap.Remove(&s.pending, t.index)
	}
	return true
}

// CancelOwner drops every task owned by the entity.
func (s *Scheduler) CancelOwner(owner donburi.Entity) int {
	n := 0
	for key := range s.byKey {
		if key.Owner == owner {
			s.Cancel(key)
			n++
		}
	}
	return n
}

// Pending reports whether a task is scheduled for key.
func (s *Scheduler) Pending(key Key) bool {
	_, ok := s.byKey[key]
	return ok
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return len(s.byKey)
}

// Clear drops all tasks. The clock keeps running.
func (s *Scheduler) Clear() {
	for _, t := range s.pending {
		t.index = -1
	}
	s.pending = s.pending[:0]
	s.byKey = make(map[Key]*task)
}

// Advance moves the clock forward by dt and runs every task that came due,
// earliest first. Callbacks may schedule or cancel other tasks; a task
// scheduled for a time inside this step still runs before Advance returns.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.delta = dt
	end := s.now + dt
	for len(s.pending) > 0 {
		next := s.pending[0]
		if next.at > end {
			break
		}
		heap.Pop(&s.pending)
		if next.at > s.now {
			s.now = next.at
		}
		if next.period > 0 {
			next.at += next.period
			heap.Push(&s.pending, next)
		} else {
			delete(s.byKey, next.key)
		}
		next.fn()
	}
	s.now = end
}
