package timer

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"
)

func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	key := Key{Owner: donburi.Entity(1), Purpose: Death}
	fired := 0
	s.After(key, 100*time.Millisecond, func() { fired++ })

	s.Advance(50 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	if !s.Pending(key) {
		t.Fatal("expected task to be pending")
	}
	s.Advance(50 * time.Millisecond)
	s.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected one call, got %d", fired)
	}
	if s.Pending(key) {
		t.Fatal("one-shot task still pending")
	}
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	s := NewScheduler()
	key := Key{Owner: donburi.Entity(2), Purpose: Trajectory}
	fired := 0
	s.Every(key, 100*time.Millisecond, 50*time.Millisecond, func() { fired++ })

	s.Advance(200 * time.Millisecond) // 100, 150, 200
	if fired != 3 {
		t.Fatalf("expected 3 calls, got %d", fired)
	}
	if !s.Cancel(key) {
		t.Fatal("cancel should report a pending task")
	}
	s.Advance(time.Second)
	if fired != 3 {
		t.Fatalf("task ran after cancel: %d", fired)
	}
	if s.Cancel(key) {
		t.Fatal("second cancel should report nothing pending")
	}
}

func TestEveryClampsPeriod(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(Key{Purpose: Trajectory}, 0, 0, func() { fired++ })
	s.Advance(10 * time.Millisecond)
	if fired != 11 {
		t.Fatalf("expected 11 calls at 1ms period, got %d", fired)
	}
}

func TestCancelOwner(t *testing.T) {
	s := NewScheduler()
	owner := donburi.Entity(7)
	other := donburi.Entity(8)
	calls := map[donburi.Entity]int{}
	s.After(Key{Owner: owner, Purpose: Death}, time.Second, func() { calls[owner]++ })
	s.Every(Key{Owner: owner, Purpose: IdleHop}, time.Second, time.Second, func() { calls[owner]++ })
	s.After(Key{Owner: other, Purpose: Death}, time.Second, func() { calls[other]++ })

	if n := s.CancelOwner(owner); n != 2 {
		t.Fatalf("expected 2 cancelled, got %d", n)
	}
	s.Advance(2 * time.Second)
	if calls[owner] != 0 {
		t.Fatalf("owner tasks ran: %d", calls[owner])
	}
	if calls[other] != 1 {
		t.Fatalf("other task should run once, got %d", calls[other])
	}
}

func TestAdvanceRunsInTimeOrder(t *testing.T) {
	s := NewScheduler()
	var order []Purpose
	s.After(Key{Purpose: StabilityPoll}, 300*time.Millisecond, func() { order = append(order, StabilityPoll) })
	s.After(Key{Purpose: Death}, 100*time.Millisecond, func() { order = append(order, Death) })
	s.After(Key{Purpose: IdleHop}, 200*time.Millisecond, func() { order = append(order, IdleHop) })

	s.Advance(time.Second)
	want := []Purpose{Death, IdleHop, StabilityPoll}
	if len(order) != len(want) {
		t.Fatalf("got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("position %d: got %v want %v", i, order[i], want[i])
		}
	}
}

func TestCallbackCanReschedule(t *testing.T) {
	s := NewScheduler()
	key := Key{Purpose: StabilityPoll}
	var at []time.Duration
	var poll func()
	poll = func() {
		at = append(at, s.Now())
		if len(at) < 3 {
			s.After(key, time.Second, poll)
		}
	}
	s.After(key, 500*time.Millisecond, poll)

	for i := 0; i < 60*5; i++ {
		s.Advance(time.Second / 60)
	}
	if len(at) != 3 {
		t.Fatalf("expected 3 polls, got %d", len(at))
	}
	if at[0] != 500*time.Millisecond || at[1]-at[0] != time.Second {
		t.Fatalf("unexpected poll times %v", at)
	}
}

func TestRescheduleReplacesKey(t *testing.T) {
	s := NewScheduler()
	key := Key{Owner: donburi.Entity(3), Purpose: Death}
	first, second := 0, 0
	s.After(key, time.Second, func() { first++ })
	s.After(key, 2*time.Second, func() { second++ })
	if s.Len() != 1 {
		t.Fatalf("expected one task, got %d", s.Len())
	}
	s.Advance(3 * time.Second)
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d", first, second)
	}
}

func TestClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(Key{Purpose: Death}, time.Millisecond, func() { fired = true })
	s.Clear()
	s.Advance(time.Second)
	if fired || s.Len() != 0 {
		t.Fatal("cleared task ran")
	}
	if s.Now() != time.Second {
		t.Fatalf("clock should keep running, got %v", s.Now())
	}
}
