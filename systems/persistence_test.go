package systems

import (
	"testing"

	"github.com/automoto/slingshot/config"
)

func TestApplySavedSettings(t *testing.T) {
	s := config.Current()
	saved := CaptureSettings(s)
	saved.TimesToGiveUp = 5
	saved.IdleHops = !s.Bird.IdleHops
	saved.FrameScaledLaunch = true
	saved.StabilityEpsilon = 0.2

	ApplySavedSettings(&s, saved)
	if s.Round.TimesToGiveUp != 5 || s.Round.StabilityEpsilon != 0.2 {
		t.Fatalf("round settings not applied: %+v", s.Round)
	}
	if s.Bird.IdleHops != saved.IdleHops || !s.Bird.FrameScaledLaunch {
		t.Fatalf("bird settings not applied: %+v", s.Bird)
	}

	before := s
	ApplySavedSettings(&s, &SavedSettings{TimesToGiveUp: 0, StabilityEpsilon: -1})
	if s.Round.TimesToGiveUp != before.Round.TimesToGiveUp || s.Round.StabilityEpsilon != before.Round.StabilityEpsilon {
		t.Fatal("invalid saved values should be ignored")
	}

	ApplySavedSettings(&s, nil)
}

func TestNilStoreIsInert(t *testing.T) {
	var store *Store
	saved, err := store.Load()
	if saved != nil || err != nil {
		t.Fatalf("load = %v, %v", saved, err)
	}
	if err := store.Save(&SavedSettings{}); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeSettings(t *testing.T) {
	saved, err := decodeSettings(nil)
	if saved != nil || err != nil {
		t.Fatalf("empty data = %v, %v", saved, err)
	}

	saved, err = decodeSettings([]byte(`{"timesToGiveUp":4,"idleHops":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if saved.TimesToGiveUp != 4 || !saved.IdleHops {
		t.Fatalf("decoded %+v", saved)
	}

	if _, err := decodeSettings([]byte(`{"timesToGiveUp":`)); err == nil {
		t.Fatal("corrupt settings should report an error")
	}
}
