package assets

import (
	"testing"

	"github.com/automoto/slingshot/config"
)

func TestBundledLevelsAreValid(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("expected bundled levels, got %d", len(levels))
	}
	settings := config.Current()
	ground := settings.Physics.Ground()
	for _, l := range levels {
		if err := l.Validate(settings); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
		if l.Slingshot.Y < ground.T || l.Slingshot.X < ground.L || l.Slingshot.X > ground.R {
			t.Errorf("%s: slingshot %+v outside the arena", l.Name, l.Slingshot)
		}
		for _, p := range l.Pigs {
			if p.Y < ground.T {
				t.Errorf("%s: pig below ground at %+v", l.Name, p)
			}
		}
	}
}
