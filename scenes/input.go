package scenes

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var gamepadIDs []ebiten.GamepadID

// actionInput tracks bound actions across two frames so presses can be
// edge triggered.
type actionInput struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
}

// poll must run once per Update before any justPressed call.
func (in *actionInput) poll() {
	in.previous = in.current
	in.current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.current[actionID] = true
				}
			}
		}
	}
}

func (in *actionInput) justPressed(id cfg.ActionID) bool {
	return in.current[id] && !in.previous[id]
}
