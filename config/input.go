package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical front end action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRetry
	ActionNextLevel
	ActionPause
	ActionToggleTriggers
	ActionToggleIdleHops
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings. Aiming always uses the mouse.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionRetry: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleTriggers: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleIdleHops: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}
}
