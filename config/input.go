package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionPowerUp
	ActionPowerDown
	ActionShoot
	ActionResetBall
	ActionResetScore
	ActionToggleCamera
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionMoveBackward: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
			},
			ActionPowerUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionPowerDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionShoot: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionResetBall: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionResetScore: {
				Keys: []ebiten.Key{ebiten.KeyT},
			},
			ActionToggleCamera: {
				Keys: []ebiten.Key{ebiten.KeyO},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
