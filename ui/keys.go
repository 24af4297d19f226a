package ui

import (
	"classic-snake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keymap = map[int32]input.Key{
	rl.KeyUp:    input.KeyUp,
	rl.KeyDown:  input.KeyDown,
	rl.KeyLeft:  input.KeyLeft,
	rl.KeyRight: input.KeyRight,
}

// PressedKeys drains raylib's key queue in press order. Keys with no
// mapping come through as input.KeyUnknown.
func (w *Window) PressedKeys() []input.Key {
	var keys []input.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		keys = append(keys, keymap[k])
	}
	return keys
}
