package input

import (
	"classic-snake/game/types"
)

// Key is a platform-neutral key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Steerer is the one mutation the handler is allowed to make.
type Steerer interface {
	SetDirection(dir types.Direction)
}

// Handler turns arrow keys into direction changes. Other keys are dropped.
type Handler struct {
	target Steerer
}

func NewHandler(target Steerer) *Handler {
	return &Handler{target: target}
}

// HandleKey applies k and reports whether it was a steering key.
func (h *Handler) HandleKey(k Key) bool {
	dir := toDirection(k)
	if dir == types.NONE {
		return false
	}
	h.target.SetDirection(dir)
	return true
}

func toDirection(k Key) types.Direction {
	switch k {
	case KeyUp:
		return types.UP
	case KeyDown:
		return types.DOWN
	case KeyLeft:
		return types.LEFT
	case KeyRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}
