// Package loop drives a game: input, fixed-period ticks and drawing, all on
// the caller's goroutine.
package loop

import (
	"time"

	"classic-snake/game"
	"classic-snake/input"

	"github.com/golang/glog"
)

// Phase is the loop's lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// KeySource yields the keys pressed since the previous frame.
type KeySource interface {
	PressedKeys() []input.Key
}

// Renderer draws one frame from a snapshot.
type Renderer interface {
	Render(snap game.Snapshot)
}

type Loop struct {
	game     *game.Game
	ticker   *Ticker
	input    *input.Handler
	keys     KeySource
	renderer Renderer
	phase    Phase
}

func New(g *game.Game, interval time.Duration, keys KeySource, renderer Renderer) *Loop {
	return &Loop{
		game:     g,
		ticker:   NewTicker(interval),
		input:    input.NewHandler(g),
		keys:     keys,
		renderer: renderer,
		phase:    Idle,
	}
}

// Start places the first apple and arms the ticker. Only the first call has
// any effect.
func (l *Loop) Start(now time.Time) {
	if l.phase != Idle {
		return
	}
	l.ticker.Start(now)
	l.game.Start(l.ticker)
	l.phase = Running
	glog.V(1).Infof("loop running, tick every %v", l.ticker.Interval())
}

// Frame handles pending keys, runs the tick if one is due and draws. An
// idle loop does nothing.
func (l *Loop) Frame(now time.Time) {
	if l.phase == Idle {
		return
	}
	if l.keys != nil {
		for _, k := range l.keys.PressedKeys() {
			l.input.HandleKey(k)
		}
	}

	if l.phase == Running && l.ticker.Due(now) {
		l.game.Advance()
		if !l.game.IsRunning() {
			l.phase = Stopped
			glog.V(1).Infof("loop stopped, ticker active=%v", l.ticker.Active())
		}
	}

	if l.renderer != nil {
		l.renderer.Render(l.game.Snapshot())
	}
}

func (l *Loop) Phase() Phase {
	return l.phase
}

func (l *Loop) Ticker() *Ticker {
	return l.ticker
}
