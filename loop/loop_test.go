package loop

import (
	"testing"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int { return f.v % n }

type queuedKeys struct {
	pending []input.Key
}

func (q *queuedKeys) PressedKeys() []input.Key {
	keys := q.pending
	q.pending = nil
	return keys
}

type captureRenderer struct {
	frames []game.Snapshot
}

func (c *captureRenderer) Render(snap game.Snapshot) {
	c.frames = append(c.frames, snap)
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newLoop() (*Loop, *game.Game, *queuedKeys, *captureRenderer) {
	cfg := config.Default()
	// apple parked at the bottom-right corner, out of the way
	g := game.NewGame(cfg, fixedSource{v: 23})
	keys := &queuedKeys{}
	r := &captureRenderer{}
	return New(g, cfg.Delay, keys, r), g, keys, r
}

func TestLoopStartsIdle(t *testing.T) {
	l, g, _, r := newLoop()

	assert.Equal(t, Idle, l.Phase())
	l.Frame(t0)

	assert.False(t, g.IsRunning())
	assert.Empty(t, r.frames)
}

func TestLoopStart(t *testing.T) {
	l, g, _, _ := newLoop()

	l.Start(t0)

	assert.Equal(t, Running, l.Phase())
	assert.True(t, g.IsRunning())
	assert.True(t, l.Ticker().Active())
	assert.Equal(t, types.Point{X: 575, Y: 575}, g.Apple())

	l.Start(t0.Add(time.Second))
	assert.Equal(t, Running, l.Phase())
}

func TestFrameTicksOnSchedule(t *testing.T) {
	l, g, _, r := newLoop()
	l.Start(t0)

	l.Frame(t0.Add(50 * time.Millisecond))
	assert.Equal(t, types.Point{}, g.GetHead())

	l.Frame(t0.Add(75 * time.Millisecond))
	assert.Equal(t, types.Point{X: 25}, g.GetHead())

	l.Frame(t0.Add(100 * time.Millisecond))
	assert.Equal(t, types.Point{X: 25}, g.GetHead())

	l.Frame(t0.Add(150 * time.Millisecond))
	assert.Equal(t, types.Point{X: 50}, g.GetHead())

	require.Len(t, r.frames, 4)
	assert.Equal(t, types.Point{X: 50}, r.frames[3].Body[0])
}

func TestFrameAppliesKeysBeforeTick(t *testing.T) {
	l, g, keys, _ := newLoop()
	l.Start(t0)
	l.Frame(t0.Add(75 * time.Millisecond))

	keys.pending = []input.Key{input.KeyDown}
	l.Frame(t0.Add(150 * time.Millisecond))

	assert.Equal(t, types.DOWN, g.Direction())
	assert.Equal(t, types.Point{X: 25, Y: 25}, g.GetHead())
}

func TestFrameStopsOnGameOver(t *testing.T) {
	l, g, keys, r := newLoop()
	l.Start(t0)
	keys.pending = []input.Key{input.KeyUp}

	l.Frame(t0.Add(75 * time.Millisecond))

	assert.False(t, g.IsRunning())
	assert.Equal(t, Stopped, l.Phase())
	assert.False(t, l.Ticker().Active())
	require.Len(t, r.frames, 1)
	assert.False(t, r.frames[0].Running)

	frozen := g.Snapshot()
	l.Frame(t0.Add(time.Second))
	assert.Equal(t, Stopped, l.Phase())
	assert.Equal(t, frozen, g.Snapshot())
	assert.Len(t, r.frames, 2)
}

func TestLoopRunsIntoRightWall(t *testing.T) {
	l, g, _, _ := newLoop()
	l.Start(t0)

	now := t0
	for i := 0; i < 30 && l.Phase() == Running; i++ {
		now = now.Add(75 * time.Millisecond)
		l.Frame(now)
	}

	assert.Equal(t, Stopped, l.Phase())
	assert.Equal(t, 600, g.GetHead().X)
	assert.Equal(t, types.WallCollision, g.LastCollision)
	assert.Equal(t, 24, g.Steps)
}
