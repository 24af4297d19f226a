package render

import (
	"image/color"
	"testing"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op         string
	x, y, w, h int
	text       string
	size       int
	c          color.RGBA
}

// recorder measures every glyph as size/2 pixels wide.
type recorder struct {
	calls  []call
	begins int
	ends   int
}

func (r *recorder) Clear(c color.RGBA) {
	r.calls = append(r.calls, call{op: "clear", c: c})
}

func (r *recorder) Line(x1, y1, x2, y2 int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "line", x: x1, y: y1, w: x2, h: y2, c: c})
}

func (r *recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "rect", x: x, y: y, w: w, h: h, c: c})
}

func (r *recorder) FillEllipse(x, y, w, h int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "ellipse", x: x, y: y, w: w, h: h, c: c})
}

func (r *recorder) Text(s string, x, y, size int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "text", x: x, y: y, text: s, size: size, c: c})
}

func (r *recorder) MeasureText(s string, size int) int {
	return len(s) * size / 2
}

func (r *recorder) BeginFrame() { r.begins++ }
func (r *recorder) EndFrame()   { r.ends++ }

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

var grid = types.Grid{Width: 600, Height: 600, Unit: 25}

func runningSnapshot() game.Snapshot {
	return game.Snapshot{
		Body:      []types.Point{{X: 75, Y: 50}, {X: 50, Y: 50}, {X: 25, Y: 50}},
		Apple:     types.Point{X: 200, Y: 125},
		Direction: types.RIGHT,
		Score:     12,
		Running:   true,
	}
}

func TestDrawRunning(t *testing.T) {
	r := &recorder{}

	Draw(r, runningSnapshot(), grid)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, call{op: "clear", c: Background}, r.calls[0])
	assert.Len(t, r.ops("line"), 48)

	ellipses := r.ops("ellipse")
	require.Len(t, ellipses, 1)
	assert.Equal(t, call{op: "ellipse", x: 200, y: 125, w: 25, h: 25, c: AppleColor}, ellipses[0])

	rects := r.ops("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, call{op: "rect", x: 75, y: 50, w: 25, h: 25, c: HeadColor}, rects[0])
	assert.Equal(t, BodyColor, rects[1].c)
	assert.Equal(t, BodyColor, rects[2].c)

	texts := r.ops("text")
	require.Len(t, texts, 1)
	// "Score: 12" is 9 glyphs * 20px = 180px wide
	assert.Equal(t, call{op: "text", x: 210, y: 40, text: "Score: 12", size: ScoreFontSize, c: TextColor}, texts[0])
}

func TestDrawGridLines(t *testing.T) {
	r := &recorder{}

	Draw(r, runningSnapshot(), grid)

	lines := r.ops("line")
	assert.Equal(t, call{op: "line", x: 0, y: 0, w: 0, h: 600, c: GridColor}, lines[0])
	assert.Equal(t, call{op: "line", x: 575, y: 0, w: 575, h: 600, c: GridColor}, lines[23])
	assert.Equal(t, call{op: "line", x: 0, y: 25, w: 600, h: 25, c: GridColor}, lines[25])
}

func TestDrawGameOver(t *testing.T) {
	r := &recorder{}
	snap := runningSnapshot()
	snap.Running = false

	Draw(r, snap, grid)

	assert.Empty(t, r.ops("line"))
	assert.Empty(t, r.ops("rect"))
	assert.Empty(t, r.ops("ellipse"))

	texts := r.ops("text")
	require.Len(t, texts, 2)
	assert.Equal(t, "Score: 12", texts[0].text)
	assert.Equal(t, 40, texts[0].y)
	// "Game Over" measures 9*75/2 = 337px
	assert.Equal(t, call{op: "text", x: 131, y: 300, text: GameOverText, size: GameOverFontSize, c: TextColor}, texts[1])
}

func TestRendererBracketsFrames(t *testing.T) {
	r := &recorder{}
	rr := NewRenderer(r, grid)

	rr.Render(runningSnapshot())
	rr.Render(runningSnapshot())

	assert.Equal(t, 2, r.begins)
	assert.Equal(t, 2, r.ends)
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", ScoreText(0))
	assert.Equal(t, "Score: 42", ScoreText(42))
}
