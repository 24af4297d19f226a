// Package render draws a game snapshot onto any Surface. It never touches
// game state, only the copy handed to it.
package render

import (
	"fmt"
	"image/color"

	"classic-snake/game"
	"classic-snake/game/types"
)

const (
	ScoreFontSize    = 40
	GameOverFontSize = 75
	GameOverText     = "Game Over"
)

var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	GridColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	AppleColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	HeadColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BodyColor  = color.RGBA{R: 45, G: 180, B: 0, A: 255}
	TextColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Surface is the drawing capability a backend provides. Coordinates are
// logical pixels with the origin at the top-left.
type Surface interface {
	Clear(c color.RGBA)
	Line(x1, y1, x2, y2 int, c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	// FillEllipse fills the ellipse inscribed in the given box.
	FillEllipse(x, y, w, h int, c color.RGBA)
	// Text draws s with its baseline at y.
	Text(s string, x, y, size int, c color.RGBA)
	MeasureText(s string, size int) int
}

// Framed surfaces need each frame bracketed.
type Framed interface {
	BeginFrame()
	EndFrame()
}

// Draw paints one frame: the board while running, the final score and a
// game over banner afterwards.
func Draw(s Surface, snap game.Snapshot, grid types.Grid) {
	s.Clear(Background)
	if snap.Running {
		drawGrid(s, grid)
		drawApple(s, snap.Apple, grid.Unit)
		drawSnake(s, snap.Body, grid.Unit)
		drawScore(s, snap.Score, grid)
		return
	}
	drawGameOver(s, snap.Score, grid)
}

func drawGrid(s Surface, grid types.Grid) {
	for i := 0; i < grid.Columns(); i++ {
		s.Line(i*grid.Unit, 0, i*grid.Unit, grid.Height, GridColor)
	}
	for i := 0; i < grid.Rows(); i++ {
		s.Line(0, i*grid.Unit, grid.Width, i*grid.Unit, GridColor)
	}
}

func drawApple(s Surface, apple types.Point, unit int) {
	s.FillEllipse(apple.X, apple.Y, unit, unit, AppleColor)
}

func drawSnake(s Surface, body []types.Point, unit int) {
	for i, p := range body {
		c := BodyColor
		if i == 0 {
			c = HeadColor
		}
		s.FillRect(p.X, p.Y, unit, unit, c)
	}
}

func drawScore(s Surface, score int, grid types.Grid) {
	drawCentered(s, ScoreText(score), ScoreFontSize, ScoreFontSize, grid.Width)
}

func drawGameOver(s Surface, score int, grid types.Grid) {
	drawScore(s, score, grid)
	drawCentered(s, GameOverText, GameOverFontSize, grid.Height/2, grid.Width)
}

func drawCentered(s Surface, text string, size, baseline, width int) {
	x := (width - s.MeasureText(text, size)) / 2
	s.Text(text, x, baseline, size, TextColor)
}

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Renderer binds a surface and board so the loop can hand it snapshots.
type Renderer struct {
	surface Surface
	grid    types.Grid
}

func NewRenderer(surface Surface, grid types.Grid) *Renderer {
	return &Renderer{surface: surface, grid: grid}
}

func (r *Renderer) Render(snap game.Snapshot) {
	if f, ok := r.surface.(Framed); ok {
		f.BeginFrame()
		defer f.EndFrame()
	}
	Draw(r.surface, snap, r.grid)
}
