package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib window. It implements render.Surface and
// render.Framed, and polls the keyboard for the loop.
type Window struct{}

// OpenWindow creates a fixed-size window. It must be called from the main
// goroutine, like every other Window method.
func OpenWindow(width, height int, title string) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	return &Window{}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func toColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (w *Window) Clear(c color.RGBA) {
	rl.ClearBackground(toColor(c))
}

func (w *Window) Line(x1, y1, x2, y2 int, c color.RGBA) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), toColor(c))
}

func (w *Window) FillRect(x, y, width, height int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toColor(c))
}

func (w *Window) FillEllipse(x, y, width, height int, c color.RGBA) {
	rx, ry := float32(width)/2, float32(height)/2
	rl.DrawEllipse(int32(x+width/2), int32(y+height/2), rx, ry, toColor(c))
}

// Text draws with the baseline at y. raylib anchors text at its top-left
// corner, so the glyphs are lifted by their size.
func (w *Window) Text(s string, x, y, size int, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y-size), int32(size), toColor(c))
}

func (w *Window) MeasureText(s string, size int) int {
	return int(rl.MeasureText(s, int32(size)))
}
