// Package canvas is an offscreen render.Surface backed by fogleman/gg. It
// renders frames into memory, with no window or GPU.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type Canvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[int]font.Face
}

func New(width, height int) (*Canvas, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Canvas{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// face returns a cached face for a pixel size.
func (c *Canvas) face(size int) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: float64(size)})
	c.faces[size] = f
	return f
}

func (c *Canvas) Clear(col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *Canvas) Line(x1, y1, x2, y2 int, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

func (c *Canvas) FillEllipse(x, y, w, h int, col color.RGBA) {
	rx, ry := float64(w)/2, float64(h)/2
	c.dc.SetColor(col)
	c.dc.DrawEllipse(float64(x)+rx, float64(y)+ry, rx, ry)
	c.dc.Fill()
}

func (c *Canvas) Text(s string, x, y, size int, col color.RGBA) {
	c.dc.SetFontFace(c.face(size))
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(x), float64(y))
}

func (c *Canvas) MeasureText(s string, size int) int {
	c.dc.SetFontFace(c.face(size))
	w, _ := c.dc.MeasureString(s)
	return int(w)
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}
