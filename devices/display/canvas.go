package display

import (
	"image/color"
	"strings"
)

// Canvas is an in-memory monochrome Displayer. Any non-black colour
// lights a pixel.
type Canvas struct {
	w, h    int16
	px      []bool
	Flushes int
	// Err is returned by Display when set.
	Err error
}

func NewCanvas(w, h int16) *Canvas {
	return &Canvas{w: w, h: h, px: make([]bool, int(w)*int(h))}
}

func (c *Canvas) Size() (x, y int16) { return c.w, c.h }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.px[int(y)*int(c.w)+int(x)] = col.R != 0 || col.G != 0 || col.B != 0
}

func (c *Canvas) Display() error {
	if c.Err != nil {
		return c.Err
	}
	c.Flushes++
	return nil
}

func (c *Canvas) ClearBuffer() {
	for i := range c.px {
		c.px[i] = false
	}
}

// Pixel reports whether (x, y) is lit; out of range is dark.
func (c *Canvas) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	return c.px[int(y)*int(c.w)+int(x)]
}

// Lit counts lit pixels.
func (c *Canvas) Lit() int {
	n := 0
	for _, p := range c.px {
		if p {
			n++
		}
	}
	return n
}

// String dumps the buffer as rows of '#' and '.'.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(int(c.w+1) * int(c.h))
	for y := int16(0); y < c.h; y++ {
		for x := int16(0); x < c.w; x++ {
			if c.Pixel(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
