package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"luxservo-go/errcode"
)

var (
	On  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Off = color.RGBA{A: 255}
)

// baseline converts a top-left text anchor to the font's baseline.
const baseline = 7

type clearer interface {
	ClearBuffer()
}

// Renderer draws frames onto a monochrome Displayer.
type Renderer struct {
	d    drivers.Displayer
	font tinyfont.Fonter
}

func NewRenderer(d drivers.Displayer) *Renderer {
	return &Renderer{d: d, font: &proggy.TinySZ8pt7b}
}

// Render clears the buffer, draws f and flushes once.
func (r *Renderer) Render(f Frame) error {
	if err := r.clear(); err != nil {
		return err
	}
	for _, rc := range f.Rects {
		if err := tinydraw.Rectangle(r.d, rc.X, rc.Y, rc.W, rc.H, On); err != nil {
			return errcode.Wrap(errcode.DisplayWrite, "display.rect", err)
		}
	}
	for _, ln := range f.Lines {
		tinydraw.Line(r.d, ln.X0, ln.Y0, ln.X1, ln.Y1, On)
	}
	for _, t := range f.Texts {
		tinyfont.WriteLine(r.d, r.font, t.X, t.Y+baseline, t.S, On)
	}
	if err := r.d.Display(); err != nil {
		return errcode.Wrap(errcode.DisplayWrite, "display.flush", err)
	}
	return nil
}

func (r *Renderer) clear() error {
	if c, ok := r.d.(clearer); ok {
		c.ClearBuffer()
		return nil
	}
	w, h := r.d.Size()
	if err := tinydraw.FilledRectangle(r.d, 0, 0, w, h, Off); err != nil {
		return errcode.Wrap(errcode.DisplayWrite, "display.clear", err)
	}
	return nil
}
