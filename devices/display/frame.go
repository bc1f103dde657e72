// Package display builds and draws the status readout.
//
// A Frame is an inert description of one screen; Renderer rasterises it
// onto any tinygo Displayer. Building frames needs no hardware, so the
// layout is testable on the host.
package display

import (
	"luxservo-go/types"
	"luxservo-go/x/conv"
)

const (
	Width  int16 = 128
	Height int16 = 64
)

type Rect struct{ X, Y, W, H int16 }

type Line struct{ X0, Y0, X1, Y1 int16 }

// Text is anchored at its top-left corner.
type Text struct {
	X, Y int16
	S    string
}

// Frame is one full screen, drawn onto a cleared buffer.
type Frame struct {
	Rects []Rect
	Lines []Line
	Texts []Text
}

// Layout holds the fixed labels of the readout.
type Layout struct {
	Title    string
	Subtitle string
	Sensor   string
	Unit     string
}

func DefaultLayout() Layout {
	return Layout{
		Title:    "CEPEDI   TIC37",
		Subtitle: "EMBARCATECH",
		Sensor:   "Sensor  BH1750",
		Unit:     " Lux",
	}
}

// ValueLabel formats a reading as shown on screen, e.g. "350 Lux".
func (l Layout) ValueLabel(lux types.Lux) string {
	var buf [24]byte
	b := conv.AppendUint(buf[:0], uint64(lux))
	b = append(b, l.Unit...)
	return string(b)
}

// StatusFrame lays out the readout for one reading: outline, two
// horizontal rules, a short divider between them and four labels.
func StatusFrame(l Layout, lux types.Lux) Frame {
	return Frame{
		Rects: []Rect{{3, 3, 122, 60}},
		Lines: []Line{
			{3, 25, 123, 25},
			{3, 37, 123, 37},
			{63, 25, 63, 37},
		},
		Texts: []Text{
			{8, 6, l.Title},
			{20, 16, l.Subtitle},
			{10, 28, l.Sensor},
			{14, 41, l.ValueLabel(lux)},
		},
	}
}
