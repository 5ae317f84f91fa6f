// seehuhn.de/go/pixdraw - integer shape rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixdraw

import "math"

// Engine reduces lines, rectangle outlines and circles to filled rectangles
// and sends these to a [Sink].  Stroked shapes are drawn by stamping
// weight×weight squares along the shape.
//
// All numeric arguments must be non-negative.  If an argument is invalid,
// the operation returns an error wrapping [ErrInvalidArgument] and nothing
// is sent to the sink.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// State holds the color and font attributes used for drawing.
	State *GraphicsState

	sink Sink
}

// New returns an Engine which draws to sink, using a fresh graphics state.
func New(sink Sink) *Engine {
	return &Engine{
		State: NewGraphicsState(),
		sink:  sink,
	}
}

// Sink returns the sink the engine draws to.
func (e *Engine) Sink() Sink {
	return e.sink
}

// SetColor is a shorthand for e.State.SetColor.
func (e *Engine) SetColor(c string) {
	e.State.SetColor(c)
}

// FillRect fills the rectangle with top left corner (x, y) using the
// current color.
func (e *Engine) FillRect(x, y, width, height int) error {
	if err := checkNonNegative("FillRect", x, y, width, height); err != nil {
		return err
	}
	e.emit(x, y, width, height)
	return nil
}

// FillSquare fills a size×size square with top left corner (x, y).
func (e *Engine) FillSquare(x, y, size int) error {
	if err := checkNonNegative("FillSquare", x, y, size); err != nil {
		return err
	}
	return e.FillRect(x, y, size, size)
}

// DrawRect draws the outline of the rectangle from (x, y) to
// (x+width, y+height).  The edges are drawn in the order top, left, right,
// bottom; corners are covered twice.
// If the far corner is not representable as an int, nothing is drawn and
// ErrInvalidArgument is returned.
func (e *Engine) DrawRect(x, y, width, height, weight int) error {
	if err := checkNonNegative("DrawRect", x, y, width, height, weight); err != nil {
		return err
	}
	if x > math.MaxInt-width {
		return &ArgumentError{Op: "DrawRect", Index: 2, Value: width}
	}
	if y > math.MaxInt-height {
		return &ArgumentError{Op: "DrawRect", Index: 3, Value: height}
	}
	xw := x + width
	yh := y + height
	edges := [4][4]int{
		{x, y, xw, y},
		{x, y, x, yh},
		{xw, y, xw, yh},
		{x, yh, xw, yh},
	}
	for _, ed := range edges {
		if err := e.DrawLine(ed[0], ed[1], ed[2], ed[3], weight); err != nil {
			return err
		}
	}
	return nil
}

// DrawLine draws a line from (x0, y0) towards (x1, y1) using Bresenham's
// algorithm, stamping a weight×weight square at every step.
//
// Vertical and horizontal lines are drawn as a single rectangle of
// thickness weight; if x1 < x0 (or y1 < y0) the rectangle would have
// negative size and ErrInvalidArgument is returned.
// Otherwise |x1-x0| squares are stamped, starting at (x0, y0).  The walk
// always moves right and down: for lines with x1 < x0 or y1 < y0 the shape
// is the mirror image of the requested one, and steep lines end early.
// Use [Engine.DrawSegment] for lines in arbitrary directions.
func (e *Engine) DrawLine(x0, y0, x1, y1, weight int) error {
	if err := checkNonNegative("DrawLine", x0, y0, x1, y1, weight); err != nil {
		return err
	}

	dx := x1 - x0
	dy := y1 - y0
	switch {
	case dx == 0: // vertical
		return e.FillRect(x0, y0, weight, dy)
	case dy == 0: // horizontal
		return e.FillRect(x0, y0, dx, weight)
	}

	dx = abs(dx)
	dy = abs(dy)
	err := -dx
	x, y := x0, y0
	for range dx {
		e.emit(x, y, weight, weight)
		x++
		err += 2 * dy
		if err >= 0 {
			y++
			err -= 2 * dx
		}
	}
	return nil
}

// DrawSegment draws a line from (x0, y0) towards (x1, y1) in any direction.
// The walk follows the major axis and stamps max(|x1-x0|, |y1-y0|)
// weight×weight squares, the first at (x0, y0).  The end point itself is
// not stamped.
//
// Unlike [Engine.DrawLine], horizontal and vertical segments are also
// stamped square by square, and a zero-length segment draws nothing.
func (e *Engine) DrawSegment(x0, y0, x1, y1, weight int) error {
	if err := checkNonNegative("DrawSegment", x0, y0, x1, y1, weight); err != nil {
		return err
	}

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)
	x, y := x0, y0
	if dx >= dy {
		err := -dx
		for range dx {
			e.emit(x, y, weight, weight)
			x += sx
			err += 2 * dy
			if err >= 0 {
				y += sy
				err -= 2 * dx
			}
		}
	} else {
		err := -dy
		for range dy {
			e.emit(x, y, weight, weight)
			y += sy
			err += 2 * dx
			if err >= 0 {
				x += sx
				err -= 2 * dy
			}
		}
	}
	return nil
}

// DrawCircle draws the outline of a circle using the midpoint circle
// algorithm.  One octant is computed and mirrored into the other seven, with
// a weight×weight square stamped at each point.
//
// Only the arguments are validated.  Stamps left of or above the origin
// are skipped, the remaining stamps are drawn.
func (e *Engine) DrawCircle(xc, yc, radius, weight int) error {
	if err := checkNonNegative("DrawCircle", xc, yc, radius, weight); err != nil {
		return err
	}

	x := 0
	y := radius
	d := 3 - 2*radius
	for x < y {
		e.stamp8(xc, yc, x, y, weight)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	if x == y {
		e.stamp8(xc, yc, x, y, weight)
	}
	return nil
}

// FillCircle is not implemented and always returns [ErrUnsupported].
func (e *Engine) FillCircle(xc, yc, radius int) error {
	return ErrUnsupported
}

// DrawString places text with its top left corner at (x, y), using the
// current color and font attributes.  If the sink does not implement
// [TextSink], ErrUnsupported is returned.
func (e *Engine) DrawString(x, y int, text string) error {
	if err := checkNonNegative("DrawString", x, y); err != nil {
		return err
	}
	ts, ok := e.sink.(TextSink)
	if !ok {
		return ErrUnsupported
	}
	ts.DrawString(TextRequest{
		X:          x,
		Y:          y,
		Text:       text,
		Color:      e.State.Color(),
		FontFamily: e.State.FontFamily(),
		FontSize:   e.State.FontSize(),
		FontWeight: e.State.FontWeight(),
		FontStyle:  e.State.FontStyle(),
	})
	return nil
}

// stamp8 stamps the eight points (xc±x, yc±y) and (xc±y, yc±x), omitting
// points with a negative coordinate.
func (e *Engine) stamp8(xc, yc, x, y, weight int) {
	pts := [8][2]int{
		{xc + x, yc + y},
		{xc - x, yc + y},
		{xc + x, yc - y},
		{xc - x, yc - y},
		{xc + y, yc + x},
		{xc - y, yc + x},
		{xc + y, yc - x},
		{xc - y, yc - x},
	}
	for _, p := range pts {
		if p[0] < 0 || p[1] < 0 {
			continue
		}
		e.emit(p[0], p[1], weight, weight)
	}
}

// emit sends an already validated rectangle to the sink.
func (e *Engine) emit(x, y, width, height int) {
	e.sink.FillRect(FillRequest{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Color:  e.State.Color(),
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
