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

package testcases

import "fmt"

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels
	Scale  float64 // device pixels per unit (zero means 1)
	Steps  []Step  // drawing operations, in order
}

// Canvas is the drawing interface the steps are applied to.
// It is implemented by *pixdraw.Engine.
type Canvas interface {
	SetColor(c string)
	FillRect(x, y, width, height int) error
	FillSquare(x, y, size int) error
	DrawLine(x0, y0, x1, y1, weight int) error
	DrawSegment(x0, y0, x1, y1, weight int) error
	DrawRect(x, y, width, height, weight int) error
	DrawCircle(xc, yc, radius, weight int) error
	DrawString(x, y int, text string) error
}

// Step is a single drawing operation.
type Step interface {
	Apply(c Canvas) error
}

// Run applies the steps of tc to c, stopping at the first error.
func (tc TestCase) Run(c Canvas) error {
	for i, s := range tc.Steps {
		if err := s.Apply(c); err != nil {
			return fmt.Errorf("%s: step %d: %w", tc.Name, i, err)
		}
	}
	return nil
}

// DeviceSize returns the size of the canvas in device pixels.
func (tc TestCase) DeviceSize() (int, int) {
	s := tc.Scale
	if s == 0 {
		return tc.Width, tc.Height
	}
	return int(float64(tc.Width) * s), int(float64(tc.Height) * s)
}

// Color sets the drawing color.
type Color string

func (s Color) Apply(c Canvas) error {
	c.SetColor(string(s))
	return nil
}

// FillRect fills a rectangle.
type FillRect struct {
	X, Y, W, H int
}

func (s FillRect) Apply(c Canvas) error {
	return c.FillRect(s.X, s.Y, s.W, s.H)
}

// FillSquare fills a square.
type FillSquare struct {
	X, Y, Size int
}

func (s FillSquare) Apply(c Canvas) error {
	return c.FillSquare(s.X, s.Y, s.Size)
}

// Line draws a line with the Bresenham walk of DrawLine.
type Line struct {
	X0, Y0, X1, Y1 int
	Weight         int
}

func (s Line) Apply(c Canvas) error {
	return c.DrawLine(s.X0, s.Y0, s.X1, s.Y1, s.Weight)
}

// Segment draws a line in an arbitrary direction.
type Segment struct {
	X0, Y0, X1, Y1 int
	Weight         int
}

func (s Segment) Apply(c Canvas) error {
	return c.DrawSegment(s.X0, s.Y0, s.X1, s.Y1, s.Weight)
}

// Rect draws a rectangle outline.
type Rect struct {
	X, Y, W, H int
	Weight     int
}

func (s Rect) Apply(c Canvas) error {
	return c.DrawRect(s.X, s.Y, s.W, s.H, s.Weight)
}

// Circle draws a circle outline.
type Circle struct {
	XC, YC, R int
	Weight    int
}

func (s Circle) Apply(c Canvas) error {
	return c.DrawCircle(s.XC, s.YC, s.R, s.Weight)
}

// Text draws a string.
type Text struct {
	X, Y int
	S    string
}

func (s Text) Apply(c Canvas) error {
	return c.DrawString(s.X, s.Y, s.S)
}
