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

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// CoverageSink records which part of each device pixel has been painted.
// Colors are ignored.  Fills are converted to closed paths, mapped to
// device space by CTM, and rasterised with exact area coverage, so that
// scaled output has anti-aliased edges while unscaled output covers whole
// pixels only.
//
// Each byte of Pix holds the coverage of one pixel, from 0 (untouched) to
// 255 (fully painted), in row-major order with stride Width.
type CoverageSink struct {
	Pix           []byte
	Width, Height int

	r    *rasteriser
	path path.Data
}

// NewCoverageSink allocates a width×height coverage buffer.  Fills are
// scaled by the given factor before rasterisation; use 1 for a one-to-one
// mapping between engine coordinates and device pixels.
func NewCoverageSink(width, height int, scale float64) *CoverageSink {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	r := newRasteriser(clip)
	r.CTM = matrix.Scale(scale, scale)
	return &CoverageSink{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
		r:      r,
	}
}

// FillRect implements the [Sink] interface.
func (s *CoverageSink) FillRect(req FillRequest) {
	x0 := float64(req.X)
	y0 := float64(req.Y)
	x1 := float64(req.X + req.Width)
	y1 := float64(req.Y + req.Height)

	s.path.Cmds = s.path.Cmds[:0]
	s.path.Coords = s.path.Coords[:0]
	s.path.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()

	s.r.fillNonZero(&s.path, func(y, xMin int, coverage []float32) {
		row := s.Pix[y*s.Width:]
		for i, c := range coverage {
			a := max(0, min(255, int(c*256)))
			old := int(row[xMin+i])
			row[xMin+i] = byte(old + a*(255-old)/255)
		}
	})
}

// At returns the coverage of pixel (x, y).
// Pixels outside the buffer have coverage 0.
func (s *CoverageSink) At(x, y int) byte {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Pix[y*s.Width+x]
}

// Image returns a grayscale image which shares its pixels with s.
func (s *CoverageSink) Image() *image.Gray {
	return &image.Gray{
		Pix:    s.Pix,
		Stride: s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}
