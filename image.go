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

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSink paints fills and text into a raster image.
// Fills outside the image bounds are clipped.
type ImageSink struct {
	Dst draw.Image

	// Face is used for text.  If nil, basicfont.Face7x13 is used.
	// The font attributes of a TextRequest are not interpreted.
	Face font.Face
}

// NewImageSink returns a sink which paints into dst.
func NewImageSink(dst draw.Image) *ImageSink {
	return &ImageSink{Dst: dst}
}

// FillRect implements the [Sink] interface.
func (s *ImageSink) FillRect(r FillRequest) {
	if r.Width == 0 || r.Height == 0 {
		return
	}
	rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	src := image.NewUniform(parseColor(r.Color))
	draw.Draw(s.Dst, rect, src, image.Point{}, draw.Src)
}

// DrawString implements the [TextSink] interface.
func (s *ImageSink) DrawString(t TextRequest) {
	face := s.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := &font.Drawer{
		Dst:  s.Dst,
		Src:  image.NewUniform(parseColor(t.Color)),
		Face: face,
		Dot:  fixed.P(t.X, t.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(t.Text)
}
