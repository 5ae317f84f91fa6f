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
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// PDFSink writes fills as filled rectangles on a single PDF page.
// One engine unit maps to one PDF point, with the origin at the top left
// corner of the page.  The page is written when Close is called.
type PDFSink struct {
	page *document.Page

	lastColor string
}

// NewPDFSink starts a single-page PDF document of the given size, which is
// written to w.  If background is a valid #RRGGBB color, the page is first
// filled with it.
func NewPDFSink(w io.Writer, width, height int, background string) (*PDFSink, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	if IsColor(background) {
		page.SetFillColor(pdfColor(background))
		page.Rectangle(0, 0, float64(width), float64(height))
		page.Fill()
	}

	// PDF places the origin in the bottom left corner
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	return &PDFSink{page: page}, nil
}

// FillRect implements the [Sink] interface.
func (s *PDFSink) FillRect(r FillRequest) {
	if r.Width == 0 || r.Height == 0 {
		return
	}
	if r.Color != s.lastColor {
		s.page.SetFillColor(pdfColor(r.Color))
		s.lastColor = r.Color
	}
	s.page.Rectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	s.page.Fill()
}

// Close finishes the page and the PDF document.  Errors which occurred
// while drawing are reported here.
func (s *PDFSink) Close() error {
	return s.page.Close()
}

func pdfColor(c string) color.Color {
	rgb := parseColor(c)
	return color.DeviceRGB(float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255)
}
