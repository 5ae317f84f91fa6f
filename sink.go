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
	"image/color"
	"strconv"
)

// FillRequest is an axis-aligned rectangle filled with a solid color.
// The rectangle covers the pixels x <= px < x+Width, y <= py < y+Height.
type FillRequest struct {
	X, Y          int
	Width, Height int
	Color         string // #RRGGBB
}

// TextRequest is a string placed with its top left corner at (X, Y).
type TextRequest struct {
	X, Y int
	Text string

	Color      string
	FontFamily string
	FontSize   string
	FontWeight string
	FontStyle  string
}

// Sink receives the rectangles produced by an [Engine].
// Fills are delivered in drawing order; later fills paint over earlier ones.
type Sink interface {
	FillRect(r FillRequest)
}

// TextSink is implemented by sinks which can render text.
type TextSink interface {
	Sink
	DrawString(t TextRequest)
}

// Recorder is a Sink which stores all requests it receives.
type Recorder struct {
	Fills []FillRequest
	Texts []TextRequest
}

// FillRect implements the [Sink] interface.
func (r *Recorder) FillRect(req FillRequest) {
	r.Fills = append(r.Fills, req)
}

// DrawString implements the [TextSink] interface.
func (r *Recorder) DrawString(t TextRequest) {
	r.Texts = append(r.Texts, t)
}

// Reset discards all recorded requests.
func (r *Recorder) Reset() {
	r.Fills = r.Fills[:0]
	r.Texts = r.Texts[:0]
}

// parseColor converts a #RRGGBB string to an opaque color.
// Strings which are not valid colors map to black.
func parseColor(s string) color.NRGBA {
	if !IsColor(s) {
		return color.NRGBA{A: 255}
	}
	v, _ := strconv.ParseUint(s[1:], 16, 32)
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
