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

// Default values for the graphics state.
const (
	DefaultColor      = "#000000"
	DefaultFontFamily = "Arial"
	DefaultFontSize   = "12px"
	DefaultFontWeight = "normal"
	DefaultFontStyle  = "normal"
)

// GraphicsState holds the attributes used by the drawing operations.
// The values are read when an operation is called, so a change only affects
// shapes drawn afterwards.
//
// A GraphicsState is not safe for concurrent use.
type GraphicsState struct {
	color      string
	fontFamily string
	fontSize   string
	fontWeight string
	fontStyle  string
}

// NewGraphicsState returns a GraphicsState with the default attributes.
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		color:      DefaultColor,
		fontFamily: DefaultFontFamily,
		fontSize:   DefaultFontSize,
		fontWeight: DefaultFontWeight,
		fontStyle:  DefaultFontStyle,
	}
}

// Color returns the current drawing color in the form #RRGGBB.
func (s *GraphicsState) Color() string {
	return s.color
}

// SetColor sets the color for subsequent shapes.  Values which are not of
// the form #RRGGBB are ignored and the previous color is kept.
func (s *GraphicsState) SetColor(c string) {
	if !IsColor(c) {
		return
	}
	s.color = c
}

// FontFamily returns the font family used for text.
func (s *GraphicsState) FontFamily() string {
	return s.fontFamily
}

// SetFontFamily sets the font family used for text.
func (s *GraphicsState) SetFontFamily(family string) {
	s.fontFamily = family
}

// FontSize returns the font size, in CSS notation.
func (s *GraphicsState) FontSize() string {
	return s.fontSize
}

// SetFontSize sets the font size.  The value uses CSS notation, e.g. "12px".
func (s *GraphicsState) SetFontSize(size string) {
	s.fontSize = size
}

// FontWeight returns the font weight used for text.
func (s *GraphicsState) FontWeight() string {
	return s.fontWeight
}

// SetFontWeight sets the font weight, e.g. "bold".
func (s *GraphicsState) SetFontWeight(weight string) {
	s.fontWeight = weight
}

// FontStyle returns the font style used for text.
func (s *GraphicsState) FontStyle() string {
	return s.fontStyle
}

// SetFontStyle sets the font style, e.g. "italic".
func (s *GraphicsState) SetFontStyle(style string) {
	s.fontStyle = style
}
