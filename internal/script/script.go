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

// Package script reads drawing scripts from TOML or YAML files.
//
// A script gives the canvas size and a list of steps:
//
//	width = 64
//	height = 64
//	background = "#ffffff"
//
//	[[steps]]
//	op = "color"
//	value = "#ff0000"
//
//	[[steps]]
//	op = "circle"
//	args = [32, 32, 20, 2]
//
// Numeric arguments may be given as numbers or as strings; strings may
// contain surrounding white space.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pixdraw"
)

// Default canvas size, used when a script gives no size.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Script is a sequence of drawing steps together with the canvas setup.
type Script struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Scale      float64 `toml:"scale" yaml:"scale"`
	Background string  `toml:"background" yaml:"background"`
	Steps      []Step  `toml:"steps" yaml:"steps"`
}

// Step is a single drawing operation.
//
// Op is one of "color", "font", "fill_rect", "fill_square", "line",
// "segment", "rect", "circle", "fill_circle" or "text".
// For "color", Value holds the new color.  For "font", Attr names the
// attribute ("family", "size", "weight" or "style") and Value its value.
// For "text", Text holds the string.
type Step struct {
	Op    string `toml:"op" yaml:"op"`
	Args  []any  `toml:"args" yaml:"args"`
	Value string `toml:"value" yaml:"value"`
	Attr  string `toml:"attr" yaml:"attr"`
	Text  string `toml:"text" yaml:"text"`
}

// Format identifies the syntax of a script file.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FormatFromPath determines the script format from the file name extension.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: unknown script format", name)
	}
}

// Load reads a script file.  The format is chosen by the file extension.
func Load(name string) (*Script, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Decode reads a script in the given format from r.
// Missing canvas dimensions are replaced by the defaults.
func Decode(r io.Reader, format Format) (*Script, error) {
	s := &Script{}
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(s); err != nil {
			return nil, err
		}
	case YAML:
		err := yaml.NewDecoder(r).Decode(s)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported script format %s", format)
	}

	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Width < 0 || s.Height < 0 || s.Scale < 0 {
		return nil, errors.New("canvas size and scale must be positive")
	}
	return s, nil
}

// DeviceSize returns the canvas size in device pixels.
func (s *Script) DeviceSize() (int, int) {
	return int(float64(s.Width) * s.Scale), int(float64(s.Height) * s.Scale)
}

// Run executes the steps on e, stopping at the first failing step.
func (s *Script) Run(e *pixdraw.Engine) error {
	for i, step := range s.Steps {
		if err := step.apply(e); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

// arity gives the number of numeric arguments of each operation.
var arity = map[string]int{
	"color":       0,
	"font":        0,
	"fill_rect":   4,
	"fill_square": 3,
	"line":        5,
	"segment":     5,
	"rect":        5,
	"circle":      4,
	"fill_circle": 3,
	"text":        2,
}

func (step Step) apply(e *pixdraw.Engine) error {
	n, ok := arity[step.Op]
	if !ok {
		return errors.New("unknown operation")
	}
	if len(step.Args) != n {
		return fmt.Errorf("need %d arguments, got %d", n, len(step.Args))
	}
	a, err := step.ints()
	if err != nil {
		return err
	}

	switch step.Op {
	case "color":
		e.State.SetColor(step.Value)
		return nil
	case "font":
		return setFont(e.State, step.Attr, step.Value)
	case "fill_rect":
		return e.FillRect(a[0], a[1], a[2], a[3])
	case "fill_square":
		return e.FillSquare(a[0], a[1], a[2])
	case "line":
		return e.DrawLine(a[0], a[1], a[2], a[3], a[4])
	case "segment":
		return e.DrawSegment(a[0], a[1], a[2], a[3], a[4])
	case "rect":
		return e.DrawRect(a[0], a[1], a[2], a[3], a[4])
	case "circle":
		return e.DrawCircle(a[0], a[1], a[2], a[3])
	case "fill_circle":
		return e.FillCircle(a[0], a[1], a[2])
	default: // "text"
		return e.DrawString(a[0], a[1], step.Text)
	}
}

// ints converts the arguments to integers.  Every argument must be a
// non-negative integer, possibly written as a string with surrounding
// white space.
func (step Step) ints() ([]int, error) {
	res := make([]int, len(step.Args))
	for i, v := range step.Args {
		if !pixdraw.IsNonNegativeInteger(v) {
			return nil, fmt.Errorf("argument %d (%v): %w", i, v, pixdraw.ErrInvalidArgument)
		}
		x, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(v)))
		if err != nil {
			// the value is all digits but does not fit into an int
			return nil, fmt.Errorf("argument %d (%v): %w", i, v, pixdraw.ErrInvalidArgument)
		}
		res[i] = x
	}
	return res, nil
}

func setFont(s *pixdraw.GraphicsState, attr, value string) error {
	switch attr {
	case "family":
		s.SetFontFamily(value)
	case "size":
		s.SetFontSize(value)
	case "weight":
		s.SetFontWeight(value)
	case "style":
		s.SetFontStyle(value)
	default:
		return fmt.Errorf("unknown font attribute %q", attr)
	}
	return nil
}
