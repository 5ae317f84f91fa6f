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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestEngine() (*Engine, *Recorder) {
	rec := &Recorder{}
	return New(rec), rec
}

// stamps returns the weight×weight fills at the given points.
func stamps(color string, weight int, pts ...[2]int) []FillRequest {
	res := make([]FillRequest, len(pts))
	for i, p := range pts {
		res[i] = FillRequest{X: p[0], Y: p[1], Width: weight, Height: weight, Color: color}
	}
	return res
}

func TestFillRect(t *testing.T) {
	for _, r := range [][4]int{{0, 0, 0, 0}, {1, 2, 3, 4}, {100, 7, 1, 250}} {
		e, rec := newTestEngine()
		if err := e.FillRect(r[0], r[1], r[2], r[3]); err != nil {
			t.Fatal(err)
		}
		want := []FillRequest{{X: r[0], Y: r[1], Width: r[2], Height: r[3], Color: DefaultColor}}
		if d := cmp.Diff(want, rec.Fills); d != "" {
			t.Errorf("FillRect%v (-want +got):\n%s", r, d)
		}
	}
}

func TestFillSquare(t *testing.T) {
	e1, rec1 := newTestEngine()
	e2, rec2 := newTestEngine()
	e1.SetColor("#123456")
	e2.SetColor("#123456")

	if err := e1.FillSquare(3, 4, 5); err != nil {
		t.Fatal(err)
	}
	if err := e2.FillRect(3, 4, 5, 5); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rec2.Fills, rec1.Fills); d != "" {
		t.Errorf("FillSquare differs from FillRect (-want +got):\n%s", d)
	}
	if len(rec1.Fills) != 1 {
		t.Errorf("got %d fills, want 1", len(rec1.Fills))
	}
}

func TestColorChange(t *testing.T) {
	e, rec := newTestEngine()
	e.FillRect(0, 0, 1, 1)
	e.SetColor("#ff0000")
	e.FillRect(1, 0, 1, 1)
	e.SetColor("red") // ignored
	e.FillRect(2, 0, 1, 1)

	want := []FillRequest{
		{X: 0, Y: 0, Width: 1, Height: 1, Color: "#000000"},
		{X: 1, Y: 0, Width: 1, Height: 1, Color: "#ff0000"},
		{X: 2, Y: 0, Width: 1, Height: 1, Color: "#ff0000"},
	}
	if d := cmp.Diff(want, rec.Fills); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawLine(t *testing.T) {
	const black = DefaultColor
	cases := []struct {
		x0, y0, x1, y1, weight int
		want                   []FillRequest
	}{
		{ // vertical
			5, 5, 5, 9, 2,
			[]FillRequest{{X: 5, Y: 5, Width: 2, Height: 4, Color: black}},
		},
		{ // horizontal
			5, 5, 9, 5, 2,
			[]FillRequest{{X: 5, Y: 5, Width: 4, Height: 2, Color: black}},
		},
		{ // zero length
			7, 3, 7, 3, 1,
			[]FillRequest{{X: 7, Y: 3, Width: 1, Height: 0, Color: black}},
		},
		{ // diagonal
			0, 0, 4, 4, 1,
			stamps(black, 1, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
		},
		{ // shallow
			0, 0, 4, 2, 1,
			stamps(black, 1, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 2}),
		},
		{ // thick
			10, 10, 13, 11, 3,
			stamps(black, 3, [2]int{10, 10}, [2]int{11, 10}, [2]int{12, 11}),
		},
		{ // right to left: the walk still moves right and down
			4, 0, 0, 2, 1,
			stamps(black, 1, [2]int{4, 0}, [2]int{5, 1}, [2]int{6, 1}, [2]int{7, 2}),
		},
		{ // steep: one stamp per x step only
			0, 0, 1, 3, 1,
			stamps(black, 1, [2]int{0, 0}),
		},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%d_%d_%d_%d_%d", c.x0, c.y0, c.x1, c.y1, c.weight)
		t.Run(name, func(t *testing.T) {
			e, rec := newTestEngine()
			if err := e.DrawLine(c.x0, c.y0, c.x1, c.y1, c.weight); err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, rec.Fills); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestDrawLineNegativeExtent(t *testing.T) {
	for _, args := range [][5]int{
		{5, 9, 5, 5, 2}, // upwards
		{9, 5, 5, 5, 2}, // leftwards
	} {
		e, rec := newTestEngine()
		err := e.DrawLine(args[0], args[1], args[2], args[3], args[4])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("DrawLine%v: got error %v, want ErrInvalidArgument", args, err)
		}
		if len(rec.Fills) != 0 {
			t.Errorf("DrawLine%v: got %d fills, want 0", args, len(rec.Fills))
		}
	}
}

func TestDrawLineStaircase(t *testing.T) {
	e, rec := newTestEngine()
	if err := e.DrawLine(0, 0, 40, 17, 1); err != nil {
		t.Fatal(err)
	}
	if len(rec.Fills) != 40 {
		t.Fatalf("got %d stamps, want 40", len(rec.Fills))
	}
	for i, f := range rec.Fills {
		if f.X != i {
			t.Errorf("stamp %d at x=%d", i, f.X)
		}
		if i > 0 {
			if dy := f.Y - rec.Fills[i-1].Y; dy != 0 && dy != 1 {
				t.Errorf("stamp %d: y jumps by %d", i, dy)
			}
		}
		// the stamp stays within half a pixel of the ideal line
		ideal := float64(f.X) * 17 / 40
		if math.Abs(float64(f.Y)-ideal) > 0.5 {
			t.Errorf("stamp %d at y=%d, ideal %.2f", i, f.Y, ideal)
		}
	}
}

func TestDrawRect(t *testing.T) {
	e, rec := newTestEngine()
	if err := e.DrawRect(2, 3, 10, 6, 2); err != nil {
		t.Fatal(err)
	}
	want := []FillRequest{
		{X: 2, Y: 3, Width: 10, Height: 2, Color: DefaultColor}, // top
		{X: 2, Y: 3, Width: 2, Height: 6, Color: DefaultColor},  // left
		{X: 12, Y: 3, Width: 2, Height: 6, Color: DefaultColor}, // right
		{X: 2, Y: 9, Width: 10, Height: 2, Color: DefaultColor}, // bottom
	}
	if d := cmp.Diff(want, rec.Fills); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawSegment(t *testing.T) {
	const black = DefaultColor
	cases := []struct {
		x0, y0, x1, y1 int
		want           []FillRequest
	}{
		{0, 0, 4, 2, stamps(black, 1, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 2})},
		{4, 0, 0, 2, stamps(black, 1, [2]int{4, 0}, [2]int{3, 1}, [2]int{2, 1}, [2]int{1, 2})},
		{0, 3, 1, 0, stamps(black, 1, [2]int{0, 3}, [2]int{0, 2}, [2]int{1, 1})},
		{3, 3, 0, 3, stamps(black, 1, [2]int{3, 3}, [2]int{2, 3}, [2]int{1, 3})},
		{5, 5, 5, 5, nil},
	}
	for _, c := range cases {
		e, rec := newTestEngine()
		if err := e.DrawSegment(c.x0, c.y0, c.x1, c.y1, 1); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, rec.Fills); d != "" {
			t.Errorf("DrawSegment(%d, %d, %d, %d) (-want +got):\n%s", c.x0, c.y0, c.x1, c.y1, d)
		}
	}
}

func TestDrawSegmentOctants(t *testing.T) {
	const xc, yc = 50, 50
	for dx := -9; dx <= 9; dx++ {
		for dy := -9; dy <= 9; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			e, rec := newTestEngine()
			if err := e.DrawSegment(xc, yc, xc+dx, yc+dy, 1); err != nil {
				t.Fatal(err)
			}

			n := max(abs(dx), abs(dy))
			if len(rec.Fills) != n {
				t.Fatalf("(%d,%d): got %d stamps, want %d", dx, dy, len(rec.Fills), n)
			}
			if f := rec.Fills[0]; f.X != xc || f.Y != yc {
				t.Errorf("(%d,%d): first stamp at (%d,%d)", dx, dy, f.X, f.Y)
			}

			// every step moves by at most one pixel towards the end point,
			// and one more step reaches the end point.
			px, py := xc, yc
			for _, f := range append(rec.Fills[1:], FillRequest{X: xc + dx, Y: yc + dy}) {
				sx, sy := f.X-px, f.Y-py
				if abs(sx) > 1 || abs(sy) > 1 || (sx != 0 && sx != sign(dx)) || (sy != 0 && sy != sign(dy)) {
					t.Errorf("(%d,%d): bad step (%d,%d) at (%d,%d)", dx, dy, sx, sy, px, py)
				}
				px, py = f.X, f.Y
			}
		}
	}
}

func TestDrawCircleSymmetry(t *testing.T) {
	e, rec := newTestEngine()
	if err := e.DrawCircle(50, 50, 10, 1); err != nil {
		t.Fatal(err)
	}
	if len(rec.Fills)%8 != 0 {
		t.Fatalf("got %d stamps, not a multiple of 8", len(rec.Fills))
	}

	seen := make(map[[2]int]bool)
	for _, f := range rec.Fills {
		seen[[2]int{f.X, f.Y}] = true
	}
	for p := range seen {
		x, y := p[0], p[1]
		for _, q := range [][2]int{{100 - x, y}, {x, 100 - y}, {100 - x, 100 - y}, {y, x}} {
			if !seen[q] {
				t.Errorf("stamp (%d,%d) has no mirror image (%d,%d)", x, y, q[0], q[1])
			}
		}
		r := math.Hypot(float64(x-50), float64(y-50))
		if r < 9.5 || r > 10.5 {
			t.Errorf("stamp (%d,%d) at distance %.3f", x, y, r)
		}
	}
}

func TestDrawCircleSmall(t *testing.T) {
	e, rec := newTestEngine()
	if err := e.DrawCircle(5, 5, 0, 2); err != nil {
		t.Fatal(err)
	}
	want := stamps(DefaultColor, 2,
		[2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5},
		[2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5})
	if d := cmp.Diff(want, rec.Fills); d != "" {
		t.Errorf("radius 0 (-want +got):\n%s", d)
	}

	rec.Reset()
	if err := e.DrawCircle(5, 5, 1, 1); err != nil {
		t.Fatal(err)
	}
	want = stamps(DefaultColor, 1,
		[2]int{5, 6}, [2]int{5, 6}, [2]int{5, 4}, [2]int{5, 4},
		[2]int{6, 5}, [2]int{4, 5}, [2]int{6, 5}, [2]int{4, 5})
	if d := cmp.Diff(want, rec.Fills); d != "" {
		t.Errorf("radius 1 (-want +got):\n%s", d)
	}
}

func TestDrawCircleDiagonal(t *testing.T) {
	// For radius 10 the octant walk ends on the diagonal at x == y == 7.
	// stamp8 then hits each diagonal point twice.
	e, rec := newTestEngine()
	if err := e.DrawCircle(50, 50, 10, 1); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, f := range rec.Fills {
		if f.X == 57 && f.Y == 57 {
			count++
		}
	}
	if count != 2 {
		t.Errorf("(57,57) stamped %d times, want 2", count)
	}
}

func TestDrawCircleNearOrigin(t *testing.T) {
	e, rec := newTestEngine()
	if err := e.DrawCircle(2, 2, 5, 1); err != nil {
		t.Fatal(err)
	}
	// stamps left of or above the origin are dropped
	want := stamps(DefaultColor, 1,
		[2]int{2, 7}, [2]int{2, 7}, [2]int{7, 2}, [2]int{7, 2},
		[2]int{3, 7}, [2]int{1, 7}, [2]int{7, 3}, [2]int{7, 1},
		[2]int{4, 7}, [2]int{0, 7}, [2]int{7, 4}, [2]int{7, 0},
		[2]int{5, 6}, [2]int{6, 5})
	if d := cmp.Diff(want, rec.Fills); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDrawRectOverflow(t *testing.T) {
	for _, args := range [][5]int{
		{0, 1, 5, math.MaxInt, 1},
		{1, 0, math.MaxInt, 5, 1},
		{math.MaxInt, math.MaxInt, 1, 1, 1},
	} {
		e, rec := newTestEngine()
		err := e.DrawRect(args[0], args[1], args[2], args[3], args[4])
		var argErr *ArgumentError
		if !errors.As(err, &argErr) || argErr.Op != "DrawRect" {
			t.Errorf("DrawRect%v: got %v, want ArgumentError", args, err)
		}
		if len(rec.Fills) != 0 {
			t.Errorf("DrawRect%v: got %d fills, want 0", args, len(rec.Fills))
		}
	}

	// the largest representable rectangle is accepted
	e, rec := newTestEngine()
	if err := e.DrawRect(0, 0, math.MaxInt, 0, 1); err != nil {
		t.Fatal(err)
	}
	if len(rec.Fills) != 4 {
		t.Errorf("got %d fills, want 4", len(rec.Fills))
	}
}

func TestInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		draw func(e *Engine) error
	}{
		{"DrawLine", func(e *Engine) error { return e.DrawLine(-1, 0, 5, 5, 1) }},
		{"FillRect", func(e *Engine) error { return e.FillRect(0, 0, -2, 3) }},
		{"DrawCircle", func(e *Engine) error { return e.DrawCircle(0, 0, 0, -1) }},
		{"FillSquare", func(e *Engine) error { return e.FillSquare(1, -1, 1) }},
		{"DrawRect", func(e *Engine) error { return e.DrawRect(0, 0, 4, 4, -3) }},
		{"DrawSegment", func(e *Engine) error { return e.DrawSegment(0, 0, -4, 4, 1) }},
		{"DrawString", func(e *Engine) error { return e.DrawString(-5, 0, "x") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, rec := newTestEngine()
			err := c.draw(e)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got error %v, want ErrInvalidArgument", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) || argErr.Op != c.name {
				t.Errorf("got %#v, want ArgumentError for %s", err, c.name)
			}
			if len(rec.Fills) != 0 || len(rec.Texts) != 0 {
				t.Errorf("got %d fills and %d texts, want none", len(rec.Fills), len(rec.Texts))
			}
		})
	}
}

func TestFillCircle(t *testing.T) {
	e, rec := newTestEngine()
	for _, args := range [][3]int{{10, 10, 5}, {0, 0, 0}, {-1, -1, -1}} {
		if err := e.FillCircle(args[0], args[1], args[2]); !errors.Is(err, ErrUnsupported) {
			t.Errorf("FillCircle%v: got %v, want ErrUnsupported", args, err)
		}
	}
	if len(rec.Fills) != 0 {
		t.Errorf("got %d fills", len(rec.Fills))
	}
}

func TestDrawString(t *testing.T) {
	e, rec := newTestEngine()
	e.SetColor("#00ff00")
	e.State.SetFontSize("20px")
	if err := e.DrawString(3, 4, "hello"); err != nil {
		t.Fatal(err)
	}
	want := []TextRequest{{
		X: 3, Y: 4, Text: "hello",
		Color:      "#00ff00",
		FontFamily: DefaultFontFamily,
		FontSize:   "20px",
		FontWeight: DefaultFontWeight,
		FontStyle:  DefaultFontStyle,
	}}
	if d := cmp.Diff(want, rec.Texts); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

// fillOnly hides the DrawString method of a Recorder.
type fillOnly struct{ r *Recorder }

func (s fillOnly) FillRect(req FillRequest) { s.r.FillRect(req) }

func TestDrawStringUnsupported(t *testing.T) {
	e := New(fillOnly{&Recorder{}})
	if err := e.DrawString(0, 0, "x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}
