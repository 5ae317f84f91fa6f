package pixdraw

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/pixdraw/testcases"
)

// discard is a sink which drops all fills.
type discard struct{}

func (discard) FillRect(FillRequest) {}

func BenchmarkDrawLine(b *testing.B) {
	e := New(discard{})
	b.ReportAllocs()
	for b.Loop() {
		for k := 0; k <= 1000; k += 50 {
			e.DrawLine(0, 0, 1000, k, 3)
		}
	}
}

func BenchmarkDrawCircle(b *testing.B) {
	for _, r := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("r%d", r), func(b *testing.B) {
			e := New(discard{})
			b.ReportAllocs()
			for b.Loop() {
				e.DrawCircle(r+5, r+5, r, 2)
			}
		})
	}
}

// BenchmarkCoverageCircle rasterises the stamps of a circle outline.
func BenchmarkCoverageCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			fills := circleFills(size)
			sink := NewCoverageSink(size, size, 1)

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				clear(sink.Pix)
				for _, f := range fills {
					sink.FillRect(f)
				}
			}
		})
	}
}

// BenchmarkVectorCircle draws the same stamps using x/image/vector.
func BenchmarkVectorCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			fills := circleFills(size)
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				clear(dst.Pix)
				for _, f := range fills {
					r.Reset(size, size)
					x0, y0 := float32(f.X), float32(f.Y)
					x1, y1 := float32(f.X+f.Width), float32(f.Y+f.Height)
					r.MoveTo(x0, y0)
					r.LineTo(x1, y0)
					r.LineTo(x1, y1)
					r.LineTo(x0, y1)
					r.ClosePath()
					r.Draw(dst, dst.Bounds(), src, image.Point{})
				}
			}
		})
	}
}

func circleFills(size int) []FillRequest {
	rec := &Recorder{}
	e := New(rec)
	c := size / 2
	e.DrawCircle(c, c, size*45/100, max(1, size/100))
	return rec.Fills
}

// BenchmarkRenderAll runs all test cases through a coverage sink.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			w, h := tc.DeviceSize()
			scale := tc.Scale
			if scale == 0 {
				scale = 1
			}
			tc.Run(New(NewCoverageSink(w, h, scale)))
		}
	}
}
