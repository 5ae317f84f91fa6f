// Package pixdraw rasterises lines, rectangle outlines and circles given in
// integer device coordinates.
//
// An [Engine] turns every shape into a sequence of filled, axis-aligned
// rectangles and passes these to a [Sink].  Lines use Bresenham's algorithm
// and circles the midpoint circle algorithm; thick strokes are drawn by
// stamping weight×weight squares along the shape.  The color and font
// attributes come from the engine's [GraphicsState].
//
// The package provides sinks which record the fills ([Recorder]), paint
// them into an image ([ImageSink]), compute per-pixel coverage at an
// arbitrary scale ([CoverageSink]), or write them to a PDF page
// ([PDFSink]).
package pixdraw

//go:generate go run ./testcases/export
