// Package render turns thread art data into a drawn scene on an abstract
// canvas.
//
// The renderer is decoupled from any drawing library through the [Canvas]
// interface; the gg-backed raster implementation lives in the canvas
// subpackage. Layer order is part of the contract: the thread polyline is
// drawn first, nails above it so they stay visible under dense thread
// overlap, and the start/end markers above everything. When the thread
// starts and ends on the same nail both markers are drawn, end marker
// last, so it wins visually.
package render

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/threadart/pkg/art"
)

// Pt is a point in pixel space.
type Pt struct {
	X float64
	Y float64
}

// Canvas is the drawing capability the renderer is injected with.
// Coordinates are in pixel space with the origin at the top-left.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)
	// Clear fills the whole canvas with a single color.
	Clear(c color.Color)
	// DrawDisc draws a filled, stroked circle.
	DrawDisc(center Pt, radius float64, fill, stroke color.Color, strokeWidth float64)
	// DrawPolyline strokes the open path through pts.
	DrawPolyline(pts []Pt, width float64, c color.Color)
	// DrawPolygon draws a closed, filled, stroked polygon.
	DrawPolygon(pts []Pt, fill, stroke color.Color, strokeWidth float64)
	// DrawLabel draws a single line of text. ax and ay anchor the text
	// relative to (x, y): 0.5/0.5 centers it, 0/1 puts (x, y) at the
	// top-left corner.
	DrawLabel(text string, at Pt, size, ax, ay float64, c color.Color)
	// Export writes the finished canvas to a raster file.
	Export(path string) error
}

// Frame maps the unit square isometrically into a pixel viewport.
// The square is scaled to the smaller dimension minus margins and
// centered; the y axis is flipped so unit y points up.
type Frame struct {
	width   float64
	height  float64
	scale   float64
	offsetX float64
	offsetY float64
}

// NewFrame builds a frame for a width x height pixel viewport with the
// given margin as a fraction of the smaller dimension.
func NewFrame(width, height int, margin float64) Frame {
	w, h := float64(width), float64(height)
	side := min(w, h)
	scale := side - 2*margin*side
	return Frame{
		width:   w,
		height:  h,
		scale:   scale,
		offsetX: (w - scale) / 2,
		offsetY: (h - scale) / 2,
	}
}

// Pt maps a unit-square point to pixel coordinates.
func (f Frame) Pt(p art.Point) Pt {
	return Pt{
		X: f.offsetX + p.X*f.scale,
		Y: f.height - (f.offsetY + p.Y*f.scale),
	}
}

// Scale returns the pixel length of one unit-square unit.
// Style sizes expressed as unit fractions are multiplied by this.
func (f Frame) Scale() float64 { return f.scale }

// Renderer composes the thread art scene onto a Canvas.
type Renderer struct {
	style Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle overrides the default visual style.
func WithStyle(s Style) Option {
	return func(r *Renderer) { r.style = s }
}

// New creates a Renderer with the default style unless overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the complete scene for a onto c. The input is assumed to
// be validated; indices out of range would panic here, so callers load
// through pkg/io or call art.Validate first.
//
// Every nail is drawn whether or not the thread references it. A thread
// with fewer than two points draws no segments, and an empty thread draws
// no start/end markers.
func (r *Renderer) Render(a art.Art, c Canvas) {
	w, h := c.Size()
	f := NewFrame(w, h, r.style.Margin)
	s := r.style

	c.Clear(s.Background)

	if s.ShowGrid {
		r.drawGrid(c, f)
	}

	if len(a.Thread) >= 2 {
		pts := make([]Pt, len(a.Thread))
		for i, idx := range a.Thread {
			pts[i] = f.Pt(a.Nails[idx])
		}
		c.DrawPolyline(pts, s.ThreadWidth, s.Thread)
	}

	for i, n := range a.Nails {
		at := f.Pt(n)
		c.DrawDisc(at, s.NailRadius*f.Scale(), s.NailFill, s.NailStroke, s.NailStrokeWidth)
		c.DrawLabel(fmt.Sprintf("%d", i), at, s.LabelSize*f.Scale(), 0.5, 0.5, s.Label)
	}

	if len(a.Thread) > 0 {
		half := s.MarkerSize * f.Scale() / 2
		r.drawStartMarker(c, f.Pt(a.Nails[a.Thread[0]]), half)
		r.drawEndMarker(c, f.Pt(a.Nails[a.Thread[len(a.Thread)-1]]), half)
	}

	r.drawOverlay(c, f, a)
}

// drawGrid draws light reference lines across the unit square.
func (r *Renderer) drawGrid(c Canvas, f Frame) {
	s := r.style
	steps := int(1/s.GridStep + 0.5)
	for i := 0; i <= steps; i++ {
		v := s.GridStep * float64(i)
		c.DrawPolyline([]Pt{f.Pt(art.Point{X: v, Y: 0}), f.Pt(art.Point{X: v, Y: 1})}, 1, s.Grid)
		c.DrawPolyline([]Pt{f.Pt(art.Point{X: 0, Y: v}), f.Pt(art.Point{X: 1, Y: v})}, 1, s.Grid)
	}
}

// drawStartMarker draws a square centered on the first thread nail.
func (r *Renderer) drawStartMarker(c Canvas, at Pt, half float64) {
	c.DrawPolygon([]Pt{
		{X: at.X - half, Y: at.Y - half},
		{X: at.X + half, Y: at.Y - half},
		{X: at.X + half, Y: at.Y + half},
		{X: at.X - half, Y: at.Y + half},
	}, r.style.Start, r.style.MarkerStroke, r.style.MarkerStrokeWidth)
}

// drawEndMarker draws an upward triangle centered on the last thread nail.
func (r *Renderer) drawEndMarker(c Canvas, at Pt, half float64) {
	c.DrawPolygon([]Pt{
		{X: at.X, Y: at.Y - half},
		{X: at.X + half, Y: at.Y + half},
		{X: at.X - half, Y: at.Y + half},
	}, r.style.End, r.style.MarkerStroke, r.style.MarkerStrokeWidth)
}

// drawOverlay draws the title and the statistics block.
func (r *Renderer) drawOverlay(c Canvas, f Frame, a art.Art) {
	s := r.style
	w, _ := c.Size()
	pad := 0.012 * f.Scale()

	if s.Title != "" {
		c.DrawLabel(s.Title, Pt{X: float64(w) / 2, Y: pad}, s.TitleSize*f.Scale(), 0.5, 1, s.Text)
	}

	textSize := s.TextSize * f.Scale()
	c.DrawLabel(fmt.Sprintf("Nails: %d", len(a.Nails)),
		Pt{X: pad, Y: pad}, textSize, 0, 1, s.Text)
	c.DrawLabel(fmt.Sprintf("Thread segments: %d", a.Segments()),
		Pt{X: pad, Y: pad + textSize*1.4}, textSize, 0, 1, s.Text)
}
