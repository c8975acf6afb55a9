// Package canvas provides the raster implementation of render.Canvas,
// backed by fogleman/gg with the Go Regular font for labels.
package canvas

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/threadart/pkg/errors"
	"github.com/matzehuels/threadart/pkg/render"
)

// Raster is a pixel canvas that exports to PNG.
// Not safe for concurrent use.
type Raster struct {
	dc     *gg.Context
	width  int
	height int
	ttf    *truetype.Font
	faces  map[float64]font.Face
}

// NewRaster creates a width x height pixel canvas.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"image dimensions must be positive, got %dx%d", width, height)
	}
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
	}
	return &Raster{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		ttf:    ttf,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Size returns the canvas dimensions in pixels.
func (r *Raster) Size() (int, int) { return r.width, r.height }

// Clear fills the whole canvas with c.
func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

// DrawDisc draws a filled, stroked circle.
func (r *Raster) DrawDisc(center render.Pt, radius float64, fill, stroke color.Color, strokeWidth float64) {
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(fill)
	r.dc.FillPreserve()
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(strokeWidth)
	r.dc.Stroke()
}

// DrawPolyline strokes the open path through pts. Fewer than two points
// draw nothing; coincident consecutive points contribute zero-length
// segments.
func (r *Raster) DrawPolyline(pts []render.Pt, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.Stroke()
}

// DrawPolygon draws a closed, filled, stroked polygon.
func (r *Raster) DrawPolygon(pts []render.Pt, fill, stroke color.Color, strokeWidth float64) {
	if len(pts) < 3 {
		return
	}
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.SetColor(fill)
	r.dc.FillPreserve()
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(strokeWidth)
	r.dc.Stroke()
}

// DrawLabel draws one line of text anchored at (at.X, at.Y).
func (r *Raster) DrawLabel(text string, at render.Pt, size, ax, ay float64, c color.Color) {
	r.dc.SetFontFace(r.face(size))
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(text, at.X, at.Y, ax, ay)
}

// Export writes the canvas as a PNG file. Any failure is an IO_FAILURE;
// either a complete image is produced or none.
func (r *Raster) Export(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write image %s", path)
	}
	return nil
}

// face returns a cached font face for the given pixel size. Nail labels
// all share one size, so the cache stays tiny.
func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{Size: size, DPI: 72})
	r.faces[size] = f
	return f
}
