package art

import (
	"math"
	"strings"

	"github.com/matzehuels/threadart/pkg/errors"
)

// Shape is the boundary curve nails are distributed along.
type Shape string

// Supported boundary shapes.
const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
)

// ParseShape parses a shape name case-insensitively.
// It returns an INVALID_PARAMETER error for unsupported names.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(s)) {
	case ShapeCircle:
		return ShapeCircle, nil
	case ShapeSquare:
		return ShapeSquare, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidParameter,
			"unsupported shape: %q (use 'circle' or 'square')", s)
	}
}

// Generate computes a deterministic nail layout for the given count and
// shape. Nails are evenly distributed along the boundary, the shape is
// maximized within the unit square, and each coordinate is rounded to six
// decimal digits for reproducible, diffable output.
//
// Preconditions: count must be positive, and a square layout needs at
// least one nail per corner edge (count >= 4). Violations return an
// INVALID_PARAMETER error.
//
// Ordering is part of the contract: the i-th returned point is nail i,
// the identity every thread path refers to.
func Generate(count int, shape Shape) ([]Point, error) {
	if count <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"number of nails must be positive, got %d", count)
	}
	switch shape {
	case ShapeCircle:
		return circleNails(count), nil
	case ShapeSquare:
		if count < 4 {
			return nil, errors.New(errors.ErrCodeInvalidParameter,
				"square shape requires at least 4 nails, got %d", count)
		}
		return squareNails(count), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"unsupported shape: %q (use 'circle' or 'square')", string(shape))
	}
}

// circleNails places nail i at angle 2*pi*i/count on the circle centered
// at (0.5, 0.5) with radius 0.5, the largest circle inscribed in the unit
// square. Nail 0 always lands at (1.0, 0.5).
func circleNails(count int) []Point {
	const centerX, centerY, radius = 0.5, 0.5, 0.5

	nails := make([]Point, count)
	for i := range nails {
		angle := 2 * math.Pi * float64(i) / float64(count)
		nails[i] = Point{
			X: round6(centerX + radius*math.Cos(angle)),
			Y: round6(centerY + radius*math.Sin(angle)),
		}
	}
	return nails
}

// squareNails treats the unit square's perimeter (length 4) as a 1-D ring
// starting at (0,0) and walks it clockwise: bottom, right, top, left edge.
// Nail i sits at perimeter position (i*4/count) mod 4, linearly
// interpolated along the active edge. Equal arc-length spacing holds for
// any count, including counts not divisible by 4.
func squareNails(count int) []Point {
	const perimeter = 4.0
	spacing := perimeter / float64(count)

	nails := make([]Point, count)
	for i := range nails {
		pos := math.Mod(float64(i)*spacing, perimeter)

		var x, y float64
		switch {
		case pos <= 1.0: // bottom edge: (0,0) -> (1,0)
			x, y = pos, 0.0
		case pos <= 2.0: // right edge: (1,0) -> (1,1)
			x, y = 1.0, pos-1.0
		case pos <= 3.0: // top edge: (1,1) -> (0,1)
			x, y = 1.0-(pos-2.0), 1.0
		default: // left edge: (0,1) -> (0,0)
			x, y = 0.0, 1.0-(pos-3.0)
		}
		nails[i] = Point{X: round6(x), Y: round6(y)}
	}
	return nails
}

// round6 rounds to six decimal digits. This controls output size and
// keeps generated files byte-identical across runs, not a precision
// requirement of the geometry.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
