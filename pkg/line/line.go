package line

import (
	"math"

	"github.com/matzehuels/lineq/pkg/errors"
)

// Sentinel errors for operations without a defined result.
var (
	// ErrZeroSlope is returned when an operation divides by a zero slope.
	ErrZeroSlope = errors.New(errors.ErrCodeInvalidOperation, "slope is 0")

	// ErrVerticalLine is returned when two points share an x-coordinate.
	ErrVerticalLine = errors.New(errors.ErrCodeInvalidOperation, "vertical line")
)

// precision is the scale used by round: three decimal places.
const precision = 1000

// Line is a straight line y = Slope·x + Intercept.
type Line struct {
	Slope     float64 // m; 0 is horizontal
	Intercept float64 // b; y at x = 0
}

// New returns the line y = m·x + b.
func New(m, b float64) Line {
	return Line{Slope: m, Intercept: b}
}

// Zero returns the line y = 0.
func Zero() Line { return Line{} }

// IsHorizontal reports whether the slope is exactly 0.
func (l Line) IsHorizontal() bool { return l.Slope == 0 }

// Y returns the y-value of the line at x.
func (l Line) Y(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// X returns the x-value at which the line reaches y.
// It returns ErrZeroSlope for horizontal lines.
func (l Line) X(y float64) (float64, error) {
	if l.Slope == 0 {
		return 0, ErrZeroSlope
	}
	return (y - l.Intercept) / l.Slope, nil
}

// Perpendicular returns the line perpendicular to l that crosses the y-axis
// at intercept. It returns ErrZeroSlope for horizontal lines, whose
// perpendiculars are vertical.
func (l Line) Perpendicular(intercept float64) (Line, error) {
	if l.Slope == 0 {
		return Line{}, ErrZeroSlope
	}
	return Line{Slope: -1 / l.Slope, Intercept: intercept}, nil
}

// Equal reports whether l and other are parallel and share an intercept,
// to three decimal places.
func (l Line) Equal(other Line) bool {
	return l.IsParallel(other) && round(l.Intercept) == round(other.Intercept)
}

// IsParallel reports whether both slopes are equal to three decimal places.
func (l Line) IsParallel(other Line) bool {
	return round(l.Slope) == round(other.Slope)
}

// IsPerpendicular reports whether the product of both slopes is -1 to three
// decimal places. A horizontal line is never perpendicular to a Line, since
// its perpendicular is vertical.
func (l Line) IsPerpendicular(other Line) bool {
	return round(l.Slope*other.Slope) == -1
}

// Contains reports whether (x, y) lies on the line to three decimal places.
func (l Line) Contains(x, y float64) bool {
	return round(l.Y(x)) == round(y)
}

// Slope returns the slope of the line through (x1, y1) and (x2, y2).
// It returns ErrVerticalLine when x1 == x2.
func Slope(x1, y1, x2, y2 float64) (float64, error) {
	dx := x2 - x1
	if dx == 0 {
		return 0, ErrVerticalLine
	}
	return (y2 - y1) / dx, nil
}

// Through returns the line through (x1, y1) and (x2, y2).
// It returns ErrVerticalLine when x1 == x2.
func Through(x1, y1, x2, y2 float64) (Line, error) {
	m, err := Slope(x1, y1, x2, y2)
	if err != nil {
		return Line{}, err
	}
	return Line{Slope: m, Intercept: y1 - m*x1}, nil
}

// round rounds v to three decimal places, halves away from zero.
func round(v float64) float64 {
	return math.Round(v*precision) / precision
}
