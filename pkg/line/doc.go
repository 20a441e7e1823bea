// Package line provides a straight line in slope-intercept form.
//
// A [Line] is the set of points (x, y) satisfying y = m·x + b, where m is the
// [Line.Slope] and b the [Line.Intercept]. Vertical lines have no slope and
// cannot be represented.
//
// # Construction
//
// The zero value is the horizontal line y = 0. Use [New] for anything else:
//
//	l := line.New(2, -3)
//	fmt.Println(l) // y = 2.0x - 3.0
//
// No validation is performed: any pair of finite numbers is a valid line.
//
// # Evaluation
//
// [Line.Y] never fails. [Line.X] and [Line.Perpendicular] divide by the slope
// and return [ErrZeroSlope] for horizontal lines, even when the queried y
// lies on the line. [Slope] and [Through] return [ErrVerticalLine] when both
// points share an x-coordinate.
//
//	x, err := l.X(7)
//	if errors.Is(err, line.ErrZeroSlope) {
//	    // horizontal line
//	}
//
// All three errors carry the INVALID_OPERATION code from pkg/errors.
//
// # Comparison
//
// [Line.Equal], [Line.IsParallel], [Line.IsPerpendicular] and [Line.Contains]
// compare values rounded to three decimal places. Each operand is rounded
// independently before comparing, so 1.0004 and 1.0006 round to 1.0 and
// 1.001 and are not parallel. Evaluation results are never rounded.
//
// # Concurrency
//
// Methods use value receivers and never mutate the receiver. A Line is safe
// for concurrent use as long as no goroutine writes its fields directly.
package line
