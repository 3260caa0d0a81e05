package intbez

import (
	"fmt"

	"github.com/chewxy/math32"
)

// === Point Data Type =======================================================

// Point is a 2D point with integer coordinates. The zero value is the origin.
type Point struct {
	X, Y int
}

// Origin represents the frequently used constant (0,0).
var Origin = Point{}

// P is a quick notation for constructing a point from integers.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// XY returns both coordinates.
func (p Point) XY() (int, int) {
	return p.X, p.Y
}

// IsOrigin is a predicate: is this point the origin?
func (p Point) IsOrigin() bool {
	return p == Origin
}

// Equal compares two points.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul returns a new point scaled by integer factor n.
func (p Point) Mul(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// MulF returns a new point scaled by float factor f. Each coordinate is
// converted to float32, multiplied, and truncated toward zero.
// A factor which is NaN or infinite results in ErrNonFinite.
func (p Point) MulF(f float32) (Point, error) {
	if !finite(f) {
		tracer().Errorf("cannot scale %s by %g", p, f)
		return p, fmt.Errorf("%w: scaling %s by %g", ErrNonFinite, p, f)
	}
	return Point{X: trunc(float32(p.X) * f), Y: trunc(float32(p.Y) * f)}, nil
}

// DivF returns a new point with both coordinates divided by d, truncated
// toward zero. Division by 0 results in ErrDivisionByZero, a NaN divisor in
// ErrNonFinite. Dividing by an infinite divisor is well defined and yields
// the origin.
func (p Point) DivF(d float32) (Point, error) {
	if d == 0 {
		tracer().Errorf("cannot divide %s by zero", p)
		return p, fmt.Errorf("%w: dividing %s", ErrDivisionByZero, p)
	}
	if math32.IsNaN(d) {
		tracer().Errorf("cannot divide %s by NaN", p)
		return p, fmt.Errorf("%w: dividing %s by NaN", ErrNonFinite, p)
	}
	return Point{X: trunc(float32(p.X) / d), Y: trunc(float32(p.Y) / d)}, nil
}

// Shr returns a new point with both coordinates arithmetically shifted right
// by n bits. Negative coordinates round toward negative infinity.
func (p Point) Shr(n uint) Point {
	return Point{X: p.X >> n, Y: p.Y >> n}
}

// Lerp returns p + (q-p)·(t/MaxT), with the scaled difference truncated
// toward zero. Neither p nor q is modified. t is not restricted to
// [0,MaxT].
func (p Point) Lerp(q Point, t int) Point {
	f := Fraction(t)
	d := q.Sub(p)
	return p.Add(Point{X: trunc(float32(d.X) * f), Y: trunc(float32(d.Y) * f)})
}
