package cubic

import (
	"errors"
	"fmt"

	"github.com/npillmayer/intbez"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cubic'
func tracer() tracing.Trace {
	return tracing.Select("cubic")
}

// ErrInvalidStep indicates a non-positive parameter step for sampling.
var ErrInvalidStep = errors.New("sampling step must be positive")

// Bezier is a cubic Bézier curve with integer control points.
// The zero value is the degenerate curve at the origin.
type Bezier struct {
	a, b, c, d intbez.Point // control points, read-only after construction
}

// New creates a curve from its four control points, in order.
func New(a, b, c, d intbez.Point) Bezier {
	return Bezier{a: a, b: b, c: c, d: d}
}

// A is the start point of the curve.
func (bz Bezier) A() intbez.Point { return bz.a }

// B is the first inner control point.
func (bz Bezier) B() intbez.Point { return bz.b }

// C is the second inner control point.
func (bz Bezier) C() intbez.Point { return bz.c }

// D is the end point of the curve.
func (bz Bezier) D() intbez.Point { return bz.d }

// ControlPoints returns a copy of A, B, C, D.
func (bz Bezier) ControlPoints() [4]intbez.Point {
	return [4]intbez.Point{bz.a, bz.b, bz.c, bz.d}
}

// Linerp linearly interpolates between a and b at fraction t/1023:
//
//	a + (b-a)·(t/1023)
//
// with the scaled difference truncated toward zero. Linerp(a, b, 0) is a,
// Linerp(a, b, 1023) is b. Neither argument is modified.
func Linerp(a, b intbez.Point, t int) intbez.Point {
	return a.Lerp(b, t)
}

// Eval returns the point of the curve at parameter t, where t/1023 is the
// fraction along the curve. Eval(0) is A, Eval(1023) is D. t outside of
// [0,1023] extrapolates.
func (bz Bezier) Eval(t int) intbez.Point {
	ab := Linerp(bz.a, bz.b, t)
	bc := Linerp(bz.b, bz.c, t)
	cd := Linerp(bz.c, bz.d, t)
	abbc := Linerp(ab, bc, t)
	bccd := Linerp(bc, cd, t)
	return Linerp(abbc, bccd, t)
}

// Samples evaluates the curve at t = 0, step, 2·step, … and always includes
// t = 1023 as the final sample.
func (bz Bezier) Samples(step int) ([]intbez.Point, error) {
	if step <= 0 {
		tracer().Errorf("cannot sample %s with step %d", bz, step)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	n := intbez.MaxT/step + 2
	pts := make([]intbez.Point, 0, n)
	for t := 0; t < intbez.MaxT; t += step {
		pts = append(pts, bz.Eval(t))
	}
	pts = append(pts, bz.Eval(intbez.MaxT))
	tracer().Debugf("sampled %s at %d points", bz, len(pts))
	return pts, nil
}

// Reversed returns the curve with control points D, C, B, A.
// It traces the same points as bz in opposite direction, up to truncation.
func (bz Bezier) Reversed() Bezier {
	return Bezier{a: bz.d, b: bz.c, c: bz.b, d: bz.a}
}

// IsDegenerate is a predicate: do all control points coincide?
func (bz Bezier) IsDegenerate() bool {
	return bz.a == bz.b && bz.b == bz.c && bz.c == bz.d
}

// String returns the curve in MetaPost notation.
func (bz Bezier) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s", bz.a, bz.b, bz.c, bz.d)
}
