/*
Package polygon deals with polygons over integer points, such as the
control polygon of a cubic curve or a polyline sampled from it.

Polygons are built with a builder pattern:

	pg := NullPolygon().Knot(intbez.P(0, 0)).Knot(intbez.P(1, 3)).Knot(intbez.P(3, 0)).Cycle()

Knots are stored as a polyclip contour, which supplies bounding boxes and
point containment.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/intbez"
	"github.com/npillmayer/intbez/cubic"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is an ordered sequence of integer knots, either open or cyclic.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{contour: polyclip.Contour{}}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p intbez.Point) *Polygon {
	pg.contour.Add(polyclip.Point{X: float64(p.X), Y: float64(p.Y)})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Box creates a closed rectangle from two opposite corners.
// Knots run counter-clockwise, starting at the lower left corner.
func Box(p1, p2 intbez.Point) *Polygon {
	lx, ux := min(p1.X, p2.X), max(p1.X, p2.X)
	ly, uy := min(p1.Y, p2.Y), max(p1.Y, p2.Y)
	return NullPolygon().Knot(intbez.P(lx, ly)).Knot(intbez.P(ux, ly)).
		Knot(intbez.P(ux, uy)).Knot(intbez.P(lx, uy)).Cycle()
}

// ControlPolygon returns the open polygon A, B, C, D of a curve.
func ControlPolygon(bz cubic.Bezier) *Polygon {
	pg := NullPolygon()
	for _, p := range bz.ControlPoints() {
		pg.Knot(p)
	}
	return pg.End()
}

// Polyline returns an open polygon through the curve points at parameters
// 0, step, 2·step, … and 1023.
func Polyline(bz cubic.Bezier, step int) (*Polygon, error) {
	pts, err := bz.Samples(step)
	if err != nil {
		return nil, fmt.Errorf("polyline of %s: %w", bz, err)
	}
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	L().Debugf("polyline with %d knots for %s", pg.N(), bz)
	return pg.End(), nil
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) intbez.Point {
	p := pg.contour[i]
	return intbez.P(int(p.X), int(p.Y))
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing all knots. An empty polygon has the
// origin as both corners.
func (pg *Polygon) BoundingBox() (intbez.Point, intbez.Point) {
	if pg.N() == 0 {
		L().Errorf("bounding box of empty polygon")
		return intbez.Origin, intbez.Origin
	}
	r := pg.contour.BoundingBox()
	return intbez.P(int(r.Min.X), int(r.Min.Y)), intbez.P(int(r.Max.X), int(r.Max.Y))
}

// Encloses is a predicate: does p lie within the bounding box of pg,
// borders included?
func (pg *Polygon) Encloses(p intbez.Point) bool {
	if pg.N() == 0 {
		return false
	}
	lo, hi := pg.BoundingBox()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Contains is a predicate: is p inside the area of pg? The area is that of
// the closed polygon, even if pg is open. Points on an edge may go either way.
func (pg *Polygon) Contains(p intbez.Point) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: float64(p.X), Y: float64(p.Y)})
}

// AsString returns a polygon in MetaPost notation, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Pt(i).String())
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
