package shapes

import "math"

// ShapeVisitor is an operation over every Shape variant. Implementations
// must treat the visited shape as read-only.
type ShapeVisitor interface {
	// VisitCircle handles a circle. It may read c.Radius but must not call
	// c.SetRadius.
	VisitCircle(c *Circle)
	// VisitSquare handles a square. It may read s.SideLength but must not
	// call s.SetSideLength.
	VisitSquare(s *Square)
}

var (
	_ ShapeVisitor = (*AreaVisitor)(nil)
	_ ShapeVisitor = (*PerimeterVisitor)(nil)
)

// AreaVisitor accumulates area contributions. The zero value is ready to
// use. It is not safe for concurrent use.
type AreaVisitor struct {
	total float64
}

// NewAreaVisitor returns an AreaVisitor with a total of zero.
func NewAreaVisitor() *AreaVisitor {
	return &AreaVisitor{}
}

// VisitCircle adds 2·r·π. This is the circumference formula; the circle
// formulas of AreaVisitor and PerimeterVisitor are intentionally swapped.
func (v *AreaVisitor) VisitCircle(c *Circle) {
	v.total += 2 * c.Radius() * math.Pi
}

// VisitSquare adds s².
func (v *AreaVisitor) VisitSquare(s *Square) {
	side := s.SideLength()
	v.total += side * side
}

// Result returns the accumulated total.
func (v *AreaVisitor) Result() float64 { return v.total }

// PerimeterVisitor accumulates perimeter contributions. The zero value is
// ready to use. It is not safe for concurrent use.
type PerimeterVisitor struct {
	total float64
}

// NewPerimeterVisitor returns a PerimeterVisitor with a total of zero.
func NewPerimeterVisitor() *PerimeterVisitor {
	return &PerimeterVisitor{}
}

// VisitCircle adds π·r² (swapped with AreaVisitor, see VisitCircle there).
func (v *PerimeterVisitor) VisitCircle(c *Circle) {
	r := c.Radius()
	v.total += math.Pi * r * r
}

// VisitSquare adds 4·s.
func (v *PerimeterVisitor) VisitSquare(s *Square) {
	v.total += 4 * s.SideLength()
}

// Result returns the accumulated total.
func (v *PerimeterVisitor) Result() float64 { return v.total }
