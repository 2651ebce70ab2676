package shapes

import "fmt"

// Shape is an element that can be visited. The set of shapes is closed:
// only Circle and Square implement it.
type Shape interface {
	// Accept calls the visitor method for the shape's variant, passing the
	// shape itself. The shape is not modified.
	Accept(v ShapeVisitor)

	isShape()
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Square)(nil)
)

// Circle is a circle with a mutable radius.
type Circle struct {
	radius float64
}

// NewCircle returns a Circle with the given radius. The radius is not
// validated.
func NewCircle(radius float64) *Circle {
	return &Circle{radius: radius}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius replaces the circle's radius.
func (c *Circle) SetRadius(radius float64) { c.radius = radius }

// Accept dispatches to v.VisitCircle. A nil circle is not visited.
func (c *Circle) Accept(v ShapeVisitor) {
	if c == nil {
		return
	}
	v.VisitCircle(c)
}

// String returns a short diagnostic form, e.g. "circle(r=1)".
func (c *Circle) String() string {
	return fmt.Sprintf("circle(r=%g)", c.radius)
}

func (*Circle) isShape() {}

// Square is a square with a mutable side length.
type Square struct {
	side float64
}

// NewSquare returns a Square with the given side length. The side length
// is not validated.
func NewSquare(side float64) *Square {
	return &Square{side: side}
}

// SideLength returns the square's side length.
func (s *Square) SideLength() float64 { return s.side }

// SetSideLength replaces the square's side length.
func (s *Square) SetSideLength(side float64) { s.side = side }

// Accept dispatches to v.VisitSquare. A nil square is not visited.
func (s *Square) Accept(v ShapeVisitor) {
	if s == nil {
		return
	}
	v.VisitSquare(s)
}

// String returns a short diagnostic form, e.g. "square(s=2)".
func (s *Square) String() string {
	return fmt.Sprintf("square(s=%g)", s.side)
}

func (*Square) isShape() {}

// AcceptAll has v visit each shape in order. Nil shapes, including nil
// *Circle and *Square values, are skipped.
func AcceptAll(v ShapeVisitor, shapes ...Shape) {
	for _, s := range shapes {
		if s == nil {
			continue
		}
		s.Accept(v)
	}
}
