// Package shapes computes area and perimeter totals over a fixed set of
// geometric shapes using double dispatch.
//
// # Dispatch
//
// A [Shape] knows only how to accept a [ShapeVisitor]. Calling
// [Shape.Accept] forwards to the visitor method matching the shape's own
// variant, so the operation performed depends on both the shape and the
// visitor:
//
//	c := shapes.NewCircle(1.0)
//	v := shapes.NewAreaVisitor()
//	c.Accept(v)
//	total := v.Result()
//
// New operations are added by writing a new [ShapeVisitor]. The shape set
// ([Circle] and [Square]) is closed; adding a variant means adding a method
// to every visitor.
//
// # Accumulation
//
// [AreaVisitor] and [PerimeterVisitor] keep a running total that starts at
// zero and only grows. Visiting several shapes with one visitor, directly
// or through [AcceptAll], sums their contributions. There is no reset; use
// a fresh visitor instead.
//
// # Circle formulas
//
// AreaVisitor adds 2·r·π for a circle and PerimeterVisitor adds π·r². These
// are swapped relative to plane geometry and kept that way for parity with
// existing results. Square formulas (s² and 4·s) are the usual ones.
//
// # Inputs
//
// Constructors accept any float64, including zero, negative, NaN and
// infinite values. Nothing is validated and nothing fails; non-finite
// values propagate through the arithmetic.
package shapes
