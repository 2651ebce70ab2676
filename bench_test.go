package shapes

import "testing"

// benchShapes is a mixed batch for exercising dispatch over both variants.
func benchShapes() []Shape {
	out := make([]Shape, 0, 100)
	for i := range 50 {
		out = append(out, NewCircle(float64(i)+0.5), NewSquare(float64(i)+1))
	}
	return out
}

func BenchmarkAcceptAll_Area(b *testing.B) {
	batch := benchShapes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := NewAreaVisitor()
		AcceptAll(v, batch...)
		if v.Result() == 0 {
			b.Fatal("empty result")
		}
	}
}

func BenchmarkAcceptAll_Perimeter(b *testing.B) {
	batch := benchShapes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := NewPerimeterVisitor()
		AcceptAll(v, batch...)
		if v.Result() == 0 {
			b.Fatal("empty result")
		}
	}
}
