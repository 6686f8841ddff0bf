package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add() = %v, expected (4,2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, expected (2,6)", got)
	}
	if got := q.Scale(4); got != Pt(4, -8) {
		t.Errorf("Scale() = %v, expected (4,-8)", got)
	}
}

func TestPointDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Point
		manhattan int
		chebyshev int
	}{
		{"same point", Pt(2, 2), Pt(2, 2), 0, 0},
		{"horizontal", Pt(0, 0), Pt(5, 0), 5, 5},
		{"diagonal", Pt(0, 0), Pt(1, 1), 2, 1},
		{"negative coords", Pt(-3, 2), Pt(1, -1), 7, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.manhattan {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.manhattan)
			}
			if got := tc.b.Manhattan(tc.a); got != tc.manhattan {
				t.Errorf("Manhattan() (reversed) = %d, expected %d", got, tc.manhattan)
			}
			if got := tc.a.Chebyshev(tc.b); got != tc.chebyshev {
				t.Errorf("Chebyshev() = %d, expected %d", got, tc.chebyshev)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
	}
}
