package common

import (
	"math"
	"testing"
)

func TestClampAndSign(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want float64
		sign float64
	}{
		{"below", -2, 0, -1},
		{"inside", 0.5, 0.5, 1},
		{"above", 3, 1, 1},
		{"zero", 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, 0, 1); got != c.want {
				t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
			}
			if got := Sign(c.v); got != c.sign {
				t.Fatalf("Sign(%v) = %v, want %v", c.v, got, c.sign)
			}
		})
	}

	if Sign(math.NaN()) != 0 {
		t.Fatalf("Sign(NaN) should be 0")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Fatalf("expected endpoint 4, got %v", got)
	}
}

func TestRectTopAndIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 1}
	if a.Top() != 1 {
		t.Fatalf("expected top 1, got %v", a.Top())
	}
	if !a.Intersects(Rect{X: 1, Y: 0.5, Width: 2, Height: 2}) {
		t.Fatalf("expected overlap")
	}
	if a.Intersects(Rect{X: 2, Y: 0, Width: 1, Height: 1}) {
		t.Fatalf("touching edges should not intersect")
	}
}
