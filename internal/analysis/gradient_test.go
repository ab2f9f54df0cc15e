package analysis

import (
	"math"
	"testing"
)

func almostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestGradient(t *testing.T) {
	g, err := Gradient([]float64{1, 2, 4})
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}

	want := []float64{1, 1.5, 2}
	if !almostEqual(g, want, 1e-12) {
		t.Errorf("expected gradient %v, got %v", want, g)
	}
}

func TestGradient_TwoSamples(t *testing.T) {
	g, err := Gradient([]float64{5, 5.5})
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}

	want := []float64{0.5, 0.5}
	if !almostEqual(g, want, 1e-12) {
		t.Errorf("expected gradient %v, got %v", want, g)
	}
}

func TestGradient_Constant(t *testing.T) {
	g, err := Gradient([]float64{3, 3, 3, 3, 3})
	if err != nil {
		t.Fatalf("gradient failed: %v", err)
	}

	for i, gi := range g {
		if gi != 0 {
			t.Errorf("expected zero gradient at %d, got %f", i, gi)
		}
	}
}

func TestGradient_PreservesLength(t *testing.T) {
	for n := 2; n <= 8; n++ {
		y := make([]float64, n)
		for i := range y {
			y[i] = math.Sin(float64(i))
		}

		g, err := Gradient(y)
		if err != nil {
			t.Fatalf("gradient failed for %d samples: %v", n, err)
		}
		if len(g) != n {
			t.Errorf("expected %d gradient samples, got %d", n, len(g))
		}
	}
}

func TestGradient_TooShort(t *testing.T) {
	for _, y := range [][]float64{nil, {}, {7}} {
		if _, err := Gradient(y); err == nil {
			t.Errorf("expected error for %d samples", len(y))
		}
	}
}

func TestVelocity(t *testing.T) {
	v, err := Velocity([]float64{1, 2, 4}, 0.05)
	if err != nil {
		t.Fatalf("velocity failed: %v", err)
	}

	want := []float64{20, 30, 40}
	if !almostEqual(v, want, 1e-9) {
		t.Errorf("expected velocity %v, got %v", want, v)
	}
}

func TestVelocity_TwoSamples(t *testing.T) {
	v, err := Velocity([]float64{5, 5.5}, 0.05)
	if err != nil {
		t.Fatalf("velocity failed: %v", err)
	}

	want := []float64{10, 10}
	if !almostEqual(v, want, 1e-9) {
		t.Errorf("expected velocity %v, got %v", want, v)
	}
}

func TestVelocity_TooShort(t *testing.T) {
	if _, err := Velocity([]float64{2.5}, 0.05); err == nil {
		t.Error("expected error for single-sample series")
	}
}
