package analysis

import "fmt"

// Gradient computes the numerical gradient of a uniformly sampled
// series, assuming unit spacing between samples.
//
// Algorithm:
// 1. Interior points use the second-order central difference (y[i+1]-y[i-1])/2
// 2. Boundary points fall back to one-sided first-order differences
// 3. The result has the same length as the input
//
// At least two samples are required; differentiating fewer is
// ill-posed and returns an error.
func Gradient(y []float64) ([]float64, error) {
	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("gradient requires at least 2 samples, got %d", n)
	}

	g := make([]float64, n)
	g[0] = y[1] - y[0]
	g[n-1] = y[n-1] - y[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (y[i+1] - y[i-1]) / 2
	}
	return g, nil
}

// Velocity recovers the velocity profile of a sampled state series by
// differentiating it and rescaling from sample index to time. dt is
// the optimizer model time step in seconds.
func Velocity(x []float64, dt float64) ([]float64, error) {
	v, err := Gradient(x)
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] /= dt
	}
	return v, nil
}
