package metric

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownMetric is returned when a metric name is not registered.
var ErrUnknownMetric = errors.New("unknown metric")

// Func scores a set of candidate cluster centers against a dataset.
// data is the normalized N x D point table, centers a k x D matrix.
// The result is non-negative; smaller is better.
//
// Implementations must be deterministic and side-effect free.
type Func func(data, centers *mat.Dense) float64

var registry = map[string]Func{
	"mse_euclidean": MSEEuclidean,
	"sse_euclidean": SSEEuclidean,
	"mae_manhattan": MAEManhattan,
}

// Provider returns the metric function registered under name.
func Provider(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return fn, nil
}

// Names returns the registered metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MSEEuclidean is the mean squared Euclidean distance from each point to its
// nearest center: the standard k-means objective.
func MSEEuclidean(data, centers *mat.Dense) float64 {
	n, _ := data.Dims()
	return SSEEuclidean(data, centers) / float64(n)
}

// SSEEuclidean is the total squared Euclidean distance from each point to its
// nearest center.
func SSEEuclidean(data, centers *mat.Dense) float64 {
	n, d := data.Dims()
	k, _ := centers.Dims()

	var total float64
	for i := 0; i < n; i++ {
		best := math.Inf(1)
		for j := 0; j < k; j++ {
			var dist float64
			for f := 0; f < d; f++ {
				diff := data.At(i, f) - centers.At(j, f)
				dist += diff * diff
			}
			if dist < best {
				best = dist
			}
		}
		total += best
	}

	return total
}

// MAEManhattan is the mean L1 distance from each point to its nearest center.
func MAEManhattan(data, centers *mat.Dense) float64 {
	n, d := data.Dims()
	k, _ := centers.Dims()

	point := make([]float64, d)
	center := make([]float64, d)

	var total float64
	for i := 0; i < n; i++ {
		mat.Row(point, i, data)
		best := math.Inf(1)
		for j := 0; j < k; j++ {
			mat.Row(center, j, centers)
			if dist := floats.Distance(point, center, 1); dist < best {
				best = dist
			}
		}
		total += best
	}

	return total / float64(n)
}
