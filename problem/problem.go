package problem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/clusterbench/metric"
)

// Optimization is the direction a problem is optimized in.
type Optimization int

const (
	Minimize Optimization = iota
	Maximize
)

func (o Optimization) String() string {
	switch o {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// MetaData identifies a benchmark problem instance.
type MetaData struct {
	// Name is the generated problem name, e.g. "Cluster_iris_k3".
	Name string
	// ProblemID is the stable catalog ID, 0 for non-catalog datasets.
	ProblemID int
	// Instance distinguishes repeated variants of the same named problem.
	Instance int
	// Dimension is the search-space dimension, k * feature count.
	Dimension int
	// Optimization is always Minimize for clustering problems.
	Optimization Optimization
}

// Bounds is the box constraint of the search space.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// Problem is a clustering objective wrapped as a black-box benchmark
// instance. It tracks evaluation state the way benchmarking harnesses
// expect: an evaluation counter and the best solution seen so far.
type Problem struct {
	meta      MetaData
	bounds    Bounds
	objective metric.Func

	// data is the normalized dataset the objective closes over.
	data *mat.Dense
	k    int
	d    int

	evaluations int
	bestY       float64
	bestX       []float64
}

// MetaData returns the identity metadata of the problem.
func (p *Problem) MetaData() MetaData {
	return p.meta
}

// Bounds returns the search-space box constraint, [0,1] in every dimension.
func (p *Problem) Bounds() Bounds {
	return p.bounds
}

// K returns the cluster count of the problem.
func (p *Problem) K() int {
	return p.k
}

// SetID attaches a stable catalog ID to an already constructed problem.
func (p *Problem) SetID(id int) {
	p.meta.ProblemID = id
}

// Evaluate scores a flat solution vector of length k*D. Each contiguous
// block of D values is interpreted as one cluster center in normalized
// [0,1] coordinates.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != p.meta.Dimension {
		return 0, &ErrDimensionMismatch{Expected: p.meta.Dimension, Actual: len(x)}
	}

	centers := mat.NewDense(p.k, p.d, x)
	y := p.objective(p.data, centers)

	p.evaluations++
	if y < p.bestY {
		p.bestY = y
		p.bestX = append([]float64(nil), x...)
	}

	return y, nil
}

// Evaluations returns the number of objective evaluations since the last
// Reset.
func (p *Problem) Evaluations() int {
	return p.evaluations
}

// Best returns the best solution seen so far and its objective value.
// Before the first evaluation it returns (nil, +Inf).
func (p *Problem) Best() ([]float64, float64) {
	return p.bestX, p.bestY
}

// Reset clears the evaluation state.
func (p *Problem) Reset() {
	p.evaluations = 0
	p.bestY = math.Inf(1)
	p.bestX = nil
}
