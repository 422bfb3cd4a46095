package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/clusterbench/dataset"
	"github.com/hupe1980/clusterbench/metric"
)

// ErrInvalidK is returned when the cluster count is not positive.
var ErrInvalidK = errors.New("k must be positive")

// Build constructs a clustering benchmark problem from a resolved dataset
// table. The dataset is normalized into the unit cube, the objective
// evaluates fn against the normalized data, and the returned Scaler maps
// solutions back to original dataset coordinates.
//
// When the table carries a catalog ID it is attached to the problem.
func Build(table dataset.Table, k, instance int, fn metric.Func) (*Problem, *Scaler, error) {
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if fn == nil {
		return nil, nil, metric.ErrUnknownMetric
	}

	scaler, err := NewScaler(table.Data)
	if err != nil {
		return nil, nil, err
	}

	normalized, err := scaler.Normalize(table.Data)
	if err != nil {
		return nil, nil, err
	}

	d := scaler.Features()
	dim := k * d

	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range upper {
		upper[i] = 1
	}

	p := &Problem{
		meta: MetaData{
			Name:         fmt.Sprintf("Cluster_%s_k%d", table.Name, k),
			Instance:     instance,
			Dimension:    dim,
			Optimization: Minimize,
		},
		bounds:    Bounds{Lower: lower, Upper: upper},
		objective: fn,
		data:      normalized,
		k:         k,
		d:         d,
		bestY:     math.Inf(1),
	}

	if table.ID != 0 {
		p.SetID(table.ID)
	}

	return p, scaler, nil
}
