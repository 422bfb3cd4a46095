package problem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/clusterbench/dataset"
	"github.com/hupe1980/clusterbench/metric"
)

func buildDiagonal(t *testing.T, k int) (*Problem, *Scaler) {
	t.Helper()

	data := mat.NewDense(3, 2, []float64{
		0, 0,
		2, 2,
		4, 4,
	})
	table, err := dataset.Resolve(dataset.FromMatrix(data), dataset.DefaultDir)
	require.NoError(t, err)

	p, s, err := Build(table, k, 1, metric.MSEEuclidean)
	require.NoError(t, err)
	return p, s
}

func TestBuildMetaData(t *testing.T) {
	p, _ := buildDiagonal(t, 1)

	meta := p.MetaData()
	assert.Equal(t, "Cluster_custom_k1", meta.Name)
	assert.Zero(t, meta.ProblemID)
	assert.Equal(t, 1, meta.Instance)
	assert.Equal(t, 2, meta.Dimension)
	assert.Equal(t, Minimize, meta.Optimization)
	assert.Equal(t, 1, p.K())
}

func TestBuildBoundsAreUnitCube(t *testing.T) {
	p, _ := buildDiagonal(t, 3)

	bounds := p.Bounds()
	require.Len(t, bounds.Lower, 6)
	require.Len(t, bounds.Upper, 6)
	for i := range bounds.Lower {
		assert.Equal(t, 0.0, bounds.Lower[i])
		assert.Equal(t, 1.0, bounds.Upper[i])
	}
}

func TestBuildDimension(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		k        int
		expected int
	}{
		{"TwoFeatures", 3, 2, 2, 4},
		{"FiveFeatures", 4, 5, 3, 15},
		{"SingleCluster", 3, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, tt.rows*tt.cols)
			for i := range values {
				values[i] = float64(i%7) + float64(i)*0.25
			}
			table := dataset.Table{Name: "custom", Data: mat.NewDense(tt.rows, tt.cols, values)}

			p, _, err := Build(table, tt.k, 1, metric.MSEEuclidean)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.MetaData().Dimension)
		})
	}
}

// The midpoint of the diagonal dataset in normalized coordinates must be
// the best single center, and retransform must map it back to (2,2).
func TestEndToEndDiagonal(t *testing.T) {
	p, s := buildDiagonal(t, 1)

	mid, err := p.Evaluate([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, mid, 1e-12)

	corner, err := p.Evaluate([]float64{0, 0})
	require.NoError(t, err)
	assert.Greater(t, corner, mid)

	other, err := p.Evaluate([]float64{0.25, 0.75})
	require.NoError(t, err)
	assert.Greater(t, other, mid)

	back, err := s.Retransform([]float64{0.5, 0.5}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, back.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, back.At(0, 1), 1e-12)
}

func TestEvaluateDimensionMismatch(t *testing.T) {
	p, _ := buildDiagonal(t, 2)

	_, err := p.Evaluate([]float64{0.5})
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 4, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Actual)
	assert.Zero(t, p.Evaluations())
}

func TestEvaluationState(t *testing.T) {
	p, _ := buildDiagonal(t, 1)

	x, y := p.Best()
	assert.Nil(t, x)
	assert.True(t, math.IsInf(y, 1))

	_, err := p.Evaluate([]float64{0, 0})
	require.NoError(t, err)
	_, err = p.Evaluate([]float64{0.5, 0.5})
	require.NoError(t, err)
	_, err = p.Evaluate([]float64{1, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Evaluations())

	x, y = p.Best()
	assert.Equal(t, []float64{0.5, 0.5}, x)
	assert.InDelta(t, 1.0/3.0, y, 1e-12)

	p.Reset()
	assert.Zero(t, p.Evaluations())
	x, y = p.Best()
	assert.Nil(t, x)
	assert.True(t, math.IsInf(y, 1))
}

func TestBestCopiesSolution(t *testing.T) {
	p, _ := buildDiagonal(t, 1)

	x := []float64{0.5, 0.5}
	_, err := p.Evaluate(x)
	require.NoError(t, err)

	x[0] = 0.99

	best, _ := p.Best()
	assert.Equal(t, []float64{0.5, 0.5}, best)
}

func TestBuildInvalidK(t *testing.T) {
	table := dataset.Table{Name: "custom", Data: mat.NewDense(2, 2, []float64{0, 0, 1, 1})}

	for _, k := range []int{0, -3} {
		_, _, err := Build(table, k, 1, metric.MSEEuclidean)
		assert.ErrorIs(t, err, ErrInvalidK)
	}
}

func TestBuildNilMetric(t *testing.T) {
	table := dataset.Table{Name: "custom", Data: mat.NewDense(2, 2, []float64{0, 0, 1, 1})}

	_, _, err := Build(table, 2, 1, nil)
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
}

func TestBuildDegenerateFeature(t *testing.T) {
	table := dataset.Table{Name: "custom", Data: mat.NewDense(3, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
	})}

	p, s, err := Build(table, 2, 1, metric.MSEEuclidean)
	var degenerate *ErrDegenerateFeature
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 1, degenerate.Feature)
	assert.Nil(t, p)
	assert.Nil(t, s)
}

func TestBuildAttachesCatalogID(t *testing.T) {
	table := dataset.Table{Name: "iris", ID: 1, Data: mat.NewDense(2, 2, []float64{0, 0, 1, 1})}

	p, _, err := Build(table, 2, 1, metric.MSEEuclidean)
	require.NoError(t, err)
	assert.Equal(t, 1, p.MetaData().ProblemID)
	assert.Equal(t, "Cluster_iris_k2", p.MetaData().Name)
}
