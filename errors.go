package clusterbench

import (
	"github.com/hupe1980/clusterbench/catalog"
	"github.com/hupe1980/clusterbench/dataset"
	"github.com/hupe1980/clusterbench/metric"
	"github.com/hupe1980/clusterbench/problem"
)

// Error taxonomy of the module, re-exported so callers can match with
// errors.Is against a single package.
var (
	// ErrUnknownMetric: metric name not in the registry.
	ErrUnknownMetric = metric.ErrUnknownMetric

	// ErrUnknownDatasetID: catalog lookup miss by ID.
	ErrUnknownDatasetID = catalog.ErrUnknownDatasetID

	// ErrUnknownDatasetName: catalog lookup miss by name.
	ErrUnknownDatasetName = catalog.ErrUnknownDatasetName

	// ErrDatasetNotFound: no readable, parseable dataset file behind a
	// reference.
	ErrDatasetNotFound = dataset.ErrNotFound

	// ErrRemoteFetch: downloading or extracting the benchmark archive
	// failed.
	ErrRemoteFetch = dataset.ErrRemoteFetch

	// ErrInvalidK: non-positive cluster count.
	ErrInvalidK = problem.ErrInvalidK
)

// ErrDegenerateFeature indicates a feature column with zero range.
// Match with errors.As.
type ErrDegenerateFeature = problem.ErrDegenerateFeature

// ErrDimensionMismatch indicates a solution vector of the wrong length.
// Match with errors.As.
type ErrDimensionMismatch = problem.ErrDimensionMismatch
