package clusterbench

import (
	"os"
	"path/filepath"

	"github.com/hupe1980/clusterbench/catalog"
	"github.com/hupe1980/clusterbench/dataset"
	"github.com/hupe1980/clusterbench/metric"
	"github.com/hupe1980/clusterbench/problem"
)

// CreateProblem builds a clustering benchmark problem from a dataset
// reference and a cluster count. The returned Scaler maps solutions from
// the normalized [0,1] search space back to original dataset coordinates.
func CreateProblem(ref dataset.Ref, k int, opts ...Option) (*problem.Problem, *problem.Scaler, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	table, err := dataset.Resolve(ref, o.dataDir)
	if err != nil {
		return nil, nil, err
	}

	fn := o.metricFunc
	if fn == nil {
		fn, err = metric.Provider(o.metricName)
		if err != nil {
			return nil, nil, err
		}
	}

	return problem.Build(table, k, o.instance, fn)
}

// GetProblem builds the benchmark problem for the catalog dataset with the
// given ID, using the default error metric.
func GetProblem(id, k int, opts ...Option) (*problem.Problem, *problem.Scaler, error) {
	name, err := catalog.Name(id)
	if err != nil {
		return nil, nil, err
	}
	return CreateProblem(dataset.FromName(name), k, opts...)
}

// GetProblemByName builds the benchmark problem for the named catalog
// dataset, using the default error metric. Name lookup is case-insensitive.
func GetProblemByName(name string, k int, opts ...Option) (*problem.Problem, *problem.Scaler, error) {
	id, err := catalog.ID(name)
	if err != nil {
		return nil, nil, err
	}
	return GetProblem(id, k, opts...)
}

// DownloadBenchmarkDatasets populates the benchmark data directory from
// the remote archive. If the directory already exists the download is
// skipped; the configured logger surfaces the skip as a warning.
func DownloadBenchmarkDatasets(opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return dataset.Fetch(o.dataDir, o.logger.Logger)
}

// Entry pairs a built problem with the scaler that maps its solutions back
// to dataset coordinates.
type Entry struct {
	Problem *problem.Problem
	Scaler  *problem.Scaler
}

// LoadProblems builds every baseline problem whose dataset file is present
// in the benchmark data directory, one per valid cluster count, keyed by
// generated problem name. The directory is populated from the remote
// archive first if it does not exist; that fetch failing is fatal.
// Datasets missing from the directory are skipped silently.
func LoadProblems(opts ...Option) (map[string]Entry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := dataset.Fetch(o.dataDir, o.logger.Logger); err != nil {
		return nil, err
	}

	problems := make(map[string]Entry)
	for _, entry := range catalog.Datasets() {
		if _, err := os.Stat(filepath.Join(o.dataDir, entry.Name+".txt")); err != nil {
			continue
		}

		ks, err := catalog.KValues(entry.Name)
		if err != nil {
			return nil, err
		}

		for _, k := range ks {
			p, s, err := CreateProblem(dataset.FromName(entry.Name), k, opts...)
			if err != nil {
				return nil, err
			}
			problems[p.MetaData().Name] = Entry{Problem: p, Scaler: s}
		}
	}

	return problems, nil
}
