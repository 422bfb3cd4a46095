package clusterbench

import (
	"github.com/hupe1980/clusterbench/dataset"
	"github.com/hupe1980/clusterbench/metric"
)

// DefaultMetric is the error metric used when none is configured.
const DefaultMetric = "mse_euclidean"

type options struct {
	instance   int
	metricName string
	metricFunc metric.Func
	dataDir    string
	logger     *Logger
}

func defaultOptions() *options {
	return &options{
		instance:   1,
		metricName: DefaultMetric,
		dataDir:    dataset.DefaultDir,
		logger:     NoopLogger(),
	}
}

// Option configures problem construction and loading.
type Option func(*options)

// WithInstance sets the instance number of the generated problem,
// distinguishing repeated variants of the same named problem.
func WithInstance(instance int) Option {
	return func(o *options) {
		o.instance = instance
	}
}

// WithErrorMetric selects a registered error metric by name.
func WithErrorMetric(name string) Option {
	return func(o *options) {
		o.metricName = name
		o.metricFunc = nil
	}
}

// WithErrorMetricFunc supplies an ad-hoc error metric. It takes precedence
// over WithErrorMetric.
func WithErrorMetricFunc(fn metric.Func) Option {
	return func(o *options) {
		o.metricFunc = fn
	}
}

// WithDataDir overrides the benchmark data directory.
func WithDataDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dataDir = dir
		}
	}
}

// WithLogger sets the logger. If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
