// Package metric provides clustering error metrics.
//
// A metric scores a set of candidate cluster centers against a normalized
// dataset: smaller is better. Metrics are pure functions and are resolved
// by name through Provider.
//
// # Supported Metrics
//
//   - mse_euclidean: Mean squared Euclidean distance to the nearest center
//     (the classic k-means objective, default)
//   - sse_euclidean: Sum of squared Euclidean distances to the nearest center
//   - mae_manhattan: Mean L1 distance to the nearest center
//
// # Usage
//
//	fn, err := metric.Provider("mse_euclidean")
//	score := fn(normalizedData, centers)
package metric
