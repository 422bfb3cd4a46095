// Package problem turns a dataset and a cluster count into a bounded,
// minimizable black-box benchmark problem.
//
// The pipeline normalizes every feature of the dataset into [0,1], exposes
// the chosen error metric over a flat k*D search vector, and derives the
// exact inverse mapping (Scaler.Retransform) from the unit cube back to the
// dataset's original coordinate scale.
package problem
