// Package dataset resolves dataset references to in-memory point tables.
//
// A reference is one of three kinds: a raw matrix supplied by the caller, a
// catalog dataset name, or a path to a local file. Name references first
// check the current working directory for a user-supplied override file
// before falling back to the benchmark data directory, which is populated
// on demand from a remote archive.
//
// Dataset files are plain text, one point per line, features separated by
// commas.
package dataset
