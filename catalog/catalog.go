// Package catalog holds the fixed registry of baseline clustering datasets.
//
// Every dataset has a stable numeric ID, a canonical lowercase name and an
// ordered list of cluster counts it is benchmarked with. The tables are
// process-wide constants; nothing here mutates after init.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownDatasetID is returned when a dataset ID is not in the catalog.
	ErrUnknownDatasetID = errors.New("unknown dataset id")

	// ErrUnknownDatasetName is returned when a dataset name is not in the catalog.
	ErrUnknownDatasetName = errors.New("unknown dataset name")
)

// Entry identifies one catalog dataset.
type Entry struct {
	ID   int
	Name string
}

var names = map[int]string{
	1: "iris",
	2: "wine",
	3: "glass",
	4: "seeds",
	5: "ruspini",
	6: "yeast",
}

var kValues = map[string][]int{
	"iris":    {2, 3, 5, 10},
	"wine":    {2, 3, 5, 10},
	"glass":   {2, 5, 7, 10},
	"seeds":   {2, 3, 5, 10},
	"ruspini": {2, 4, 5, 10},
	"yeast":   {2, 5, 10},
}

var ids map[string]int

func init() {
	ids = make(map[string]int, len(names))
	for id, name := range names {
		ids[name] = id
	}
}

// Name returns the canonical dataset name for id.
func Name(id int) (string, error) {
	name, ok := names[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownDatasetID, id)
	}
	return name, nil
}

// ID returns the dataset ID for name. Lookup is case-insensitive.
func ID(name string) (int, error) {
	id, ok := ids[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDatasetName, name)
	}
	return id, nil
}

// KValues returns the cluster counts the named dataset is benchmarked with,
// in ascending order. The returned slice is a copy.
func KValues(name string) ([]int, error) {
	ks, ok := kValues[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatasetName, name)
	}
	out := make([]int, len(ks))
	copy(out, ks)
	return out, nil
}

// Datasets returns all catalog entries ordered by ID.
func Datasets() []Entry {
	entries := make([]Entry, 0, len(names))
	for id, name := range names {
		entries = append(entries, Entry{ID: id, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}
