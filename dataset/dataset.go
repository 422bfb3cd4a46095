package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/clusterbench/catalog"
)

// DefaultDir is the local directory holding the catalog dataset files.
const DefaultDir = "benchmark_datasets"

// CustomName labels datasets supplied as raw matrices; they have no
// catalog identity.
const CustomName = "custom"

// ErrNotFound is returned when no reference path yields a readable,
// parseable dataset file.
var ErrNotFound = errors.New("dataset not found")

type refKind int

const (
	refMatrix refKind = iota
	refName
	refFile
)

// Ref is a resolved-later reference to a dataset: a raw matrix, a catalog
// name or a local file path.
type Ref struct {
	kind   refKind
	matrix *mat.Dense
	name   string
	path   string
}

// FromMatrix references a caller-supplied N x D point matrix.
func FromMatrix(m *mat.Dense) Ref {
	return Ref{kind: refMatrix, matrix: m}
}

// FromName references a dataset by name. Resolution first checks for a
// "{name}.txt" override in the current working directory, then falls back
// to the catalog and the benchmark data directory.
func FromName(name string) Ref {
	return Ref{kind: refName, name: name}
}

// FromFile references a dataset file directly by path.
func FromFile(path string) Ref {
	return Ref{kind: refFile, path: path}
}

// Table is a resolved dataset: its label, its catalog ID (0 when the
// dataset has no catalog identity) and the N x D point matrix.
type Table struct {
	Name string
	ID   int
	Data *mat.Dense
}

// Resolve loads the dataset behind ref. Catalog names are looked up in
// dataDir; pass DefaultDir unless the data lives elsewhere.
func Resolve(ref Ref, dataDir string) (Table, error) {
	switch ref.kind {
	case refMatrix:
		if ref.matrix == nil {
			return Table{}, fmt.Errorf("%w: nil matrix", ErrNotFound)
		}
		return Table{Name: CustomName, Data: ref.matrix}, nil

	case refFile:
		data, err := loadFile(ref.path)
		if err != nil {
			return Table{}, err
		}
		name := strings.TrimSuffix(filepath.Base(ref.path), filepath.Ext(ref.path))
		return Table{Name: name, Data: data}, nil

	case refName:
		// A file in the working directory overrides the catalog. It keeps
		// no catalog identity even when the name matches a catalog entry.
		override := ref.name + ".txt"
		if _, err := os.Stat(override); err == nil {
			data, err := loadFile(override)
			if err != nil {
				return Table{}, err
			}
			return Table{Name: ref.name, Data: data}, nil
		}

		id, err := catalog.ID(ref.name)
		if err != nil {
			return Table{}, err
		}
		name := strings.ToLower(ref.name)

		data, err := loadFile(filepath.Join(dataDir, name+".txt"))
		if err != nil {
			return Table{}, err
		}
		return Table{Name: name, ID: id, Data: data}, nil

	default:
		return Table{}, fmt.Errorf("%w: invalid reference", ErrNotFound)
	}
}

func loadFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer f.Close()

	data, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return data, nil
}

// parse reads comma-delimited numeric rows into a dense matrix. All rows
// must have the same number of fields.
func parse(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty dataset")
	}

	cols := len(records[0])
	values := make([]float64, 0, len(records)*cols)
	for i, record := range records {
		for _, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %v", i+1, err)
			}
			values = append(values, v)
		}
	}

	return mat.NewDense(len(records), cols, values), nil
}
