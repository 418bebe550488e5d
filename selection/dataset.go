package selection

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a descriptor table loaded from CSV: a header row, a leading
// identifier column, and one numeric descriptor column per remaining header
// field. The feature matrix is the raw (non-standardized) descriptor block;
// hand it to NewEngine as-is.
type Dataset struct {
	IDs         []string   // row identifiers, in file order
	Descriptors []string   // descriptor column names from the header
	Features    *mat.Dense // N×D raw descriptor matrix
}

// LoadDataset reads a descriptor CSV from path.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset CSV: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset CSV empty or missing header")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("dataset CSV header needs an identifier column and at least one descriptor column")
	}
	descriptors := header[1:]
	d := len(descriptors)

	rows := records[1:]
	ids := make([]string, len(rows))
	data := make([]float64, 0, len(rows)*d)
	for i, rec := range rows {
		if len(rec) != d+1 {
			return nil, fmt.Errorf("dataset CSV row %d: expected %d columns, got %d", i+2, d+1, len(rec))
		}
		ids[i] = rec[0]
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset CSV row %d: invalid %s: %w", i+2, descriptors[j], err)
			}
			data = append(data, v)
		}
	}

	return &Dataset{
		IDs:         ids,
		Descriptors: descriptors,
		Features:    mat.NewDense(len(rows), d, data),
	}, nil
}

// Indices resolves row identifiers to row indices, preserving order. Unknown
// identifiers are an error rather than silently dropped.
func (ds *Dataset) Indices(ids []string) ([]int, error) {
	byID := make(map[string]int, len(ds.IDs))
	for i, id := range ds.IDs {
		byID[id] = i
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		idx, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown row identifier %q", id)
		}
		out[i] = idx
	}
	return out, nil
}

// Labels maps row indices back to their identifiers.
func (ds *Dataset) Labels(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = ds.IDs[idx]
	}
	return out
}
