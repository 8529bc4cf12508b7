// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normality

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
)

// ErrUnsupportedInput is returned for datasets that are not a column
// table, a numeric matrix, or a flat list of values.
var ErrUnsupportedInput = errors.New("unsupported input type")

// A Dataset is a collection of samples to test. It is one of Columns,
// Matrix, or List.
type Dataset interface {
	// samples normalizes the dataset into an ordered list of named
	// samples.
	samples() ([]namedSample, error)
}

type namedSample struct {
	name string
	xs   []float64
}

// Columns is a labeled column table. Every column must be numeric.
// If the Grouping has more than one group, each column of each group
// is a separate sample, named "<group>/<column>". Constant columns,
// such as the keys added by table.GroupBy, are skipped.
type Columns struct {
	G table.Grouping
}

// Matrix is an unlabeled numeric matrix. Each row is an observation
// and each column is a sample. Columns are named by index.
type Matrix struct {
	M mat.Matrix
}

// List is a single unlabeled sample. It is named "0".
type List []float64

var (
	_ Dataset = Columns{}
	_ Dataset = Matrix{}
	_ Dataset = List(nil)
)

// DatasetOf converts v to a Dataset. v may be a Dataset, a
// table.Grouping (including *table.Table), a mat.Matrix, a
// [][]float64 of rows, or a []float64. Anything else returns an error
// wrapping ErrUnsupportedInput.
func DatasetOf(v any) (Dataset, error) {
	switch v := v.(type) {
	case Dataset:
		return v, nil
	case *table.Table:
		if v == nil {
			return nil, fmt.Errorf("%w: nil table", ErrUnsupportedInput)
		}
		return Columns{v}, nil
	case table.Grouping:
		return Columns{v}, nil
	case *mat.Dense:
		if v == nil {
			return nil, fmt.Errorf("%w: nil matrix", ErrUnsupportedInput)
		}
		return Matrix{v}, nil
	case mat.Matrix:
		return Matrix{v}, nil
	case [][]float64:
		return FromRows(v)
	case []float64:
		return List(v), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}

// FromRows returns a Matrix dataset whose rows are rows. All rows
// must have the same, nonzero length.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: empty matrix", ErrUnsupportedInput)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return Matrix{}, fmt.Errorf("%w: matrix row %d has %d columns, want %d", ErrUnsupportedInput, i, len(row), c)
		}
		data = append(data, row...)
	}
	return Matrix{mat.NewDense(len(rows), c, data)}, nil
}

func (d Columns) samples() ([]namedSample, error) {
	if d.G == nil {
		return nil, fmt.Errorf("%w: nil table", ErrUnsupportedInput)
	}
	gids := d.G.Tables()
	var out []namedSample
	for _, gid := range gids {
		t := d.G.Table(gid)
		for _, col := range d.G.Columns() {
			if _, ok := t.Const(col); ok {
				continue
			}
			xs, err := ColumnValues(t, col)
			if err != nil {
				return nil, err
			}
			name := col
			if len(gids) > 1 || gid != table.RootGroupID {
				name = strings.TrimPrefix(gid.String(), "/") + "/" + col
			}
			out = append(out, namedSample{name, xs})
		}
	}
	return out, nil
}

// ColumnValues returns the values of column col of t as float64s. The
// column must exist and have a numeric element type.
func ColumnValues(t *table.Table, col string) ([]float64, error) {
	data := t.Column(col)
	if data == nil {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	switch reflect.TypeOf(data).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return nil, fmt.Errorf("%w: column %q has type %T", ErrUnsupportedInput, col, data)
	}
	var xs []float64
	slice.Convert(&xs, data)
	return xs, nil
}

func (d Matrix) samples() ([]namedSample, error) {
	if d.M == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrUnsupportedInput)
	}
	_, c := d.M.Dims()
	out := make([]namedSample, c)
	for j := range out {
		out[j] = namedSample{strconv.Itoa(j), mat.Col(nil, j, d.M)}
	}
	return out, nil
}

func (d List) samples() ([]namedSample, error) {
	return []namedSample{{"0", []float64(d)}}, nil
}
