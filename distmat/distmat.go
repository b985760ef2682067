// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package distmat implements a square matrix
// of pairwise distances between samples,
// usually the number of SNP differences.
package distmat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/snptree/delim"
	"gonum.org/v1/gonum/mat"
)

// A Matrix is a square matrix of distances.
// Rows and columns have the same sample identifiers
// in the same order.
type Matrix struct {
	ids []string

	// positions of each identifier.
	// An identifier with more than one position
	// is an integrity error.
	pos map[string][]int

	m *mat.Dense
}

// New creates a new matrix with the indicated identifiers.
// All distances are set to zero.
func New(ids []string) (*Matrix, error) {
	if len(ids) == 0 {
		return nil, errors.New("empty distance matrix")
	}

	m := &Matrix{
		ids: slices.Clone(ids),
		pos: make(map[string][]int, len(ids)),
		m:   mat.NewDense(len(ids), len(ids), nil),
	}
	for i, id := range ids {
		m.pos[id] = append(m.pos[id], i)
	}
	return m, nil
}

// At returns the value at a given cell.
func (m *Matrix) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Dist returns the distance between two samples.
// If one of the samples is not in the matrix,
// it returns false.
func (m *Matrix) Dist(a, b string) (float64, bool) {
	pa, ok := m.pos[a]
	if !ok {
		return 0, false
	}
	pb, ok := m.pos[b]
	if !ok {
		return 0, false
	}
	return m.m.At(pa[0], pb[0]), true
}

// Has returns true if a sample is in the matrix.
func (m *Matrix) Has(id string) bool {
	_, ok := m.pos[id]
	return ok
}

// IDs returns the sample identifiers of the matrix,
// in row order.
func (m *Matrix) IDs() []string {
	return slices.Clone(m.ids)
}

// Len returns the number of rows of the matrix.
func (m *Matrix) Len() int {
	return len(m.ids)
}

// Pairs returns the distances of each pair of different rows
// (i.e., the cells above the diagonal),
// ignoring empty cells.
func (m *Matrix) Pairs() []float64 {
	var d []float64
	for i := range m.ids {
		for j := i + 1; j < len(m.ids); j++ {
			v := m.m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			d = append(d, v)
		}
	}
	return d
}

// Set sets the value of a given cell.
func (m *Matrix) Set(row, col int, v float64) {
	m.m.Set(row, col, v)
}

// Read reads a distance matrix from a delimited text file.
// The delimiter (tab, comma, or semicolon)
// is detected from the header.
//
// The first row is the header,
// with the sample identifiers of the columns
// (the first field is ignored).
// In each row,
// the first field is the sample identifier
// and the rest are the distances.
// Rows must be in the same order as columns.
// Empty cells,
// or cells with "NA" or "NaN",
// are read as NaN.
//
// Here is an example file:
//
//	snp-dists 0.8.2	A	B	C
//	A	0	3	9
//	B	3	0	6
//	C	9	6	0
func Read(r io.Reader) (*Matrix, error) {
	tab, err := delim.NewReader(r)
	if err != nil {
		return nil, err
	}

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	if len(head) < 2 {
		return nil, errors.New("header: empty distance matrix")
	}
	ids := make([]string, 0, len(head)-1)
	for _, h := range head[1:] {
		ids = append(ids, strings.TrimSpace(h))
	}

	m, err := New(ids)
	if err != nil {
		return nil, err
	}

	var i int
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if i >= len(ids) {
			return nil, fmt.Errorf("on row %d: more rows than columns", ln)
		}
		id := strings.TrimSpace(row[0])
		if id != ids[i] {
			return nil, fmt.Errorf("on row %d: got sample %q, want %q", ln, id, ids[i])
		}

		for j, f := range row[1:] {
			v, err := parseCell(f)
			if err != nil {
				return nil, fmt.Errorf("on row %d: column %q: %v", ln, ids[j], err)
			}
			m.m.Set(i, j, v)
		}
		i++
	}
	if i < len(ids) {
		return nil, fmt.Errorf("got %d rows, want %d", i, len(ids))
	}
	return m, nil
}

func parseCell(f string) (float64, error) {
	f = strings.TrimSpace(f)
	if f == "" || strings.EqualFold(f, "na") || strings.EqualFold(f, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(f, 64)
}

// MarshalJSON implements the json.Marshaler interface.
// The matrix is stored in split form:
// the index is stored once,
// and the data is stored as an array of rows.
// Empty cells are stored as null.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	type split struct {
		Index []string     `json:"index"`
		Data  [][]*float64 `json:"data"`
	}

	s := split{
		Index: m.ids,
		Data:  make([][]*float64, len(m.ids)),
	}
	for i := range m.ids {
		row := make([]*float64, len(m.ids))
		for j := range m.ids {
			v := m.m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			row[j] = &v
		}
		s.Data[i] = row
	}
	return json.Marshal(s)
}
