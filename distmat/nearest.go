// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distmat

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// A Neighbour is a sample
// at the minimum distance from another sample.
type Neighbour struct {
	ID   string
	Dist float64
}

// String returns the neighbour
// in the form <id>=<distance>,
// with the distance truncated to an integer.
func (n Neighbour) String() string {
	return fmt.Sprintf("%s=%d", n.ID, int64(n.Dist))
}

// An IntegrityError is returned
// when a sample identifier is found
// in more than one row of the matrix.
type IntegrityError struct {
	ID string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("distance matrix: sample %q found in more than one row", e.ID)
}

// Nearest returns the samples at the minimum distance
// of the given sample.
// The sample itself is excluded,
// as well as empty cells.
// If two or more samples are at the minimum distance,
// all of them are returned,
// in matrix order.
//
// If the sample is not in the matrix,
// it returns an empty list.
// If the sample,
// or any other sample,
// is in more than one row,
// it returns an IntegrityError.
func (m *Matrix) Nearest(id string) ([]Neighbour, error) {
	pos, ok := m.pos[id]
	if !ok {
		return nil, nil
	}
	if len(pos) > 1 {
		return nil, &IntegrityError{ID: id}
	}

	col := mat.Col(nil, pos[0], m.m)
	best := math.Inf(1)
	for i, v := range col {
		if i == pos[0] {
			continue
		}
		if len(m.pos[m.ids[i]]) > 1 {
			return nil, &IntegrityError{ID: m.ids[i]}
		}
		if math.IsNaN(v) {
			continue
		}
		if v < best {
			best = v
		}
	}
	if math.IsInf(best, 1) {
		return nil, nil
	}

	var ns []Neighbour
	for i, v := range col {
		if i == pos[0] {
			continue
		}
		if v == best {
			ns = append(ns, Neighbour{
				ID:   m.ids[i],
				Dist: v,
			})
		}
	}
	return ns, nil
}

// Join returns the neighbours
// as a single string
// using sep as separator.
func Join(ns []Neighbour, sep string) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = n.String()
	}
	return strings.Join(s, sep)
}
