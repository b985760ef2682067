// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements a table of sample metadata.
//
// A metadata table is a set of rows,
// each one with a value for each column.
// One of the columns is the identity column,
// and its values are the sample identifiers
// used to join the table with trees
// and distance matrices.
package sample

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/js-arias/snptree/delim"
)

// A Table is a table of sample metadata.
type Table struct {
	cols []string
	id   int

	rows [][]string

	// index of identifiers
	index map[string]int
}

// New creates a new empty table
// with the indicated columns.
// The identity column is idCol.
// If idCol is empty,
// the first column will be used as the identity column.
func New(cols []string, idCol string) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.New("table without columns")
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			return nil, fmt.Errorf("column %q repeated", c)
		}
		seen[c] = true
	}

	id := 0
	if idCol != "" {
		id = slices.Index(cols, idCol)
		if id < 0 {
			return nil, fmt.Errorf("identity column %q not found", idCol)
		}
	}

	return &Table{
		cols:  slices.Clone(cols),
		id:    id,
		index: make(map[string]int),
	}, nil
}

// Add adds a new row to the table.
// The row must have a value for each column,
// and the identifier must be unique and not empty.
func (t *Table) Add(row []string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("got %d values, want %d", len(row), len(t.cols))
	}
	id := row[t.id]
	if id == "" {
		return fmt.Errorf("empty value for identity column %q", t.cols[t.id])
	}
	if _, dup := t.index[id]; dup {
		return fmt.Errorf("sample %q repeated", id)
	}

	t.index[id] = len(t.rows)
	t.rows = append(t.rows, slices.Clone(row))
	return nil
}

// Column returns the values of a column,
// in row order.
func (t *Table) Column(name string) []string {
	c := slices.Index(t.cols, name)
	if c < 0 {
		return nil
	}
	vs := make([]string, len(t.rows))
	for i, r := range t.rows {
		vs[i] = r[c]
	}
	return vs
}

// Columns returns the column names of the table.
func (t *Table) Columns() []string {
	return slices.Clone(t.cols)
}

// Has returns true if an identifier
// is in the table.
func (t *Table) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// IDColumn returns the name of the identity column.
func (t *Table) IDColumn() string {
	return t.cols[t.id]
}

// IDs returns the sample identifiers,
// in row order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r[t.id]
	}
	return ids
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the values of a row.
func (t *Table) Row(row int) []string {
	return slices.Clone(t.rows[row])
}

// Value returns the value of a column
// for a given sample.
func (t *Table) Value(id, col string) string {
	r, ok := t.index[id]
	if !ok {
		return ""
	}
	c := slices.Index(t.cols, col)
	if c < 0 {
		return ""
	}
	return t.rows[r][c]
}

// Keep returns a new table
// with only the rows accepted by the keep function.
func (t *Table) Keep(keep func(id string) bool) *Table {
	nt := &Table{
		cols:  slices.Clone(t.cols),
		id:    t.id,
		index: make(map[string]int),
	}
	for _, r := range t.rows {
		if !keep(r[t.id]) {
			continue
		}
		nt.index[r[t.id]] = len(nt.rows)
		nt.rows = append(nt.rows, slices.Clone(r))
	}
	return nt
}

// WithColumn returns a new table
// with an additional column at the end.
// The values of the column are taken from vals,
// using the sample identifier as key.
// If the column already exists,
// its values will be replaced.
func (t *Table) WithColumn(name string, vals map[string]string) *Table {
	nt := &Table{
		cols:  slices.Clone(t.cols),
		id:    t.id,
		index: make(map[string]int, len(t.index)),
	}
	c := slices.Index(nt.cols, name)
	if c < 0 {
		c = len(nt.cols)
		nt.cols = append(nt.cols, name)
	}
	for i, r := range t.rows {
		nr := make([]string, len(nt.cols))
		copy(nr, r)
		nr[c] = vals[r[t.id]]
		nt.rows = append(nt.rows, nr)
		nt.index[r[t.id]] = i
	}
	return nt
}

// Match returns the row that matches a node name.
// A name matches a row if it is equal to the row identifier,
// or, if there is no such row,
// if the identifier is a prefix of the name
// (a node name might carry a suffix).
// If more than one identifier is a prefix of the name,
// the longest one is used.
func (t *Table) Match(name string) (int, bool) {
	if name == "" {
		return -1, false
	}
	if r, ok := t.index[name]; ok {
		return r, true
	}

	// a prefix always ends at a rune boundary
	for i := len(name) - 1; i > 0; i-- {
		if !utf8.RuneStart(name[i]) {
			continue
		}
		if r, ok := t.index[name[:i]]; ok {
			return r, true
		}
	}
	return -1, false
}

// MatchAll returns the matching row of each name,
// or -1 if the name has no match.
func (t *Table) MatchAll(names []string) []int {
	rows := make([]int, len(names))
	for i, n := range names {
		r, ok := t.Match(n)
		if !ok {
			r = -1
		}
		rows[i] = r
	}
	return rows
}

// Read reads a metadata table from a delimited text file.
// The delimiter (tab, comma, or semicolon)
// is detected from the header.
// The first non-comment line is the header
// with the column names.
// If idCol is empty,
// the first column will be used as the identity column.
//
// Here is an example file:
//
//	id,country,collection_date
//	S1,Chile,2021-03-01
//	S2,Peru,2020-11-15
func Read(r io.Reader, idCol string) (*Table, error) {
	tab, err := delim.NewReader(r)
	if err != nil {
		return nil, err
	}
	tab.TrimLeadingSpace = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	for i, h := range head {
		head[i] = strings.TrimSpace(h)
	}
	t, err := New(head, idCol)
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		empty := true
		for i, v := range row {
			row[i] = strings.TrimSpace(v)
			if row[i] != "" {
				empty = false
			}
		}
		if empty {
			// spreadsheet filler
			continue
		}
		if err := t.Add(row); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return t, nil
}
