// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strings"

	"github.com/js-arias/snptree/sample"
)

// Mode is the way in which a column is colored.
type Mode int

// Valid modes.
const (
	Categorical Mode = iota
	Continuous
)

func (m Mode) String() string {
	switch m {
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// A Coloring is the color of each node of a tree,
// in traversal order,
// for a metadata column.
type Coloring struct {
	// Column is the name of the column.
	// It is empty for a default coloring
	// without a column.
	Column string `json:"column"`

	// Default is true for the default coloring.
	Default bool `json:"default,omitempty"`

	Mode   Mode     `json:"mode"`
	Colors []string `json:"colors"`
}

// A Policy defines the columns
// that can be used to color the nodes.
type Policy struct {
	// DateMark is the text
	// that identifies a column with dates.
	// The comparison is case insensitive.
	// If empty, "date" will be used.
	DateMark string

	// MaxCategories is the maximum number of categories
	// of a selectable column.
	// If zero, MaxCategories will be used.
	MaxCategories int
}

// IsDate returns true if a column
// is a date column.
func (p Policy) IsDate(column string) bool {
	mark := p.DateMark
	if mark == "" {
		mark = "date"
	}
	return strings.Contains(strings.ToLower(column), strings.ToLower(mark))
}

// Selectable returns true if a column can be used
// to color the nodes.
// Date columns are always selectable.
// Any other column is selectable
// if it has at most the maximum number of categories.
func (p Policy) Selectable(column string, vals []string) bool {
	if p.IsDate(column) {
		return true
	}
	limit := p.MaxCategories
	if limit <= 0 {
		limit = MaxCategories
	}
	return len(Categories(vals)) <= limit
}

// Default returns the default column
// used to color the nodes.
// It is the first column,
// other than the identity column,
// with at most the maximum number of categories.
// Date columns are not considered.
// It returns false if there is no valid column.
func (p Policy) Default(tab *sample.Table) (string, bool) {
	for _, c := range tab.Columns() {
		if c == tab.IDColumn() || p.IsDate(c) {
			continue
		}
		if p.Selectable(c, tab.Column(c)) {
			return c, true
		}
	}
	return "", false
}

// Colorings returns the colorings of the nodes
// for each selectable column of a table.
// The first coloring is the default coloring.
// If no column is valid for the default coloring,
// all nodes in the default coloring
// will have the neutral color.
func (m *Mapper) Colorings(tab *sample.Table, match []int, p Policy) []Coloring {
	var cs []Coloring

	if c, ok := p.Default(tab); ok {
		cs = append(cs, Coloring{
			Column:  c,
			Default: true,
			Mode:    Categorical,
			Colors:  m.Categorical(c, tab.Column(c), match),
		})
	} else {
		cs = append(cs, Coloring{
			Default: true,
			Mode:    Categorical,
			Colors:  m.Uniform(len(match)),
		})
	}

	for _, c := range tab.Columns() {
		vals := tab.Column(c)
		if !p.Selectable(c, vals) {
			continue
		}
		if p.IsDate(c) {
			cs = append(cs, Coloring{
				Column: c,
				Mode:   Continuous,
				Colors: m.Continuous(vals, match),
			})
			continue
		}
		cs = append(cs, Coloring{
			Column: c,
			Mode:   Categorical,
			Colors: m.Categorical(c, vals, match),
		})
	}
	return cs
}
