// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io"

	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/layout"
)

type bundle struct {
	Title       string                    `json:"title"`
	Tree        string                    `json:"tree"`
	Nodes       []Node                    `json:"nodes"`
	Segments    []layout.Segment          `json:"segments"`
	Path        string                    `json:"path"`
	Colorings   []colormap.Coloring       `json:"colorings"`
	Annotations []string                  `json:"annotations"`
	Metadata    map[string]map[string]any `json:"metadata"`
	Distances   *distmat.Matrix           `json:"distances"`
	Allowed     []string                  `json:"allowed,omitempty"`
	Dropped     []string                  `json:"dropped,omitempty"`
}

func (r *Report) bundle() bundle {
	meta := make(map[string]map[string]any, r.Table.Len())
	cols := r.Table.Columns()
	for i, id := range r.Table.IDs() {
		row := r.Table.Row(i)
		rec := make(map[string]any, len(cols))
		for j, c := range cols {
			if c == NearestColumn {
				ns := make([]string, 0, len(r.Nearest[id]))
				for _, n := range r.Nearest[id] {
					ns = append(ns, n.String())
				}
				rec[c] = ns
				continue
			}
			rec[c] = row[j]
		}
		meta[id] = rec
	}

	return bundle{
		Title:       r.Title,
		Tree:        r.Tree,
		Nodes:       r.Nodes,
		Segments:    r.Segments,
		Path:        r.Path,
		Colorings:   r.Colorings,
		Annotations: r.Annotations,
		Metadata:    meta,
		Distances:   r.Matrix,
		Allowed:     r.Allowed,
		Dropped:     r.Dropped,
	}
}

// JSON writes the report as a JSON bundle.
//
// The metadata is stored as an object
// keyed by sample identifier,
// and the distance matrix is stored in split form.
func (r *Report) JSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(r.bundle())
}
