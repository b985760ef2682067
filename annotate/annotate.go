// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotate builds the text
// shown for each node of a tree.
package annotate

import (
	"strings"

	"github.com/js-arias/snptree/sample"
)

// Text returns the annotation of each node.
//
// Nodes are given by their names
// in traversal order,
// and match is the metadata row of each node
// (a negative value for nodes without metadata).
// The annotation of a node with metadata
// is a line with "column: value"
// for each column of the table.
// Otherwise the annotation is the name of the node.
func Text(names []string, tab *sample.Table, match []int) []string {
	cols := tab.Columns()
	txt := make([]string, len(names))
	for i, n := range names {
		r := match[i]
		if r < 0 {
			txt[i] = n
			continue
		}

		row := tab.Row(r)
		var b strings.Builder
		for j, c := range cols {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(c)
			b.WriteString(": ")
			b.WriteString(row[j])
		}
		txt[i] = b.String()
	}
	return txt
}
