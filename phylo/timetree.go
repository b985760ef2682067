// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"io"

	"github.com/js-arias/timetree"
)

// MillionYears is the unit of branch lengths
// of trees imported from time-calibrated trees.
const MillionYears = 1_000_000

// FromTimeTree creates a tree from a time-calibrated tree.
// Branch lengths are the age difference
// between a node and its parent,
// in million years.
func FromTimeTree(tt *timetree.Tree) *Tree {
	t := New(tt.Name())
	t.nodes[t.Root()].taxon = tt.Taxon(tt.Root())
	copyTimeNode(t, tt, tt.Root(), t.Root())
	return t
}

func copyTimeNode(t *Tree, tt *timetree.Tree, src, dst int) {
	for _, c := range tt.Children(src) {
		l := float64(tt.Age(src)-tt.Age(c)) / MillionYears
		if l < 0 {
			l = 0
		}
		id, _ := t.Add(dst, tt.Taxon(c), l)
		copyTimeNode(t, tt, c, id)
	}
}

// ReadTimeTrees reads a collection of time-calibrated trees
// from a TSV file,
// and returns them as trees,
// in the order of the tree names.
func ReadTimeTrees(r io.Reader) ([]*Tree, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}

	names := c.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("timetree: no tree found")
	}
	trees := make([]*Tree, 0, len(names))
	for _, tn := range names {
		trees = append(trees, FromTimeTree(c.Tree(tn)))
	}
	return trees, nil
}
