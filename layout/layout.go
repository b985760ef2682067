// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements the coordinates
// and the branch lines
// of a rectangular tree drawing.
//
// The x coordinate of a node is its depth
// (the sum of branch lengths from the root),
// and the y coordinate is its vertical position:
// terminals are evenly spaced,
// and each internal node is placed in the middle
// of its first and last child.
package layout

import (
	"github.com/js-arias/snptree/phylo"
)

// A Layout stores the coordinates of the nodes of a tree.
type Layout struct {
	x []float64
	y []float64
}

// New returns the layout of a tree,
// using step as the vertical distance
// between two consecutive terminals.
func New(t *phylo.Tree, step float64) *Layout {
	return &Layout{
		x: XCoords(t),
		y: YCoords(t, step),
	}
}

// X returns the x coordinate of a node.
func (l *Layout) X(id int) float64 {
	return l.x[id]
}

// Y returns the y coordinate of a node.
func (l *Layout) Y(id int) float64 {
	return l.y[id]
}

// XCoords returns the x coordinate of each node,
// indexed by node ID.
// The x coordinate is the sum of the branch lengths
// from the root to the node.
// If all nodes have the same depth as the root
// (i.e., the tree has no branch lengths),
// each branch will have a length of one.
func XCoords(t *phylo.Tree) []float64 {
	x := make([]float64, t.NumNodes())
	unit := make([]float64, t.NumNodes())

	type depth struct {
		id      int
		x, unit float64
	}
	stack := []depth{{id: t.Root()}}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x[d.id] = d.x
		unit[d.id] = d.unit
		for _, c := range t.Children(d.id) {
			stack = append(stack, depth{
				id:   c,
				x:    d.x + t.Len(c),
				unit: d.unit + 1,
			})
		}
	}

	root := x[t.Root()]
	for _, v := range x {
		if v != root {
			return x
		}
	}
	return unit
}

// YCoords returns the y coordinate of each node,
// indexed by node ID.
// Terminals are placed step units apart,
// in the order in which they are found in the tree,
// starting at step.
// Internal nodes are placed in the middle
// of their first and last child.
func YCoords(t *phylo.Tree, step float64) []float64 {
	y := make([]float64, t.NumNodes())
	known := make([]bool, t.NumNodes())

	var term int
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			continue
		}
		term++
		y[id] = float64(term) * step
		known[id] = true
	}

	var calc func(id int)
	calc = func(id int) {
		children := t.Children(id)
		for _, c := range children {
			if !known[c] {
				calc(c)
			}
		}
		y[id] = (y[children[0]] + y[children[len(children)-1]]) / 2
		known[id] = true
	}
	if !known[t.Root()] {
		calc(t.Root())
	}
	return y
}
