// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylo implements rooted phylogenetic trees
// with branch lengths,
// as used to draw sample trees.
//
// A tree is stored as an arena of nodes
// identified by an integer ID,
// in which each node owns an ordered list
// of its children.
// The root node always has ID 0.
package phylo

import (
	"fmt"
	"math"
	"slices"
)

// A Tree is a rooted, ordered, phylogenetic tree.
type Tree struct {
	name  string
	nodes []node
}

type node struct {
	taxon    string
	length   float64
	children []int
}

// New creates a new tree
// with a single (root) node.
func New(name string) *Tree {
	return &Tree{
		name:  name,
		nodes: []node{{}},
	}
}

// Add adds a new node as the last child
// of the indicated parent node.
// It returns the ID of the new node.
func (t *Tree) Add(parent int, taxon string, length float64) (int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return -1, fmt.Errorf("invalid parent node %d", parent)
	}
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return -1, fmt.Errorf("node %q: invalid branch length %v", taxon, length)
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		taxon:  taxon,
		length: length,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id, nil
}

// Children returns the IDs of the children of a node,
// in order.
func (t *Tree) Children(id int) []int {
	return slices.Clone(t.nodes[id].children)
}

// Clone returns a copy of the tree.
func (t *Tree) Clone() *Tree {
	nt := &Tree{
		name:  t.name,
		nodes: make([]node, len(t.nodes)),
	}
	for i, n := range t.nodes {
		nt.nodes[i] = node{
			taxon:    n.taxon,
			length:   n.length,
			children: slices.Clone(n.children),
		}
	}
	return nt
}

// IsTerm returns true if the node is a terminal
// (i.e., a leaf).
func (t *Tree) IsTerm(id int) bool {
	return len(t.nodes[id].children) == 0
}

// Len returns the length of the branch
// that connects a node to its parent.
func (t *Tree) Len(id int) float64 {
	return t.nodes[id].length
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Nodes returns the IDs of the nodes of the tree
// in pre-order
// (a node is always visited before its descendants,
// and children are visited in order).
func (t *Tree) Nodes() []int {
	nodes := make([]int, 0, len(t.nodes))
	stack := []int{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, id)

		children := t.nodes[id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nodes
}

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumTerms returns the number of terminals
// descendant from a node.
func (t *Tree) NumTerms(id int) int {
	children := t.nodes[id].children
	if len(children) == 0 {
		return 1
	}
	var n int
	for _, c := range children {
		n += t.NumTerms(c)
	}
	return n
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return 0
}

// SetName sets the name of the tree.
func (t *Tree) SetName(name string) {
	t.name = name
}

// Taxon returns the name of a node.
// Most internal nodes are unnamed.
func (t *Tree) Taxon(id int) string {
	return t.nodes[id].taxon
}

// Terms returns the names of the terminals
// in pre-order.
func (t *Tree) Terms() []string {
	var terms []string
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			continue
		}
		terms = append(terms, t.nodes[id].taxon)
	}
	return terms
}

// Ladderize sorts the children of each node
// by the number of terminals in their subtrees,
// from the smallest to the largest.
// If desc is true,
// the largest subtrees are placed first.
// Ties keep their previous order.
func (t *Tree) Ladderize(desc bool) {
	size := make([]int, len(t.nodes))
	var count func(id int) int
	count = func(id int) int {
		children := t.nodes[id].children
		if len(children) == 0 {
			size[id] = 1
			return 1
		}
		var n int
		for _, c := range children {
			n += count(c)
		}
		size[id] = n
		return n
	}
	count(t.Root())

	for i := range t.nodes {
		slices.SortStableFunc(t.nodes[i].children, func(a, b int) int {
			if desc {
				return size[b] - size[a]
			}
			return size[a] - size[b]
		})
	}
}

// Validate returns an error if a terminal is unnamed
// or if a terminal name is repeated.
func (t *Tree) Validate() error {
	names := make(map[string]bool)
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			continue
		}
		tax := t.nodes[id].taxon
		if tax == "" {
			return fmt.Errorf("tree %q: terminal node %d without name", t.name, id)
		}
		if names[tax] {
			return fmt.Errorf("tree %q: terminal %q repeated", t.name, tax)
		}
		names[tax] = true
	}
	return nil
}
