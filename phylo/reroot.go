// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"slices"
)

// Reroot roots the tree at the branch of the indicated terminal.
//
// The new root has two children:
// the rest of the tree,
// with the path from the outgroup to the old root reversed,
// and the outgroup itself,
// with a branch length of zero.
// If the old root is left with a single descendant,
// it is removed,
// and its branch is merged
// with the branch of its descendant.
func (t *Tree) Reroot(outgroup string) error {
	out := -1
	for id, n := range t.nodes {
		if len(n.children) == 0 && n.taxon == outgroup {
			out = id
			break
		}
	}
	if out < 0 {
		return fmt.Errorf("tree %q: outgroup %q not found", t.name, outgroup)
	}
	if out == t.Root() {
		return nil
	}

	path := t.path(out)
	k := len(path) - 1

	ch := make([][]int, len(t.nodes), len(t.nodes)+1)
	ln := make([]float64, len(t.nodes), len(t.nodes)+1)
	for i, n := range t.nodes {
		ch[i] = slices.Clone(n.children)
		ln[i] = n.length
	}

	root := len(ch)
	ch = append(ch, []int{out})
	ln = append(ln, 0)

	prev := ln[out]
	ln[out] = 0

	np := root
	if k > 1 {
		p := path[k-1]
		ch[p] = remove(ch[p], out)
		prev, ln[p] = ln[p], prev
		ch[root] = slices.Insert(ch[root], 0, p)
		np = p
	}
	for i := k - 2; i >= 1; i-- {
		p := path[i]
		ch[p] = remove(ch[p], np)
		prev, ln[p] = ln[p], prev
		ch[np] = slices.Insert(ch[np], 0, p)
		np = p
	}

	old := path[0]
	if k == 1 {
		ch[old] = remove(ch[old], out)
	} else {
		ch[old] = remove(ch[old], np)
	}
	if len(ch[old]) == 1 {
		in := ch[old][0]
		ln[in] += prev
		ch[np] = slices.Insert(ch[np], 0, in)
	} else {
		ln[old] = prev
		ch[np] = slices.Insert(ch[np], 0, old)
	}

	taxa := make([]string, len(ch))
	for i, n := range t.nodes {
		taxa[i] = n.taxon
	}
	t.rebuild(root, taxa, ln, ch)
	return nil
}

// Path returns the node IDs from the root to the indicated node.
func (t *Tree) path(id int) []int {
	var path []int
	var find func(n int) bool
	find = func(n int) bool {
		path = append(path, n)
		if n == id {
			return true
		}
		for _, c := range t.nodes[n].children {
			if find(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	find(t.Root())
	return path
}

// Rebuild replaces the nodes of the tree
// with the nodes reachable from root,
// numbered in pre-order.
func (t *Tree) rebuild(root int, taxa []string, ln []float64, ch [][]int) {
	nodes := make([]node, 0, len(t.nodes))
	var add func(src, parent int)
	add = func(src, parent int) {
		id := len(nodes)
		nodes = append(nodes, node{
			taxon:  taxa[src],
			length: ln[src],
		})
		if parent >= 0 {
			nodes[parent].children = append(nodes[parent].children, id)
		}
		for _, c := range ch[src] {
			add(c, id)
		}
	}
	add(root, -1)
	nodes[0].length = 0
	t.nodes = nodes
}

func remove(ids []int, id int) []int {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}
