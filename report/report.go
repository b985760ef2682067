// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report builds the drawing of a sample tree
// together with its metadata
// and the nearest neighbours of each sample.
//
// A report can be written as a JSON bundle,
// an SVG image,
// or a self-contained HTML page.
package report

import (
	"fmt"

	"github.com/js-arias/snptree/annotate"
	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/layout"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/reconcile"
	"github.com/js-arias/snptree/sample"
)

// NearestColumn is the name of the metadata column
// with the nearest neighbours of each sample.
const NearestColumn = "Nearest_neighbour"

// Ladderize values.
const (
	Ascending  = "asc"
	Descending = "desc"
	None       = "none"
)

// Param are the parameters used to build a report.
type Param struct {
	// Title of the report,
	// if empty, the tree name will be used.
	Title string

	// Ignore is the set of terminals
	// that are not checked in the metadata
	// and the distance matrix.
	Ignore map[string]bool

	// Outgroup is the terminal used to root the tree.
	// If empty, the tree is used as is.
	Outgroup string

	// Ladder is the way in which the tree is ladderized:
	// "asc" (the default), "desc", or "none".
	Ladder string

	// Step is the vertical distance between terminals.
	// If zero, 1 will be used.
	Step float64

	// LineColor and LineWidth are the style
	// of the tree branches.
	LineColor string
	LineWidth float64

	// Mapper is used to set the colors of the nodes,
	// if nil, the default mapper will be used.
	Mapper *colormap.Mapper

	// Policy is the policy to select
	// the columns used to color the nodes.
	Policy colormap.Policy

	// CPU is the number of process
	// used to search the nearest neighbours.
	// If zero, all available CPU will be used.
	CPU int
}

// A Node is a node of the drawn tree.
type Node struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Term bool    `json:"terminal"`
}

// A Report is the drawing of a sample tree.
type Report struct {
	Title string
	Tree  string
	Step  float64

	// Nodes in traversal order.
	Nodes []Node

	Segments []layout.Segment
	Path     string

	// Colorings of the nodes,
	// the first one is the default coloring.
	Colorings []colormap.Coloring

	// Annotations of each node.
	Annotations []string

	// Table is the metadata
	// of the samples in the tree.
	Table *sample.Table

	// Nearest neighbours of each sample.
	Nearest map[string][]distmat.Neighbour

	Matrix *distmat.Matrix

	// Allowed are the terminals that were not checked.
	Allowed []string

	// Dropped are the metadata rows
	// of samples not in the tree.
	Dropped []string
}

// Build builds a report from a tree,
// a metadata table,
// and a distance matrix.
//
// It returns an error if a terminal of the tree
// is not found in the metadata or in the distance matrix,
// or if a sample is repeated in the distance matrix.
// The input tree is not modified.
func Build(t *phylo.Tree, tab *sample.Table, m *distmat.Matrix, p Param) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t = t.Clone()
	if p.Outgroup != "" {
		if err := t.Reroot(p.Outgroup); err != nil {
			return nil, err
		}
	}
	switch p.Ladder {
	case "", Ascending:
		t.Ladderize(false)
	case Descending:
		t.Ladderize(true)
	case None:
	default:
		return nil, fmt.Errorf("unknown ladderize value %q", p.Ladder)
	}

	res, err := reconcile.Check(t.Terms(), tab, m, p.Ignore)
	if err != nil {
		return nil, err
	}

	ids := res.Table.IDs()
	all, err := m.NearestAll(ids, p.CPU)
	if err != nil {
		return nil, err
	}
	nearest := make(map[string][]distmat.Neighbour, len(ids))
	joined := make(map[string]string, len(ids))
	for i, id := range ids {
		nearest[id] = all[i]
		joined[id] = distmat.Join(all[i], ", ")
	}
	meta := res.Table.WithColumn(NearestColumn, joined)

	step := p.Step
	if step <= 0 {
		step = 1
	}
	lc := p.LineColor
	if lc == "" {
		lc = "rgb(25,25,25)"
	}
	lw := p.LineWidth
	if lw <= 0 {
		lw = 1
	}
	l := layout.New(t, step)
	segs := layout.Branches(t, l, lc, lw)

	nodeIDs := t.Nodes()
	nodes := make([]Node, len(nodeIDs))
	names := make([]string, len(nodeIDs))
	for i, id := range nodeIDs {
		names[i] = t.Taxon(id)
		nodes[i] = Node{
			Name: t.Taxon(id),
			X:    l.X(id),
			Y:    l.Y(id),
			Term: t.IsTerm(id),
		}
	}
	match := meta.MatchAll(names)

	mp := p.Mapper
	if mp == nil {
		mp = &colormap.Mapper{}
	}

	title := p.Title
	if title == "" {
		title = t.Name()
	}

	return &Report{
		Title:       title,
		Tree:        t.Name(),
		Step:        step,
		Nodes:       nodes,
		Segments:    segs,
		Path:        layout.Path(segs),
		Colorings:   mp.Colorings(meta, match, p.Policy),
		Annotations: annotate.Text(names, meta, match),
		Table:       meta,
		Nearest:     nearest,
		Matrix:      m,
		Allowed:     res.Allowed,
		Dropped:     res.Dropped,
	}, nil
}

// NumTerms returns the number of terminals
// in the report tree.
func (r *Report) NumTerms() int {
	var n int
	for _, nd := range r.Nodes {
		if nd.Term {
			n++
		}
	}
	return n
}
