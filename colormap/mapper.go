// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"time"
)

// A Mapper assigns colors to nodes.
//
// Nodes are identified by their position
// in the traversal order of the tree,
// and the match slice indicates the metadata row
// of each node
// (a negative value for nodes without metadata).
type Mapper struct {
	// Palette for categories,
	// if nil, Qualitative will be used.
	Palette Palette

	// Key with fixed colors
	// for some categories.
	Key *Key

	// Gradient for dates,
	// if nil, Jet will be used.
	Gradient Gradienter

	// Color for nodes without metadata,
	// if nil, Neutral will be used.
	Neutral color.Color

	// Color for samples without a valid date,
	// if nil, NoDate will be used.
	NoDate color.Color
}

func (m *Mapper) neutral() string {
	if m.Neutral == nil {
		return Token(Neutral)
	}
	return Token(m.Neutral)
}

// Uniform returns the neutral color
// for each node.
func (m *Mapper) Uniform(nodes int) []string {
	n := m.neutral()
	cs := make([]string, nodes)
	for i := range cs {
		cs[i] = n
	}
	return cs
}

// Categorical returns the color of each node
// using the values of a column.
// Each distinct value is assigned a color from the palette
// in sorted order,
// unless the value has a color in the key.
func (m *Mapper) Categorical(column string, vals []string, match []int) []string {
	p := m.Palette
	if len(p) == 0 {
		p = Qualitative
	}
	assign := p.Assign(vals)

	tokens := make(map[string]string, len(assign))
	for v, c := range assign {
		if kc, ok := m.Key.Color(column, v); ok {
			c = kc
		}
		tokens[v] = Token(c)
	}

	n := m.neutral()
	cs := make([]string, len(match))
	for i, r := range match {
		if r < 0 {
			cs[i] = n
			continue
		}
		cs[i] = tokens[vals[r]]
	}
	return cs
}

// Continuous returns the color of each node
// using the dates in a column.
//
// The most recent date is used as the anchor,
// and each date is scaled by its difference in days
// with the anchor,
// divided by the maximum difference,
// so the most recent date is 0,
// and the oldest is 1.
// Scaled values are mapped using the gradient.
// Samples without a valid date
// are colored with the no date color.
func (m *Mapper) Continuous(vals []string, match []int) []string {
	g := m.Gradient
	if g == nil {
		g = Jet{}
	}
	noDate := Token(NoDate)
	if m.NoDate != nil {
		noDate = Token(m.NoDate)
	}

	dates := make([]time.Time, len(vals))
	valid := make([]bool, len(vals))
	var anchor time.Time
	var found bool
	for i, v := range vals {
		d, ok := ParseDate(v)
		if !ok {
			continue
		}
		dates[i] = d
		valid[i] = true
		if !found || d.After(anchor) {
			anchor = d
		}
		found = true
	}

	const day = 24 * time.Hour
	delta := make([]int64, len(vals))
	var maxDelta int64
	for i, d := range dates {
		if !valid[i] {
			continue
		}
		delta[i] = int64(anchor.Sub(d) / day)
		if delta[i] > maxDelta {
			maxDelta = delta[i]
		}
	}
	if maxDelta == 0 {
		maxDelta = 1
	}

	memo := make(map[float64]string)
	row := make([]string, len(vals))
	for i := range vals {
		if !valid[i] {
			row[i] = noDate
			continue
		}
		v := float64(delta[i]) / float64(maxDelta)
		t, ok := memo[v]
		if !ok {
			t = Token(g.Gradient(v))
			memo[v] = t
		}
		row[i] = t
	}

	n := m.neutral()
	cs := make([]string, len(match))
	for i, r := range match {
		if r < 0 {
			cs[i] = n
			continue
		}
		cs[i] = row[r]
	}
	return cs
}
