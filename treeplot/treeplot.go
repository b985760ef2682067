// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treeplot draws a sample tree report
// as a static image.
package treeplot

import (
	"fmt"
	"image/color"

	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/layout"
	"github.com/js-arias/snptree/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Tree is a plot of a tree
// with colored nodes.
type Tree struct {
	nodes  []report.Node
	segs   []layout.Segment
	colors []color.Color
	step   float64

	// LineStyle is the style of the branches.
	LineStyle draw.LineStyle

	// Radius is the radius of the nodes.
	Radius vg.Length
}

// New returns a tree plot from a report,
// using the indicated coloring for the nodes.
func New(r *report.Report, coloring int) (*Tree, error) {
	if coloring < 0 || coloring >= len(r.Colorings) {
		return nil, fmt.Errorf("invalid coloring %d", coloring)
	}

	colors := make([]color.Color, len(r.Nodes))
	for i, tk := range r.Colorings[coloring].Colors {
		c, err := colormap.ParseRGB(tk)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v", i, err)
		}
		colors[i] = c
	}

	ls := plotter.DefaultLineStyle
	if len(r.Segments) > 0 {
		s := r.Segments[0]
		if c, err := colormap.ParseRGB(s.Color); err == nil {
			ls.Color = c
		}
		ls.Width = vg.Length(s.Width)
	}

	return &Tree{
		nodes:     r.Nodes,
		segs:      r.Segments,
		colors:    colors,
		step:      r.Step,
		LineStyle: ls,
		Radius:    vg.Points(3),
	}, nil
}

// DataRange implements the plot.DataRanger interface.
// The y axis is inverted,
// so the first terminal is at the top.
func (t *Tree) DataRange() (xMin, xMax, yMin, yMax float64) {
	for _, n := range t.nodes {
		if n.X > xMax {
			xMax = n.X
		}
		if -n.Y < yMin {
			yMin = -n.Y
		}
	}
	return 0, xMax, yMin - t.step, 0
}

// Plot implements the plot.Plotter interface.
func (t *Tree) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	c.SetLineStyle(t.LineStyle)
	for _, s := range t.segs {
		c.StrokeLine2(t.LineStyle, trX(s.X0), trY(-s.Y0), trX(s.X1), trY(-s.Y1))
	}

	for i, n := range t.nodes {
		pt := vg.Point{X: trX(n.X), Y: trY(-n.Y)}
		c.DrawGlyph(draw.GlyphStyle{
			Color:  t.colors[i],
			Radius: t.Radius,
			Shape:  draw.CircleGlyph{},
		}, pt)
	}
}

// Labels returns the names of the terminals
// as a plotter.
func (t *Tree) Labels() (*plotter.Labels, error) {
	var xys plotter.XYs
	var labels []string
	for _, n := range t.nodes {
		if !n.Term {
			continue
		}
		xys = append(xys, plotter.XY{X: n.X, Y: -n.Y})
		labels = append(labels, n.Name)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys,
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}
	l.Offset = vg.Point{X: 2 * t.Radius, Y: -t.Radius}
	return l, nil
}

// Save draws a report into a file.
// The format of the file
// (for example PNG, SVG, or PDF)
// is set by the file extension.
func Save(r *report.Report, coloring int, name string) error {
	t, err := New(r, coloring)
	if err != nil {
		return err
	}
	labels, err := t.Labels()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = r.Title
	if c := r.Colorings[coloring].Column; c != "" {
		p.Title.Text = fmt.Sprintf("%s [%s]", r.Title, c)
	}
	p.X.Label.Text = "branch length"
	p.HideY()
	p.Add(t, labels)

	height := vg.Length(r.NumTerms()) * vg.Points(14)
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}
	if err := p.Save(8*vg.Inch, height, name); err != nil {
		return err
	}
	return nil
}
