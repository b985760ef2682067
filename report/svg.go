// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/snptree/layout"
)

// SVG drawing sizes,
// in pixels.
const (
	yStep     = 12
	treeWidth = 600
	margin    = 10
	radius    = 4
)

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type svgScale struct {
	x float64
	y float64
}

func (r *Report) scale() svgScale {
	var maxX float64
	for _, n := range r.Nodes {
		if n.X > maxX {
			maxX = n.X
		}
	}
	s := svgScale{
		x: treeWidth,
		y: yStep / r.Step,
	}
	if maxX > 0 {
		s.x = treeWidth / maxX
	}
	return s
}

func (s svgScale) point(x, y float64) (float64, float64) {
	return margin + x*s.x, margin + y*s.y
}

// SVG writes the report tree as an SVG image,
// using the default coloring for the nodes.
// Each node has a title
// with its annotation.
func (r *Report) SVG(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	return r.svg(w)
}

func (r *Report) svg(w io.Writer) error {
	s := r.scale()

	var taxSz int
	for _, n := range r.Nodes {
		if n.Term && len(n.Name) > taxSz {
			taxSz = len(n.Name)
		}
	}
	height := margin*2 + (r.NumTerms()+1)*yStep
	// assume that each character has 6 pixels wide
	width := margin*3 + treeWidth + taxSz*6

	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(height)},
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(width)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	segs := make([]layout.Segment, len(r.Segments))
	lc, lw := "black", 1.0
	for i, sg := range r.Segments {
		sg.X0, sg.Y0 = s.point(sg.X0, sg.Y0)
		sg.X1, sg.Y1 = s.point(sg.X1, sg.Y1)
		segs[i] = sg
		lc, lw = sg.Color, sg.Width
	}

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: strconv.FormatFloat(lw, 'f', -1, 64)},
			{Name: xml.Name{Local: "stroke"}, Value: lc},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "fill"}, Value: "none"},
		},
	}
	e.EncodeToken(g)
	path := xml.StartElement{
		Name: xml.Name{Local: "path"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "d"}, Value: layout.Path(segs)},
		},
	}
	e.EncodeToken(path)
	e.EncodeToken(path.End())
	e.EncodeToken(g.End())

	var colors []string
	if len(r.Colorings) > 0 {
		colors = r.Colorings[0].Colors
	}
	nodes := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(nodes)
	for i, n := range r.Nodes {
		x, y := s.point(n.X, n.Y)
		fill := "black"
		if i < len(colors) {
			fill = colors[i]
		}
		c := xml.StartElement{
			Name: xml.Name{Local: "circle"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "id"}, Value: "node-" + strconv.Itoa(i)},
				{Name: xml.Name{Local: "class"}, Value: "node"},
				{Name: xml.Name{Local: "cx"}, Value: px(x)},
				{Name: xml.Name{Local: "cy"}, Value: px(y)},
				{Name: xml.Name{Local: "r"}, Value: strconv.Itoa(radius)},
				{Name: xml.Name{Local: "fill"}, Value: fill},
			},
		}
		e.EncodeToken(c)
		title := xml.StartElement{Name: xml.Name{Local: "title"}}
		e.EncodeToken(title)
		e.EncodeToken(xml.CharData(r.Annotations[i]))
		e.EncodeToken(title.End())
		e.EncodeToken(c.End())

		if !n.Term {
			continue
		}
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: px(x + 2*radius)},
				{Name: xml.Name{Local: "y"}, Value: px(y + radius)},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.Name))
		e.EncodeToken(tx.End())
	}
	e.EncodeToken(nodes.End())

	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}
