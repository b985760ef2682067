// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/snptree/phylo"
)

// Orientation is the orientation of a line segment.
type Orientation int

// Valid orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// A Segment is a line of a branch of the tree.
type Segment struct {
	Orientation Orientation `json:"orientation"`

	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`

	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Branches returns the line segments
// that draw the branches of a tree,
// in pre-order.
//
// For each node there is a horizontal segment
// from the x coordinate of its parent
// to the x coordinate of the node.
// If the node has descendants,
// then there is also a vertical segment
// that joins its first and last child.
func Branches(t *phylo.Tree, l *Layout, color string, width float64) []Segment {
	segs := make([]Segment, 0, 2*t.NumNodes())

	var draw func(id int, x0 float64)
	draw = func(id int, x0 float64) {
		x := l.X(id)
		y := l.Y(id)
		segs = append(segs, Segment{
			Orientation: Horizontal,
			X0:          x0,
			Y0:          y,
			X1:          x,
			Y1:          y,
			Color:       color,
			Width:       width,
		})

		children := t.Children(id)
		if len(children) == 0 {
			return
		}
		segs = append(segs, Segment{
			Orientation: Vertical,
			X0:          x,
			Y0:          l.Y(children[0]),
			X1:          x,
			Y1:          l.Y(children[len(children)-1]),
			Color:       color,
			Width:       width,
		})
		for _, c := range children {
			draw(c, x)
		}
	}
	root := t.Root()
	draw(root, l.X(root))

	return segs
}

// Path returns the segments as a single SVG path.
// Each segment is a move-to
// followed by a line-to command.
func Path(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M %s %s L %s %s", num(s.X0), num(s.Y0), num(s.X1), num(s.Y1))
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
