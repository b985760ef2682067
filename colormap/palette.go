// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"slices"
)

// MaxCategories is the default maximum number of categories
// of a column colored by categories.
const MaxCategories = 48

// A Palette is a list of colors
// for categorical values.
type Palette []color.RGBA

// Qualitative is a palette of 48 distinct colors,
// made of the "Dark24" and "Light24" qualitative color sets
// of Plotly.
var Qualitative Palette

func init() {
	hex := []string{
		// Dark24
		"#2E91E5", "#E15F99", "#1CA71C", "#FB0D0D", "#DA16FF", "#222A2A",
		"#B68100", "#750D86", "#EB663B", "#511CFB", "#00A08B", "#FB00D1",
		"#FC0080", "#B2828D", "#6C7C32", "#778AAE", "#862A16", "#A777F1",
		"#620042", "#1616A7", "#DA60CA", "#6C4516", "#0D2A63", "#AF0038",

		// Light24
		"#FD3216", "#00FE35", "#6A76FC", "#FED4C4", "#FE00CE", "#0DF9FF",
		"#F6F926", "#FF9616", "#479B55", "#EEA6FB", "#DC587D", "#D626FF",
		"#6E899C", "#00B5F7", "#B68E00", "#C9FBE5", "#FF0092", "#22FFA7",
		"#E3EE9E", "#86CE00", "#BC7196", "#7E7DCD", "#FC6955", "#E48F72",
	}
	Qualitative = make(Palette, len(hex))
	for i, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		Qualitative[i] = c
	}
}

// Categories returns the sorted distinct values
// of a column.
func Categories(vals []string) []string {
	cats := slices.Clone(vals)
	slices.Sort(cats)
	return slices.Compact(cats)
}

// Assign returns the color of each distinct value,
// assigned in sorted order.
// If there are more values than colors,
// the colors are reused.
func (p Palette) Assign(vals []string) map[string]color.Color {
	cats := Categories(vals)
	cs := make(map[string]color.Color, len(cats))
	for i, c := range cats {
		cs[c] = p[i%len(p)]
	}
	return cs
}
