// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colormap assigns colors to the nodes of a tree
// from the values of a metadata column.
//
// A column can be colored by categories,
// in which each distinct value has its own color,
// or continuously,
// in which dates are mapped into a color gradient.
//
// Colors are returned as CSS color tokens
// of the form "rgb(r,g,b)".
package colormap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Default colors.
var (
	// Neutral is the default color
	// for nodes without metadata.
	Neutral = color.RGBA{100, 100, 100, 255}

	// NoDate is the color for samples
	// without a valid date.
	NoDate = color.RGBA{0, 0, 0, 255}
)

// Token returns a color as a CSS color token.
func Token(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

// ParseRGB parses a color
// defined as three comma-separated values,
// for example "125,132,148",
// optionally enclosed in "rgb(" and ")".
func ParseRGB(s string) (color.RGBA, error) {
	v := strings.TrimSpace(s)
	if p, ok := strings.CutPrefix(strings.ToLower(v), "rgb("); ok {
		v, ok = strings.CutSuffix(p, ")")
		if !ok {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}

	val := strings.Split(v, ",")
	if len(val) != 3 {
		return color.RGBA{}, fmt.Errorf("color %q: found %d values, want 3", s, len(val))
	}
	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		c, err := strconv.Atoi(strings.TrimSpace(val[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q [%s value]: %v", s, name, err)
		}
		if c < 0 || c > 255 {
			return color.RGBA{}, fmt.Errorf("color %q [%s value]: invalid value %d", s, name, c)
		}
		rgb[i] = uint8(c)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
}

// ParseHex parses a color in hexadecimal notation,
// for example "#2E91E5".
func ParseHex(s string) (color.RGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok || len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %v", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}
