// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/js-arias/blind"
)

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// GradientByName returns a gradient from its name.
// Valid names are:
//
//	jet          the Jet color scale (default)
//	rainbow      the rainbow scheme of Paul Tol
//	iridescent   the iridescent scheme of Paul Tol
//	incandescent the incandescent scheme of Paul Tol
//	gray         a gray scale
func GradientByName(name string) (Gradienter, error) {
	switch name {
	case "", "jet":
		return Jet{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	case "iridescent":
		return Iridescent{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "gray":
		return GrayScale{}, nil
	}
	return nil, fmt.Errorf("unknown gradient %q", name)
}

// Gradients returns the names of the valid gradients.
func Gradients() []string {
	return []string{"gray", "incandescent", "iridescent", "jet", "rainbow"}
}

func clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type stop struct {
	v float64
	c [3]float64
}

var jetStops = []stop{
	{0, [3]float64{0, 0, 131}},
	{0.125, [3]float64{0, 60, 170}},
	{0.375, [3]float64{5, 255, 255}},
	{0.625, [3]float64{255, 255, 0}},
	{0.875, [3]float64{250, 0, 0}},
	{1, [3]float64{128, 0, 0}},
}

// Jet is the Jet color scale,
// from dark blue (0)
// to dark red (1).
type Jet struct{}

func (j Jet) Gradient(v float64) color.Color {
	v = clamp(v)

	i, found := slices.BinarySearchFunc(jetStops, v, func(s stop, v float64) int {
		switch {
		case s.v < v:
			return -1
		case s.v > v:
			return 1
		}
		return 0
	})
	if found {
		c := jetStops[i].c
		return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
	}

	lo, hi := jetStops[i-1], jetStops[i]
	f := (v - lo.v) / (hi.v - lo.v)
	var rgb [3]uint8
	for k := range rgb {
		rgb[k] = uint8(math.Round(lo.c[k] + f*(hi.c[k]-lo.c[k])))
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}
}

// GrayScale returns a gray scale
// between 0 (black)
// to 200 (light gray).
type GrayScale struct{}

func (g GrayScale) Gradient(v float64) color.Color {
	c := uint8(clamp(v) * 200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}
