// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package settings implements reading and writing
// of the parameters used to draw a sample tree.
package settings

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/snptree/colormap"
)

// Param is a keyword to identify
// the type of parameter in a settings file.
type Param string

// Valid parameters
const (
	// DateMark is the text that identifies
	// date columns.
	DateMark Param = "datemark"

	// Gradient is the color gradient
	// used for date columns.
	Gradient Param = "gradient"

	// Ladder is the way in which the tree is ladderized.
	Ladder Param = "ladder"

	// LineColor is the color of the tree branches.
	LineColor Param = "linecolor"

	// LineWidth is the width of the tree branches.
	LineWidth Param = "linewidth"

	// MaxCats is the maximum number of categories
	// of a column used to color the nodes.
	MaxCats Param = "maxcats"

	// Neutral is the color of nodes without metadata.
	Neutral Param = "neutral"

	// NoDate is the color of samples without a valid date.
	NoDate Param = "nodate"

	// Step is the vertical distance between terminals.
	Step Param = "step"
)

// Valid ladderize values.
const (
	Ascending  = "asc"
	Descending = "desc"
	None       = "none"
)

// Settings represents a collection of parameters
// to draw a tree.
type Settings struct {
	name string // file name

	neutral   color.RGBA
	noDate    color.RGBA
	lineColor color.RGBA
	lineWidth float64

	step     float64
	maxCats  int
	gradient string
	dateMark string
	ladder   string
}

// New creates a new parameter collection
// with default values.
func New(name string) *Settings {
	return &Settings{
		name:      name,
		neutral:   colormap.Neutral,
		noDate:    colormap.NoDate,
		lineColor: color.RGBA{25, 25, 25, 255},
		lineWidth: 1,
		step:      1,
		maxCats:   colormap.MaxCategories,
		gradient:  "jet",
		dateMark:  "date",
		ladder:    Ascending,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a settings file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Parameters not defined in the file
// will have its default value.
//
// Here is an example file:
//
//	# snptree settings
//	parameter	value
//	neutral	100,100,100
//	gradient	jet
//	ladder	asc
//	step	1
func Read(name string) (*Settings, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := read(f, name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

func read(r io.Reader, name string) (*Settings, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	s := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(strings.TrimSpace(row[fields[f]])))

		f = "value"
		if err := s.Set(p, row[fields[f]]); err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}
	}
	return s, nil
}

// Set sets the value of a parameter
// from a string.
// Unknown parameters are ignored.
func (s *Settings) Set(p Param, v string) error {
	v = strings.TrimSpace(v)
	switch p {
	case DateMark:
		return s.SetDateMark(v)
	case Gradient:
		return s.SetGradient(v)
	case Ladder:
		return s.SetLadder(v)
	case LineColor, Neutral, NoDate:
		c, err := colormap.ParseRGB(v)
		if err != nil {
			return err
		}
		switch p {
		case LineColor:
			s.lineColor = c
		case Neutral:
			s.neutral = c
		case NoDate:
			s.noDate = c
		}
	case LineWidth:
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		return s.SetLineWidth(w)
	case MaxCats:
		c, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return s.SetMaxCats(c)
	case Step:
		st, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		return s.SetStep(st)
	}
	return nil
}

// DateMark returns the text that identifies
// date columns.
func (s *Settings) DateMark() string {
	return s.dateMark
}

// Gradient returns the name of the color gradient
// for date columns.
func (s *Settings) Gradient() string {
	return s.gradient
}

// Ladder returns the way in which a tree is ladderized.
func (s *Settings) Ladder() string {
	return s.ladder
}

// LineColor returns the color of the tree branches.
func (s *Settings) LineColor() color.RGBA {
	return s.lineColor
}

// LineWidth returns the width of the tree branches.
func (s *Settings) LineWidth() float64 {
	return s.lineWidth
}

// MaxCats returns the maximum number of categories
// of a column used to color the nodes.
func (s *Settings) MaxCats() int {
	return s.maxCats
}

// Name returns the file name of the settings.
func (s *Settings) Name() string {
	return s.name
}

// Neutral returns the color of nodes without metadata.
func (s *Settings) Neutral() color.RGBA {
	return s.neutral
}

// NoDate returns the color of samples
// without a valid date.
func (s *Settings) NoDate() color.RGBA {
	return s.noDate
}

// Step returns the vertical distance between terminals.
func (s *Settings) Step() float64 {
	return s.step
}

// Mapper returns a color mapper
// using the settings.
func (s *Settings) Mapper(k *colormap.Key) (*colormap.Mapper, error) {
	g, err := colormap.GradientByName(s.gradient)
	if err != nil {
		return nil, err
	}
	return &colormap.Mapper{
		Key:      k,
		Gradient: g,
		Neutral:  s.neutral,
		NoDate:   s.noDate,
	}, nil
}

// Policy returns the policy
// to select the columns used to color the nodes.
func (s *Settings) Policy() colormap.Policy {
	return colormap.Policy{
		DateMark:      s.dateMark,
		MaxCategories: s.maxCats,
	}
}

// SetDateMark sets the text that identifies date columns.
func (s *Settings) SetDateMark(m string) error {
	m = strings.TrimSpace(m)
	if m == "" {
		return errors.New("empty date mark")
	}
	s.dateMark = m
	return nil
}

// SetGradient sets the color gradient for date columns.
func (s *Settings) SetGradient(g string) error {
	g = strings.ToLower(strings.TrimSpace(g))
	if _, err := colormap.GradientByName(g); err != nil {
		return err
	}
	s.gradient = g
	return nil
}

// SetLadder sets the way in which a tree is ladderized.
func (s *Settings) SetLadder(l string) error {
	l = strings.ToLower(strings.TrimSpace(l))
	switch l {
	case Ascending:
	case Descending:
	case None:
	default:
		return fmt.Errorf("unknown ladderize value %q", l)
	}
	s.ladder = l
	return nil
}

// SetLineWidth sets the width of the tree branches.
func (s *Settings) SetLineWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("invalid line width: %.3f", w)
	}
	s.lineWidth = w
	return nil
}

// SetMaxCats sets the maximum number of categories
// of a column used to color the nodes.
func (s *Settings) SetMaxCats(c int) error {
	if c < 1 {
		return fmt.Errorf("invalid number of categories: %d", c)
	}
	s.maxCats = c
	return nil
}

// SetName sets the file name of the settings.
func (s *Settings) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.name = name
}

// SetStep sets the vertical distance between terminals.
func (s *Settings) SetStep(st float64) error {
	if st <= 0 {
		return fmt.Errorf("invalid step value: %.3f", st)
	}
	s.step = st
	return nil
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Write writes the settings into a file.
func (s *Settings) Write() (err error) {
	f, err := os.Create(s.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# snptree settings\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", s.name, err)
	}

	rows := [][]string{
		{string(Neutral), rgb(s.neutral)},
		{string(NoDate), rgb(s.noDate)},
		{string(LineColor), rgb(s.lineColor)},
		{string(LineWidth), strconv.FormatFloat(s.lineWidth, 'f', -1, 64)},
		{string(Step), strconv.FormatFloat(s.step, 'f', -1, 64)},
		{string(MaxCats), strconv.Itoa(s.maxCats)},
		{string(Gradient), s.gradient},
		{string(DateMark), s.dateMark},
		{string(Ladder), s.ladder},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", s.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", s.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", s.name, err)
	}
	return nil
}
