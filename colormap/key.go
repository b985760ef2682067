// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// A Key stores fixed colors
// for category values.
type Key struct {
	// colors by column,
	// the empty column is used for any column.
	color map[string]map[string]color.Color
}

// Color returns the color associated with a value
// of a given column.
// If there is no color for the value in that column,
// the color defined for any column will be used.
func (k *Key) Color(column, value string) (color.Color, bool) {
	if k == nil {
		return nil, false
	}
	if c, ok := k.color[column][value]; ok {
		return c, true
	}
	c, ok := k.color[""][value]
	return c, ok
}

// Len returns the number of colors defined in the key.
func (k *Key) Len() int {
	if k == nil {
		return 0
	}
	var n int
	for _, m := range k.color {
		n += len(m)
	}
	return n
}

// ReadKey reads a key file used to define the colors
// of category values.
//
// A key file is a tab-delimited file
// with the following required columns:
//
//	-value	the category value
//	-color	an RGB value separated by commas,
//		for example "125,132,148".
//
// Optionally it can contain the following columns:
//
//	-column: the metadata column of the value,
//		if empty,
//		the color is used for the value in any column.
//
// Any other columns, will be ignored.
// Here is an example of a key file:
//
//	value	color	column	comment
//	Chile	0, 84, 119	country
//	Peru	251, 236, 93	country
//	unknown	229, 229, 224
func ReadKey(r io.Reader) (*Key, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"value", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	k := &Key{
		color: make(map[string]map[string]color.Color),
	}
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "value"
		v := strings.TrimSpace(row[fields[f]])

		f = "color"
		c, err := ParseRGB(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		var col string
		f = "column"
		if _, ok := fields[f]; ok {
			col = strings.TrimSpace(row[fields[f]])
		}

		if k.color[col] == nil {
			k.color[col] = make(map[string]color.Color)
		}
		k.color[col][v] = c
	}
	return k, nil
}
