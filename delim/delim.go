// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package delim implements a reader for delimited text tables
// in which the field separator is guessed
// from the header of the table.
//
// Metadata tables and distance matrices
// are usually exported from spreadsheets,
// so they can be separated by tabs, commas, or semicolons,
// and they are not always encoded in UTF-8.
package delim

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Separators is the list of valid separators,
// in order of preference.
var Separators = []byte{'\t', ',', ';'}

// NewReader returns a CSV reader for the data in r.
//
// The separator is the first of the valid separators
// found in the first line of the table
// that is not empty
// or a comment.
// Lines starting with '#' are comments.
// If the input is not valid UTF-8,
// it is decoded as Windows-1252.
func NewReader(r io.Reader) (*csv.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		data, err = charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("while decoding input: %v", err)
		}
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	tab := csv.NewReader(bytes.NewReader(data))
	tab.Comma = rune(Sniff(data))
	tab.Comment = '#'
	return tab, nil
}

// Sniff returns the separator used in the header
// of a table.
// If no separator is found,
// it returns a tab.
func Sniff(data []byte) byte {
	for len(data) > 0 {
		ln := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			ln = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		ln = bytes.TrimRight(ln, "\r")
		if len(bytes.TrimSpace(ln)) == 0 || ln[0] == '#' {
			continue
		}

		for _, c := range Separators {
			if bytes.IndexByte(ln, c) >= 0 {
				return c
			}
		}
		break
	}
	return '\t'
}
