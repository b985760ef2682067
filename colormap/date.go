// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap

import (
	"strings"
	"time"
)

// Date layouts,
// in order of preference.
var (
	yearFirst = []string{
		time.RFC3339,
		"2006-1-2 15:04:05",
		"2006-1-2",
		"2006/1/2",
		"2006.1.2",
		"20060102",
		"2006-1",
		"2006/1",
		"2006",
	}
	dayFirst = []string{
		"2-1-2006 15:04:05",
		"2-1-2006",
		"2/1/2006",
		"2.1.2006",
		"1-2006",
		"1/2006",
	}
	textual = []string{
		"2 January 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"2-Jan-2006",
		"2006-Jan-2",
		"January 2006",
		"Jan 2006",
		"Jan-2006",
	}
)

// ParseDate parses a date using a lenient parser.
// Year-first layouts are tried first,
// then day-first layouts,
// and then layouts with month names.
// Partial dates (for example "2021-03" or "2021")
// are set to the first day of the period.
// It returns false if the value is not a valid date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layouts := range [][]string{yearFirst, dayFirst, textual} {
		for _, l := range layouts {
			d, err := time.Parse(l, s)
			if err != nil {
				continue
			}
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
