// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reconcile checks that the samples of a tree
// are found in the metadata table
// and the distance matrix,
// and trims the metadata table
// to the samples in the tree.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/js-arias/snptree/sample"
)

// Dataset is the dataset in which a sample is missing.
type Dataset string

// Valid datasets.
const (
	DistanceMatrix Dataset = "distance matrix"
	Metadata       Dataset = "metadata"
)

// An IdentityError is returned
// when a terminal of the tree
// is not found in a dataset.
type IdentityError struct {
	ID      string
	Missing Dataset
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("sample %q not found in %s", e.ID, e.Missing)
}

// Keys is the set of samples
// of a dataset.
type Keys interface {
	Has(id string) bool
}

// Result is the result of a check.
type Result struct {
	// Table is the metadata table
	// trimmed to the samples in the tree.
	Table *sample.Table

	// Allowed are the terminals of the tree
	// that were not checked
	// because they are in the ignore set.
	Allowed []string

	// Dropped are the identifiers of the metadata rows
	// that were removed
	// because they are not in the tree.
	Dropped []string
}

// Check checks that each terminal of the tree
// is in the distance matrix and the metadata table.
// The terminals in the ignore set are not checked.
//
// The distance matrix is checked first,
// so if a terminal is missing from both datasets,
// the IdentityError reports the distance matrix.
//
// The returned table has only the rows
// of samples in the tree,
// or in the ignore set.
func Check(terms []string, tab *sample.Table, dm Keys, ignore map[string]bool) (Result, error) {
	inTree := make(map[string]bool, len(terms))
	var allowed []string
	for _, id := range terms {
		inTree[id] = true
		if ignore[id] {
			allowed = append(allowed, id)
			continue
		}
		if !dm.Has(id) {
			return Result{}, &IdentityError{ID: id, Missing: DistanceMatrix}
		}
		if !tab.Has(id) {
			return Result{}, &IdentityError{ID: id, Missing: Metadata}
		}
	}

	var dropped []string
	nt := tab.Keep(func(id string) bool {
		if inTree[id] || ignore[id] {
			return true
		}
		dropped = append(dropped, id)
		return false
	})

	return Result{
		Table:   nt,
		Allowed: allowed,
		Dropped: dropped,
	}, nil
}

// Ignore returns a set of sample identifiers
// from one or more strings.
// Each string can be a comma-separated list
// of identifiers.
// Spaces around identifiers are removed.
func Ignore(ids ...string) map[string]bool {
	set := make(map[string]bool)
	for _, s := range ids {
		for _, id := range strings.Split(s, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			set[id] = true
		}
	}
	return set
}
