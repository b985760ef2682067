// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reconcile_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/reconcile"
	"github.com/js-arias/snptree/sample"
)

var metaBlob = `id	country
A	Chile
B	Peru
C	Chile
D	Bolivia
X	Peru
Y	Chile
`

var matrixBlob = `x	A	B	C	D	Z
A	0	3	9	10	12
B	3	0	6	7	12
C	9	6	0	1	2
D	10	7	1	0	1
Z	12	12	2	1	0
`

func readData(t testing.TB) (*sample.Table, *distmat.Matrix) {
	t.Helper()

	tab, err := sample.Read(strings.NewReader(metaBlob), "id")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	m, err := distmat.Read(strings.NewReader(matrixBlob))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	return tab, m
}

func TestCheck(t *testing.T) {
	tab, m := readData(t)

	res, err := reconcile.Check([]string{"A", "B", "C", "D"}, tab, m, nil)
	if err != nil {
		t.Fatalf("check: unexpected error: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if ids := res.Table.IDs(); !reflect.DeepEqual(ids, want) {
		t.Errorf("check: table: got %v, want %v", ids, want)
	}
	wantDrop := []string{"X", "Y"}
	if !reflect.DeepEqual(res.Dropped, wantDrop) {
		t.Errorf("check: dropped: got %v, want %v", res.Dropped, wantDrop)
	}
	if len(res.Allowed) != 0 {
		t.Errorf("check: allowed: got %v, want none", res.Allowed)
	}
	if tab.Len() != 6 {
		t.Errorf("check: original table modified")
	}
}

func TestCheckIgnore(t *testing.T) {
	tab, m := readData(t)

	// Ref is in no dataset,
	// and X is not in the tree.
	res, err := reconcile.Check([]string{"A", "Ref", "C", "D"}, tab, m, reconcile.Ignore("Ref, X"))
	if err != nil {
		t.Fatalf("check: unexpected error: %v", err)
	}
	want := []string{"A", "C", "D", "X"}
	if ids := res.Table.IDs(); !reflect.DeepEqual(ids, want) {
		t.Errorf("check: table: got %v, want %v", ids, want)
	}
	wantDrop := []string{"B", "Y"}
	if !reflect.DeepEqual(res.Dropped, wantDrop) {
		t.Errorf("check: dropped: got %v, want %v", res.Dropped, wantDrop)
	}
	wantAllow := []string{"Ref"}
	if !reflect.DeepEqual(res.Allowed, wantAllow) {
		t.Errorf("check: allowed: got %v, want %v", res.Allowed, wantAllow)
	}
}

func TestCheckErrors(t *testing.T) {
	tab, m := readData(t)

	tests := map[string]struct {
		terms []string
		id    string
		set   reconcile.Dataset
	}{
		"missing from matrix": {
			terms: []string{"A", "X"},
			id:    "X",
			set:   reconcile.DistanceMatrix,
		},
		"missing from metadata": {
			terms: []string{"A", "Z"},
			id:    "Z",
			set:   reconcile.Metadata,
		},
		"missing from both": {
			terms: []string{"Q", "A"},
			id:    "Q",
			set:   reconcile.DistanceMatrix,
		},
	}

	for name, test := range tests {
		_, err := reconcile.Check(test.terms, tab, m, nil)
		var ie *reconcile.IdentityError
		if !errors.As(err, &ie) {
			t.Errorf("%s: got error %v, want identity error", name, err)
			continue
		}
		if ie.ID != test.id || ie.Missing != test.set {
			t.Errorf("%s: got %q in %s, want %q in %s", name, ie.ID, ie.Missing, test.id, test.set)
		}
	}
}

func TestIgnore(t *testing.T) {
	tests := map[string]struct {
		in   []string
		want map[string]bool
	}{
		"single":  {[]string{"Ref"}, map[string]bool{"Ref": true}},
		"list":    {[]string{"Ref, O ,"}, map[string]bool{"Ref": true, "O": true}},
		"many":    {[]string{"Ref", "O,P"}, map[string]bool{"Ref": true, "O": true, "P": true}},
		"nothing": {nil, map[string]bool{}},
	}

	for name, test := range tests {
		got := reconcile.Ignore(test.in...)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}
