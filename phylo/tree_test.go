// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo_test

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/timetree"
)

const sampleTree = "(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;"

func readTree(t testing.TB, s string) *phylo.Tree {
	t.Helper()

	ts, err := phylo.ReadNewick(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", s, err)
	}
	return ts[0]
}

type nodeData struct {
	taxon string
	len   float64
	term  bool
}

func testNodes(t testing.TB, name string, tr *phylo.Tree, want []nodeData) {
	t.Helper()

	ids := tr.Nodes()
	if len(ids) != len(want) {
		t.Fatalf("%s: got %d nodes, want %d", name, len(ids), len(want))
	}
	for i, id := range ids {
		w := want[i]
		if tx := tr.Taxon(id); tx != w.taxon {
			t.Errorf("%s: node %d: taxon: got %q, want %q", name, i, tx, w.taxon)
		}
		if l := tr.Len(id); math.Abs(l-w.len) > 1e-9 {
			t.Errorf("%s: node %d (%s): length: got %.6f, want %.6f", name, i, w.taxon, l, w.len)
		}
		if tr.IsTerm(id) != w.term {
			t.Errorf("%s: node %d (%s): terminal: got %v, want %v", name, i, w.taxon, tr.IsTerm(id), w.term)
		}
	}
}

func TestReadNewick(t *testing.T) {
	tr := readTree(t, sampleTree)
	testNodes(t, "newick", tr, []nodeData{
		{taxon: "F"},
		{taxon: "A", len: 0.1, term: true},
		{taxon: "B", len: 0.2, term: true},
		{taxon: "E", len: 0.5},
		{taxon: "C", len: 0.3, term: true},
		{taxon: "D", len: 0.4, term: true},
	})

	if err := tr.Validate(); err != nil {
		t.Errorf("newick: unexpected error: %v", err)
	}
	if n := tr.NumTerms(tr.Root()); n != 4 {
		t.Errorf("newick: terminals: got %d, want %d", n, 4)
	}
}

func TestReadNewickLabels(t *testing.T) {
	in := `[a comment]
	('sample one':1,sample_2:2, (x_1, x_2)95:1)100;
	(a,b);`
	ts, err := phylo.ReadNewick(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(ts) != 2 {
		t.Fatalf("got %d trees, want %d", len(ts), 2)
	}

	testNodes(t, "labels", ts[0], []nodeData{
		{},
		{taxon: "sample one", len: 1, term: true},
		{taxon: "sample_2", len: 2, term: true},
		{len: 1},
		{taxon: "x_1", term: true},
		{taxon: "x_2", term: true},
	})

	if n := ts[1].Name(); n != "tree.1" {
		t.Errorf("labels: tree name: got %q, want %q", n, "tree.1")
	}
	if terms := ts[1].Terms(); !reflect.DeepEqual(terms, []string{"a", "b"}) {
		t.Errorf("labels: terms: got %v, want %v", terms, []string{"a", "b"})
	}
}

func TestReadNewickErrors(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"no semicolon":    "(A,B)",
		"unbalanced":      "(A,(B,C);",
		"bad length":      "(A:x,B);",
		"negative length": "(A:-1,B);",
		"unterminated":    "('A,B);",
	}
	for name, in := range tests {
		if _, err := phylo.ReadNewick(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestValidate(t *testing.T) {
	tr := readTree(t, "(A,(B,A));")
	if err := tr.Validate(); err == nil {
		t.Errorf("validate: expecting error for repeated terminal")
	}

	tr = readTree(t, "(A,(B,));")
	if err := tr.Validate(); err == nil {
		t.Errorf("validate: expecting error for unnamed terminal")
	}
}

func TestLadderize(t *testing.T) {
	tr := readTree(t, "((C,D,(E,F)),A,(B,G));")

	asc := tr.Clone()
	asc.Ladderize(false)
	want := []string{"A", "B", "G", "C", "D", "E", "F"}
	if got := asc.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("ladderize ascending: got %v, want %v", got, want)
	}

	desc := tr.Clone()
	desc.Ladderize(true)
	want = []string{"E", "F", "C", "D", "B", "G", "A"}
	if got := desc.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("ladderize descending: got %v, want %v", got, want)
	}

	// the source tree is unchanged
	want = []string{"C", "D", "E", "F", "A", "B", "G"}
	if got := tr.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("clone: got %v, want %v", got, want)
	}
}

func TestReroot(t *testing.T) {
	tr := readTree(t, sampleTree)
	if err := tr.Reroot("A"); err != nil {
		t.Fatalf("reroot: unexpected error: %v", err)
	}
	tr.Ladderize(false)
	testNodes(t, "reroot on A", tr, []nodeData{
		{},
		{taxon: "A", term: true},
		{taxon: "F", len: 0.1},
		{taxon: "B", len: 0.2, term: true},
		{taxon: "E", len: 0.5},
		{taxon: "C", len: 0.3, term: true},
		{taxon: "D", len: 0.4, term: true},
	})

	tr = readTree(t, sampleTree)
	if err := tr.Reroot("C"); err != nil {
		t.Fatalf("reroot: unexpected error: %v", err)
	}
	testNodes(t, "reroot on C", tr, []nodeData{
		{},
		{taxon: "E", len: 0.3},
		{taxon: "F", len: 0.5},
		{taxon: "A", len: 0.1, term: true},
		{taxon: "B", len: 0.2, term: true},
		{taxon: "D", len: 0.4, term: true},
		{taxon: "C", term: true},
	})

	// a bifurcating root is removed
	tr = readTree(t, "((A:1,B:1)X:2,(C:1,D:1)Y:3);")
	if err := tr.Reroot("A"); err != nil {
		t.Fatalf("reroot: unexpected error: %v", err)
	}
	testNodes(t, "reroot bifurcating", tr, []nodeData{
		{},
		{taxon: "X", len: 1},
		{taxon: "Y", len: 5},
		{taxon: "C", len: 1, term: true},
		{taxon: "D", len: 1, term: true},
		{taxon: "B", len: 1, term: true},
		{taxon: "A", term: true},
	})

	if err := tr.Reroot("Z"); err == nil {
		t.Errorf("reroot: expecting error for unknown outgroup")
	}
}

func TestFromTimeTree(t *testing.T) {
	c, err := timetree.Newick(strings.NewReader("((Alpha:1,Beta:1):2,Gamma:3);"), "dated", 0)
	if err != nil {
		t.Fatalf("unable to read time tree: %v", err)
	}
	tt := c.Tree(c.Names()[0])

	tr := phylo.FromTimeTree(tt)
	if tr.NumNodes() != 5 {
		t.Errorf("time tree: got %d nodes, want %d", tr.NumNodes(), 5)
	}

	terms := tr.Terms()
	slices.Sort(terms)
	want := []string{"Alpha", "Beta", "Gamma"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("time tree: terms: got %v, want %v", terms, want)
	}

	var sum float64
	for _, id := range tr.Nodes() {
		sum += tr.Len(id)
	}
	if math.Abs(sum-7) > 1e-6 {
		t.Errorf("time tree: total length: got %.6f, want %.6f", sum, 7.0)
	}
}

func TestRead(t *testing.T) {
	ts, err := phylo.Read(strings.NewReader("\n  " + sampleTree + "\n((A,B),C);\n"))
	if err != nil {
		t.Fatalf("read newick: unexpected error: %v", err)
	}
	if len(ts) != 2 {
		t.Errorf("read newick: got %d trees, want %d", len(ts), 2)
	}

	c, err := timetree.Newick(strings.NewReader("((Alpha:1,Beta:1):2,Gamma:3);"), "dated", 0)
	if err != nil {
		t.Fatalf("unable to read time tree: %v", err)
	}
	var b strings.Builder
	if err := c.TSV(&b); err != nil {
		t.Fatalf("unable to write time tree: %v", err)
	}
	ts, err = phylo.Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("read time tree: unexpected error: %v", err)
	}
	if len(ts) != 1 || ts[0].Name() != "dated" {
		t.Errorf("read time tree: got %d trees", len(ts))
	}

	if _, err := phylo.Read(strings.NewReader("  \n")); err == nil {
		t.Errorf("read: expecting error for empty input")
	}
}
