// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treeplot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/report"
	"github.com/js-arias/snptree/sample"
	"github.com/js-arias/snptree/treeplot"
)

func buildReport(t testing.TB) *report.Report {
	t.Helper()

	ts, err := phylo.ReadNewick(strings.NewReader("(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	tab, err := sample.Read(strings.NewReader("id,country\nA,Chile\nB,Peru\nC,Chile\nD,Peru\n"), "")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	m, err := distmat.Read(strings.NewReader("x,A,B,C,D\nA,0,3,9,10\nB,3,0,6,7\nC,9,6,0,1\nD,10,7,1,0\n"))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	r, err := report.Build(ts[0], tab, m, report.Param{Outgroup: "A"})
	if err != nil {
		t.Fatalf("build: unexpected error: %v", err)
	}
	return r
}

func TestDataRange(t *testing.T) {
	r := buildReport(t)
	tp, err := treeplot.New(r, 0)
	if err != nil {
		t.Fatalf("new: unexpected error: %v", err)
	}

	xMin, xMax, yMin, yMax := tp.DataRange()
	if xMin != 0 || yMax != 0 {
		t.Errorf("range: got min x %.2f, max y %.2f, want 0, 0", xMin, yMax)
	}
	if xMax < 0.999 || xMax > 1.001 {
		t.Errorf("range: max x: got %.3f, want %.3f", xMax, 1.0)
	}
	if yMin != -5 {
		t.Errorf("range: min y: got %.3f, want %.3f", yMin, -5.0)
	}

	if _, err := treeplot.New(r, len(r.Colorings)); err == nil {
		t.Errorf("new: expecting error for invalid coloring")
	}
}

func TestSave(t *testing.T) {
	r := buildReport(t)

	dir := t.TempDir()
	for _, ext := range []string{"png", "svg"} {
		name := filepath.Join(dir, "tree."+ext)
		if err := treeplot.Save(r, 1, name); err != nil {
			t.Fatalf("save %s: unexpected error: %v", ext, err)
		}
		st, err := os.Stat(name)
		if err != nil {
			t.Fatalf("save %s: %v", ext, err)
		}
		if st.Size() == 0 {
			t.Errorf("save %s: empty file", ext)
		}
	}
}
