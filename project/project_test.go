// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/snptree/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Distances, "snp-dists.tsv"},
		{project.Metadata, "metadata.csv"},
		{project.Settings, "settings.tab"},
		{project.Keys, "keys.tab"},
		{project.Trees, "tree.nwk"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestProjectData(t *testing.T) {
	dir := t.TempDir()
	files := map[project.Dataset]string{
		project.Trees:     "(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;\n",
		project.Metadata:  "id,country\nA,Chile\nB,Peru\nC,Chile\nD,Peru\n",
		project.Distances: "x\tA\tB\tC\tD\nA\t0\t3\t9\t10\nB\t3\t0\t6\t7\nC\t9\t6\t0\t1\nD\t10\t7\t1\t0\n",
		project.Keys:      "value\tcolor\nChile\t1,2,3\n",
	}

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	for s, blob := range files {
		name := filepath.Join(dir, string(s)+".txt")
		if err := os.WriteFile(name, []byte(blob), 0o644); err != nil {
			t.Fatalf("unable to write %s: %v", s, err)
		}
		p.Add(s, name)
	}

	ts, err := p.Trees()
	if err != nil {
		t.Fatalf("trees: unexpected error: %v", err)
	}
	if len(ts) != 1 || len(ts[0].Terms()) != 4 {
		t.Errorf("trees: got %d trees", len(ts))
	}

	tab, err := p.Metadata("")
	if err != nil {
		t.Fatalf("metadata: unexpected error: %v", err)
	}
	if tab.Len() != 4 {
		t.Errorf("metadata: got %d rows, want %d", tab.Len(), 4)
	}

	m, err := p.Distances()
	if err != nil {
		t.Fatalf("distances: unexpected error: %v", err)
	}
	if m.Len() != 4 {
		t.Errorf("distances: got %d rows, want %d", m.Len(), 4)
	}

	k, err := p.Keys()
	if err != nil {
		t.Fatalf("keys: unexpected error: %v", err)
	}
	if k.Len() != 1 {
		t.Errorf("keys: got %d keys, want %d", k.Len(), 1)
	}

	// settings are not defined
	s, err := p.Settings()
	if err != nil {
		t.Fatalf("settings: unexpected error: %v", err)
	}
	if s.Step() != 1 {
		t.Errorf("settings: step: got %.2f, want %.2f", s.Step(), 1.0)
	}

	p.Add(project.Trees, "")
	if _, err := p.Trees(); err == nil {
		t.Errorf("trees: expecting error for undefined dataset")
	}
}
