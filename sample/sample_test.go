// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/snptree/sample"
)

var metaBlob = `# sample metadata
id,country,collection_date
A,Chile,2019-01-10
B,Peru,2020-06-01
C,Chile,2021-01-03
D,Bolivia,2021-02-01
O,Peru,2021-03-01
,,
`

func readTable(t testing.TB, idCol string) *sample.Table {
	t.Helper()

	tab, err := sample.Read(strings.NewReader(metaBlob), idCol)
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	return tab
}

func TestRead(t *testing.T) {
	tab := readTable(t, "")

	if tab.Len() != 5 {
		t.Errorf("rows: got %d, want %d", tab.Len(), 5)
	}
	if id := tab.IDColumn(); id != "id" {
		t.Errorf("identity column: got %q, want %q", id, "id")
	}
	wantCols := []string{"id", "country", "collection_date"}
	if cols := tab.Columns(); !reflect.DeepEqual(cols, wantCols) {
		t.Errorf("columns: got %v, want %v", cols, wantCols)
	}
	wantIDs := []string{"A", "B", "C", "D", "O"}
	if ids := tab.IDs(); !reflect.DeepEqual(ids, wantIDs) {
		t.Errorf("ids: got %v, want %v", ids, wantIDs)
	}
	if v := tab.Value("D", "country"); v != "Bolivia" {
		t.Errorf("value: got %q, want %q", v, "Bolivia")
	}
	wantCountry := []string{"Chile", "Peru", "Chile", "Bolivia", "Peru"}
	if c := tab.Column("country"); !reflect.DeepEqual(c, wantCountry) {
		t.Errorf("column: got %v, want %v", c, wantCountry)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]struct {
		blob  string
		idCol string
	}{
		"repeated id": {
			blob:  "id\tv\nA\t1\nA\t2\n",
			idCol: "",
		},
		"empty id": {
			blob:  "id;v\nA;1\n;2\n",
			idCol: "",
		},
		"unknown identity column": {
			blob:  "id,v\nA,1\n",
			idCol: "sample",
		},
		"repeated column": {
			blob:  "id,v,v\nA,1,2\n",
			idCol: "",
		},
	}

	for name, test := range tests {
		if _, err := sample.Read(strings.NewReader(test.blob), test.idCol); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestMatch(t *testing.T) {
	tab, err := sample.New([]string{"id", "v"}, "id")
	if err != nil {
		t.Fatalf("unable to create table: %v", err)
	}
	for _, r := range [][]string{
		{"S1", "a"},
		{"S12", "b"},
		{"ñu", "c"},
	} {
		if err := tab.Add(r); err != nil {
			t.Fatalf("unable to add row %v: %v", r, err)
		}
	}

	tests := map[string]struct {
		name string
		row  int
		ok   bool
	}{
		"exact":          {"S1", 0, true},
		"exact longer":   {"S12", 1, true},
		"suffix":         {"S1_2021", 0, true},
		"longest prefix": {"S123", 1, true},
		"multibyte":      {"ñu.x", 2, true},
		"no match":       {"T1", -1, false},
		"empty name":     {"", -1, false},
	}

	for name, test := range tests {
		row, ok := tab.Match(test.name)
		if ok != test.ok || row != test.row {
			t.Errorf("%s: got %d %v, want %d %v", name, row, ok, test.row, test.ok)
		}
	}

	got := tab.MatchAll([]string{"", "S12_a", "T1", "S1"})
	want := []int{-1, 1, -1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("match all: got %v, want %v", got, want)
	}
}

func TestKeep(t *testing.T) {
	tab := readTable(t, "id")
	nt := tab.Keep(func(id string) bool {
		return id != "B" && id != "O"
	})

	want := []string{"A", "C", "D"}
	if ids := nt.IDs(); !reflect.DeepEqual(ids, want) {
		t.Errorf("keep: got %v, want %v", ids, want)
	}
	if nt.Has("B") {
		t.Errorf("keep: dropped row %q still in index", "B")
	}
	if r, ok := nt.Match("D"); !ok || r != 2 {
		t.Errorf("keep: match: got %d %v, want %d %v", r, ok, 2, true)
	}
	if tab.Len() != 5 {
		t.Errorf("keep: original table modified")
	}
}

func TestWithColumn(t *testing.T) {
	tab := readTable(t, "id")
	nt := tab.WithColumn("Nearest_neighbour", map[string]string{
		"A": "B=3",
		"D": "C=1, O=1",
	})

	wantCols := []string{"id", "country", "collection_date", "Nearest_neighbour"}
	if cols := nt.Columns(); !reflect.DeepEqual(cols, wantCols) {
		t.Errorf("columns: got %v, want %v", cols, wantCols)
	}
	if v := nt.Value("D", "Nearest_neighbour"); v != "C=1, O=1" {
		t.Errorf("value: got %q, want %q", v, "C=1, O=1")
	}
	if v := nt.Value("B", "Nearest_neighbour"); v != "" {
		t.Errorf("value: got %q, want %q", v, "")
	}
	want := []string{"A", "Chile", "2019-01-10", "B=3"}
	if r := nt.Row(0); !reflect.DeepEqual(r, want) {
		t.Errorf("row: got %v, want %v", r, want)
	}
	if len(tab.Columns()) != 3 {
		t.Errorf("with column: original table modified")
	}
}
