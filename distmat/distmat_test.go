// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distmat_test

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/snptree/distmat"
)

var matrixBlob = `snp-dists 0.8.2	A	B	C	D	O
A	0	3	9	10	12
B	3	0	6	7	12
C	9	6	0	1	2
D	10	7	1	0	1
O	12	12	2	1	0
`

func readMatrix(t testing.TB, blob string) *distmat.Matrix {
	t.Helper()

	m, err := distmat.Read(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	return m
}

func TestRead(t *testing.T) {
	m := readMatrix(t, matrixBlob)

	want := []string{"A", "B", "C", "D", "O"}
	if ids := m.IDs(); !reflect.DeepEqual(ids, want) {
		t.Errorf("ids: got %v, want %v", ids, want)
	}
	if d, ok := m.Dist("D", "A"); !ok || d != 10 {
		t.Errorf("dist D-A: got %.0f %v, want %d %v", d, ok, 10, true)
	}
	if _, ok := m.Dist("D", "Z"); ok {
		t.Errorf("dist D-Z: unknown sample found")
	}
	if n := len(m.Pairs()); n != 10 {
		t.Errorf("pairs: got %d, want %d", n, 10)
	}

	m = readMatrix(t, "id,A,B\nA,0,\nB,NA,0\n")
	if v := m.At(0, 1); !math.IsNaN(v) {
		t.Errorf("empty cell: got %v, want NaN", v)
	}
	if v := m.At(1, 0); !math.IsNaN(v) {
		t.Errorf("NA cell: got %v, want NaN", v)
	}
	if n := len(m.Pairs()); n != 0 {
		t.Errorf("pairs: got %d, want %d", n, 0)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"row order":     "x\tA\tB\nB\t0\t1\nA\t1\t0\n",
		"missing rows":  "x\tA\tB\nA\t0\t1\n",
		"extra rows":    "x\tA\nA\t0\nB\t1\n",
		"invalid value": "x\tA\tB\nA\t0\tone\nB\t1\t0\n",
		"empty":         "x\n",
	}

	for name, blob := range tests {
		if _, err := distmat.Read(strings.NewReader(blob)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestNearest(t *testing.T) {
	m := readMatrix(t, matrixBlob)

	tests := map[string]struct {
		id   string
		want []distmat.Neighbour
	}{
		"single": {
			id:   "A",
			want: []distmat.Neighbour{{ID: "B", Dist: 3}},
		},
		"closest": {
			id:   "C",
			want: []distmat.Neighbour{{ID: "D", Dist: 1}},
		},
		"ties": {
			id: "D",
			want: []distmat.Neighbour{
				{ID: "C", Dist: 1},
				{ID: "O", Dist: 1},
			},
		},
		"unknown": {
			id:   "unknown",
			want: nil,
		},
	}

	for name, test := range tests {
		ns, err := m.Nearest(test.id)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !reflect.DeepEqual(ns, test.want) {
			t.Errorf("%s: got %v, want %v", name, ns, test.want)
		}
	}

	ns, _ := m.Nearest("D")
	if s := distmat.Join(ns, ", "); s != "C=1, O=1" {
		t.Errorf("join: got %q, want %q", s, "C=1, O=1")
	}
	if s := distmat.Join(nil, ", "); s != "" {
		t.Errorf("join: got %q, want %q", s, "")
	}
}

func TestNearestTruncate(t *testing.T) {
	m := readMatrix(t, "x,A,B,C\nA,0,2.7,\nB,2.7,0,5\nC,,5,0\n")

	ns, err := m.Nearest("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := distmat.Join(ns, ", "); s != "B=2" {
		t.Errorf("nearest: got %q, want %q", s, "B=2")
	}
}

func TestNearestIntegrity(t *testing.T) {
	m := readMatrix(t, "x\tA\tB\tB\nA\t0\t1\t2\nB\t1\t0\t3\nB\t2\t3\t0\n")

	for _, id := range []string{"A", "B"} {
		_, err := m.Nearest(id)
		var ie *distmat.IntegrityError
		if !errors.As(err, &ie) {
			t.Errorf("nearest %s: got error %v, want integrity error", id, err)
			continue
		}
		if ie.ID != "B" {
			t.Errorf("nearest %s: got sample %q, want %q", id, ie.ID, "B")
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	m := readMatrix(t, "x,A,B\nA,0,3\nB,,0\n")

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unable to marshal: %v", err)
	}
	want := `{"index":["A","B"],"data":[[0,3],[null,0]]}`
	if string(b) != want {
		t.Errorf("json: got %s, want %s", b, want)
	}
}

func TestNearestAll(t *testing.T) {
	m := readMatrix(t, matrixBlob)

	ids := m.IDs()
	for _, cpu := range []int{0, 1, 3} {
		ns, err := m.NearestAll(ids, cpu)
		if err != nil {
			t.Fatalf("cpu %d: unexpected error: %v", cpu, err)
		}
		if len(ns) != len(ids) {
			t.Fatalf("cpu %d: got %d results, want %d", cpu, len(ns), len(ids))
		}
		for i, id := range ids {
			want, _ := m.Nearest(id)
			if !reflect.DeepEqual(ns[i], want) {
				t.Errorf("cpu %d: sample %s: got %v, want %v", cpu, id, ns[i], want)
			}
		}
	}

	m = readMatrix(t, "x\tA\tB\tB\nA\t0\t1\t2\nB\t1\t0\t3\nB\t2\t3\t0\n")
	_, err := m.NearestAll([]string{"A"}, 2)
	var ie *distmat.IntegrityError
	if !errors.As(err, &ie) {
		t.Errorf("integrity: got error %v, want IntegrityError", err)
	}
}
