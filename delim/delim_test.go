// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package delim_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/snptree/delim"
)

func TestSniff(t *testing.T) {
	tests := map[string]struct {
		data string
		want byte
	}{
		"tab":       {"ID\tname\n", '\t'},
		"comma":     {"ID,name\n", ','},
		"semicolon": {"ID;name\r\n", ';'},
		"comment":   {"# a, comment\n\nID;name\n", ';'},
		"corner":    {"\tA\tB\nA\t0\t1\n", '\t'},
		"single":    {"ID\nA\n", '\t'},
		"empty":     {"", '\t'},
	}

	for name, test := range tests {
		if got := delim.Sniff([]byte(test.data)); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestNewReader(t *testing.T) {
	in := "# samples\nID,place\nA,caf\xe9\nB,\"x, y\"\n"
	tab, err := delim.NewReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to create reader: %v", err)
	}
	got, err := tab.ReadAll()
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	want := [][]string{
		{"ID", "place"},
		{"A", "café"},
		{"B", "x, y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("read: got %q, want %q", got, want)
	}
}
