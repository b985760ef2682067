// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package settings_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/snptree/settings"
)

func TestSettings(t *testing.T) {
	name := filepath.Join(t.TempDir(), "settings.tab")
	s := settings.New(name)
	testSettings(t, s, nil, name)

	s.Set(settings.Neutral, "rgb(10, 20, 30)")
	s.Set(settings.NoDate, "1,2,3")
	s.Set(settings.LineColor, "0,0,0")
	s.SetLineWidth(2.5)
	s.SetStep(10)
	s.SetMaxCats(20)
	s.SetGradient("Iridescent")
	s.SetDateMark("Fecha")
	s.SetLadder("desc")

	if err := s.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	ns, err := settings.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testSettings(t, ns, s, name)

	if ns.Neutral() != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("neutral: got %v, want %v", ns.Neutral(), color.RGBA{10, 20, 30, 255})
	}
	if ns.Gradient() != "iridescent" {
		t.Errorf("gradient: got %q, want %q", ns.Gradient(), "iridescent")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"header":     "param\tvalue\nstep\t1\n",
		"color":      "parameter\tvalue\nneutral\t1,2\n",
		"step":       "parameter\tvalue\nstep\t-1\n",
		"gradient":   "parameter\tvalue\ngradient\tviridis\n",
		"ladder":     "parameter\tvalue\nladder\tup\n",
		"categories": "parameter\tvalue\nmaxcats\tmany\n",
	}

	dir := t.TempDir()
	for name, blob := range tests {
		f := filepath.Join(dir, name+".tab")
		if err := os.WriteFile(f, []byte(blob), 0o644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
		if _, err := settings.Read(f); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestMapper(t *testing.T) {
	s := settings.New("")
	m, err := s.Mapper(nil)
	if err != nil {
		t.Fatalf("mapper: unexpected error: %v", err)
	}
	got := m.Uniform(2)
	if got[0] != "rgb(100,100,100)" || got[1] != got[0] {
		t.Errorf("mapper: neutral: got %v", got)
	}

	p := s.Policy()
	if p.MaxCategories != 48 || p.DateMark != "date" {
		t.Errorf("policy: got %+v", p)
	}
}

func testSettings(t testing.TB, s, want *settings.Settings, name string) {
	t.Helper()

	if want == nil {
		want = settings.New(name)
	}

	if s.Name() != want.Name() {
		t.Errorf("name: got %q, want %q", s.Name(), want.Name())
	}
	if s.Neutral() != want.Neutral() {
		t.Errorf("neutral: got %v, want %v", s.Neutral(), want.Neutral())
	}
	if s.NoDate() != want.NoDate() {
		t.Errorf("nodate: got %v, want %v", s.NoDate(), want.NoDate())
	}
	if s.LineColor() != want.LineColor() {
		t.Errorf("linecolor: got %v, want %v", s.LineColor(), want.LineColor())
	}
	if s.LineWidth() != want.LineWidth() {
		t.Errorf("linewidth: got %.3f, want %.3f", s.LineWidth(), want.LineWidth())
	}
	if s.Step() != want.Step() {
		t.Errorf("step: got %.3f, want %.3f", s.Step(), want.Step())
	}
	if s.MaxCats() != want.MaxCats() {
		t.Errorf("maxcats: got %d, want %d", s.MaxCats(), want.MaxCats())
	}
	if s.Gradient() != want.Gradient() {
		t.Errorf("gradient: got %q, want %q", s.Gradient(), want.Gradient())
	}
	if s.DateMark() != want.DateMark() {
		t.Errorf("datemark: got %q, want %q", s.DateMark(), want.DateMark())
	}
	if s.Ladder() != want.Ladder() {
		t.Errorf("ladder: got %q, want %q", s.Ladder(), want.Ladder())
	}
}
