// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/sample"
	"github.com/js-arias/snptree/settings"
)

// Distances reads a distance matrix file
// as defined in a project.
func (p *Project) Distances() (*distmat.Matrix, error) {
	name := p.Path(Distances)
	if name == "" {
		return nil, fmt.Errorf("distance matrix not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := distmat.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// Keys reads a color key file
// as defined in a project.
// If no key file is defined,
// it returns nil.
func (p *Project) Keys() (*colormap.Key, error) {
	name := p.Path(Keys)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := colormap.ReadKey(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return k, nil
}

// Metadata reads a sample metadata file
// as defined in a project.
// The identity column is idCol,
// or the first column if idCol is empty.
func (p *Project) Metadata(idCol string) (*sample.Table, error) {
	name := p.Path(Metadata)
	if name == "" {
		return nil, fmt.Errorf("metadata not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tab, err := sample.Read(f, idCol)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return tab, nil
}

// Settings reads a settings file
// as defined in a project.
// If no settings file is defined,
// it returns the default settings.
func (p *Project) Settings() (*settings.Settings, error) {
	name := p.Path(Settings)
	if name == "" {
		return settings.New(""), nil
	}

	s, err := settings.Read(name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Trees reads a tree file
// as defined in a project.
// The file can be a Newick file
// or a TSV file of time-calibrated trees.
func (p *Project) Trees() ([]*phylo.Tree, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := phylo.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return ts, nil
}
