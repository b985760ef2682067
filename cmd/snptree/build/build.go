// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package build implements a command to build
// an interactive HTML report of the trees in a project.
package build

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/project"
	"github.com/js-arias/snptree/reconcile"
	"github.com/js-arias/snptree/report"
)

var Command = &command.Command{
	Usage: `build [--tree <tree>] [--id <column>] [--ignore <list>]
	[--outgroup <sample>] [--title <title>]
	[--json] [--force]
	[--cpu <number>] [-o|--output <out-prefix>]
	<project-file>`,
	Short: "build an interactive report of the project trees",
	Long: `
Command build reads the trees, the metadata, and the distance matrix of a
SnpTree project, and writes an interactive HTML page for each tree. In the
page, the nodes of the tree can be colored by any column of the metadata, and
the metadata of each sample, as well as its nearest neighbours in the distance
matrix, are shown when the pointer is over a node.

The argument of the command is the name of the project file.

By default, all trees in the project will be used. If the flag --tree is set,
only the indicated tree will be used.

By default, the first column of the metadata table is used as the sample
identifier. Use the flag --id to set a different column.

The flag --ignore sets a comma separated list of terminals that are not
required to be in the metadata or the distance matrix (for example, a
reference genome).

Use the flag --outgroup to root the tree on the indicated sample.

By default, the name of the tree is used as the title of the page. Use the
flag --title to set a different title.

If the flag --json is defined, the report data will be also written as a
JSON file.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files. If an
output file already exists, the command fails, unless the flag --force is
defined.

By default, all available CPUs will be used to search the nearest neighbours
of the samples. Use the flag --cpu to set a different number of CPUs.

The style of the drawing, as well as the colors, are defined in the settings
file of the project. See "snptree help settings".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var idCol string
var ignoreFlag string
var outgroup string
var title string
var outPrefix string
var numCPU int
var withJSON bool
var force bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&withJSON, "json", false, "")
	c.Flags().BoolVar(&force, "force", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&idCol, "id", "", "")
	c.Flags().StringVar(&ignoreFlag, "ignore", "", "")
	c.Flags().StringVar(&outgroup, "outgroup", "", "")
	c.Flags().StringVar(&title, "title", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.GOMAXPROCS(0), "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ts, err := p.Trees()
	if err != nil {
		return err
	}
	tab, err := p.Metadata(idCol)
	if err != nil {
		return err
	}
	m, err := p.Distances()
	if err != nil {
		return err
	}
	param, err := reportParam(p)
	if err != nil {
		return err
	}

	var found bool
	for _, t := range ts {
		if treeName != "" && t.Name() != treeName {
			continue
		}
		found = true

		r, err := report.Build(t, tab, m, param)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		for _, id := range r.Allowed {
			fmt.Fprintf(c.Stderr(), "tree %q: allowing %s\n", t.Name(), id)
		}

		if err := writeFile(outName(t, "html"), r.HTML); err != nil {
			return err
		}
		if withJSON {
			if err := writeFile(outName(t, "json"), r.JSON); err != nil {
				return err
			}
		}
	}
	if !found {
		return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
	}
	return nil
}

func reportParam(p *project.Project) (report.Param, error) {
	s, err := p.Settings()
	if err != nil {
		return report.Param{}, err
	}
	k, err := p.Keys()
	if err != nil {
		return report.Param{}, err
	}
	mp, err := s.Mapper(k)
	if err != nil {
		return report.Param{}, err
	}

	return report.Param{
		Title:     title,
		Ignore:    reconcile.Ignore(ignoreFlag),
		Outgroup:  outgroup,
		Ladder:    s.Ladder(),
		Step:      s.Step(),
		LineColor: colormap.Token(s.LineColor()),
		LineWidth: s.LineWidth(),
		Mapper:    mp,
		Policy:    s.Policy(),
		CPU:       numCPU,
	}, nil
}

func outName(t *phylo.Tree, ext string) string {
	if outPrefix != "" {
		return fmt.Sprintf("%s-%s.%s", outPrefix, t.Name(), ext)
	}
	return t.Name() + "." + ext
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	if !force {
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("file %q already exists", name)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
