// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the trees of a project as static images.
package draw

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/project"
	"github.com/js-arias/snptree/reconcile"
	"github.com/js-arias/snptree/report"
	"github.com/js-arias/snptree/treeplot"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>] [--id <column>] [--ignore <list>]
	[--outgroup <sample>] [--color <column>] [--format <format>]
	[--cpu <number>] [-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as images",
	Long: `
Command draw reads the trees, the metadata, and the distance matrix of a
SnpTree project, and draws each tree as a static image, with the nodes colored
by a column of the metadata.

The argument of the command is the name of the project file.

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be drawn.

By default, the default coloring of the metadata is used. Use the flag --color
to color the nodes using a different column.

By default, the image is written in PNG format. Use the flag --format to set a
different format. Valid formats are "png", "svg", and "pdf".

The flags --id, --ignore, and --outgroup have the same meaning as in the
build command.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.

By default, all available CPUs will be used to search the nearest neighbours
of the samples. Use the flag --cpu to set a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var idCol string
var ignoreFlag string
var outgroup string
var colorCol string
var format string
var outPrefix string
var numCPU int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&idCol, "id", "", "")
	c.Flags().StringVar(&ignoreFlag, "ignore", "", "")
	c.Flags().StringVar(&outgroup, "outgroup", "", "")
	c.Flags().StringVar(&colorCol, "color", "", "")
	c.Flags().StringVar(&format, "format", "png", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.GOMAXPROCS(0), "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "png", "svg", "pdf":
	default:
		return c.UsageError(fmt.Sprintf("unknown format %q", format))
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
	s, err := p.Settings()
	if err != nil {
		return err
	}
	k, err := p.Keys()
	if err != nil {
		return err
	}
	mp, err := s.Mapper(k)
	if err != nil {
		return err
	}
	param := report.Param{
		Ignore:    reconcile.Ignore(ignoreFlag),
		Outgroup:  outgroup,
		Ladder:    s.Ladder(),
		Step:      s.Step(),
		LineColor: colormap.Token(s.LineColor()),
		LineWidth: s.LineWidth(),
		Mapper:    mp,
		Policy:    s.Policy(),
		CPU:       numCPU,
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
		i, err := coloring(r)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}

		name := t.Name() + "." + format
		if outPrefix != "" {
			name = fmt.Sprintf("%s-%s.%s", outPrefix, t.Name(), format)
		}
		if err := treeplot.Save(r, i, name); err != nil {
			return fmt.Errorf("while writing file %q: %v", name, err)
		}
	}
	if !found {
		return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
	}
	return nil
}

// coloring returns the index of the coloring
// of the indicated column.
func coloring(r *report.Report) (int, error) {
	if colorCol == "" {
		return 0, nil
	}
	for i, cl := range r.Colorings {
		if i == 0 && cl.Default {
			continue
		}
		if cl.Column == colorCol {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q can not be used for colors", colorCol)
}
