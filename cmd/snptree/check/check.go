// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package check implements a command to check
// that the samples of the trees in a project
// are found in the metadata and the distance matrix.
package check

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/project"
	"github.com/js-arias/snptree/reconcile"
)

var Command = &command.Command{
	Usage: `check [--tree <tree>] [--id <column>] [--ignore <list>]
	<project-file>`,
	Short: "check the samples of the project trees",
	Long: `
Command check reads the trees, the metadata, and the distance matrix of a
SnpTree project, and checks that each terminal of the trees is found in the
metadata table and the distance matrix.

The argument of the command is the name of the project file.

By default, all trees in the project will be checked. If the flag --tree is
set, only the indicated tree will be checked.

By default, the first column of the metadata table is used as the sample
identifier. Use the flag --id to set a different column.

The flag --ignore sets a comma separated list of terminals that will not be
checked (for example, a reference genome). Ignored terminals are reported in
the standard error.

The metadata rows of samples that are not in the tree are reported in the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var idCol string
var ignoreFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&idCol, "id", "", "")
	c.Flags().StringVar(&ignoreFlag, "ignore", "", "")
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
	ignore := reconcile.Ignore(ignoreFlag)

	var found bool
	for _, t := range ts {
		if treeName != "" && t.Name() != treeName {
			continue
		}
		found = true

		res, err := reconcile.Check(t.Terms(), tab, m, ignore)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		for _, id := range res.Allowed {
			fmt.Fprintf(c.Stderr(), "tree %q: allowing %s\n", t.Name(), id)
		}
		for _, id := range res.Dropped {
			fmt.Fprintf(c.Stderr(), "tree %q: dropping metadata of %s\n", t.Name(), id)
		}
		fmt.Fprintf(c.Stdout(), "%s\tok\t%d samples\n", t.Name(), res.Table.Len())
	}
	if !found {
		return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
	}
	return nil
}
