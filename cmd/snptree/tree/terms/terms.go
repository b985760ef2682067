// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the trees of a snptree project.
package terms

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tree <tree-name>] [--missing] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the trees from a SnpTree project and print the name of the
terminals in the standard output.

The argument of the command is the name of the project file.

By default all terminals will be printed. If the flag --tree is set, only the
terminals of the indicated tree will be printed.

If the flag --missing is defined, only the terminals that are not found in
the metadata table, or the distance matrix, of the project will be printed.
In the output, each terminal is followed by the missing dataset.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var missing bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&missing, "missing", false, "")
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
	ls := makeTermList(ts)

	if !missing {
		for _, term := range ls {
			fmt.Fprintf(c.Stdout(), "%s\n", term)
		}
		return nil
	}

	tab, err := p.Metadata("")
	if err != nil {
		return err
	}
	m, err := p.Distances()
	if err != nil {
		return err
	}
	for _, term := range ls {
		if !tab.Has(term) {
			fmt.Fprintf(c.Stdout(), "%s\tmetadata\n", term)
		}
		if !m.Has(term) {
			fmt.Fprintf(c.Stdout(), "%s\tdistance matrix\n", term)
		}
	}
	return nil
}

func makeTermList(ts []*phylo.Tree) []string {
	terms := make(map[string]bool)
	for _, t := range ts {
		if treeName != "" && t.Name() != treeName {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)
	return termList
}
