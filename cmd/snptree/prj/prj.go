// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/project"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a SnpTree project and prints the information of the
different project elements into the standard output.

For the distance matrix, it prints the distribution of the distances between
pairs of samples.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Trees) != "" {
		if err := printTrees(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Metadata) != "" {
		if err := printMetadata(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Distances) != "" {
		if err := printDistances(c.Stdout(), p); err != nil {
			return err
		}
	}
	if err := printSettings(c.Stdout(), p); err != nil {
		return err
	}
	return nil
}

func printTrees(w io.Writer, p *project.Project) error {
	ts, err := p.Trees()
	if err != nil {
		return err
	}

	terms := make(map[string]bool)
	for _, t := range ts {
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	fmt.Fprintf(w, "Trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Trees))
	fmt.Fprintf(w, "\ttrees: %d\n", len(ts))
	fmt.Fprintf(w, "\tterminals: %d\n", len(terms))
	fmt.Fprintf(w, "\n")
	return nil
}

func printMetadata(w io.Writer, p *project.Project) error {
	tab, err := p.Metadata("")
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Metadata:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Metadata))
	fmt.Fprintf(w, "\tsamples: %d\n", tab.Len())
	fmt.Fprintf(w, "\tcolumns: %d\n", len(tab.Columns()))
	fmt.Fprintf(w, "\n")
	return nil
}

func printDistances(w io.Writer, p *project.Project) error {
	m, err := p.Distances()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Distances:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Distances))
	fmt.Fprintf(w, "\tsamples: %d\n", m.Len())

	d := m.Pairs()
	if len(d) > 0 {
		slices.Sort(d)
		mean, sd := stat.MeanStdDev(d, nil)
		fmt.Fprintf(w, "\tpairs: %d\n", len(d))
		fmt.Fprintf(w, "\tmean: %.3f (sd %.3f)\n", mean, sd)
		fmt.Fprintf(w, "\tmedian: %.3f [%.3f-%.3f]\n", stat.Quantile(0.5, stat.Empirical, d, nil), d[0], d[len(d)-1])
		fmt.Fprintf(w, "\t95%% interval: %.3f-%.3f\n", stat.Quantile(0.025, stat.Empirical, d, nil), stat.Quantile(0.975, stat.Empirical, d, nil))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printSettings(w io.Writer, p *project.Project) error {
	s, err := p.Settings()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Settings:\n")
	if n := p.Path(project.Settings); n != "" {
		fmt.Fprintf(w, "\tfile: %s\n", n)
	} else {
		fmt.Fprintf(w, "\tfile: <default values>\n")
	}
	fmt.Fprintf(w, "\tgradient: %s\n", s.Gradient())
	fmt.Fprintf(w, "\tladder: %s\n", s.Ladder())
	fmt.Fprintf(w, "\tmax categories: %d\n", s.MaxCats())
	fmt.Fprintf(w, "\n")
	return nil
}
