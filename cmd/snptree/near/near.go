// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package near implements a command to print
// the nearest neighbours of the samples in a project.
package near

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/project"
)

var Command = &command.Command{
	Usage: "near [--dist] <project-file> [<sample>...]",
	Short: "print the nearest neighbours of samples",
	Long: `
Command near reads the distance matrix of a SnpTree project and prints the
nearest neighbours of each sample in the standard output, as a TSV table.

The first argument of the command is the name of the project file. Any
additional argument will be interpreted as a sample identifier, and only the
neighbours of the indicated samples will be printed. By default, the
neighbours of all the samples in the matrix are printed.

Each neighbour is printed with its distance, and if there is a tie, all the
samples at the same distance are printed, separated by commas. If the flag
--dist is defined, the minimum distance will be printed in its own column.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var withDist bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&withDist, "dist", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	m, err := p.Distances()
	if err != nil {
		return err
	}

	ids := args[1:]
	if len(ids) == 0 {
		ids = m.IDs()
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	header := []string{"sample", "nearest"}
	if withDist {
		header = append(header, "distance")
	}
	if err := tsv.Write(header); err != nil {
		return err
	}
	for _, id := range ids {
		if !m.Has(id) {
			return fmt.Errorf("sample %q not found in distance matrix", id)
		}
		ns, err := m.Nearest(id)
		if err != nil {
			return err
		}
		row := []string{id, distmat.Join(ns, ", ")}
		if withDist {
			d := ""
			if len(ns) > 0 {
				d = strconv.FormatFloat(ns[0].Dist, 'f', -1, 64)
			}
			row = append(row, d)
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}
