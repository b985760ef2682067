// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// data files to a snptree project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/distmat"
	"github.com/js-arias/snptree/phylo"
	"github.com/js-arias/snptree/project"
	"github.com/js-arias/snptree/sample"
	"github.com/js-arias/snptree/settings"
)

var Command = &command.Command{
	Usage: `add [--trees <file>] [--metadata <file>] [--distances <file>]
	[--settings <file>] [--keys <file>] <project-file>`,
	Short: "add data files to a project",
	Long: `
Command add reads one or more data files, and adds them to a SnpTree project.
If the project does not exist, it will be created.

The argument of the command is the name of the project file.

Each file is read before it is added to the project, so only valid files are
added. The kind of each file is set with a flag:

	--trees      a Newick file, or a TSV file of time-calibrated trees
	--metadata   a metadata table
	--distances  a distance matrix
	--settings   a settings file; if the file does not exist, it will be
	             created with the default values
	--keys       a color key file

If a file for a dataset is already defined in the project, it will be
replaced.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var metaFile string
var distFile string
var settingsFile string
var keyFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "trees", "", "")
	c.Flags().StringVar(&metaFile, "metadata", "", "")
	c.Flags().StringVar(&distFile, "distances", "", "")
	c.Flags().StringVar(&settingsFile, "settings", "", "")
	c.Flags().StringVar(&keyFile, "keys", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if treeFile == "" && metaFile == "" && distFile == "" && settingsFile == "" && keyFile == "" {
		return c.UsageError("expecting a data file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if treeFile != "" {
		ts, err := readFile(treeFile, phylo.Read)
		if err != nil {
			return err
		}
		for _, t := range ts {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("on file %q: %v", treeFile, err)
			}
		}
		fmt.Fprintf(c.Stderr(), "trees: %d trees read from %q\n", len(ts), treeFile)
		p.Add(project.Trees, treeFile)
	}

	if metaFile != "" {
		tab, err := readFile(metaFile, func(r io.Reader) (*sample.Table, error) {
			return sample.Read(r, "")
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stderr(), "metadata: %d samples read from %q\n", tab.Len(), metaFile)
		p.Add(project.Metadata, metaFile)
	}

	if distFile != "" {
		m, err := readFile(distFile, distmat.Read)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stderr(), "distances: %d samples read from %q\n", m.Len(), distFile)
		p.Add(project.Distances, distFile)
	}

	if settingsFile != "" {
		if err := addSettings(c.Stderr()); err != nil {
			return err
		}
		p.Add(project.Settings, settingsFile)
	}

	if keyFile != "" {
		k, err := readFile(keyFile, colormap.ReadKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stderr(), "keys: %d colors read from %q\n", k.Len(), keyFile)
		p.Add(project.Keys, keyFile)
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readFile[T any](name string, read func(io.Reader) (T, error)) (T, error) {
	var v T
	f, err := os.Open(name)
	if err != nil {
		return v, err
	}
	defer f.Close()

	v, err = read(f)
	if err != nil {
		return v, fmt.Errorf("on file %q: %v", name, err)
	}
	return v, nil
}

func addSettings(w io.Writer) error {
	s, err := settings.Read(settingsFile)
	if errors.Is(err, os.ErrNotExist) {
		s = settings.New(settingsFile)
		if err := s.Write(); err != nil {
			return err
		}
		fmt.Fprintf(w, "settings: default settings written to %q\n", settingsFile)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "settings: read from %q\n", s.Name())
	return nil
}
