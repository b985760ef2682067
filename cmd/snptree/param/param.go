// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the drawing settings of a project.
package param

import (
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/snptree/colormap"
	"github.com/js-arias/snptree/project"
	"github.com/js-arias/snptree/settings"
)

var Command = &command.Command{
	Usage: `param [--file <file-name>]
	<project-file> [<parameter>=<value>...]`,
	Short: "manage drawing settings",
	Long: `
Command param manages the settings used to draw the trees of a SnpTree
project.

The first argument of the command is the name of the project file.

By default, the command will print the currently defined parameters. Any
additional argument will be interpreted as a parameter to be set, using the
format "<parameter>=<value>", for example:

	snptree param project.tab gradient=iridescent step=2

Valid parameters are:

	datemark   text that identifies date columns (default "date")
	gradient   color gradient for date columns (default "jet")
	ladder     ladderize the tree, "asc", "desc", or "none"
	linecolor  color of the branches, as "r,g,b"
	linewidth  width of the branches
	maxcats    maximum number of categories of a column
	neutral    color of nodes without metadata, as "r,g,b"
	nodate     color of samples without a valid date, as "r,g,b"
	step       vertical distance between terminals

By default, any change on the parameters will be stored in the current
settings file, or in a new file named after the project, if the project does
not have a settings file. Use the flag --file to define a new settings file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var settingsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&settingsFile, "file", "", "")
}

var params = map[settings.Param]bool{
	settings.DateMark:  true,
	settings.Gradient:  true,
	settings.Ladder:    true,
	settings.LineColor: true,
	settings.LineWidth: true,
	settings.MaxCats:   true,
	settings.Neutral:   true,
	settings.NoDate:    true,
	settings.Step:      true,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	s, err := p.Settings()
	if err != nil {
		return err
	}

	if len(args) == 1 && settingsFile == "" {
		printSettings(c.Stdout(), s)
		return nil
	}

	for _, a := range args[1:] {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return c.UsageError(fmt.Sprintf("invalid parameter %q", a))
		}
		prm := settings.Param(strings.ToLower(strings.TrimSpace(k)))
		if !params[prm] {
			return c.UsageError(fmt.Sprintf("unknown parameter %q", k))
		}
		if err := s.Set(prm, v); err != nil {
			return fmt.Errorf("parameter %q: %v", k, err)
		}
	}

	if settingsFile != "" {
		s.SetName(settingsFile)
	}
	if s.Name() == "" {
		s.SetName(strings.TrimSuffix(args[0], ".tab") + "-settings.tab")
	}
	if err := s.Write(); err != nil {
		return err
	}
	if p.Path(project.Settings) != s.Name() {
		p.Add(project.Settings, s.Name())
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func printSettings(w io.Writer, s *settings.Settings) {
	fmt.Fprintf(w, "%s\t%s\n", settings.DateMark, s.DateMark())
	fmt.Fprintf(w, "%s\t%s\n", settings.Gradient, s.Gradient())
	fmt.Fprintf(w, "%s\t%s\n", settings.Ladder, s.Ladder())
	fmt.Fprintf(w, "%s\t%s\n", settings.LineColor, colormap.Token(s.LineColor()))
	fmt.Fprintf(w, "%s\t%.2f\n", settings.LineWidth, s.LineWidth())
	fmt.Fprintf(w, "%s\t%d\n", settings.MaxCats, s.MaxCats())
	fmt.Fprintf(w, "%s\t%s\n", settings.Neutral, colormap.Token(s.Neutral()))
	fmt.Fprintf(w, "%s\t%s\n", settings.NoDate, colormap.Token(s.NoDate()))
	fmt.Fprintf(w, "%s\t%.2f\n", settings.Step, s.Step())
}
