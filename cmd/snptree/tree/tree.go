// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with the trees of a project.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/snptree/cmd/snptree/tree/list"
	"github.com/js-arias/snptree/cmd/snptree/tree/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for sample trees",
}

func init() {
	Command.Add(list.Command)
	Command.Add(terms.Command)
}
