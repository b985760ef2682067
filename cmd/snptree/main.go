// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// SnpTree is a tool to draw sample trees
// together with sample metadata
// and SNP distances.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/snptree/cmd/snptree/add"
	"github.com/js-arias/snptree/cmd/snptree/build"
	"github.com/js-arias/snptree/cmd/snptree/check"
	"github.com/js-arias/snptree/cmd/snptree/draw"
	"github.com/js-arias/snptree/cmd/snptree/near"
	"github.com/js-arias/snptree/cmd/snptree/param"
	"github.com/js-arias/snptree/cmd/snptree/prj"
	"github.com/js-arias/snptree/cmd/snptree/tree"
)

var app = &command.Command{
	Usage: "snptree <command> [<argument>...]",
	Short: "a tool to draw sample trees with metadata",
}

func init() {
	app.Add(add.Command)
	app.Add(build.Command)
	app.Add(check.Command)
	app.Add(draw.Command)
	app.Add(near.Command)
	app.Add(param.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
