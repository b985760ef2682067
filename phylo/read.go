// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"bufio"
	"errors"
	"io"
	"unicode"
)

// Read reads one or more trees from r.
// If the first character of the input
// (ignoring spaces)
// is an open parenthesis,
// the trees are read as Newick trees,
// otherwise they are read as a TSV file
// of time-calibrated trees.
func Read(r io.Reader) ([]*Tree, error) {
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty tree file")
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(c) || c == '\ufeff' {
			continue
		}
		if err := br.UnreadRune(); err != nil {
			return nil, err
		}
		if c == '(' || c == '[' {
			return ReadNewick(br)
		}
		return ReadTimeTrees(br)
	}
}
