// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ReadNewick reads one or more trees
// in Newick (parenthetical) format.
//
// Each tree must end with a semicolon.
// Labels can be quoted with single quotes,
// and text between square brackets is ignored.
// Underscores in unquoted labels are kept,
// as they are usually part of sample IDs.
// If the label of an internal node is a number,
// it is taken as a support value
// and the node is left unnamed.
// Nodes without a branch length
// have a length of zero.
//
// Trees are named "tree.<index>",
// starting from 0.
func ReadNewick(r io.Reader) ([]*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &newick{data: data}
	var trees []*Tree
	for {
		p.skip()
		if p.eof() {
			break
		}
		t := New(fmt.Sprintf("tree.%d", len(trees)))
		if err := p.subtree(t, t.Root()); err != nil {
			return nil, fmt.Errorf("tree %d: %v", len(trees), err)
		}
		p.skip()
		if c := p.next(); c != ';' {
			return nil, fmt.Errorf("tree %d: at byte %d: expecting ';'", len(trees), p.pos)
		}
		trees = append(trees, t)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("newick: no tree found")
	}
	return trees, nil
}

type newick struct {
	data []byte
	pos  int
}

func (p *newick) eof() bool {
	return p.pos >= len(p.data)
}

func (p *newick) next() byte {
	if p.eof() {
		return 0
	}
	c := p.data[p.pos]
	p.pos++
	return c
}

func (p *newick) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

// Skip skips spaces and comments.
func (p *newick) skip() {
	for !p.eof() {
		c := p.data[p.pos]
		if c == '[' {
			for !p.eof() && p.data[p.pos] != ']' {
				p.pos++
			}
			p.pos++
			continue
		}
		if !unicode.IsSpace(rune(c)) {
			return
		}
		p.pos++
	}
}

func (p *newick) subtree(t *Tree, id int) error {
	p.skip()
	if p.peek() == '(' {
		p.pos++
		for {
			c, err := t.Add(id, "", 0)
			if err != nil {
				return err
			}
			if err := p.subtree(t, c); err != nil {
				return err
			}
			p.skip()
			x := p.next()
			if x == ',' {
				continue
			}
			if x == ')' {
				break
			}
			if x == 0 {
				return fmt.Errorf("unexpected end of data")
			}
			return fmt.Errorf("at byte %d: unexpected %q", p.pos-1, x)
		}
	}

	label, err := p.label()
	if err != nil {
		return err
	}
	if !t.IsTerm(id) {
		if _, err := strconv.ParseFloat(label, 64); err == nil {
			label = ""
		}
	}
	t.nodes[id].taxon = label

	p.skip()
	if p.peek() != ':' {
		return nil
	}
	p.pos++
	p.skip()
	start := p.pos
	for !p.eof() {
		c := p.data[p.pos]
		if strings.IndexByte("(),:;[", c) >= 0 || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	v := string(p.data[start:p.pos])
	l, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("at byte %d: invalid branch length %q", start, v)
	}
	if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fmt.Errorf("at byte %d: invalid branch length %q", start, v)
	}
	t.nodes[id].length = l
	return nil
}

func (p *newick) label() (string, error) {
	p.skip()
	if p.peek() == '\'' {
		p.pos++
		var b strings.Builder
		for {
			if p.eof() {
				return "", fmt.Errorf("unterminated quoted label")
			}
			c := p.next()
			if c == '\'' {
				if p.peek() != '\'' {
					break
				}
				p.pos++
			}
			b.WriteByte(c)
		}
		return b.String(), nil
	}

	start := p.pos
	for !p.eof() {
		c := p.data[p.pos]
		if strings.IndexByte("(),:;[", c) >= 0 || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	return string(p.data[start:p.pos]), nil
}
