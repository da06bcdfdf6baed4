package stylesheet

import (
	"fmt"
	"sort"
)

// NodeError reports a failure while processing a node, with its location
type NodeError struct {
	File string
	Position
	Node Node
	Err  error
}

func (e *NodeError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %v", file, e.Line, e.Column, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Walk calls fn for every node of the stylesheet, depth-first, in source
// order, parents before their children. The first error returned by fn
// stops the walk and is returned as a *NodeError locating the node.
func (r *Root) Walk(fn func(Node) error) error {
	return r.walk(r.Nodes, fn)
}

func (r *Root) walk(nodes []Node, fn func(Node) error) error {
	for _, n := range nodes {
		if err := fn(n); err != nil {
			return &NodeError{
				File:     r.File,
				Position: r.Position(n.Offset()),
				Node:     n,
				Err:      err,
			}
		}

		var children []Node
		switch n := n.(type) {
		case *Rule:
			children = n.Nodes
		case *AtRule:
			children = n.Nodes
		}
		if err := r.walk(children, fn); err != nil {
			return err
		}
	}
	return nil
}

// Position converts a byte offset in the stylesheet source to a position
// in the host document
func (r *Root) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}

	lines := r.lines
	if len(lines) == 0 {
		lines = []int{0}
	}

	// number of line starts at or before offset
	line := sort.SearchInts(lines, offset+1)
	pos := Position{Line: line, Column: offset - lines[line-1] + 1}

	if r.Origin.Line == 0 {
		return pos
	}
	if pos.Line == 1 {
		pos.Column += r.Origin.Column - 1
	}
	pos.Line += r.Origin.Line - 1
	return pos
}

func lineStarts(source string) []int {
	lines := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}
