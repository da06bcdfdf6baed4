package value

import "errors"

// SkipChildren is returned by a WalkFunc to skip the arguments of the
// function node it was called with. It is never returned by Walk.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node visited by Walk
type WalkFunc func(n *Node) error

// Walk visits nodes depth-first, left to right, calling fn for each node
// before descending into its arguments. The first error other than
// SkipChildren stops the walk and is returned unchanged.
func Walk(nodes []*Node, fn WalkFunc) error {
	for _, n := range nodes {
		err := fn(n)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if n.Type == Function {
			if err := Walk(n.Nodes, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk visits every node of the value; see the package-level Walk
func (v *Value) Walk(fn WalkFunc) error {
	return Walk(v.Nodes, fn)
}
