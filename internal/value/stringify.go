package value

import "strings"

// String serializes the value back to CSS source
func (v *Value) String() string {
	return Stringify(v.Nodes)
}

// String serializes a single node back to CSS source
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// Stringify serializes a node sequence back to CSS source.
// For an unmodified parse result the output equals the parsed input.
func Stringify(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Type {
	case String:
		quote := n.Quote
		if quote == 0 {
			quote = '"'
		}
		b.WriteByte(quote)
		b.WriteString(n.Value)
		if !n.Unclosed {
			b.WriteByte(quote)
		}

	case Comment:
		b.WriteString("/*")
		b.WriteString(n.Value)
		if !n.Unclosed {
			b.WriteString("*/")
		}

	case Div:
		b.WriteString(n.Before)
		b.WriteString(n.Value)
		b.WriteString(n.After)

	case Function:
		b.WriteString(n.Value)
		b.WriteByte('(')
		b.WriteString(n.Before)
		for _, child := range n.Nodes {
			writeNode(b, child)
		}
		b.WriteString(n.After)
		if !n.Unclosed {
			b.WriteByte(')')
		}

	default:
		b.WriteString(n.Value)
	}
}
