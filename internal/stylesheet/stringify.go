package stylesheet

import "strings"

type builder = strings.Builder

// String serializes the stylesheet, preserving all original formatting
func (r *Root) String() string {
	var b builder
	writeNodes(&b, r.Nodes)
	b.WriteString(r.After)
	return b.String()
}

func writeNodes(b *builder, nodes []Node) {
	for _, n := range nodes {
		n.write(b)
	}
}

func (r *Rule) write(b *builder) {
	b.WriteString(r.Before)
	b.WriteString(r.Selector)
	b.WriteString(r.Between)
	b.WriteByte('{')
	writeNodes(b, r.Nodes)
	b.WriteString(r.After)
	if r.Closed {
		b.WriteByte('}')
	}
}

func (a *AtRule) write(b *builder) {
	b.WriteString(a.Before)
	b.WriteByte('@')
	b.WriteString(a.Name)
	b.WriteString(a.AfterName)
	b.WriteString(a.Params)
	b.WriteString(a.Between)

	switch {
	case a.HasBlock:
		b.WriteByte('{')
		writeNodes(b, a.Nodes)
		b.WriteString(a.After)
		if a.Closed {
			b.WriteByte('}')
		}
	case a.Semicolon:
		b.WriteByte(';')
	}
}

func (d *Decl) write(b *builder) {
	b.WriteString(d.Before)
	b.WriteString(d.Prop)
	b.WriteString(d.Between)
	b.WriteString(d.Value)
	b.WriteString(d.After)
	if d.Semicolon {
		b.WriteByte(';')
	}
}

func (c *Comment) write(b *builder) {
	b.WriteString(c.Before)
	b.WriteString("/*")
	b.WriteString(c.Text)
	if c.Closed {
		b.WriteString("*/")
	}
}
