package stylesheet

// Position is a 1-based line and column in a source document.
// Columns count bytes.
type Position struct {
	Line   int
	Column int
}

// Node is a statement of a stylesheet: *Rule, *AtRule, *Decl or *Comment
type Node interface {
	// Offset returns the byte offset where the node starts, after its leading whitespace
	Offset() int
	write(b *builder)
}

// Root is a parsed stylesheet
type Root struct {
	// File names the stylesheet in positions and errors; may be empty
	File string
	// Origin is where the stylesheet starts in its host document. The zero
	// value means the stylesheet is the whole document.
	Origin Position
	Nodes  []Node
	// After is the whitespace after the last node
	After string
	// lines holds the byte offset of every line start
	lines []int
}

// Rule is a selector with a block, e.g. ".a { color: red }"
type Rule struct {
	Before   string
	Selector string
	// Between is the whitespace between the selector and "{"
	Between string
	Nodes   []Node
	// After is the whitespace before "}"
	After string
	// Closed is false when the input ended before "}"
	Closed bool
	start  int
}

// AtRule is an at-rule, with or without a block, e.g. "@value a from b;"
type AtRule struct {
	Before string
	// Name is the rule name without "@"
	Name      string
	AfterName string
	// Params is the parameter text, without trailing whitespace
	Params string
	// Between is the whitespace between the params and ";" or "{"
	Between   string
	Nodes     []Node
	After     string
	HasBlock  bool
	Semicolon bool
	Closed    bool
	start     int
}

// Decl is a declaration, e.g. "color: red"
type Decl struct {
	Before string
	Prop   string
	// Between is everything from the end of Prop to the start of Value, colon included
	Between string
	Value   string
	// After is the whitespace between the value and ";"
	After     string
	Semicolon bool
	start     int
}

// Comment is a /* ... */ comment between statements
type Comment struct {
	Before string
	Text   string
	Closed bool
	start  int
}

// Offset returns the byte offset of the rule's selector
func (r *Rule) Offset() int { return r.start }

// Offset returns the byte offset of the at-rule's "@"
func (a *AtRule) Offset() int { return a.start }

// Offset returns the byte offset of the declaration's property
func (d *Decl) Offset() int { return d.start }

// Offset returns the byte offset of the comment's "/*"
func (c *Comment) Offset() int { return c.start }
