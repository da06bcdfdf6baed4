package value

// NodeType identifies the kind of a value node
type NodeType int

const (
	// Word is any run of literal text: keywords, numbers, hashes, operators
	Word NodeType = iota
	// String is a quoted string literal
	String
	// Div is a separator: ",", "/" or ":"
	Div
	// Space is a run of whitespace between other nodes
	Space
	// Comment is a /* ... */ comment
	Comment
	// Function is a function call, or a parenthesized group when Value is empty
	Function
)

func (t NodeType) String() string {
	switch t {
	case Word:
		return "word"
	case String:
		return "string"
	case Div:
		return "div"
	case Space:
		return "space"
	case Comment:
		return "comment"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// Node is a single node of a parsed CSS value.
//
// Which fields are meaningful depends on Type:
//   - Word, Space: Value holds the literal text
//   - String: Value holds the content between the quotes, Quote the quote byte
//   - Comment: Value holds the text between /* and */
//   - Div: Value holds the separator, Before/After the surrounding whitespace
//   - Function: Value holds the name, Nodes the arguments, Before/After the
//     whitespace just inside the parentheses
type Node struct {
	Type   NodeType
	Value  string
	Before string
	After  string
	Nodes  []*Node
	// SourceIndex is the byte offset of the node in the parsed string
	SourceIndex int
	Quote       byte
	// Unclosed is set for strings, comments and functions that hit the end
	// of input before their terminator
	Unclosed bool
}

// Value is a parsed CSS value or at-rule parameter list
type Value struct {
	Nodes []*Node
}
