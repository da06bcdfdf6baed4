package css

// Position represents a position in a text document (0-based)
type Position struct {
	Line      uint32
	Character uint32
}

// Range represents a range in a text document
type Range struct {
	Start Position
	End   Position
}

// Call represents a theme() function call
type Call struct {
	// Name is the function name as written
	Name string
	// Argument is the argument text between the parentheses, trimmed
	Argument string
	// Property is the declaration property containing the call, if any
	Property string
	Range    Range
}

// ParseResult contains the results of parsing CSS
type ParseResult struct {
	Calls []*Call
}
