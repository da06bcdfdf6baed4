package css

import (
	"strings"

	"bennypowers.dev/csstheme/internal/stylesheet"
	"bennypowers.dev/csstheme/internal/value"
	"bennypowers.dev/csstheme/theme"
)

// Parse finds the theme() calls of a stylesheet.
//
// Calls are found where theme.Transform rewrites them: in declaration values
// and at-rule parameters, outside strings, comments and url() arguments.
// The arguments of a theme() call are not searched.
func Parse(source string) *ParseResult {
	root := stylesheet.Parse("", source)
	result := &ParseResult{
		Calls: []*Call{},
	}

	//nolint:errcheck // the callback never fails
	root.Walk(func(n stylesheet.Node) error {
		switch n := n.(type) {
		case *stylesheet.Decl:
			start := n.Offset() + len(n.Prop) + len(n.Between)
			result.Calls = append(result.Calls, findCalls(root, n.Value, start, n.Prop)...)
		case *stylesheet.AtRule:
			start := n.Offset() + len("@") + len(n.Name) + len(n.AfterName)
			result.Calls = append(result.Calls, findCalls(root, n.Params, start, "")...)
		}
		return nil
	})

	return result
}

// findCalls returns the theme() calls of a value starting at byte offset
// start of the stylesheet
func findCalls(root *stylesheet.Root, v string, start int, property string) []*Call {
	if !strings.Contains(v, theme.FunctionName) {
		return nil
	}

	var calls []*Call
	//nolint:errcheck // the callback only skips
	value.Parse(v).Walk(func(n *value.Node) error {
		if n.Type != value.Function || n.Value != theme.FunctionName {
			return nil
		}

		offset := start + n.SourceIndex
		calls = append(calls, &Call{
			Name:     n.Value,
			Argument: value.Stringify(n.Nodes),
			Property: property,
			Range: Range{
				Start: position(root, offset),
				End:   position(root, offset+len(n.String())),
			},
		})
		return value.SkipChildren
	})
	return calls
}

// position converts a byte offset to a 0-based position
func position(root *stylesheet.Root, offset int) Position {
	pos := root.Position(offset)
	return Position{
		Line:      uint32(pos.Line - 1),   //nolint:gosec // G115: positions are bounded by file size
		Character: uint32(pos.Column - 1), //nolint:gosec // G115: positions are bounded by file size
	}
}
