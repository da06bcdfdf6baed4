package theme

import (
	"strings"

	"bennypowers.dev/csstheme/internal/value"
)

// FunctionName is the name of the marker function replaced by Transform
const FunctionName = "theme"

// Transform replaces every theme(<path>) call in a CSS value with a
// double-quoted string holding resolve(<path>).
//
// The raw path passed to resolve is the call's argument text exactly as
// written, without the whitespace just inside the parentheses. Arguments
// of a theme() call are not searched for further calls. Everything else in
// the value, including comments and whitespace, is preserved. The first
// error returned by resolve is returned unchanged.
func Transform(v string, resolve func(rawPath string) (string, error)) (string, error) {
	if !strings.Contains(v, FunctionName) {
		return v, nil
	}

	parsed := value.Parse(v)
	err := parsed.Walk(func(n *value.Node) error {
		if n.Type != value.Function || n.Value != FunctionName {
			return nil
		}

		resolved, err := resolve(value.Stringify(n.Nodes))
		if err != nil {
			return err
		}

		n.Type = value.String
		n.Quote = '"'
		n.Value = resolved
		n.Nodes = nil
		n.Before = ""
		n.After = ""
		n.Unclosed = false
		return value.SkipChildren
	})
	if err != nil {
		return "", err
	}

	return parsed.String(), nil
}
