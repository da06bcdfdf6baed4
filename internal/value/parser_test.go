package value_test

import (
	"errors"
	"testing"

	"bennypowers.dev/csstheme/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	parsed := value.Parse("theme(colors)")
	require.Len(t, parsed.Nodes, 1)

	fn := parsed.Nodes[0]
	assert.Equal(t, value.Function, fn.Type)
	assert.Equal(t, "theme", fn.Value)
	require.Len(t, fn.Nodes, 1)
	assert.Equal(t, value.Word, fn.Nodes[0].Type)
	assert.Equal(t, "colors", fn.Nodes[0].Value)
	assert.False(t, fn.Unclosed)
}

func TestParseFunctionInnerWhitespace(t *testing.T) {
	parsed := value.Parse("theme( colors )")
	require.Len(t, parsed.Nodes, 1)

	fn := parsed.Nodes[0]
	assert.Equal(t, " ", fn.Before)
	assert.Equal(t, " ", fn.After)
	assert.Equal(t, "colors", value.Stringify(fn.Nodes), "inner whitespace is not part of the arguments")
}

func TestParseSeparators(t *testing.T) {
	parsed := value.Parse("theme(a), theme(b)")
	require.Len(t, parsed.Nodes, 3)

	assert.Equal(t, value.Function, parsed.Nodes[0].Type)
	div := parsed.Nodes[1]
	assert.Equal(t, value.Div, div.Type)
	assert.Equal(t, ",", div.Value)
	assert.Equal(t, "", div.Before)
	assert.Equal(t, " ", div.After)
	assert.Equal(t, value.Function, parsed.Nodes[2].Type)
}

func TestParseWordsAndSpaces(t *testing.T) {
	parsed := value.Parse("1px solid red")
	var types []value.NodeType
	var values []string
	for _, n := range parsed.Nodes {
		types = append(types, n.Type)
		values = append(values, n.Value)
	}
	assert.Equal(t, []value.NodeType{value.Word, value.Space, value.Word, value.Space, value.Word}, types)
	assert.Equal(t, []string{"1px", " ", "solid", " ", "red"}, values)
}

func TestParseStrings(t *testing.T) {
	t.Run("double quoted with escape", func(t *testing.T) {
		parsed := value.Parse(`"a\"b"`)
		require.Len(t, parsed.Nodes, 1)
		assert.Equal(t, value.String, parsed.Nodes[0].Type)
		assert.Equal(t, `a\"b`, parsed.Nodes[0].Value)
		assert.Equal(t, byte('"'), parsed.Nodes[0].Quote)
	})

	t.Run("single quoted", func(t *testing.T) {
		parsed := value.Parse(`'x'`)
		require.Len(t, parsed.Nodes, 1)
		assert.Equal(t, "x", parsed.Nodes[0].Value)
		assert.Equal(t, byte('\''), parsed.Nodes[0].Quote)
	})

	t.Run("unclosed", func(t *testing.T) {
		parsed := value.Parse(`"abc`)
		require.Len(t, parsed.Nodes, 1)
		assert.True(t, parsed.Nodes[0].Unclosed)
		assert.Equal(t, "abc", parsed.Nodes[0].Value)
	})
}

func TestParseURL(t *testing.T) {
	t.Run("unquoted argument is one word", func(t *testing.T) {
		parsed := value.Parse("url( data:image/png;base64,iVBO )")
		require.Len(t, parsed.Nodes, 1)
		fn := parsed.Nodes[0]
		assert.Equal(t, "url", fn.Value)
		assert.Equal(t, " ", fn.Before)
		assert.Equal(t, " ", fn.After)
		require.Len(t, fn.Nodes, 1)
		assert.Equal(t, value.Word, fn.Nodes[0].Type)
		assert.Equal(t, "data:image/png;base64,iVBO", fn.Nodes[0].Value)
	})

	t.Run("quoted argument is a string", func(t *testing.T) {
		parsed := value.Parse(`url("a.png")`)
		require.Len(t, parsed.Nodes, 1)
		require.Len(t, parsed.Nodes[0].Nodes, 1)
		assert.Equal(t, value.String, parsed.Nodes[0].Nodes[0].Type)
	})
}

func TestParseComment(t *testing.T) {
	parsed := value.Parse("a/* note */b")
	require.Len(t, parsed.Nodes, 3)
	assert.Equal(t, value.Comment, parsed.Nodes[1].Type)
	assert.Equal(t, " note ", parsed.Nodes[1].Value)
}

func TestParseSourceIndex(t *testing.T) {
	parsed := value.Parse("black from theme(colors)")
	last := parsed.Nodes[len(parsed.Nodes)-1]
	assert.Equal(t, value.Function, last.Type)
	assert.Equal(t, 11, last.SourceIndex)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"red",
		"theme(colors)",
		"black, white from theme(colors)",
		"no-borders from theme( base-styles )",
		"calc(100% - (2 * var(--gap, 4px))) / 3",
		"url(data:image/png;base64,abc)",
		"url( 'a b.png' )",
		"a , b ,c",
		"f( , )",
		"f()",
		"()",
		"x/*c*/y",
		"'single' \"double\"",
		"rgba(0 0 0 / 50%)",
		"a:b",
		"\\",
		"a\\",
		"\\(theme\\)",
		// malformed
		"theme(",
		"theme(colors",
		"f(g(h( ",
		"'unclosed",
		`"escaped\`,
		"/* open comment",
		"a ) b",
		"url(unclosed",
		")))",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, value.Parse(input).String())
		})
	}
}

func TestParseUnclosedFunction(t *testing.T) {
	parsed := value.Parse("theme(colors ")
	require.Len(t, parsed.Nodes, 1)
	fn := parsed.Nodes[0]
	assert.True(t, fn.Unclosed)
	assert.Equal(t, " ", fn.After)
}

func TestStrayCloseParenIsWord(t *testing.T) {
	parsed := value.Parse("a)")
	require.Len(t, parsed.Nodes, 2)
	assert.Equal(t, value.Word, parsed.Nodes[1].Type)
	assert.Equal(t, ")", parsed.Nodes[1].Value)
}

func TestWalk(t *testing.T) {
	parsed := value.Parse("a(b(c), d) e")

	collect := func(skip string) []string {
		var visited []string
		err := parsed.Walk(func(n *value.Node) error {
			visited = append(visited, n.Value)
			if n.Value == skip {
				return value.SkipChildren
			}
			return nil
		})
		require.NoError(t, err)
		return visited
	}

	t.Run("depth-first, left to right", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", ",", "d", " ", "e"}, collect(""))
	})

	t.Run("SkipChildren skips arguments only", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", ",", "d", " ", "e"}, collect("b"))
	})

	t.Run("error stops the walk", func(t *testing.T) {
		boom := errors.New("boom")
		var visited []string
		err := parsed.Walk(func(n *value.Node) error {
			visited = append(visited, n.Value)
			if n.Value == "c" {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"a", "b", "c"}, visited)
	})
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "function", value.Function.String())
	assert.Equal(t, "string", value.String.String())
	assert.Equal(t, "unknown", value.NodeType(99).String())
}
