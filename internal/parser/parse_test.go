package parser_test

import (
	"testing"

	"bennypowers.dev/csstheme/internal/documents"
	"bennypowers.dev/csstheme/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSSFromDocument(t *testing.T) {
	tests := []struct {
		name       string
		languageID string
		content    string
		want       []string
	}{
		{
			name:       "css",
			languageID: documents.LanguageCSS,
			content:    "a { color: theme(colors); border: theme(borders); }",
			want:       []string{"colors", "borders"},
		},
		{
			name:       "html",
			languageID: documents.LanguageHTML,
			content:    `<style>a { color: theme(colors); }</style><p style="margin: theme(spacing)"></p>`,
			want:       []string{"colors", "spacing"},
		},
		{
			name:       "javascript",
			languageID: documents.LanguageJavaScript,
			content:    "const s = css`a { color: theme(colors); }`;",
			want:       []string{"colors"},
		},
		{
			name:       "typescript",
			languageID: documents.LanguageTypeScript,
			content:    "export const s = css`a { color: theme(colors); }`;",
			want:       []string{"colors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.ParseCSSFromDocument(tt.content, tt.languageID)
			require.NoError(t, err)
			require.NotNil(t, result)

			var args []string
			for _, call := range result.Calls {
				args = append(args, call.Argument)
			}
			assert.ElementsMatch(t, tt.want, args)
		})
	}

	t.Run("unsupported language", func(t *testing.T) {
		_, err := parser.ParseCSSFromDocument("{}", "json")
		assert.ErrorIs(t, err, documents.ErrUnsupportedLanguage)
	})
}

func TestFindCallsSorted(t *testing.T) {
	page := "<p style=\"color: theme(first)\"></p>\n<style>a { color: theme(second); }</style>\n"
	doc := documents.NewDocument("index.html", documents.LanguageHTML, page)

	calls, err := parser.FindCalls(doc)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Argument)
	assert.Equal(t, "second", calls[1].Argument)
}
