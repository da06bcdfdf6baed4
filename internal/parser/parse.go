package parser

import (
	"cmp"
	"fmt"
	"slices"

	"bennypowers.dev/csstheme/internal/documents"
	"bennypowers.dev/csstheme/internal/parser/css"
	"bennypowers.dev/csstheme/internal/parser/html"
	"bennypowers.dev/csstheme/internal/parser/js"
)

// ParseCSSFromDocument extracts theme() calls from any supported document type.
// Dispatches to the appropriate parser based on language ID.
func ParseCSSFromDocument(content, languageID string) (*css.ParseResult, error) {
	switch languageID {
	case documents.LanguageCSS:
		return css.Parse(content), nil

	case documents.LanguageHTML:
		p := html.AcquireParser()
		defer html.ReleaseParser(p)
		return p.ParseCSS(content)

	case documents.LanguageJavaScript, documents.LanguageTypeScript:
		p := js.AcquireParser()
		defer js.ReleaseParser(p)
		return p.ParseCSS(content)

	default:
		return nil, fmt.Errorf("%w: %q", documents.ErrUnsupportedLanguage, languageID)
	}
}

// FindCalls returns the theme() calls of a document sorted by position
func FindCalls(doc *documents.Document) ([]*css.Call, error) {
	result, err := ParseCSSFromDocument(doc.Content(), doc.LanguageID())
	if err != nil {
		return nil, err
	}

	calls := slices.Clone(result.Calls)
	slices.SortStableFunc(calls, func(a, b *css.Call) int {
		return cmp.Or(
			cmp.Compare(a.Range.Start.Line, b.Range.Start.Line),
			cmp.Compare(a.Range.Start.Character, b.Range.Start.Character),
		)
	})
	return calls, nil
}
