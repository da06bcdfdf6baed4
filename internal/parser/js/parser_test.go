package js_test

import (
	"testing"

	"bennypowers.dev/csstheme/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const component = "import { LitElement, css, html } from 'lit';\n" +
	"\n" +
	"export class MyButton extends LitElement {\n" +
	"  static styles = css`\n" +
	"    :host { color: theme(colors); }\n" +
	"  `;\n" +
	"\n" +
	"  render() {\n" +
	"    return html`<style>.a { border: theme(borders); }</style><slot></slot>`;\n" +
	"  }\n" +
	"}\n"

func TestParseTemplates(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantCSS  int
		wantHTML int
	}{
		{
			name:     "css tagged template",
			source:   "const styles = css`a { color: red; }`;",
			wantCSS:  1,
			wantHTML: 0,
		},
		{
			name:     "html tagged template",
			source:   "const tpl = html`<p>hi</p>`;",
			wantCSS:  0,
			wantHTML: 1,
		},
		{
			name:     "template with expressions",
			source:   "const styles = css`a { color: ${color}; background: theme(bg); }`;",
			wantCSS:  1,
			wantHTML: 0,
		},
		{
			name:     "no tagged templates",
			source:   "const s = `a { color: theme(colors); }`;",
			wantCSS:  0,
			wantHTML: 0,
		},
		{
			name:     "component",
			source:   component,
			wantCSS:  1,
			wantHTML: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := js.AcquireParser()
			defer js.ReleaseParser(parser)

			templates := parser.ParseTemplates(tt.source)

			cssCount := 0
			htmlCount := 0
			for _, tmpl := range templates {
				switch tmpl.Tag {
				case js.TagCSS:
					cssCount++
				case js.TagHTML:
					htmlCount++
				}
			}

			assert.Equal(t, tt.wantCSS, cssCount, "css template count")
			assert.Equal(t, tt.wantHTML, htmlCount, "html template count")
		})
	}
}

func TestTemplateSegmentsSkipExpressions(t *testing.T) {
	source := "const styles = css`a { color: ${color}; background: theme(bg); }`;"

	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	templates := parser.ParseTemplates(source)
	require.Len(t, templates, 1)

	segments := templates[0].Segments
	require.Len(t, segments, 2)
	assert.Equal(t, "a { color: ", segments[0].Content)
	assert.Equal(t, "; background: theme(bg); }", segments[1].Content)
	for _, seg := range segments {
		assert.Equal(t, seg.Content, source[seg.StartByte:seg.EndByte])
	}
}

func TestStyleSegments(t *testing.T) {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	segments := parser.StyleSegments(component)
	require.Len(t, segments, 2)

	assert.Equal(t, "\n    :host { color: theme(colors); }\n  ", segments[0].Content)
	assert.Equal(t, ".a { border: theme(borders); }", segments[1].Content)

	for _, seg := range segments {
		assert.Equal(t, seg.Content, component[seg.StartByte:seg.EndByte], "byte range matches content")
	}

	assert.Equal(t, uint(8), segments[1].StartLine, "style element inside html template on line 8")
}

func TestParseCSS(t *testing.T) {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	result, err := parser.ParseCSS(component)
	require.NoError(t, err)
	require.Len(t, result.Calls, 2)

	lines := map[string]uint32{}
	for _, call := range result.Calls {
		lines[call.Argument] = call.Range.Start.Line
	}
	assert.Equal(t, uint32(4), lines["colors"])
	assert.Equal(t, uint32(8), lines["borders"])
}
