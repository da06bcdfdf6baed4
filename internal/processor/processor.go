package processor

import (
	"fmt"
	"strings"

	"bennypowers.dev/csstheme/internal/documents"
	"bennypowers.dev/csstheme/internal/parser/html"
	"bennypowers.dev/csstheme/internal/parser/js"
	"bennypowers.dev/csstheme/internal/stylesheet"
	"bennypowers.dev/csstheme/theme"
)

// Processor rewrites theme() calls in documents of any supported language
type Processor struct {
	plugin *theme.Plugin
}

// region is a stylesheet embedded in a host document
type region struct {
	content    string
	start, end uint
	// line and col are 0-indexed
	line, col uint
}

// New creates a processor that rewrites stylesheets with plugin
func New(plugin *theme.Plugin) *Processor {
	return &Processor{plugin: plugin}
}

// Process returns the document content with every theme() call rewritten.
// The document itself is not modified.
func (p *Processor) Process(doc *documents.Document) (string, error) {
	content := doc.Content()

	switch doc.LanguageID() {
	case documents.LanguageCSS:
		return p.plugin.ProcessString(doc.Path(), content)
	case documents.LanguageHTML:
		return p.splice(doc.Path(), content, htmlRegions(content))
	case documents.LanguageJavaScript, documents.LanguageTypeScript:
		return p.splice(doc.Path(), content, jsRegions(content))
	default:
		return "", fmt.Errorf("%w: %s", documents.ErrUnsupportedLanguage, doc.Path())
	}
}

// splice processes each region and substitutes the result into the host
// content. Regions must be sorted and must not overlap.
func (p *Processor) splice(file, content string, regions []region) (string, error) {
	if len(regions) == 0 {
		return content, nil
	}

	var b strings.Builder
	b.Grow(len(content))

	last := uint(0)
	for _, r := range regions {
		root := stylesheet.Parse(file, r.content)
		root.Origin = stylesheet.Position{
			Line:   int(r.line) + 1, //nolint:gosec // G115: region positions from tree-sitter are bounded by file size
			Column: int(r.col) + 1,  //nolint:gosec // G115: region positions from tree-sitter are bounded by file size
		}
		if err := p.plugin.Process(root); err != nil {
			return "", err
		}

		b.WriteString(content[last:r.start])
		b.WriteString(root.String())
		last = r.end
	}
	b.WriteString(content[last:])

	return b.String(), nil
}

func htmlRegions(content string) []region {
	parser := html.AcquireParser()
	defer html.ReleaseParser(parser)

	var regions []region
	for _, r := range parser.StyleRegions(content) {
		regions = append(regions, region{
			content: r.Content,
			start:   r.StartByte,
			end:     r.EndByte,
			line:    r.StartLine,
			col:     r.StartCol,
		})
	}
	return regions
}

func jsRegions(content string) []region {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	var regions []region
	for _, s := range parser.StyleSegments(content) {
		regions = append(regions, region{
			content: s.Content,
			start:   s.StartByte,
			end:     s.EndByte,
			line:    s.StartLine,
			col:     s.StartCol,
		})
	}
	return regions
}
