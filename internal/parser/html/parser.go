package html

import (
	"fmt"
	"sync"

	"bennypowers.dev/csstheme/internal/parser/css"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// styleQuery captures <style> element text and style="..." attribute values
const styleQuery = `
(style_element (raw_text) @style)

(attribute
	(attribute_name) @_name
	(quoted_attribute_value (attribute_value) @attribute)
	(#eq? @_name "style"))
`

// Parser extracts stylesheets from HTML documents
type Parser struct {
	parser *sitter.Parser
	query  *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		query, qerr := sitter.NewQuery(htmlLang, styleQuery)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile style query: %v", qerr))
		}

		return &Parser{parser: parser, query: query}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Regions returns the <style> elements and style attributes of an HTML
// document in document order
func (p *Parser) Regions(source string) []CSSRegion {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var regions []CSSRegion
	names := p.query.CaptureNames()
	matches := cursor.Matches(p.query, tree.RootNode(), sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			switch names[capture.Index] {
			case "style":
				regions = append(regions, newRegion(&capture.Node, sourceBytes, StyleTag))
			case "attribute":
				regions = append(regions, newRegion(&capture.Node, sourceBytes, StyleAttribute))
			}
		}
	}
	return regions
}

// StyleRegions returns only the <style> element regions of an HTML document
func (p *Parser) StyleRegions(source string) []CSSRegion {
	var styles []CSSRegion
	for _, region := range p.Regions(source) {
		if region.Type == StyleTag {
			styles = append(styles, region)
		}
	}
	return styles
}

func newRegion(node *sitter.Node, sourceBytes []byte, kind RegionType) CSSRegion {
	start := node.StartPosition()
	return CSSRegion{
		Content:   string(sourceBytes[node.StartByte():node.EndByte()]),
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		StartLine: start.Row,
		StartCol:  start.Column,
		Type:      kind,
	}
}

// ParseCSS finds the theme() calls of every region, with positions in HTML
// document coordinates. A style attribute parses as a bare declaration list.
func (p *Parser) ParseCSS(source string) (*css.ParseResult, error) {
	result := &css.ParseResult{Calls: []*css.Call{}}

	for _, region := range p.Regions(source) {
		parsed := css.Parse(region.Content)
		for _, call := range parsed.Calls {
			call.Range.Start = region.hostPosition(call.Range.Start)
			call.Range.End = region.hostPosition(call.Range.End)
		}
		result.Calls = append(result.Calls, parsed.Calls...)
	}

	return result, nil
}

// hostPosition maps a position within the region to document coordinates.
// Only first-line columns are shifted.
func (r CSSRegion) hostPosition(pos css.Position) css.Position {
	if pos.Line == 0 {
		pos.Character += uint32(r.StartCol) //nolint:gosec // G115: region positions from tree-sitter are bounded by file size
	}
	pos.Line += uint32(r.StartLine) //nolint:gosec // G115: region positions from tree-sitter are bounded by file size
	return pos
}
