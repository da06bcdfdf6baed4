package js

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"bennypowers.dev/csstheme/internal/log"
	"bennypowers.dev/csstheme/internal/parser/css"
	htmlparser "bennypowers.dev/csstheme/internal/parser/html"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Template tags whose literals carry stylesheets
const (
	TagCSS  = "css"
	TagHTML = "html"
)

// templateQuery matches tagged templates in both the plain form (css`...`)
// and the generic form (css<T>`...`). The grammar reads the generic form as
// nested binary expressions rather than a call with type arguments.
// See: https://github.com/tree-sitter/tree-sitter-typescript/issues/341
const templateQuery = `
(call_expression
	function: (identifier) @tag
	arguments: (template_string) @template)

(binary_expression
	left: (binary_expression
		left: (identifier) @tag)
	right: (template_string) @template)
`

// Parser extracts stylesheets from tagged template literals in JS/TS source
type Parser struct {
	parser *sitter.Parser
	query  *sitter.Query
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}

		query, qerr := sitter.NewQuery(jsLang, templateQuery)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile template query: %v", qerr))
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

// ParseTemplates returns the css and html tagged templates of a module,
// sorted by position, each split into literal segments at ${...}
func (p *Parser) ParseTemplates(source string) []TemplateRegion {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var regions []TemplateRegion
	names := p.query.CaptureNames()
	matches := cursor.Matches(p.query, tree.RootNode(), sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var tag string
		var template *sitter.Node
		for _, capture := range match.Captures {
			switch names[capture.Index] {
			case "tag":
				tag = string(sourceBytes[capture.Node.StartByte():capture.Node.EndByte()])
			case "template":
				template = &capture.Node
			}
		}

		if template == nil || (tag != TagCSS && tag != TagHTML) {
			continue
		}
		if segments := literalSegments(template, sourceBytes); len(segments) > 0 {
			regions = append(regions, TemplateRegion{Segments: segments, Tag: tag})
		}
	}

	slices.SortFunc(regions, func(a, b TemplateRegion) int {
		return cmp.Compare(a.Segments[0].StartByte, b.Segments[0].StartByte)
	})
	return regions
}

// literalSegments returns the string_fragment children of a template_string,
// leaving out ${...} substitutions
func literalSegments(template *sitter.Node, sourceBytes []byte) []Segment {
	var segments []Segment
	for i := uint(0); i < template.ChildCount(); i++ {
		child := template.Child(i)
		if child.Kind() != "string_fragment" {
			continue
		}
		start := child.StartPosition()
		segments = append(segments, Segment{
			Content:   string(sourceBytes[child.StartByte():child.EndByte()]),
			StartByte: child.StartByte(),
			EndByte:   child.EndByte(),
			StartLine: start.Row,
			StartCol:  start.Column,
		})
	}
	return segments
}

// StyleSegments returns the segments that hold stylesheet text: every
// segment of a css template and the <style> element contents of html
// templates, sorted by StartByte.
func (p *Parser) StyleSegments(source string) []Segment {
	var segments []Segment
	var htmlParser *htmlparser.Parser

	for _, tmpl := range p.ParseTemplates(source) {
		switch tmpl.Tag {
		case TagCSS:
			segments = append(segments, tmpl.Segments...)
		case TagHTML:
			if htmlParser == nil {
				htmlParser = htmlparser.AcquireParser()
				defer htmlparser.ReleaseParser(htmlParser)
			}
			for _, seg := range tmpl.Segments {
				for _, region := range htmlParser.StyleRegions(seg.Content) {
					segments = append(segments, seg.child(region))
				}
			}
		}
	}

	slices.SortFunc(segments, func(a, b Segment) int {
		return cmp.Compare(a.StartByte, b.StartByte)
	})
	return segments
}

// ParseCSS finds the theme() calls of css templates, and of the <style>
// elements and style attributes of html templates, with positions in
// module coordinates
func (p *Parser) ParseCSS(source string) (*css.ParseResult, error) {
	result := &css.ParseResult{Calls: []*css.Call{}}

	templates := p.ParseTemplates(source)
	if len(templates) == 0 {
		return result, nil
	}

	htmlParser := htmlparser.AcquireParser()
	defer htmlparser.ReleaseParser(htmlParser)

	for _, tmpl := range templates {
		for _, seg := range tmpl.Segments {
			var (
				parsed *css.ParseResult
				err    error
			)
			if tmpl.Tag == TagCSS {
				parsed = css.Parse(seg.Content)
			} else {
				if parsed, err = htmlParser.ParseCSS(seg.Content); err != nil {
					log.Debug("Failed to parse html template at %d:%d: %v", seg.StartLine, seg.StartCol, err)
					continue
				}
			}

			for _, call := range parsed.Calls {
				call.Range.Start = seg.hostPosition(call.Range.Start)
				call.Range.End = seg.hostPosition(call.Range.End)
			}
			result.Calls = append(result.Calls, parsed.Calls...)
		}
	}

	return result, nil
}

// hostPosition maps a position within the segment to module coordinates.
// Only first-line columns are shifted.
func (s Segment) hostPosition(pos css.Position) css.Position {
	if pos.Line == 0 {
		pos.Character += uint32(s.StartCol) //nolint:gosec // G115: segment positions from tree-sitter are bounded by file size
	}
	pos.Line += uint32(s.StartLine) //nolint:gosec // G115: segment positions from tree-sitter are bounded by file size
	return pos
}

// child maps a <style> region found inside the segment to module coordinates
func (s Segment) child(region htmlparser.CSSRegion) Segment {
	col := region.StartCol
	if region.StartLine == 0 {
		col += s.StartCol
	}
	return Segment{
		Content:   region.Content,
		StartByte: s.StartByte + region.StartByte,
		EndByte:   s.StartByte + region.EndByte,
		StartLine: s.StartLine + region.StartLine,
		StartCol:  col,
	}
}
