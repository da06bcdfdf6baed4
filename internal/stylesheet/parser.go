package stylesheet

import "strings"

// Parse parses a stylesheet into rules, at-rules, declarations and comments.
//
// Parsing is best effort and never fails. Statements without a colon become
// declarations with an empty value, a stray "}" at the top level is kept as
// literal text, and unterminated blocks are marked as not closed. For every
// input, Parse(file, source).String() == source.
func Parse(file, source string) *Root {
	p := &parser{src: source}
	nodes, after, _ := p.parseBlock(false)
	return &Root{
		File:  file,
		Nodes: nodes,
		After: after,
		lines: lineStarts(source),
	}
}

type parser struct {
	src string
	pos int
}

// parseBlock reads statements up to the end of input or, when nested, up to
// and including the closing brace.
func (p *parser) parseBlock(nested bool) (nodes []Node, after string, closed bool) {
	for {
		before := p.readSpace()
		if p.eof() {
			return nodes, before, false
		}

		c := p.src[p.pos]
		switch {
		case nested && c == '}':
			p.pos++
			return nodes, before, true
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			nodes = append(nodes, p.parseComment(before))
		case c == '@':
			nodes = append(nodes, p.parseAtRule(before, nested))
		default:
			nodes = append(nodes, p.parseStatement(before, nested))
		}
	}
}

func (p *parser) parseComment(before string) *Comment {
	comment := &Comment{Before: before, start: p.pos}
	p.pos += 2

	end := strings.Index(p.src[p.pos:], "*/")
	if end < 0 {
		comment.Text = p.src[p.pos:]
		p.pos = len(p.src)
		return comment
	}

	comment.Text = p.src[p.pos : p.pos+end]
	comment.Closed = true
	p.pos += end + 2
	return comment
}

func (p *parser) parseAtRule(before string, nested bool) *AtRule {
	rule := &AtRule{Before: before, start: p.pos}
	p.pos++

	nameStart := p.pos
	for !p.eof() && isNameByte(p.src[p.pos]) {
		if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			p.pos++
		}
		p.pos++
	}
	rule.Name = p.src[nameStart:p.pos]
	rule.AfterName = p.readSpace()

	paramsStart := p.pos
	stop := p.scanStatement(nested)
	raw := p.src[paramsStart:stop]
	rule.Params = strings.TrimRight(raw, spaceChars)
	rule.Between = raw[len(rule.Params):]
	p.pos = stop

	if p.eof() {
		return rule
	}

	switch p.src[p.pos] {
	case ';':
		rule.Semicolon = true
		p.pos++
	case '{':
		rule.HasBlock = true
		p.pos++
		rule.Nodes, rule.After, rule.Closed = p.parseBlock(true)
	}

	return rule
}

// parseStatement reads a rule or a declaration
func (p *parser) parseStatement(before string, nested bool) Node {
	start := p.pos
	stop := p.scanStatement(nested)
	text := p.src[start:stop]
	p.pos = stop

	if !p.eof() && p.src[p.pos] == '{' {
		rule := &Rule{Before: before, start: start}
		rule.Selector = strings.TrimRight(text, spaceChars)
		rule.Between = text[len(rule.Selector):]
		p.pos++
		rule.Nodes, rule.After, rule.Closed = p.parseBlock(true)
		return rule
	}

	decl := newDecl(before, text, start)
	if !p.eof() && p.src[p.pos] == ';' {
		decl.Semicolon = true
		p.pos++
	}
	return decl
}

// newDecl splits declaration text at its first top-level colon
func newDecl(before, text string, start int) *Decl {
	decl := &Decl{Before: before, start: start}

	colon := indexTopLevel(text, ':')
	if colon < 0 {
		decl.Prop = strings.TrimRight(text, spaceChars)
		decl.After = text[len(decl.Prop):]
		return decl
	}

	decl.Prop = strings.TrimRight(text[:colon], spaceChars)
	rest := text[colon+1:]
	valueStart := strings.TrimLeft(rest, spaceChars)
	decl.Between = text[len(decl.Prop):colon+1] + rest[:len(rest)-len(valueStart)]
	decl.Value = strings.TrimRight(valueStart, spaceChars)
	decl.After = valueStart[len(decl.Value):]
	return decl
}

// scanStatement returns the offset of the byte ending the statement that
// starts at the current position: a top-level ";", any "{", a "}" when
// nested, or the end of input. Strings, comments and escapes are skipped.
func (p *parser) scanStatement(nested bool) int {
	depth := 0
	i := p.pos
	for i < len(p.src) {
		c := p.src[i]
		switch {
		case c == '\\':
			i += 2
			continue
		case c == '"' || c == '\'':
			i = skipString(p.src, i)
			continue
		case c == '/' && i+1 < len(p.src) && p.src[i+1] == '*':
			i = skipComment(p.src, i)
			continue
		case c == '(' || c == '[':
			depth++
		case (c == ')' || c == ']') && depth > 0:
			depth--
		case c == ';' && depth == 0:
			return i
		case c == '{':
			return i
		case c == '}' && nested:
			return i
		}
		i++
	}
	return len(p.src)
}

// indexTopLevel returns the index of the first sep outside strings,
// comments and parentheses, or -1
func indexTopLevel(s string, sep byte) int {
	depth := 0
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			i += 2
			continue
		case c == '"' || c == '\'':
			i = skipString(s, i)
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i = skipComment(s, i)
			continue
		case c == '(' || c == '[':
			depth++
		case (c == ')' || c == ']') && depth > 0:
			depth--
		case c == sep && depth == 0:
			return i
		}
		i++
	}
	return -1
}

// skipString returns the offset just past the string starting at i
func skipString(s string, i int) int {
	quote := s[i]
	for i++; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(s)
}

// skipComment returns the offset just past the comment starting at i
func skipComment(s string, i int) int {
	end := strings.Index(s[i+2:], "*/")
	if end < 0 {
		return len(s)
	}
	return i + 2 + end + 2
}

func (p *parser) readSpace() string {
	start := p.pos
	for !p.eof() && strings.IndexByte(spaceChars, p.src[p.pos]) >= 0 {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

const spaceChars = " \t\n\r\f"

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '\\' ||
		c >= 0x80
}
