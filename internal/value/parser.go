package value

import "strings"

// Parse parses a CSS declaration value or at-rule parameter string.
//
// Parsing never fails: unterminated strings, comments and functions are
// marked Unclosed and a stray ")" becomes a word, so that String always
// reproduces the input exactly.
func Parse(s string) *Value {
	p := &parser{src: s}
	nodes, _, _, _ := p.parseList(false)
	return &Value{Nodes: nodes}
}

type parser struct {
	src string
	pos int
}

// parseList reads nodes up to the end of input, or up to and including the
// closing parenthesis when inside a function. before and after are the
// whitespace just inside the parentheses.
func (p *parser) parseList(inFunction bool) (nodes []*Node, before, after string, closed bool) {
	if inFunction {
		before = p.readSpace()
	}

	for {
		start := p.pos
		space := p.readSpace()

		if p.eof() {
			if inFunction {
				after = space
			} else if space != "" {
				nodes = append(nodes, &Node{Type: Space, Value: space, SourceIndex: start})
			}
			return nodes, before, after, false
		}

		c := p.src[p.pos]
		switch {
		case c == ')' && inFunction:
			p.pos++
			return nodes, before, space, true

		case isDiv(c) && !p.startsComment():
			div := &Node{Type: Div, Value: string(c), Before: space, SourceIndex: p.pos}
			p.pos++
			div.After = p.readSpace()
			nodes = append(nodes, div)

		default:
			if space != "" {
				nodes = append(nodes, &Node{Type: Space, Value: space, SourceIndex: start})
			}
			nodes = append(nodes, p.parseNode())
		}
	}
}

// parseNode reads one non-space, non-div node at the current position
func (p *parser) parseNode() *Node {
	start := p.pos
	c := p.src[p.pos]

	switch {
	case c == '"' || c == '\'':
		return p.parseString()
	case p.startsComment():
		return p.parseComment()
	case c == '(':
		return p.parseFunction("", start)
	case c == ')':
		p.pos++
		return &Node{Type: Word, Value: ")", SourceIndex: start}
	}

	word := p.readWord()
	if !p.eof() && p.src[p.pos] == '(' {
		return p.parseFunction(word, start)
	}
	return &Node{Type: Word, Value: word, SourceIndex: start}
}

// parseFunction reads a function body; the current position is the opening parenthesis
func (p *parser) parseFunction(name string, start int) *Node {
	p.pos++
	fn := &Node{Type: Function, Value: name, SourceIndex: start}

	if strings.EqualFold(name, "url") && !p.quotedArgumentAhead() {
		p.parseURL(fn)
		return fn
	}

	nodes, before, after, closed := p.parseList(true)
	fn.Nodes = nodes
	fn.Before = before
	fn.After = after
	fn.Unclosed = !closed
	return fn
}

// parseURL reads an unquoted url() argument as a single raw word
func (p *parser) parseURL(fn *Node) {
	fn.Before = p.readSpace()

	start := p.pos
	for !p.eof() && p.src[p.pos] != ')' {
		if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			p.pos++
		}
		p.pos++
	}

	content := p.src[start:p.pos]
	trimmed := strings.TrimRight(content, spaceChars)
	fn.After = content[len(trimmed):]
	if trimmed != "" {
		fn.Nodes = []*Node{{Type: Word, Value: trimmed, SourceIndex: start}}
	}

	if p.eof() {
		fn.Unclosed = true
		return
	}
	p.pos++
}

func (p *parser) parseString() *Node {
	start := p.pos
	quote := p.src[p.pos]
	p.pos++

	contentStart := p.pos
	for !p.eof() {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
			if p.pos > len(p.src) {
				p.pos = len(p.src)
			}
			continue
		case quote:
			node := &Node{Type: String, Value: p.src[contentStart:p.pos], Quote: quote, SourceIndex: start}
			p.pos++
			return node
		}
		p.pos++
	}

	return &Node{Type: String, Value: p.src[contentStart:], Quote: quote, Unclosed: true, SourceIndex: start}
}

func (p *parser) parseComment() *Node {
	start := p.pos
	p.pos += 2

	end := strings.Index(p.src[p.pos:], "*/")
	if end < 0 {
		node := &Node{Type: Comment, Value: p.src[p.pos:], Unclosed: true, SourceIndex: start}
		p.pos = len(p.src)
		return node
	}

	node := &Node{Type: Comment, Value: p.src[p.pos : p.pos+end], SourceIndex: start}
	p.pos += end + 2
	return node
}

// readWord reads literal text up to the next space, quote, separator or parenthesis
func (p *parser) readWord() string {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' {
			p.pos += 2
			if p.pos > len(p.src) {
				p.pos = len(p.src)
			}
			continue
		}
		if isSpace(c) || isDiv(c) || c == '"' || c == '\'' || c == '(' || c == ')' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) readSpace() string {
	start := p.pos
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// quotedArgumentAhead reports whether the next non-space byte opens a string
func (p *parser) quotedArgumentAhead() bool {
	for i := p.pos; i < len(p.src); i++ {
		if isSpace(p.src[i]) {
			continue
		}
		return p.src[i] == '"' || p.src[i] == '\''
	}
	return false
}

func (p *parser) startsComment() bool {
	return strings.HasPrefix(p.src[p.pos:], "/*")
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

const spaceChars = " \t\n\r\f"

func isSpace(c byte) bool {
	return strings.IndexByte(spaceChars, c) >= 0
}

func isDiv(c byte) bool {
	return c == ',' || c == '/' || c == ':'
}
