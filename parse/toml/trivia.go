package toml

// ws consumes a run of spaces and tabs and returns it.
func (p *parser) ws() string {
	start := p.pos
	for {
		c := p.peek()
		if c != ' ' && c != '\t' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

// comment consumes '#' through the end of the line, excluding the line
// terminator. Returns the raw text and whether a comment was present.
func (p *parser) comment() (string, bool) {
	if p.peek() != '#' {
		return "", false
	}
	start := p.pos
	for !p.atEOF() {
		c := p.peek()
		if c == '\n' || (c == '\r' && p.peekAt(1) == '\n') {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos], true
}

// newline consumes "\n" or "\r\n" and returns it raw.
func (p *parser) newline() (string, bool) {
	if p.tryTake('\n') {
		return "\n", true
	}
	if p.hasPrefix("\r\n") {
		p.pos += 2
		return "\r\n", true
	}
	return "", false
}

// lineTrailing consumes everything through the end of the current line:
// whitespace, an optional comment, and the line terminator (or end of
// input). The raw text, terminator included, becomes the suffix decoration
// of the expression that precedes it.
func (p *parser) lineTrailing() (string, error) {
	start := p.pos
	p.ws()
	p.comment()
	if _, ok := p.newline(); !ok && !p.atEOF() {
		return "", p.syntaxError(p.pos, "newline or end of input after expression")
	}
	return p.input[start:p.pos], nil
}
