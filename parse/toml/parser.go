package toml

// parser is the single mutable state of one parse: the input cursor, the
// document under construction and the active table path. It is owned by one
// Parse call and never shared.
type parser struct {
	input string
	pos   int
	doc   *Document
	path  []string // active table path, cooked segments
}

func (p *parser) atEOF() bool { return p.pos >= len(p.input) }

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.input) {
		return 0
	}
	return p.input[p.pos+off]
}

func (p *parser) tryTake(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) hasPrefix(s string) bool {
	if p.pos+len(s) > len(p.input) {
		return false
	}
	return p.input[p.pos:p.pos+len(s)] == s
}

func (p *parser) syntaxError(at int, expected string) *Error {
	return &Error{Kind: ErrSyntax, Pos: position(p.input, at), Expected: expected}
}

// tablePath renders the active path for diagnostics.
func (p *parser) tablePath() string {
	return dottedPath(p.path)
}

func dottedPath(segs []string) string {
	if len(segs) == 0 {
		return "(root)"
	}
	out := segs[0]
	for _, s := range segs[1:] {
		out += "." + s
	}
	return out
}
