// Package toml implements a format-preserving TOML parser: every byte of
// the input, comments and blank lines included, survives in the parsed tree
// and comes back out of String() unchanged, so a document can be edited
// programmatically without touching the formatting around the edit.
//
// Scope:
// - TOML v1.0.0 core features
// - Lossless document tree (tables / arrays of tables / values with decoration)
// - Deterministic, positioned errors
// - Safe post-parse edits (Get / SetValue / AppendValue / Del)
//
// Non-goals (by design):
// - Schema validation
// - Semantic interpretation of values
// - Streaming or incremental parsing
package toml

// Parse parses a complete TOML document. On success the returned tree
// re-serializes to exactly the input text. On failure it returns a single
// *Error: a positioned syntax error, or a duplicate-key error when the
// grammar matched but the tree rejected the entry. No partial document is
// ever returned.
func Parse(input string) (*Document, error) {
	p := &parser{input: input, doc: &Document{Root: newTable()}}

	// toml = expression *( newline expression )
	// expression = ws comment / ws keyval / ws table / ws
	p.onWS(p.ws())
	for !p.atEOF() {
		var err error
		switch {
		case p.peek() == '#':
			err = p.parseComment()
		case p.peek() == '\n' || p.hasPrefix("\r\n"):
			err = p.parseNewline()
		case p.peek() == '[':
			err = p.parseTableHeader()
		case isKeyStart(p.peek()):
			err = p.parseKeyval()
		default:
			// no expression can start here: residual input
			err = p.syntaxError(p.pos, "end of input")
		}
		if err != nil {
			return nil, err
		}
		p.onWS(p.ws())
	}
	return p.doc, nil
}

// onWS accumulates decoration into the document's trailing buffer. The next
// keyval or table header drains it as its leading decoration; whatever is
// left at end of input stays as the document's trailing text.
func (p *parser) onWS(w string) {
	p.doc.Trailing += w
}

// takeTrailing drains the pending decoration buffer.
func (p *parser) takeTrailing() string {
	w := p.doc.Trailing
	p.doc.Trailing = ""
	return w
}

func (p *parser) parseComment() error {
	c, _ := p.comment()
	e, _ := p.newline()
	p.onWS(c + e)
	return nil
}

func (p *parser) parseNewline() error {
	e, _ := p.newline()
	p.onWS(e)
	return nil
}

// parseKeyval parses `key ws '=' ws value line-trailing` and inserts the
// entry into the table addressed by the active path.
func (p *parser) parseKeyval() error {
	keyStart := p.pos
	rawKey, key, err := p.parseKey()
	if err != nil {
		return err
	}
	preSep := p.ws()
	if !p.tryTake('=') {
		return p.syntaxError(p.pos, "`=` after key")
	}
	preVal := p.ws()
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	trailing, err := p.lineTrailing()
	if err != nil {
		return err
	}
	v.Decor = Decor{Prefix: preVal, Suffix: trailing}
	kv := TableKeyValue{
		Key:   newRepr("", rawKey, preSep),
		Value: v,
	}
	return p.onKeyval(key, kv, keyStart)
}

// onKeyval finalizes decoration and performs the tree mutation: the pending
// buffer becomes the front of the key's leading decoration, then the entry
// goes into the active table, duplicates rejected.
func (p *parser) onKeyval(key string, kv TableKeyValue, at int) error {
	prefix := p.takeTrailing()
	kv.Key.Decor.Prefix = prefix + kv.Key.Decor.Prefix

	table := descendPath(p.doc.Root, p.path)
	if table.Contains(key) {
		return &Error{
			Kind:  ErrDuplicateKey,
			Pos:   position(p.input, at),
			Key:   key,
			Table: p.tablePath(),
		}
	}
	table.insert(key, kv)
	return nil
}
