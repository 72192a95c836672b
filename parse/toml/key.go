package toml

// parseKey consumes one key token: a bare key, a basic "..." key, or a
// literal '...' key. Returns the raw source text and the cooked string.
func (p *parser) parseKey() (raw, cooked string, err error) {
	start := p.pos
	switch {
	case p.peek() == '"':
		content, rawSpan, err := p.parseBasicStringToken()
		if err != nil {
			return "", "", err
		}
		return rawSpan, content, nil
	case p.peek() == '\'':
		content, rawSpan, err := p.parseLiteralStringToken()
		if err != nil {
			return "", "", err
		}
		return rawSpan, content, nil
	default:
		for isBareKeyChar(p.peek()) {
			p.pos++
		}
		if p.pos == start {
			return "", "", p.syntaxError(start, "key")
		}
		raw = p.input[start:p.pos]
		return raw, raw, nil
	}
}

// isKeyStart reports whether a keyval expression can begin at c.
func isKeyStart(c byte) bool {
	return isBareKeyChar(c) || c == '"' || c == '\''
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

// isBareKey reports whether s can be written without quoting.
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBareKeyChar(s[i]) {
			return false
		}
	}
	return true
}
