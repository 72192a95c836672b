package toml

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// parseValue consumes exactly one value expression. The returned node keeps
// the exact raw source span; decoration is filled in by the caller, which is
// the only place that knows the surrounding whitespace.
func (p *parser) parseValue() (*Value, error) {
	switch {
	case p.hasPrefix(`"""`):
		return p.parseMultilineString('"')
	case p.peek() == '"':
		cooked, raw, err := p.parseBasicStringToken()
		if err != nil {
			return nil, err
		}
		return &Value{Raw: raw, Type: ValueString, V: cooked}, nil
	case p.hasPrefix("'''"):
		return p.parseMultilineString('\'')
	case p.peek() == '\'':
		cooked, raw, err := p.parseLiteralStringToken()
		if err != nil {
			return nil, err
		}
		return &Value{Raw: raw, Type: ValueString, V: cooked}, nil
	case p.peek() == '[':
		return p.parseArray()
	case p.peek() == '{':
		return p.parseInlineTable()
	default:
		return p.parseScalar()
	}
}

// ParseValue parses a standalone value expression, such as a replacement
// value supplied on a command line. Surrounding whitespace is allowed; any
// other leftover input is an error.
func ParseValue(s string) (*Value, error) {
	p := &parser{input: s}
	p.ws()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.ws()
	if !p.atEOF() {
		return nil, p.syntaxError(p.pos, "end of input after value")
	}
	return v, nil
}

// =========================
// Strings
// =========================

func (p *parser) parseBasicStringToken() (cooked, raw string, err error) {
	start := p.pos
	p.pos++ // opening quote
	for !p.atEOF() {
		c := p.peek()
		if c == '\\' {
			p.pos += 2
			continue
		}
		if c == '\n' {
			break
		}
		if c == '"' {
			p.pos++
			raw = p.input[start:p.pos]
			cooked, derr := decodeBasicString(raw[1:len(raw)-1], false)
			if derr != nil {
				return "", "", p.syntaxError(start, derr.Error())
			}
			return cooked, raw, nil
		}
		p.pos++
	}
	return "", "", p.syntaxError(start, "closing `\"` of string")
}

func (p *parser) parseLiteralStringToken() (cooked, raw string, err error) {
	start := p.pos
	p.pos++ // opening quote
	for !p.atEOF() {
		c := p.peek()
		if c == '\n' {
			break
		}
		if c == '\'' {
			p.pos++
			raw = p.input[start:p.pos]
			return raw[1 : len(raw)-1], raw, nil
		}
		p.pos++
	}
	return "", "", p.syntaxError(start, "closing `'` of literal string")
}

func (p *parser) parseMultilineString(quote byte) (*Value, error) {
	start := p.pos
	delim := strings.Repeat(string(quote), 3)
	p.pos += 3
	for !p.atEOF() {
		if quote == '"' && p.peek() == '\\' {
			p.pos += 2
			continue
		}
		if p.hasPrefix(delim) {
			p.pos += 3
			// up to two more quotes belong to the content, the delimiter
			// is the last run of three
			for i := 0; i < 2 && p.peek() == quote; i++ {
				p.pos++
			}
			raw := p.input[start:p.pos]
			content := raw[3 : len(raw)-3]
			content = trimFirstNewline(content)
			if quote == '\'' {
				return &Value{Raw: raw, Type: ValueString, V: content}, nil
			}
			cooked, err := decodeBasicString(content, true)
			if err != nil {
				return nil, p.syntaxError(start, err.Error())
			}
			return &Value{Raw: raw, Type: ValueString, V: cooked}, nil
		}
		p.pos++
	}
	return nil, p.syntaxError(start, "closing "+delim+" of multiline string")
}

func trimFirstNewline(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	if strings.HasPrefix(s, "\n") {
		return s[1:]
	}
	return s
}

func decodeBasicString(s string, multiline bool) (string, error) {
	if multiline {
		// a backslash at the end of a line eats the terminator and the
		// following whitespace
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\n' || (s[i+1] == '\r' && i+2 < len(s) && s[i+2] == '\n')) {
				i++
				for i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t' || s[i+1] == '\n' || s[i+1] == '\r') {
					i++
				}
				continue
			}
			b.WriteByte(s[i])
		}
		s = b.String()
	}
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' {
			out.WriteByte(ch)
			continue
		}
		if i+1 >= len(s) {
			return "", errors.New("escape sequence")
		}
		i++
		switch s[i] {
		case 'b':
			out.WriteByte('\b')
		case 't':
			out.WriteByte('\t')
		case 'n':
			out.WriteByte('\n')
		case 'f':
			out.WriteByte('\f')
		case 'r':
			out.WriteByte('\r')
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		case 'u':
			if i+4 >= len(s) {
				return "", errors.New("4-digit unicode escape")
			}
			r, err := parseHexRune(s[i+1 : i+5])
			if err != nil {
				return "", errors.New("4-digit unicode escape")
			}
			out.WriteRune(r)
			i += 4
		case 'U':
			if i+8 >= len(s) {
				return "", errors.New("8-digit unicode escape")
			}
			r, err := parseHexRune(s[i+1 : i+9])
			if err != nil {
				return "", errors.New("8-digit unicode escape")
			}
			out.WriteRune(r)
			i += 8
		default:
			return "", errors.New("valid escape character")
		}
	}
	return out.String(), nil
}

func parseHexRune(h string) (rune, error) {
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// =========================
// Scalars
// =========================

// parseScalar handles booleans, integers, floats and date-times: anything
// that is a single unquoted token.
func (p *parser) parseScalar() (*Value, error) {
	start := p.pos
	for isScalarChar(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return nil, p.syntaxError(start, "value")
	}
	tok := p.input[start:p.pos]

	// local date-time written with a space separator
	if isLocalDate(tok) && p.peek() == ' ' &&
		isDigit(p.peekAt(1)) && isDigit(p.peekAt(2)) && p.peekAt(3) == ':' {
		p.pos++
		for isScalarChar(p.peek()) {
			p.pos++
		}
		tok = p.input[start:p.pos]
	}

	if tok == "true" || tok == "false" {
		return &Value{Raw: tok, Type: ValueBool, V: tok == "true"}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, tok); err == nil {
		return &Value{Raw: tok, Type: ValueDatetime, V: t}, nil
	}
	// offset datetime with a space separator, e.g. 1979-05-27 07:32:00Z
	if t, err := time.Parse("2006-01-02 15:04:05.999999999Z07:00", tok); err == nil {
		return &Value{Raw: tok, Type: ValueDatetime, V: t}, nil
	}
	if v, kind, ok := parseLocalDateTime(tok); ok {
		return &Value{Raw: tok, Type: kind, V: v}, nil
	}
	if i, err := parseIntToken(tok); err == nil {
		return &Value{Raw: tok, Type: ValueInt, V: i}, nil
	}
	if f, err := parseFloatToken(tok); err == nil {
		return &Value{Raw: tok, Type: ValueFloat, V: f}, nil
	}
	return nil, p.syntaxError(start, "value")
}

func isScalarChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_' || c == '+' || c == '-' || c == '.' || c == ':'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLocalDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func parseLocalDateTime(s string) (any, ValueKind, bool) {
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, ValueLocalDatetime, true
		}
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, ValueLocalDate, true
	}
	timeLayouts := []string{
		"15:04:05",
		"15:04:05.999999999",
	}
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, ValueLocalTime, true
		}
	}
	return nil, 0, false
}

func parseIntToken(s string) (int64, error) {
	s = strings.ReplaceAll(s, "_", "")
	sign := int64(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	base := 0
	switch {
	case strings.HasPrefix(s, "0x"):
		base = 16
	case strings.HasPrefix(s, "0o"):
		base = 8
	case strings.HasPrefix(s, "0b"):
		base = 2
	}
	if base != 0 {
		v, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return 0, err
		}
		return int64(v) * sign, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return i * sign, nil
}

func parseFloatToken(s string) (float64, error) {
	if s == "inf" || s == "+inf" {
		return math.Inf(+1), nil
	}
	if s == "-inf" {
		return math.Inf(-1), nil
	}
	if s == "nan" || s == "+nan" || s == "-nan" {
		return math.NaN(), nil
	}
	s = strings.ReplaceAll(s, "_", "")
	return strconv.ParseFloat(s, 64)
}

// =========================
// Arrays and inline tables
// =========================

func (p *parser) parseArray() (*Value, error) {
	start := p.pos
	p.pos++ // '['
	var elems []*Value
	for {
		p.skipArrayTrivia()
		if p.atEOF() {
			return nil, p.syntaxError(start, "closing `]` of array")
		}
		if p.tryTake(']') {
			break
		}
		elemStart := p.pos
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if len(elems) > 0 && v.Type != elems[0].Type {
			return nil, p.syntaxError(elemStart, "array element of uniform type")
		}
		elems = append(elems, v)
		p.skipArrayTrivia()
		if p.tryTake(',') {
			continue
		}
		if p.atEOF() {
			return nil, p.syntaxError(start, "closing `]` of array")
		}
		if p.tryTake(']') {
			break
		}
		return nil, p.syntaxError(p.pos, "`,` or `]` in array")
	}
	return &Value{Raw: p.input[start:p.pos], Type: ValueArray, V: elems}, nil
}

// skipArrayTrivia moves past whitespace, newlines and comments, which are
// all legal between array elements. The array's raw span keeps them, so
// nothing needs attaching.
func (p *parser) skipArrayTrivia() {
	for {
		p.ws()
		if _, ok := p.newline(); ok {
			continue
		}
		if _, ok := p.comment(); ok {
			continue
		}
		return
	}
}

func (p *parser) parseInlineTable() (*Value, error) {
	start := p.pos
	p.pos++ // '{'
	t := newTable()
	first := true
	for {
		preKey := p.ws()
		if first {
			first = false
			if p.tryTake('}') {
				break
			}
		}
		keyStart := p.pos
		rawKey, key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		preSep := p.ws()
		if !p.tryTake('=') {
			return nil, p.syntaxError(p.pos, "`=` after key")
		}
		preVal := p.ws()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		sufVal := p.ws()
		if t.Contains(key) {
			return nil, &Error{
				Kind:  ErrDuplicateKey,
				Pos:   position(p.input, keyStart),
				Key:   key,
				Table: "(inline table)",
			}
		}
		v.Decor = Decor{Prefix: preVal, Suffix: sufVal}
		t.insert(key, TableKeyValue{Key: newRepr(preKey, rawKey, preSep), Value: v})
		if p.tryTake(',') {
			continue
		}
		if p.tryTake('}') {
			break
		}
		return nil, p.syntaxError(p.pos, "`,` or `}` in inline table")
	}
	return &Value{Raw: p.input[start:p.pos], Type: ValueInlineTable, V: t}, nil
}
