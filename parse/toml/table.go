package toml

import "fmt"

// parseTableHeader handles both [path] and [[path]] expressions: it parses
// the bracketed dotted path, drains the pending decoration into the header's
// prefix, creates the addressed table (and any implicit intermediates) and
// makes its path the active one for the keyvals that follow.
func (p *parser) parseTableHeader() error {
	start := p.pos
	p.pos++ // '['
	array := p.tryTake('[')

	var path []string
	for {
		p.ws()
		_, key, err := p.parseKey()
		if err != nil {
			return err
		}
		path = append(path, key)
		p.ws()
		if p.tryTake('.') {
			continue
		}
		break
	}
	if !p.tryTake(']') {
		return p.syntaxError(p.pos, "closing `]` of table header")
	}
	if array && !p.tryTake(']') {
		return p.syntaxError(p.pos, "closing `]]` of array table header")
	}
	raw := p.input[start:p.pos]
	trailing, err := p.lineTrailing()
	if err != nil {
		return err
	}

	prefix := p.takeTrailing()
	header := newRepr(prefix, raw, trailing)
	if array {
		err = p.onArrayTableHeader(path, header, start)
	} else {
		err = p.onTableHeader(path, header, start)
	}
	if err != nil {
		return err
	}
	p.path = path
	return nil
}

// onTableHeader defines the standard table at path, creating implicit
// intermediate tables as needed.
func (p *parser) onTableHeader(path []string, header Repr, at int) error {
	parent, err := p.descendOrCreate(path[:len(path)-1], at)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	existing, ok := parent.Entry(last)
	if !ok {
		t := newTable()
		t.header = header
		t.pos = at
		parent.insert(last, TableKeyValue{Key: headerKeyRepr(last), Value: t})
		return nil
	}
	t, isTable := existing.Value.(*Table)
	if !isTable {
		return &Error{Kind: ErrKeyConflict, Pos: position(p.input, at), Key: last, Table: dottedPath(path[:len(path)-1])}
	}
	if !t.implicit {
		return &Error{Kind: ErrDuplicateTable, Pos: position(p.input, at), Key: last, Table: dottedPath(path[:len(path)-1])}
	}
	t.implicit = false
	t.header = header
	t.pos = at
	return nil
}

// onArrayTableHeader appends a fresh table to the array of tables at path,
// creating the array on first sight.
func (p *parser) onArrayTableHeader(path []string, header Repr, at int) error {
	parent, err := p.descendOrCreate(path[:len(path)-1], at)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	t := newTable()
	t.header = header
	t.pos = at
	existing, ok := parent.Entry(last)
	if !ok {
		arr := &ArrayOfTables{tables: []*Table{t}}
		parent.insert(last, TableKeyValue{Key: headerKeyRepr(last), Value: arr})
		return nil
	}
	arr, isArr := existing.Value.(*ArrayOfTables)
	if !isArr {
		return &Error{Kind: ErrKeyConflict, Pos: position(p.input, at), Key: last, Table: dottedPath(path[:len(path)-1])}
	}
	arr.tables = append(arr.tables, t)
	return nil
}

// descendOrCreate walks the intermediate segments of a header path,
// materializing implicit tables for segments not seen before. A segment
// held by an array of tables resolves to its most recent element.
func (p *parser) descendOrCreate(path []string, at int) (*Table, error) {
	t := p.doc.Root
	for i, seg := range path {
		existing, ok := t.Entry(seg)
		if !ok {
			next := newTable()
			next.implicit = true
			t.insert(seg, TableKeyValue{Key: headerKeyRepr(seg), Value: next})
			t = next
			continue
		}
		switch it := existing.Value.(type) {
		case *Table:
			t = it
		case *ArrayOfTables:
			t = it.last()
		default:
			return nil, &Error{Kind: ErrKeyConflict, Pos: position(p.input, at), Key: seg, Table: dottedPath(path[:i])}
		}
	}
	return t, nil
}

// headerKeyRepr is the key representation for entries created by table
// headers; the header Repr on the table itself carries the real source
// text, so the entry key holds only the segment.
func headerKeyRepr(seg string) Repr {
	return newRepr("", seg, "")
}

// descendPath returns the table addressed by an active path previously
// established by a table header. The header handler created every step, so
// a missing or non-table step means the parser itself broke its invariant;
// that is a bug, not a malformed document, and it aborts.
func descendPath(t *Table, path []string) *Table {
	for _, seg := range path {
		kv, ok := t.Entry(seg)
		if !ok {
			panic(fmt.Sprintf("toml: internal error: active table path segment %q is not present", seg))
		}
		switch it := kv.Value.(type) {
		case *Table:
			t = it
		case *ArrayOfTables:
			t = it.last()
		default:
			panic(fmt.Sprintf("toml: internal error: active table path segment %q is not a table", seg))
		}
	}
	return t
}
