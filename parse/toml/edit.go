package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// =========================
// Post-parse access and edits
// =========================

// Get resolves a path of cooked keys from the root. An array-of-tables
// segment resolves through its most recent element, and inline tables are
// stepped into like any other table.
func (d *Document) Get(path ...string) (Item, bool) {
	var cur Item = d.Root
	for _, seg := range path {
		var t *Table
		switch x := cur.(type) {
		case *Table:
			t = x
		case *ArrayOfTables:
			if x.Len() == 0 {
				return nil, false
			}
			t = x.last()
		case *Value:
			if x.Type != ValueInlineTable {
				return nil, false
			}
			t = x.V.(*Table)
		default:
			return nil, false
		}
		next := t.Get(seg)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SetValue replaces the value of an existing key, keeping all surrounding
// formatting: the old decoration stays, only the value text changes.
// Returns false if the path does not resolve to a value entry.
func (d *Document) SetValue(path []string, v *Value) bool {
	if len(path) == 0 {
		return false
	}
	t, ok := d.tableAt(path[:len(path)-1])
	if !ok {
		return false
	}
	key := path[len(path)-1]
	kv, ok := t.Entry(key)
	if !ok {
		return false
	}
	old, isValue := kv.Value.(*Value)
	if !isValue {
		return false
	}
	nv := *v
	nv.Decor = old.Decor
	kv.Value = &nv
	t.replace(key, kv)
	return true
}

// AppendValue inserts `key = value` at the end of the table at tablePath,
// with canonical spacing and its own line terminator. Inserting over an
// existing key is a duplicate-key error.
func (d *Document) AppendValue(tablePath []string, key string, v *Value) error {
	t, ok := d.tableAt(tablePath)
	if !ok {
		return fmt.Errorf("toml: no table at %s", dottedPath(tablePath))
	}
	if t.Contains(key) {
		return &Error{Kind: ErrDuplicateKey, Key: key, Table: dottedPath(tablePath)}
	}
	// an implicit table has no header of its own, so nothing would carry
	// the new entry through serialization; give it one, placed last
	if t.implicit {
		segs := make([]string, len(tablePath))
		for i, s := range tablePath {
			segs[i] = keyRaw(s)
		}
		t.header = newRepr("", "["+strings.Join(segs, ".")+"]", "\n")
		t.implicit = false
		t.pos = d.maxHeaderPos() + 1
	}
	nv := *v
	nv.Decor = Decor{Prefix: " ", Suffix: "\n"}
	t.insert(key, TableKeyValue{Key: newRepr("", keyRaw(key), " "), Value: &nv})
	return nil
}

// Del removes the entry at path along with its decoration. Returns false
// if the path does not resolve.
func (d *Document) Del(path ...string) bool {
	if len(path) == 0 {
		return false
	}
	t, ok := d.tableAt(path[:len(path)-1])
	if !ok {
		return false
	}
	key := path[len(path)-1]
	if !t.Contains(key) {
		return false
	}
	t.remove(key)
	return true
}

// maxHeaderPos is the highest recorded header position in the document,
// or -1 when no table carries a header.
func (d *Document) maxHeaderPos() int {
	var tables []*Table
	collectHeaded(&tables, d.Root)
	max := -1
	for _, t := range tables {
		if t.pos > max {
			max = t.pos
		}
	}
	return max
}

func (d *Document) tableAt(path []string) (*Table, bool) {
	it, ok := d.Get(path...)
	if !ok {
		return nil, false
	}
	switch x := it.(type) {
	case *Table:
		return x, true
	case *ArrayOfTables:
		if x.Len() == 0 {
			return nil, false
		}
		return x.last(), true
	default:
		return nil, false
	}
}

// keyRaw renders a cooked key as source text, quoting when it cannot be
// written bare.
func keyRaw(key string) string {
	if isBareKey(key) {
		return key
	}
	return strconv.Quote(key)
}

// ToUntyped strips all formatting and returns plain Go values: maps for
// tables, slices for arrays, cooked scalars for values.
func ToUntyped(it Item) any {
	switch x := it.(type) {
	case *Value:
		switch x.Type {
		case ValueArray:
			elems := x.V.([]*Value)
			out := make([]any, len(elems))
			for i, e := range elems {
				out[i] = ToUntyped(e)
			}
			return out
		case ValueInlineTable:
			return ToUntyped(x.V.(*Table))
		default:
			return x.V
		}
	case *Table:
		m := make(map[string]any, x.Len())
		for _, k := range x.Keys() {
			m[k] = ToUntyped(x.Get(k))
		}
		return m
	case *ArrayOfTables:
		out := make([]any, 0, x.Len())
		for _, t := range x.Tables() {
			out = append(out, ToUntyped(t))
		}
		return out
	default:
		return nil
	}
}
