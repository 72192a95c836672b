package toml

// =========================
// AST Definitions
// =========================

type Kind uint8

const (
	KindNone Kind = iota
	KindValue
	KindTable
	KindArrayOfTables
)

// Item is what a table entry holds: a value, a sub-table, an array of
// tables, or nothing yet.
type Item interface {
	Kind() Kind
}

// None is the absent placeholder.
type None struct{}

func (None) Kind() Kind { return KindNone }

// -------- Decoration --------

// Decor is the non-semantic text around an element: whitespace, comments
// and line terminators, kept verbatim so the document re-serializes to the
// exact input bytes.
type Decor struct {
	Prefix string
	Suffix string
}

// Repr is an element's raw source text together with its decoration.
type Repr struct {
	Raw   string
	Decor Decor
}

func newRepr(prefix, raw, suffix string) Repr {
	return Repr{Raw: raw, Decor: Decor{Prefix: prefix, Suffix: suffix}}
}

// -------- Table --------

// TableKeyValue is one table entry: the key as written plus its item.
type TableKeyValue struct {
	Key   Repr
	Value Item
}

// Table is an ordered mapping from cooked key to entry. Insertion order is
// exactly source order of first appearance.
type Table struct {
	header   Repr // raw bracketed header text; empty for the root and implicit tables
	pos      int  // byte offset of the defining header, for document-order emission
	implicit bool // created by a dotted header path, not defined by its own header
	keys     []string
	items    map[string]TableKeyValue
}

func newTable() *Table {
	return &Table{items: make(map[string]TableKeyValue)}
}

func (*Table) Kind() Kind { return KindTable }

func (t *Table) Len() int { return len(t.keys) }

// Keys returns the cooked keys in insertion order.
func (t *Table) Keys() []string { return t.keys }

func (t *Table) Contains(key string) bool {
	_, ok := t.items[key]
	return ok
}

// Entry looks up an entry by exact cooked key.
func (t *Table) Entry(key string) (TableKeyValue, bool) {
	kv, ok := t.items[key]
	return kv, ok
}

// Get returns the item stored under key, or nil.
func (t *Table) Get(key string) Item {
	if kv, ok := t.items[key]; ok {
		return kv.Value
	}
	return nil
}

func (t *Table) insert(key string, kv TableKeyValue) {
	t.keys = append(t.keys, key)
	t.items[key] = kv
}

func (t *Table) replace(key string, kv TableKeyValue) {
	t.items[key] = kv
}

func (t *Table) remove(key string) {
	delete(t.items, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// -------- Array of tables --------

// ArrayOfTables holds the tables produced by successive [[x]] headers.
type ArrayOfTables struct {
	tables []*Table
}

func (*ArrayOfTables) Kind() Kind { return KindArrayOfTables }

func (a *ArrayOfTables) Len() int { return len(a.tables) }

func (a *ArrayOfTables) Tables() []*Table { return a.tables }

func (a *ArrayOfTables) last() *Table { return a.tables[len(a.tables)-1] }

// -------- Value --------

type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueDatetime
	ValueLocalDate
	ValueLocalTime
	ValueLocalDatetime
	ValueArray
	ValueInlineTable
)

// Value is a leaf value node. Raw is the exact source span of the value
// expression; V is the cooked form (string, int64, float64, bool,
// time.Time, []*Value for arrays, *Table for inline tables).
type Value struct {
	Decor Decor
	Raw   string
	Type  ValueKind
	V     any
}

func (*Value) Kind() Kind { return KindValue }

// -------- Document --------

// Document is the root of a parsed file: the root table plus any trailing
// decoration after the last entry. During a parse, Trailing doubles as the
// pending-decoration buffer that the next entry drains.
type Document struct {
	Root     *Table
	Trailing string
}
