package toml

import (
	"sort"
	"strings"
)

// String re-serializes the document. For an unedited tree the output is
// byte-for-byte the original input: every Repr and Decor is emitted
// verbatim, and headed tables are written in the order their headers
// appeared in the source, so interleaved definitions such as a parent
// table defined after one of its children come back out unmoved.
func (d *Document) String() string {
	var b strings.Builder
	encodeKeyvals(&b, d.Root)
	var tables []*Table
	collectHeaded(&tables, d.Root)
	sort.Slice(tables, func(i, j int) bool { return tables[i].pos < tables[j].pos })
	for _, t := range tables {
		b.WriteString(t.header.Decor.Prefix)
		b.WriteString(t.header.Raw)
		b.WriteString(t.header.Decor.Suffix)
		encodeKeyvals(&b, t)
	}
	b.WriteString(d.Trailing)
	return b.String()
}

func encodeKeyvals(b *strings.Builder, t *Table) {
	for _, k := range t.keys {
		kv := t.items[k]
		it, ok := kv.Value.(*Value)
		if !ok {
			continue
		}
		b.WriteString(kv.Key.Decor.Prefix)
		b.WriteString(kv.Key.Raw)
		b.WriteString(kv.Key.Decor.Suffix)
		b.WriteByte('=')
		b.WriteString(it.Decor.Prefix)
		b.WriteString(it.Raw)
		b.WriteString(it.Decor.Suffix)
	}
}

// collectHeaded gathers every table defined by its own header. Implicit
// tables carry no header and, never having been the active table, no direct
// keyvals either, so only their children are walked.
func collectHeaded(out *[]*Table, t *Table) {
	for _, k := range t.keys {
		switch it := t.items[k].Value.(type) {
		case *Table:
			if it.header.Raw != "" {
				*out = append(*out, it)
			}
			collectHeaded(out, it)
		case *ArrayOfTables:
			for _, sub := range it.tables {
				*out = append(*out, sub)
				collectHeaded(out, sub)
			}
		}
	}
}
