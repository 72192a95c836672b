// Package parse is the ingestion-layer facade over parse/toml: it reads a
// whole document from a reader and offers untyped access helpers for
// callers that want values, not formatting.
package parse

import (
	"io"

	"github.com/dzjyyds666/tq/parse/toml"
)

// ParseToml reads a complete TOML document from r, preserving formatting.
func ParseToml(r io.Reader) (*toml.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return toml.Parse(string(data))
}

// =========================
// Safe Access Helpers
// =========================

func Get(doc *toml.Document, path ...string) (toml.Item, bool) {
	return doc.Get(path...)
}

func GetUntyped(doc *toml.Document, path ...string) (any, bool) {
	it, ok := doc.Get(path...)
	if !ok {
		return nil, false
	}
	return toml.ToUntyped(it), true
}

func MustString(it toml.Item) string {
	return toml.ToUntyped(it).(string)
}

func MustInt(it toml.Item) int64 {
	return toml.ToUntyped(it).(int64)
}
