package toml

import "fmt"

type ErrorKind uint8

const (
	// ErrSyntax is a grammar mismatch: malformed key, missing separator,
	// bad value literal, unexpected character or end of input.
	ErrSyntax ErrorKind = iota
	// ErrDuplicateKey is a key inserted twice into the same table.
	ErrDuplicateKey
	// ErrDuplicateTable is a [header] defining a table twice.
	ErrDuplicateTable
	// ErrKeyConflict is a header or entry landing on a key that already
	// holds an incompatible kind.
	ErrKeyConflict
)

// Position locates a byte in the input. Line and Column are 1-based;
// Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Error is the single diagnostic type for both grammar mismatches and
// tree-construction violations, so callers handle one error channel.
type Error struct {
	Kind     ErrorKind
	Pos      Position
	Expected string // ErrSyntax: what the parser was looking for
	Key      string // duplicate/conflict kinds
	Table    string // dotted path of the owning table, "(root)" at top level
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDuplicateKey:
		return fmt.Sprintf("%s: duplicate key %q in table %s", e.prefix(), e.Key, e.Table)
	case ErrDuplicateTable:
		return fmt.Sprintf("%s: table %q already defined in %s", e.prefix(), e.Key, e.Table)
	case ErrKeyConflict:
		return fmt.Sprintf("%s: key %q conflicts with an existing entry in table %s", e.prefix(), e.Key, e.Table)
	default:
		return fmt.Sprintf("%s: expected %s", e.prefix(), e.Expected)
	}
}

// prefix renders the location; edit-time errors carry no position.
func (e *Error) prefix() string {
	if e.Pos.Line == 0 {
		return "toml"
	}
	return fmt.Sprintf("toml:%d:%d", e.Pos.Line, e.Pos.Column)
}

func position(input string, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Offset: offset, Line: line, Column: col}
}
