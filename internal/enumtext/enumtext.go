// Package enumtext maps small integer enums to and from their grammar names.
package enumtext

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when a name is not in the table.
var ErrUnknownName = errors.New("unknown enum name")

// Table holds the names of an enum whose first valid value is 1. Index 0 is
// the invalid zero value and is never matched.
type Table struct {
	what  string
	names []string
	index map[string]int
}

// New builds a table. names[0] must be the empty string.
func New(what string, names ...string) *Table {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if i == 0 {
			continue
		}

		index[name] = i
	}

	return &Table{what: what, names: names, index: index}
}

// Name returns the name of v, or a placeholder for values outside the table.
func (t *Table) Name(v int) string {
	if v <= 0 || v >= len(t.names) {
		return fmt.Sprintf("%s(%d)", t.what, v)
	}

	return t.names[v]
}

// Valid reports whether v has a name.
func (t *Table) Valid(v int) bool {
	return v > 0 && v < len(t.names)
}

// Marshal returns the name of v as text.
func (t *Table) Marshal(v int) ([]byte, error) {
	if !t.Valid(v) {
		return nil, fmt.Errorf("%w: %s value %d", ErrUnknownName, t.what, v)
	}

	return []byte(t.names[v]), nil
}

// Parse resolves a name.
func (t *Table) Parse(text []byte) (int, error) {
	v, ok := t.index[string(text)]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, t.what, text)
	}

	return v, nil
}

// Len returns the number of valid values.
func (t *Table) Len() int {
	return len(t.names) - 1
}
