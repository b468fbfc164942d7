// Package names implements the color name database: a bidirectional,
// read-only mapping between human-readable color names and hex codes.
package names

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Entry is a single name to hex code association.
type Entry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Table is an immutable name table. It is safe for concurrent reads.
type Table struct {
	byName map[string]string
	byHex  map[string]string

	// source keeps the accepted entries in insertion order, so that
	// derived tables resolve shared hex codes the same way.
	source []Entry
	sorted []Entry
}

var defaultTable = New(builtin)

// Default returns the built-in name table.
func Default() *Table {
	return defaultTable
}

// New builds a table from entries. Names are matched case-insensitively and
// with whitespace collapsed. Entries with an invalid hex code are skipped.
// When a name or a hex code appears more than once, the first entry wins.
func New(entries []Entry) *Table {
	t := &Table{
		byName: make(map[string]string, len(entries)),
		byHex:  make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		name := NormalizeName(e.Name)
		hex, ok := NormalizeHex(e.Hex)
		if name == "" || !ok {
			continue
		}

		if _, dup := t.byName[name]; dup {
			continue
		}

		t.byName[name] = hex
		if _, taken := t.byHex[hex]; !taken {
			t.byHex[hex] = name
		}

		t.source = append(t.source, Entry{Name: name, Hex: hex})
	}

	t.sorted = slices.Clone(t.source)
	slices.SortFunc(t.sorted, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return t
}

// With returns a new table where extra entries take precedence over the receiver's.
func (t *Table) With(extra []Entry) *Table {
	if len(extra) == 0 {
		return t
	}

	merged := make([]Entry, 0, len(extra)+len(t.source))
	merged = append(merged, extra...)
	merged = append(merged, t.source...)
	return New(merged)
}

// LookupHex returns the hex code registered for name.
func (t *Table) LookupHex(name string) mo.Option[string] {
	hex, ok := t.byName[NormalizeName(name)]
	return mo.TupleToOption(hex, ok)
}

// LookupName returns the canonical name of an exact, lowercase 6-character hex code.
func (t *Table) LookupName(hex string) mo.Option[string] {
	name, ok := t.byHex[hex]
	return mo.TupleToOption(name, ok)
}

// Entries returns all entries sorted by name.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.sorted)
}

// Len returns the number of distinct names.
func (t *Table) Len() int {
	return len(t.sorted)
}

// Names returns all names sorted alphabetically.
func (t *Table) Names() []string {
	return lo.Map(t.sorted, func(e Entry, _ int) string {
		return e.Name
	})
}

// NormalizeName lower-cases a name and collapses runs of whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NormalizeHex strips a leading '#' and lower-cases a 6-digit hex code.
// It reports false when the result is not exactly 6 hexadecimal digits.
func NormalizeHex(hex string) (string, bool) {
	hex = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(hex) != 6 {
		return "", false
	}

	for _, c := range hex {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return "", false
		}
	}

	return hex, true
}
