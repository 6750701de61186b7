package tree

import "strconv"

// This file is the typed-accessor convenience layer: callers who know the
// shape of the document they're reading can fetch a Go value directly,
// instead of resolving a pointer and switching on Kind themselves. A
// kind mismatch is the one place this package recovers implicitly,
// returning the caller's default instead of an error, since a missing or
// wrong-shaped optional field is an expected outcome for these callers,
// not a bug to report.

// KindAt resolves path and returns the kind of node found there, or false
// if the path doesn't resolve to any node.
func (t *Tree) KindAt(path string) (Kind, bool) {
	pos := t.Resolve(path)
	if pos == nilPos {
		return 0, false
	}
	return t.Nodes[pos].Kind(), true
}

// Contains reports whether path resolves to an existing node.
func (t *Tree) Contains(path string) bool {
	return t.Resolve(path) != nilPos
}

// GetString resolves path and returns its String value, or def if path
// doesn't resolve or doesn't name a String.
func (t *Tree) GetString(path string, def string) string {
	pos := t.Resolve(path)
	if pos == nilPos || t.Nodes[pos].Kind() != KindString {
		return def
	}
	return t.Atoms.Get(t.Nodes[pos].Operand())
}

// GetBool resolves path and returns its Bool value, or def if path
// doesn't resolve or doesn't name a Bool.
func (t *Tree) GetBool(path string, def bool) bool {
	pos := t.Resolve(path)
	if pos == nilPos || t.Nodes[pos].Kind() != KindBool {
		return def
	}
	return t.Nodes[pos].Bool()
}

// GetInt64 resolves path and parses its Int lexeme as an int64, or
// returns def if path doesn't resolve, doesn't name an Int, or the
// lexeme doesn't fit in an int64.
func (t *Tree) GetInt64(path string, def int64) int64 {
	pos := t.Resolve(path)
	if pos == nilPos || t.Nodes[pos].Kind() != KindInt {
		return def
	}
	n, err := strconv.ParseInt(t.Atoms.Get(t.Nodes[pos].Operand()), 10, 64)
	if err != nil {
		return def
	}
	return n
}

// GetFloat64 resolves path and parses its numeric lexeme as a float64, or
// returns def if path doesn't resolve or doesn't name a number. Int
// nodes are accepted here as well as Float, since every JSON integer is
// also a valid float.
func (t *Tree) GetFloat64(path string, def float64) float64 {
	pos := t.Resolve(path)
	if pos == nilPos {
		return def
	}
	k := t.Nodes[pos].Kind()
	if k != KindFloat && k != KindInt {
		return def
	}
	f, err := strconv.ParseFloat(t.Atoms.Get(t.Nodes[pos].Operand()), 64)
	if err != nil {
		return def
	}
	return f
}
