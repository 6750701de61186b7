package tree

import (
	"errors"
	"fmt"
)

// ParseError reports a syntactic problem found while parsing JSON text,
// located by 1-based line and 0-based column.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// PathError reports that a JSON Pointer could not be resolved: an
// intermediate segment was missing or kind-mismatched, an array index was
// out of range, or a copy/move source was an ancestor of its destination.
type PathError struct {
	Pointer string
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path error at %q: %s", e.Pointer, e.Reason)
}

// KindError reports that a node was found but its kind didn't match what
// the caller wanted. It completes the library's three-category error
// surface alongside ParseError and PathError; the typed accessors in
// accessor.go never construct one themselves, since a kind mismatch there
// falls back to the caller's default instead of failing.
type KindError struct {
	Wanted Kind
	Got    Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("kind error: wanted %s, got %s", e.Wanted, e.Got)
}

// Sentinel errors for conditions that aren't positional.
var (
	// ErrEmptyTree is returned by ResolveMutation, and so by every
	// mutation, for any non-empty pointer on a tree that has been reduced
	// to nothing by a prior root removal. The empty pointer on such a tree
	// resolves to a missing node instead of failing.
	ErrEmptyTree = errors.New("tree is empty")
)
