package tree

import (
	"strconv"
	"strings"
)

// tokenize splits a JSON Pointer (RFC 6901) into its reference tokens,
// unescaping ~1 to / and ~0 to ~. The empty pointer addresses the root
// and yields zero tokens.
func tokenize(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, &PathError{Pointer: pointer, Reason: "pointer must be empty or start with '/'"}
	}
	raw := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(raw))
	for i, t := range raw {
		t = strings.ReplaceAll(t, "~1", "/")
		t = strings.ReplaceAll(t, "~0", "~")
		tokens[i] = t
	}
	return tokens, nil
}

// parseArrayIndex parses a base-10, non-negative array index token with
// no leading zeros (except the literal "0" itself).
func parseArrayIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if tok == "0" {
		return 0, true
	}
	if tok[0] < '1' || tok[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve is the read resolver: it returns the target node position, or
// nilPos if any segment of pointer is missing, kind-mismatched, or an
// out-of-range array index.
func (t *Tree) Resolve(pointer string) Pos {
	target, err := t.ResolveMutation(pointer)
	if err != nil || target.Node == nilPos {
		return nilPos
	}
	return target.Node
}

// MutationTarget is the result of resolving a pointer for a mutation:
// Node is the resolved target, or nilPos when the final token names an
// object key that doesn't exist yet, the array "-" end marker, or the
// array index one past the last element, and for the empty pointer on an
// empty tree. Parents
// is the pre-order chain of container positions from the root down to
// Node's immediate parent (empty for the root itself). Key is the final
// token's text, used when an add creates a new object member.
type MutationTarget struct {
	Node    Pos
	Parents []Pos
	Key     string
}

// ResolveMutation is the mutation resolver: it walks pointer same as
// Resolve, but distinguishes "doesn't exist yet, but could be created
// here" (Node == nilPos, no error) from "the path is broken" (a non-nil
// *PathError). It also returns the ancestor chain mutation methods need
// to fix up container spans.
func (t *Tree) ResolveMutation(pointer string) (MutationTarget, error) {
	tokens, err := tokenize(pointer)
	if err != nil {
		return MutationTarget{}, err
	}
	if t.IsEmpty() {
		if len(tokens) == 0 {
			return MutationTarget{Node: nilPos, Parents: nil, Key: ""}, nil
		}
		return MutationTarget{}, ErrEmptyTree
	}
	cur := rootPos
	var parents []Pos
	for i, tok := range tokens {
		isLast := i == len(tokens)-1
		switch t.Kind(cur) {
		case KindObject:
			kv, value, found := t.lookupMember(cur, tok)
			if !found {
				if isLast {
					parents = append(parents, cur)
					return MutationTarget{Node: nilPos, Parents: parents, Key: tok}, nil
				}
				return MutationTarget{}, &PathError{Pointer: pointer, Reason: "missing object key " + strconv.Quote(tok)}
			}
			// The KeyValuePair marker is value's immediate container (its
			// span covers marker+key+value), and must be kept in the chain
			// alongside the Object so updateParents reaches it too.
			parents = append(parents, cur, kv)
			cur = value
		case KindArray:
			children := t.Sons(cur)
			if tok == "-" {
				if !isLast {
					return MutationTarget{}, &PathError{Pointer: pointer, Reason: "'-' may only be the last token"}
				}
				parents = append(parents, cur)
				return MutationTarget{Node: nilPos, Parents: parents, Key: tok}, nil
			}
			idx, ok := parseArrayIndex(tok)
			if !ok {
				return MutationTarget{}, &PathError{Pointer: pointer, Reason: "invalid array index " + strconv.Quote(tok)}
			}
			if idx == len(children) {
				if isLast {
					parents = append(parents, cur)
					return MutationTarget{Node: nilPos, Parents: parents, Key: tok}, nil
				}
				return MutationTarget{}, &PathError{Pointer: pointer, Reason: "array index out of range"}
			}
			if idx > len(children) {
				return MutationTarget{}, &PathError{Pointer: pointer, Reason: "array index out of range"}
			}
			parents = append(parents, cur)
			cur = children[idx]
		default:
			return MutationTarget{}, &PathError{Pointer: pointer, Reason: "cannot descend into a non-container"}
		}
	}
	return MutationTarget{Node: cur, Parents: parents, Key: ""}, nil
}

// lookupMember scans object's KeyValuePair markers for one whose key text
// equals name, returning both the marker's own position and its value
// subtree's position.
func (t *Tree) lookupMember(object Pos, name string) (kv Pos, value Pos, found bool) {
	for _, p := range t.Keys(object) {
		if t.KeyText(p) == name {
			return p, t.KeyValue(p), true
		}
	}
	return nilPos, nilPos, false
}
