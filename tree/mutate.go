package tree

// This file is the mutation engine: the six structural primitives test,
// replace, remove, add, copy and move. Every mutation that changes the
// node count under some container finishes by calling updateParents on
// the ancestor chain the pointer resolver already handed back, restoring
// invariant I2. Centralizing the span arithmetic here, instead of letting
// callers poke at operands directly, is what keeps I1-I6 provable.

// Test resolves path and compares its subtree against value structurally:
// kinds must match, atom kinds compare by text (the two trees have
// different atom tables), and containers compare by equal span followed
// by recursive element-wise equality. Object comparison is order
// sensitive; sort both sides with Sorted first to compare them as sets.
func (t *Tree) Test(path string, value *Tree) (bool, error) {
	target, err := t.ResolveMutation(path)
	if err != nil {
		return false, err
	}
	if target.Node == nilPos {
		return false, &PathError{Pointer: path, Reason: "node does not exist"}
	}
	return equalSubtree(t, target.Node, value, value.Root()), nil
}

func equalSubtree(t1 *Tree, p1 Pos, t2 *Tree, p2 Pos) bool {
	k1, k2 := t1.Kind(p1), t2.Kind(p2)
	if k1 != k2 {
		return false
	}
	switch k1 {
	case KindNull:
		return true
	case KindBool:
		return t1.Nodes[p1].Bool() == t2.Nodes[p2].Bool()
	case KindInt, KindFloat, KindString:
		return t1.Atoms.Get(t1.Nodes[p1].Operand()) == t2.Atoms.Get(t2.Nodes[p2].Operand())
	}
	if t1.Span(p1) != t2.Span(p2) {
		return false
	}
	switch k1 {
	case KindObject:
		keys1, keys2 := t1.Keys(p1), t2.Keys(p2)
		if len(keys1) != len(keys2) {
			return false
		}
		for i := range keys1 {
			if t1.KeyText(keys1[i]) != t2.KeyText(keys2[i]) {
				return false
			}
			if !equalSubtree(t1, t1.KeyValue(keys1[i]), t2, t2.KeyValue(keys2[i])) {
				return false
			}
		}
		return true
	case KindArray:
		sons1, sons2 := t1.Sons(p1), t2.Sons(p2)
		if len(sons1) != len(sons2) {
			return false
		}
		for i := range sons1 {
			if !equalSubtree(t1, sons1[i], t2, sons2[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// spliceValue replaces the oldSpan node words at pos with value's nodes,
// re-interning its atoms into t's table, and fixes up parents. It returns
// the (unchanged) insertion position and the signed word-count delta.
func (t *Tree) spliceValue(pos Pos, oldSpan int, parents []Pos, value *Tree) (Pos, int) {
	valueNodes := remapAtoms(value.Nodes, value.Atoms, t.Atoms)
	delta := len(valueNodes) - oldSpan
	t.splice(pos, oldSpan, valueNodes)
	t.updateParents(parents, delta)
	return pos, delta
}

// Replace resolves path and overwrites its subtree with value. Replacing
// the root (path == "") is allowed and overwrites the whole tree,
// including recreating a root in a tree that had been emptied by a prior
// root removal.
func (t *Tree) Replace(path string, value *Tree) error {
	target, err := t.ResolveMutation(path)
	if err != nil {
		return err
	}
	if target.Node == nilPos {
		if path == "" {
			t.spliceValue(0, 0, nil, value)
			return nil
		}
		return &PathError{Pointer: path, Reason: "node does not exist"}
	}
	oldSpan := int(t.Span(target.Node))
	t.spliceValue(target.Node, oldSpan, target.Parents, value)
	return nil
}

// Remove resolves path and deletes its subtree. Removing an object member
// drops its enclosing KeyValuePair marker and key along with the value;
// removing an array element or the root drops exactly its own subtree.
// Removing the root leaves an empty tree.
func (t *Tree) Remove(path string) error {
	target, err := t.ResolveMutation(path)
	if err != nil {
		return err
	}
	if target.Node == nilPos {
		return &PathError{Pointer: path, Reason: "node does not exist"}
	}
	return t.removeAt(target.Node, target.Parents)
}

// removeAt deletes the subtree at node. When node is an object member's
// value, parents' last entry is its enclosing KeyValuePair marker (the
// resolver includes it alongside the Object for exactly this reason):
// the whole marker+key+value range is spliced out, and every remaining
// ancestor - parents with the marker itself excluded, since it no longer
// exists to have a span - is reduced by the pair's width. Otherwise node
// is an array element or the root, and exactly its own span is removed
// from parents' ancestors.
func (t *Tree) removeAt(node Pos, parents []Pos) error {
	if len(parents) > 0 && t.Kind(parents[len(parents)-1]) == KindKeyValuePair {
		marker := parents[len(parents)-1]
		pairSpan := int(t.Span(marker))
		t.splice(marker, pairSpan, nil)
		t.updateParents(parents[:len(parents)-1], -pairSpan)
		return nil
	}
	span := int(t.Span(node))
	t.splice(node, span, nil)
	t.updateParents(parents, -span)
	return nil
}

func (t *Tree) addObjectMember(objectPos Pos, parents []Pos, key string, value *Tree) (Pos, int) {
	insertPos := objectPos + Pos(t.Span(objectPos))
	valueNodes := remapAtoms(value.Nodes, value.Atoms, t.Atoms)
	keyID := t.Atoms.Intern(key)
	pairSpan := 2 + len(valueNodes)
	newNodes := make([]Node, 0, pairSpan)
	newNodes = append(newNodes, makeNode(KindKeyValuePair, uint32(pairSpan)))
	newNodes = append(newNodes, makeNode(KindString, keyID))
	newNodes = append(newNodes, valueNodes...)
	t.splice(insertPos, 0, newNodes)
	t.updateParents(parents, pairSpan)
	return insertPos, pairSpan
}

func (t *Tree) appendArrayElement(arrayPos Pos, parents []Pos, value *Tree) (Pos, int) {
	insertPos := arrayPos + Pos(t.Span(arrayPos))
	valueNodes := remapAtoms(value.Nodes, value.Atoms, t.Atoms)
	t.splice(insertPos, 0, valueNodes)
	t.updateParents(parents, len(valueNodes))
	return insertPos, len(valueNodes)
}

func (t *Tree) insertArrayElementBefore(beforePos Pos, parents []Pos, value *Tree) (Pos, int) {
	valueNodes := remapAtoms(value.Nodes, value.Atoms, t.Atoms)
	t.splice(beforePos, 0, valueNodes)
	t.updateParents(parents, len(valueNodes))
	return beforePos, len(valueNodes)
}

// Add resolves path and inserts value there per RFC 6902 add semantics:
// a missing object key is appended as a new member at the object's end; a
// missing array index ("-" or one past the end) is appended at the
// array's end; an existing array index gets value inserted before it;
// anything else (an existing object key, or the root) falls back to
// replace semantics.
func (t *Tree) Add(path string, value *Tree) error {
	target, err := t.ResolveMutation(path)
	if err != nil {
		return err
	}
	_, _, _, err = t.addResolved(path, target, value)
	return err
}

// addResolved performs Add's dispatch given an already-resolved target,
// returning the position value was spliced in at, the resulting
// word-count delta, and the width of the range that was overwritten (0
// for every insertion branch, the replaced node's span for the fallback
// replace branch). Copy and Move reuse it against a target resolved
// before the source subtree was extracted; Move needs the overwritten
// width to tell a real removal from a replace that already consumed the
// source.
func (t *Tree) addResolved(path string, target MutationTarget, value *Tree) (Pos, int, int, error) {
	if target.Node == nilPos {
		if len(target.Parents) == 0 {
			pos, delta := t.spliceValue(0, 0, nil, value)
			return pos, delta, 0, nil
		}
		parent := target.Parents[len(target.Parents)-1]
		switch t.Kind(parent) {
		case KindObject:
			pos, delta := t.addObjectMember(parent, target.Parents, target.Key, value)
			return pos, delta, 0, nil
		case KindArray:
			pos, delta := t.appendArrayElement(parent, target.Parents, value)
			return pos, delta, 0, nil
		default:
			return nilPos, 0, 0, &PathError{Pointer: path, Reason: "cannot add under a non-container"}
		}
	}
	if len(target.Parents) > 0 {
		parent := target.Parents[len(target.Parents)-1]
		if t.Kind(parent) == KindArray {
			pos, delta := t.insertArrayElementBefore(target.Node, target.Parents, value)
			return pos, delta, 0, nil
		}
	}
	oldSpan := int(t.Span(target.Node))
	pos, delta := t.spliceValue(target.Node, oldSpan, target.Parents, value)
	return pos, delta, oldSpan, nil
}

// Copy resolves from and path on this tree, then behaves like
// Add(path, subtree_at(from)). It is a no-op if from and path resolve to
// the same node, and signals a *PathError if from is an ancestor of path
// (checked by membership in path's parent chain, not by pointer-string
// prefix matching, which would be wrong under ~0/~1 escaping).
func (t *Tree) Copy(from, path string) error {
	fromTarget, err := t.ResolveMutation(from)
	if err != nil {
		return err
	}
	if fromTarget.Node == nilPos {
		return &PathError{Pointer: from, Reason: "source does not exist"}
	}
	pathTarget, err := t.ResolveMutation(path)
	if err != nil {
		return err
	}
	if pathTarget.Node != nilPos && pathTarget.Node == fromTarget.Node {
		return nil
	}
	for _, p := range pathTarget.Parents {
		if p == fromTarget.Node {
			return &PathError{Pointer: path, Reason: "source is an ancestor of destination"}
		}
	}
	value := t.rawExtract(fromTarget.Node)
	_, _, _, err = t.addResolved(path, pathTarget, value)
	return err
}

// Move is Copy(from, path) followed by Remove(from), executed in one pass
// since the copy shifts every position at or after its insertion point.
// If the destination already existed and its replaced range swallowed
// from's position - i.e. path was an ancestor of from - the move
// collapses into a replace and no further removal happens. A node's span
// is never partially overlapped by another splice (subtrees either fully
// contain or are fully disjoint from one another), so it's enough to
// test from's own (pre-splice) position against the replaced range;
// every ancestor of from either fully shares that fate or is fully
// outside it.
func (t *Tree) Move(from, path string) error {
	fromTarget, err := t.ResolveMutation(from)
	if err != nil {
		return err
	}
	if fromTarget.Node == nilPos {
		return &PathError{Pointer: from, Reason: "source does not exist"}
	}
	pathTarget, err := t.ResolveMutation(path)
	if err != nil {
		return err
	}
	if pathTarget.Node != nilPos && pathTarget.Node == fromTarget.Node {
		return nil
	}
	for _, p := range pathTarget.Parents {
		if p == fromTarget.Node {
			return &PathError{Pointer: path, Reason: "source is an ancestor of destination"}
		}
	}
	value := t.rawExtract(fromTarget.Node)
	startPos, delta, oldSpan, err := t.addResolved(path, pathTarget, value)
	if err != nil {
		return err
	}

	if fromTarget.Node >= startPos && fromTarget.Node < startPos+Pos(oldSpan) {
		// The destination's replaced range swallowed the source: path
		// was an ancestor of from, so this move already behaved as a
		// replace.
		return nil
	}

	shift := func(p Pos) Pos {
		if p >= startPos {
			return p + Pos(delta)
		}
		return p
	}
	srcNode := shift(fromTarget.Node)
	srcParents := make([]Pos, len(fromTarget.Parents))
	for i, p := range fromTarget.Parents {
		srcParents[i] = shift(p)
	}
	return t.removeAt(srcNode, srcParents)
}
