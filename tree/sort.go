package tree

import "sort"

// Sorted returns a new tree with the same JSON value as t, except that
// every Object's members are reordered by lexicographic key text,
// recursively; Array element order is preserved. The result's atom table
// is built fresh, containing only the atoms actually emitted, in
// emission order.
func Sorted(t *Tree) *Tree {
	if t.IsEmpty() {
		return newTree(nil, newAtomTable())
	}
	b := &sortBuilder{dstAtoms: newAtomTable()}
	b.emit(t, t.Root())
	return newTree(b.nodes, b.dstAtoms)
}

type sortBuilder struct {
	nodes    []Node
	dstAtoms *AtomTable
}

func (b *sortBuilder) emit(t *Tree, pos Pos) {
	switch k := t.Kind(pos); k {
	case KindNull:
		b.nodes = append(b.nodes, makeNode(KindNull, 0))
	case KindBool:
		b.nodes = append(b.nodes, t.Nodes[pos])
	case KindInt, KindFloat, KindString:
		id := b.dstAtoms.Intern(t.Atoms.Get(t.Nodes[pos].Operand()))
		b.nodes = append(b.nodes, makeNode(k, id))
	case KindObject:
		start := len(b.nodes)
		b.nodes = append(b.nodes, makeNode(KindObject, 0))
		keys := t.Keys(pos)
		sortedKeys := make([]Pos, len(keys))
		copy(sortedKeys, keys)
		sort.SliceStable(sortedKeys, func(i, j int) bool {
			return t.KeyText(sortedKeys[i]) < t.KeyText(sortedKeys[j])
		})
		for _, kv := range sortedKeys {
			pairStart := len(b.nodes)
			b.nodes = append(b.nodes, makeNode(KindKeyValuePair, 0))
			keyID := b.dstAtoms.Intern(t.KeyText(kv))
			b.nodes = append(b.nodes, makeNode(KindString, keyID))
			b.emit(t, t.KeyValue(kv))
			b.nodes[pairStart] = makeNode(KindKeyValuePair, uint32(len(b.nodes)-pairStart))
		}
		b.nodes[start] = makeNode(KindObject, uint32(len(b.nodes)-start))
	case KindArray:
		start := len(b.nodes)
		b.nodes = append(b.nodes, makeNode(KindArray, 0))
		for _, son := range t.Sons(pos) {
			b.emit(t, son)
		}
		b.nodes[start] = makeNode(KindArray, uint32(len(b.nodes)-start))
	}
}

// Equal compares two sorted trees node-by-node: equal length, matching
// kinds at every index, and either equal spans (containers) or equal
// atom text (atoms). It assumes both arguments came from Sorted; compare
// unsorted trees with Test or sort them first.
func Equal(a, b *Tree) bool {
	if len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for i := range a.Nodes {
		pos := Pos(i)
		ka, kb := a.Kind(pos), b.Kind(pos)
		if ka != kb {
			return false
		}
		if ka.IsContainer() {
			if a.Span(pos) != b.Span(pos) {
				return false
			}
			continue
		}
		switch ka {
		case KindBool:
			if a.Nodes[pos].Bool() != b.Nodes[pos].Bool() {
				return false
			}
		case KindInt, KindFloat, KindString:
			if a.Atoms.Get(a.Nodes[pos].Operand()) != b.Atoms.Get(b.Nodes[pos].Operand()) {
				return false
			}
		}
	}
	return true
}

// Deduplicate walks t in place, collapsing runs of object members with
// equal keys down to their first occurrence. It is meant to run on a
// tree already produced by Sorted, where duplicate keys are guaranteed
// adjacent; on an unsorted tree it only catches adjacent duplicates.
func Deduplicate(t *Tree) {
	if t.IsEmpty() {
		return
	}
	dedupe(t, t.Root(), nil)
}

func dedupe(t *Tree, pos Pos, parents []Pos) {
	switch t.Kind(pos) {
	case KindObject:
		objParents := append(append([]Pos{}, parents...), pos)
		i := pos + 1
		var lastKey string
		haveLast := false
		for i < pos+Pos(t.Span(pos)) {
			kv := i
			key := t.KeyText(kv)
			if haveLast && key == lastKey {
				pairSpan := int(t.Span(kv))
				t.splice(kv, pairSpan, nil)
				t.updateParents(objParents, -pairSpan)
				continue
			}
			haveLast = true
			lastKey = key
			valueParents := append(append([]Pos{}, objParents...), kv)
			dedupe(t, t.KeyValue(kv), valueParents)
			i = t.NextChild(kv)
		}
	case KindArray:
		arrParents := append(append([]Pos{}, parents...), pos)
		i := pos + 1
		for i < pos+Pos(t.Span(pos)) {
			son := i
			dedupe(t, son, arrParents)
			i = t.NextChild(son)
		}
	default:
		// Atom: nothing to recurse into.
	}
}
