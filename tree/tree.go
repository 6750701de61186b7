package tree

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Tree is an in-memory JSON document: a pre-order array of packed Node
// words, plus the AtomTable its String/Int/Float nodes reference. The
// root node is always at position 0, except for a tree that has had its
// root removed, which has no nodes at all.
//
// A Tree exclusively owns its Nodes and Atoms; subtrees are not
// independently owned values, they are ranges within Nodes addressed by
// Pos. The zero Tree is not valid; use New or Parse.
type Tree struct {
	// ID identifies this tree for log correlation across a program that
	// juggles several trees (e.g. a value extracted for one mutation and
	// the destination it's spliced into). It has no bearing on the JSON
	// document itself.
	ID uuid.UUID

	Nodes []Node
	Atoms *AtomTable
}

func newTreeID() uuid.UUID {
	var mac [6]byte
	if _, err := io.ReadFull(rand.Reader, mac[:]); err != nil {
		panic(err.Error())
	}
	uuid.SetNodeID(mac[:])
	id, err := uuid.NewUUID()
	if err != nil {
		panic(fmt.Sprintf("tree: creating id: %v", err))
	}
	return id
}

func newTree(nodes []Node, atoms *AtomTable) *Tree {
	return &Tree{ID: newTreeID(), Nodes: nodes, Atoms: atoms}
}

// New returns a single-node tree holding a JSON null.
func New() *Tree {
	return newTree([]Node{makeNode(KindNull, 0)}, newAtomTable())
}

// IsEmpty reports whether the tree's root has been removed, leaving no
// nodes at all.
func (t *Tree) IsEmpty() bool { return len(t.Nodes) == 0 }

// Root returns the position of the root node, or nilPos if the tree is
// empty.
func (t *Tree) Root() Pos {
	if t.IsEmpty() {
		return nilPos
	}
	return rootPos
}

// Clone returns a deep copy of the tree: its node array and atom table
// are copied verbatim, and the copy is assigned a fresh ID.
func (t *Tree) Clone() *Tree {
	nodes := make([]Node, len(t.Nodes))
	copy(nodes, t.Nodes)
	return newTree(nodes, t.Atoms.clone())
}

// +------------+
// | Navigation |
// +------------+

// Kind returns the kind of the node at pos.
func (t *Tree) Kind(pos Pos) Kind { return t.Nodes[pos].Kind() }

// Span returns the number of node words covered by the subtree rooted at
// pos, including pos itself: 1 for atoms, the stored operand for
// containers.
func (t *Tree) Span(pos Pos) uint32 {
	n := t.Nodes[pos]
	if n.Kind().IsContainer() {
		return n.Operand()
	}
	return 1
}

// FirstChild returns the position immediately following a container's own
// word, i.e. where its first direct child (if any) begins.
func (t *Tree) FirstChild(container Pos) Pos { return container + 1 }

// NextChild advances pos past the subtree it roots, landing on the next
// sibling or on the position immediately following the enclosing
// container.
func (t *Tree) NextChild(pos Pos) Pos { return pos + Pos(t.Span(pos)) }

// Sons yields the positions of container's direct children, by repeated
// NextChild until reaching container's end. For an Object these are its
// KeyValuePair markers; for an Array, its element subtrees.
func (t *Tree) Sons(container Pos) []Pos {
	end := container + Pos(t.Span(container))
	var out []Pos
	for p := t.FirstChild(container); p < end; p = t.NextChild(p) {
		out = append(out, p)
	}
	return out
}

// Keys yields the positions of object's KeyValuePair markers. It is an
// alias for Sons restricted to Object nodes, named for readability at call
// sites that only care about object iteration.
func (t *Tree) Keys(object Pos) []Pos { return t.Sons(object) }

// KeyText returns the key text of the KeyValuePair marker at kv.
func (t *Tree) KeyText(kv Pos) string {
	keyPos := kv + 1
	return t.Atoms.Get(t.Nodes[keyPos].Operand())
}

// KeyValue returns the position of the value subtree of the
// KeyValuePair marker at kv.
func (t *Tree) KeyValue(kv Pos) Pos { return kv + 2 }

// Parent scans backwards from n-1 for the first container whose span
// reaches past n. It is O(n); callers on mutation paths should prefer the
// ancestor chain returned by the pointer resolver instead of calling this
// in a loop.
func (t *Tree) Parent(n Pos) Pos {
	if n == 0 || n == nilPos {
		return nilPos
	}
	for p := int(n) - 1; p >= 0; p-- {
		k := t.Nodes[p].Kind()
		if !k.IsContainer() {
			continue
		}
		if Pos(p)+Pos(t.Span(Pos(p))) > n {
			return Pos(p)
		}
	}
	return nilPos
}

// +--------------------+
// | Splice & atom remap |
// +--------------------+

// splice replaces the oldLen node words starting at pos with newNodes,
// shrinking or growing the backing array as needed. It does not touch
// ancestor spans; callers must call updateParents afterwards.
func (t *Tree) splice(pos Pos, oldLen int, newNodes []Node) {
	out := make([]Node, 0, len(t.Nodes)-oldLen+len(newNodes))
	out = append(out, t.Nodes[:pos]...)
	out = append(out, newNodes...)
	out = append(out, t.Nodes[int(pos)+oldLen:]...)
	t.Nodes = out
}

// updateParents adds the signed delta to the span operand of every
// position in parents, restoring invariant I2 after a splice changed the
// node count under them.
func (t *Tree) updateParents(parents []Pos, delta int) {
	for _, p := range parents {
		n := t.Nodes[p]
		t.Nodes[p] = makeNode(n.Kind(), uint32(int(n.Operand())+delta))
	}
}

// remapAtoms returns a copy of nodes with every Int/Float/String operand
// re-interned from src's text into dst, so the copy can be safely spliced
// into a tree using dst as its atom table. When src == dst this is a
// self-reference: Intern on an already-interned text returns the same id.
func remapAtoms(nodes []Node, src, dst *AtomTable) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		k := n.Kind()
		if k == KindInt || k == KindFloat || k == KindString {
			id := dst.Intern(src.Get(n.Operand()))
			out[i] = makeNode(k, id)
		} else {
			out[i] = n
		}
	}
	return out
}

// rawExtract returns a standalone tree holding the subtree at pos, with a
// freshly built atom table containing only the atoms actually referenced,
// in emission order. This is how a subtree is lifted out of its owning
// tree for reinsertion elsewhere (copy, or callers building a value to
// pass to Replace/Add from an existing document).
func (t *Tree) rawExtract(pos Pos) *Tree {
	span := t.Span(pos)
	nodes := make([]Node, span)
	copy(nodes, t.Nodes[pos:int(pos)+int(span)])
	atoms := newAtomTable()
	nodes = remapAtoms(nodes, t.Atoms, atoms)
	return newTree(nodes, atoms)
}

// SubtreeAt returns the subtree rooted at node position pos as a
// standalone Tree, suitable for passing as the value argument to Replace,
// Add, or Test. It is the exported form of rawExtract.
func (t *Tree) SubtreeAt(pos Pos) *Tree { return t.rawExtract(pos) }
