package tree

// AtomTable is an append-only, bidirectional interning map from text to a
// small positive integer id. Id 0 is reserved to mean "absent": it is
// never returned by Intern, and Lookup returns it when the text was never
// interned.
//
// Two distinct texts never share an id; two equal texts always do. An
// AtomTable is shared by every atom in one Tree: strings, number lexemes,
// and object keys alike.
type AtomTable struct {
	texts []string       // texts[id] is the text for id; texts[0] is unused.
	ids   map[string]uint32
}

// newAtomTable returns an empty table with id 0 reserved.
func newAtomTable() *AtomTable {
	return &AtomTable{texts: []string{""}}
}

// Intern returns the id for text, assigning a fresh one if text hasn't
// been seen by this table before.
func (a *AtomTable) Intern(text string) uint32 {
	if id, ok := a.ids[text]; ok {
		return id
	}
	id := uint32(len(a.texts))
	a.texts = append(a.texts, text)
	if a.ids == nil {
		a.ids = make(map[string]uint32)
	}
	a.ids[text] = id
	return id
}

// Lookup returns the id for text, or 0 if text was never interned.
func (a *AtomTable) Lookup(text string) uint32 {
	return a.ids[text]
}

// Get returns the text for id. It panics if id is 0 or was never
// assigned by this table, since that is a programming error in the
// library (invariant I4).
func (a *AtomTable) Get(id uint32) string {
	if id == 0 {
		panic("tree: atom id 0 is reserved")
	}
	return a.texts[id]
}

// Len returns the number of interned atoms.
func (a *AtomTable) Len() int {
	return len(a.texts) - 1
}

// clone returns a deep copy of the table, sharing no backing storage with
// the original.
func (a *AtomTable) clone() *AtomTable {
	texts := make([]string, len(a.texts))
	copy(texts, a.texts)
	ids := make(map[string]uint32, len(a.ids))
	for k, v := range a.ids {
		ids[k] = v
	}
	return &AtomTable{texts: texts, ids: ids}
}
