package tree

import "testing"

func TestAtomTableInternAssignsStableIDs(t *testing.T) {
	at := newAtomTable()
	id1 := at.Intern("hello")
	id2 := at.Intern("world")
	id1Again := at.Intern("hello")

	if id1 == 0 || id2 == 0 {
		t.Fatalf("Intern returned reserved id 0: id1=%d id2=%d", id1, id2)
	}
	if id1 != id1Again {
		t.Fatalf("Intern(%q) = %d then %d, want stable id", "hello", id1, id1Again)
	}
	if id1 == id2 {
		t.Fatalf("distinct texts got the same id %d", id1)
	}
	if got := at.Get(id1); got != "hello" {
		t.Errorf("Get(%d) = %q, want %q", id1, got, "hello")
	}
	if got := at.Get(id2); got != "world" {
		t.Errorf("Get(%d) = %q, want %q", id2, got, "world")
	}
}

func TestAtomTableLookupMissingReturnsZero(t *testing.T) {
	at := newAtomTable()
	at.Intern("present")
	if got := at.Lookup("absent"); got != 0 {
		t.Errorf("Lookup(%q) = %d, want 0", "absent", got)
	}
	if got := at.Lookup("present"); got == 0 {
		t.Errorf("Lookup(%q) = 0, want a nonzero id", "present")
	}
}

func TestAtomTableLen(t *testing.T) {
	at := newAtomTable()
	if at.Len() != 0 {
		t.Fatalf("Len() on fresh table = %d, want 0", at.Len())
	}
	at.Intern("a")
	at.Intern("b")
	at.Intern("a")
	if at.Len() != 2 {
		t.Fatalf("Len() after interning 2 distinct texts = %d, want 2", at.Len())
	}
}

func TestAtomTableCloneIsIndependent(t *testing.T) {
	at := newAtomTable()
	id := at.Intern("shared")
	clone := at.clone()

	newID := clone.Intern("only-in-clone")
	if at.Lookup("only-in-clone") != 0 {
		t.Error("interning into a clone leaked back into the original table")
	}
	if clone.Get(id) != "shared" {
		t.Error("clone lost a pre-existing entry")
	}
	_ = newID
}
