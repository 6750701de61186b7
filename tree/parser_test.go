package tree_test

import (
	"testing"

	"github.com/brunokim/packedjson/tree"
)

// Scenario 1 from the testable-properties list: parse a nested document
// and check the atom table size and a deep pointer resolution.
func TestParseScenario1(t *testing.T) {
	tr, err := tree.ParseString(`{"a":[1,false,{"key":[4,5]},4]}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got, want := tr.Atoms.Len(), 5; got != want {
		t.Fatalf("Atoms.Len() = %d, want %d", got, want)
	}
	if got := tr.Kind(tr.Root()); got != tree.KindObject {
		t.Fatalf("Kind(root) = %s, want Object", got)
	}
	if !tr.Contains("/a/2/key/1") {
		t.Fatal("Contains(/a/2/key/1) = false, want true")
	}
	pos := tr.Resolve("/a/2/key/1")
	if got := tr.Kind(pos); got != tree.KindInt {
		t.Fatalf("Kind(/a/2/key/1) = %s, want Int", got)
	}
	if got := tr.Atoms.Get(tr.Nodes[pos].Operand()); got != "5" {
		t.Fatalf("text at /a/2/key/1 = %q, want %q", got, "5")
	}
}

func TestParseRoundTripsThroughSerialize(t *testing.T) {
	inputs := []string{
		`null`, `true`, `false`, `0`, `-17`, `3.25`, `1e10`, `-2.5e-3`,
		`""`, `"hello\nworld"`, `"é"`, `[]`, `{}`,
		`[1,2,3]`, `{"a":1,"b":[2,3]}`,
		`{"nested":{"deep":[true,false,null]}}`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tr, err := tree.ParseString(in)
			if err != nil {
				t.Fatalf("ParseString(%s): %v", in, err)
			}
			out, err := tree.Serialize(tr)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if out != in {
				t.Errorf("Serialize(Parse(%s)) = %q, want %q", in, out, in)
			}
		})
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := tree.ParseString(`1 2`)
	if err == nil {
		t.Fatal("ParseString(\"1 2\") succeeded, want a *ParseError")
	}
	if _, ok := err.(*tree.ParseError); !ok {
		t.Fatalf("error type = %T, want *tree.ParseError", err)
	}
}

func TestParseErrorCases(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`{"a"}`,
		`{"a":1,}`,
		`[1,]`,
		`[1 2]`,
		`truee`,
		`01`,
		`1.`,
		`1e`,
		`"unterminated`,
		`"\x"`,
		"\"control\x01char\"",
		`{a:1}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := tree.ParseString(in); err == nil {
				t.Errorf("ParseString(%q) succeeded, want an error", in)
			}
		})
	}
}

func TestParseSurrogatePair(t *testing.T) {
	tr, err := tree.ParseString("\"\\uD83D\\uDE00\"")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	got := tr.Atoms.Get(tr.Nodes[tr.Root()].Operand())
	want := "\U0001F600"
	if got != want {
		t.Errorf("decoded surrogate pair = %q, want %q", got, want)
	}
}

func TestParseUnpairedHighSurrogateFails(t *testing.T) {
	if _, err := tree.ParseString(`"\uD83D"`); err == nil {
		t.Fatal("ParseString with unpaired high surrogate succeeded, want an error")
	}
}

func TestParseNumberLexemesPreserved(t *testing.T) {
	tr, err := tree.ParseString(`[0, -0, 1.50, 1E+10, -0.0]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	out, err := tree.Serialize(tr)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if want := `[0,-0,1.50,1E+10,-0.0]`; out != want {
		t.Errorf("Serialize = %q, want %q (lexemes must round-trip verbatim)", out, want)
	}
}
