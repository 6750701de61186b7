package tree_test

import (
	"testing"

	"github.com/brunokim/packedjson/tree"
)

func serializeOrFatal(t *testing.T, tr *tree.Tree) string {
	t.Helper()
	s, err := tree.Serialize(tr)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return s
}

func TestBuildScalars(t *testing.T) {
	tests := []struct {
		name string
		tr   *tree.Tree
		want string
	}{
		{"null", tree.NewNull(), "null"},
		{"true", tree.NewBool(true), "true"},
		{"false", tree.NewBool(false), "false"},
		{"int", tree.NewInt("-42"), "-42"},
		{"intValue", tree.NewIntValue(7), "7"},
		{"float", tree.NewFloat("3.14e2"), "3.14e2"},
		{"string", tree.NewString(`quote"here`), `"quote\"here"`},
		{"emptyObject", tree.NewEmptyObject(), "{}"},
		{"emptyArray", tree.NewEmptyArray(), "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serializeOrFatal(t, tt.tr); got != tt.want {
				t.Errorf("Serialize(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewObjectPreservesMemberOrder(t *testing.T) {
	obj := tree.NewObject(
		tree.Member{Key: "b", Value: tree.NewIntValue(2)},
		tree.Member{Key: "a", Value: tree.NewIntValue(1)},
	)
	if got, want := serializeOrFatal(t, obj), `{"b":2,"a":1}`; got != want {
		t.Errorf("Serialize(NewObject(...)) = %q, want %q", got, want)
	}
}

func TestNewArrayConcatenatesElements(t *testing.T) {
	arr := tree.NewArray(tree.NewIntValue(1), tree.NewBool(false), tree.NewString("x"))
	if got, want := serializeOrFatal(t, arr), `[1,false,"x"]`; got != want {
		t.Errorf("Serialize(NewArray(...)) = %q, want %q", got, want)
	}
}

func TestNewObjectNestsInsideNewArray(t *testing.T) {
	doc := tree.NewArray(
		tree.NewObject(tree.Member{Key: "k", Value: tree.NewIntValue(1)}),
		tree.NewIntValue(2),
	)
	if got, want := serializeOrFatal(t, doc), `[{"k":1},2]`; got != want {
		t.Errorf("Serialize(nested) = %q, want %q", got, want)
	}
}
