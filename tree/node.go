package tree

// Kind is the 3-bit tag stored in the low bits of a Node word.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray
	KindKeyValuePair
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindKeyValuePair:
		return "KeyValuePair"
	default:
		return "Invalid"
	}
}

// IsAtom reports whether nodes of this kind have no children: their
// operand is either unused (Null), a 0/1 flag (Bool), or an atom id
// (Int, Float, String).
func (k Kind) IsAtom() bool { return k < KindObject }

// IsContainer reports whether nodes of this kind carry a span operand.
func (k Kind) IsContainer() bool { return k >= KindObject }

const kindBits = 3
const kindMask = uint32(1<<kindBits) - 1

// Node is a single packed tree node: a Kind in the low 3 bits, and a
// 29-bit operand in the high bits, interpreted per Kind as documented on
// the package.
type Node uint32

func makeNode(k Kind, operand uint32) Node {
	return Node(uint32(k) | operand<<kindBits)
}

// Kind returns the node's kind tag.
func (n Node) Kind() Kind { return Kind(uint32(n) & kindMask) }

// Operand returns the node's raw operand: a span for containers, an atom
// id for Int/Float/String, a 0/1 flag for Bool, or 0 for Null.
func (n Node) Operand() uint32 { return uint32(n) >> kindBits }

// Bool interprets the operand as a boolean flag. Only meaningful when
// Kind() == KindBool.
func (n Node) Bool() bool { return n.Operand() != 0 }

// Pos indexes into a Tree's packed Nodes slice.
type Pos uint32

// rootPos is the position of the root node in a non-empty tree.
const rootPos Pos = 0

// nilPos is the sentinel "not found" position: no valid tree can reach
// this many node words.
const nilPos Pos = ^Pos(0)
