/*
Package tree implements an in-memory JSON document as a packed,
array-encoded tree, rather than a graph of heap-allocated variant nodes.

Every node is a single 32-bit word carrying a 3-bit kind tag and a 29-bit
operand, interpreted as either a subtree span (for Object, Array and
KeyValuePair containers) or an interned-atom identifier (for Int, Float and
String leaves). The tree is the pre-order linearization of the JSON value:
walking it forward with Span and NextChild never requires heap pointers.

Structural mutation (RFC 6902-style add/remove/replace/copy/move, addressed
by RFC 6901 JSON Pointer) is performed in place on that packed
representation: the affected node range is spliced out of the backing
slice and a replacement range spliced in, and every ancestor's span operand
is adjusted by the resulting delta. Atoms (strings, number lexemes, object
keys) are interned once per tree in an AtomTable shared by every node.

  # BEGIN ASCII ART

  {"a":[1,false]}
  ^    ^^ ^
  |    || '- Bool(false), span 1
  |    |'- Int("1"), span 1
  |    '- Array, span 3  (itself + 2 elements)
  '- Object, span 6 -> KeyValuePair, span 5 -> String("a"), span 1

  # END ASCII ART
  # ALT TEXT: A packed node array for {"a":[1,false]}. Six node words in
              pre-order: Object(span 6), KeyValuePair(span 5), String("a"),
              Array(span 3), Int("1"), Bool(false). Each container's span
              counts itself plus every word of its descendants.
*/
package tree
