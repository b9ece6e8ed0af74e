// Package schema provides the minimal schema hint the environment-variable
// loader consults to decide whether a key component should be coerced to an
// integer, per SPEC_FULL.md §4.9 / spec.md §4.7. Anything beyond that single
// question (full validation, type systems) is the external schema/type
// system spec.md §1 explicitly keeps out of scope.
package schema

// Tree is consulted only to answer "is this key's declared type an integer?".
type Tree interface {
	// IsIntegerKey reports whether the dotted key path names a field the
	// schema declares as an integer; env-var loading uses this to decide
	// whether to parse a path component as an index instead of lower-casing
	// it as a text key.
	IsIntegerKey(dottedKey string) bool
}

// Empty is the zero-value Tree: nothing is declared as an integer, so every
// component is treated as a text key. This is the default when no schema is
// supplied to the env loader.
type Empty struct{}

// IsIntegerKey always reports false for the empty schema.
func (Empty) IsIntegerKey(string) bool { return false }

// Static is a Tree backed by a fixed set of dotted key paths known to be
// integer-typed, the common case for a hand-authored schema.
type Static struct {
	IntegerKeys map[string]bool
}

// IsIntegerKey reports whether dottedKey is present and true in the set.
func (s Static) IsIntegerKey(dottedKey string) bool {
	if s.IntegerKeys == nil {
		return false
	}
	return s.IntegerKeys[dottedKey]
}
