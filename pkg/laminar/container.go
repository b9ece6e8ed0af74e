package laminar

import "github.com/laminarconf/laminar/internal/treepath"

// Mapping is an ordered-by-insertion-irrelevance string-keyed container.
type Mapping = map[string]interface{}

// Sequence is an ordered container of values.
type Sequence = []interface{}

// EnsureRooted normalizes any dict to {root: <original>}, per SPEC_FULL.md
// §3. Calling it twice is idempotent: ensureRooted(ensureRooted(x)) == ensureRooted(x).
func EnsureRooted(data Mapping) Mapping {
	if data == nil {
		return Mapping{treepath.RootName: Mapping{}}
	}
	if _, ok := data[treepath.RootName]; ok && len(data) == 1 {
		return data
	}
	return Mapping{treepath.RootName: data}
}

// IsContainer reports whether v is a Mapping or Sequence rather than a
// terminal scalar.
func IsContainer(v interface{}) bool {
	switch v.(type) {
	case Mapping, Sequence:
		return true
	default:
		return false
	}
}

// DeepCopy recursively clones a container tree so speculative merges (
// ApplyMergeTree with mutateBase=false) never alias the caller's base.
func DeepCopy(v interface{}) interface{} {
	switch t := v.(type) {
	case Mapping:
		out := make(Mapping, len(t))
		for k, val := range t {
			out[k] = DeepCopy(val)
		}
		return out
	case Sequence:
		out := make(Sequence, len(t))
		for i, val := range t {
			out[i] = DeepCopy(val)
		}
		return out
	default:
		return v
	}
}

// getChild resolves a single path Component against a container, returning
// (value, found).
func getChild(container interface{}, c treepath.Component) (interface{}, bool) {
	switch t := container.(type) {
	case Mapping:
		if c.IsIndex {
			return nil, false
		}
		v, ok := t[c.Text]
		return v, ok
	case Sequence:
		if !c.IsIndex {
			return nil, false
		}
		if c.Index < 0 || c.Index >= len(t) {
			return nil, false
		}
		return t[c.Index], true
	default:
		return nil, false
	}
}
