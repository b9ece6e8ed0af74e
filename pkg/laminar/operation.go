package laminar

import "fmt"

// MatchCase is the membership relation between an operation's key and the
// target container, per spec.md §4.4 / GLOSSARY.
type MatchCase int

const (
	// Conflict: the key is present in both base and income.
	Conflict MatchCase = iota
	// IncomeOnly: only the incoming side has the key.
	IncomeOnly
	// BaseOnly: only the base side has the key. Deferred per spec.md §9 —
	// no operation in this core reacts to it.
	BaseOnly
)

// Operation is one unit of intent attached to a path in the merge tree —
// the tagged union {Add, Replace, Append, AppendUnique, Merge, JumpMerge}
// spoken of in SPEC_FULL.md §9, expressed as a shared interface so the
// Applicator dispatches through one protocol regardless of variant.
type Operation interface {
	// Key is the target key/index, or nil for position-agnostic operations.
	Key() interface{}
	// Value is the operand, or nil for routing-only operations.
	Value() interface{}
	// AllowedCases gates when Run is anything but a silent no-op.
	AllowedCases() []MatchCase
	// Run mutates container (a Mapping or Sequence) and returns the
	// (possibly replaced, for sequences) container. The Applicator calls Run
	// directly; a gated operation computes the match case itself via
	// ComputeMatchCase and is a silent no-op when it isn't in AllowedCases().
	Run(container interface{}) (interface{}, error)
}

// ComputeMatchCase resolves the match case for key against container, per
// spec.md §4.4: conflict if present, income_only otherwise; a nil key
// (position-agnostic ops) is always conflict so they always run.
func ComputeMatchCase(container interface{}, key interface{}) MatchCase {
	if key == nil {
		return Conflict
	}
	switch c := container.(type) {
	case Mapping:
		k, ok := key.(string)
		if !ok {
			return IncomeOnly
		}
		if _, exists := c[k]; exists {
			return Conflict
		}
		return IncomeOnly
	case Sequence:
		idx, ok := key.(int)
		if !ok {
			return IncomeOnly
		}
		if idx >= 0 && idx < len(c) {
			return Conflict
		}
		return IncomeOnly
	default:
		return IncomeOnly
	}
}

func allowed(cases []MatchCase, mc MatchCase) bool {
	for _, c := range cases {
		if c == mc {
			return true
		}
	}
	return false
}

// ---- Add ----

// Add inserts a new mapping entry or sequence slot; a no-op on conflict.
type Add struct {
	key   interface{}
	value interface{}
}

// NewAdd builds an Add(key, value) operation.
func NewAdd(key, value interface{}) *Add { return &Add{key: key, value: value} }

func (a *Add) Key() interface{}            { return a.key }
func (a *Add) Value() interface{}          { return a.value }
func (a *Add) AllowedCases() []MatchCase   { return []MatchCase{IncomeOnly} }

func (a *Add) Run(container interface{}) (interface{}, error) {
	mc := ComputeMatchCase(container, a.key)
	if !allowed(a.AllowedCases(), mc) {
		return container, nil
	}
	switch c := container.(type) {
	case Mapping:
		k, ok := a.key.(string)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("add: mapping key must be a string, got %T", a.key))
		}
		c[k] = a.value
		return c, nil
	case Sequence:
		idx, ok := a.key.(int)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("add: sequence key must be an int, got %T", a.key))
		}
		return growAndSet(c, idx, a.value), nil
	default:
		return container, NewTypeMismatchError("", "add: target is not a container")
	}
}

// growAndSet assigns v at idx, extending the sequence with nils if idx is
// beyond its current length (Add/Replace on a sequence are spec-silent on
// this edge case; growing rather than erroring keeps Add idempotent).
func growAndSet(seq Sequence, idx int, v interface{}) Sequence {
	if idx < len(seq) {
		seq[idx] = v
		return seq
	}
	grown := make(Sequence, idx+1)
	copy(grown, seq)
	grown[idx] = v
	return grown
}

// ---- Replace ----

// Replace overwrites an existing mapping entry or sequence slot; a no-op
// when the target doesn't already exist. This is what an explicit @replace
// token produces; the builder's default for a terminal is defaultSet below.
type Replace struct {
	key   interface{}
	value interface{}
}

// NewReplace builds a Replace(key, value) operation.
func NewReplace(key, value interface{}) *Replace { return &Replace{key: key, value: value} }

func (r *Replace) Key() interface{}          { return r.key }
func (r *Replace) Value() interface{}        { return r.value }
func (r *Replace) AllowedCases() []MatchCase { return []MatchCase{Conflict} }

func (r *Replace) Run(container interface{}) (interface{}, error) {
	mc := ComputeMatchCase(container, r.key)
	if !allowed(r.AllowedCases(), mc) {
		return container, nil
	}
	switch c := container.(type) {
	case Mapping:
		k, ok := r.key.(string)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("replace: mapping key must be a string, got %T", r.key))
		}
		c[k] = r.value
		return c, nil
	case Sequence:
		idx, ok := r.key.(int)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("replace: sequence key must be an int, got %T", r.key))
		}
		c[idx] = r.value
		return c, nil
	default:
		return container, NewTypeMismatchError("", "replace: target is not a container")
	}
}

// ---- Append ----

// Append pushes value at the end of a sequence; a TypeMismatch on mappings.
type Append struct {
	value interface{}
}

// NewAppend builds an Append(nil, value) operation.
func NewAppend(value interface{}) *Append { return &Append{value: value} }

func (a *Append) Key() interface{}          { return nil }
func (a *Append) Value() interface{}        { return a.value }
func (a *Append) AllowedCases() []MatchCase { return []MatchCase{Conflict, IncomeOnly} }

func (a *Append) Run(container interface{}) (interface{}, error) {
	switch c := container.(type) {
	case Sequence:
		return append(c, a.value), nil
	case Mapping:
		return container, NewTypeMismatchError("", "append: target is a mapping, not a sequence")
	default:
		return container, NewTypeMismatchError("", "append: target is not a container")
	}
}

// ---- AppendUnique ----

// AppendUnique pushes value at the end of a sequence only if no existing
// element is structurally equal to it.
type AppendUnique struct {
	value interface{}
}

// NewAppendUnique builds an AppendUnique(nil, value) operation.
func NewAppendUnique(value interface{}) *AppendUnique { return &AppendUnique{value: value} }

func (a *AppendUnique) Key() interface{}          { return nil }
func (a *AppendUnique) Value() interface{}        { return a.value }
func (a *AppendUnique) AllowedCases() []MatchCase { return []MatchCase{Conflict, IncomeOnly} }

func (a *AppendUnique) Run(container interface{}) (interface{}, error) {
	switch c := container.(type) {
	case Sequence:
		for _, existing := range c {
			if structurallyEqual(existing, a.value) {
				return c, nil
			}
		}
		return append(c, a.value), nil
	case Mapping:
		return container, NewTypeMismatchError("", "append_unique: target is a mapping, not a sequence")
	default:
		return container, NewTypeMismatchError("", "append_unique: target is not a container")
	}
}

// ---- Merge ----

// Merge is a routing marker, not a data mutation: it tells the Applicator
// to descend into container[key]. The Applicator special-cases Merge before
// ever calling Run (spec.md §4.5); Run is a defensive no-op for callers that
// invoke it directly.
type Merge struct {
	key interface{}
}

// NewMerge builds a Merge(key, nil) operation.
func NewMerge(key interface{}) *Merge { return &Merge{key: key} }

func (m *Merge) Key() interface{}          { return m.key }
func (m *Merge) Value() interface{}        { return nil }
func (m *Merge) AllowedCases() []MatchCase { return []MatchCase{Conflict} }
func (m *Merge) Run(container interface{}) (interface{}, error) {
	return container, nil
}

// ---- MergeAppend ----

// MergeAppend is the data-carrying form of the "merge" built-in: unlike
// Merge (a pure routing marker), it arises when a "@merge <args>" token is
// used as a terminal with an operand. Folding an existing sequence in place
// appends the value; folding into an existing mapping shallow-merges keys;
// anything else is a plain upsert. This covers the "@merge by_env" shape
// (spec.md §8 scenario 1) that the routing-only Merge can't express.
type MergeAppend struct {
	key   interface{}
	value interface{}
}

// NewMergeAppend builds a MergeAppend(key, value) operation.
func NewMergeAppend(key, value interface{}) *MergeAppend {
	return &MergeAppend{key: key, value: value}
}

func (m *MergeAppend) Key() interface{}          { return m.key }
func (m *MergeAppend) Value() interface{}        { return m.value }
func (m *MergeAppend) AllowedCases() []MatchCase { return []MatchCase{Conflict, IncomeOnly} }

func (m *MergeAppend) Run(container interface{}) (interface{}, error) {
	c, ok := container.(Mapping)
	if !ok {
		return container, NewTypeMismatchError("", "merge: only supported on mapping targets")
	}
	k, ok := m.key.(string)
	if !ok {
		return container, NewTypeMismatchError("", "merge: key must be a string")
	}
	existing, present := c[k]
	if !present {
		c[k] = m.value
		return c, nil
	}
	switch ex := existing.(type) {
	case Sequence:
		c[k] = append(ex, m.value)
	case Mapping:
		if valMap, ok := m.value.(Mapping); ok {
			for kk, vv := range valMap {
				ex[kk] = vv
			}
		} else {
			c[k] = m.value
		}
	default:
		c[k] = m.value
	}
	return c, nil
}

// ---- defaultSet ----

// defaultSet is the builder's fallback terminal operation (spec.md §4.3
// step 3c): an unconditional upsert, neither gated by match case nor
// registered under any token id. A plain explicit @replace token still
// produces the strict, conflict-only Replace above; this is only what the
// builder reaches for when nothing more specific applies, so that a brand
// new key introduced by income data (income_only) is not silently dropped
// the way a gated Replace would drop it.
type defaultSet struct {
	key   interface{}
	value interface{}
}

func newDefaultSet(key, value interface{}) *defaultSet { return &defaultSet{key: key, value: value} }

func (d *defaultSet) Key() interface{}          { return d.key }
func (d *defaultSet) Value() interface{}        { return d.value }
func (d *defaultSet) AllowedCases() []MatchCase { return []MatchCase{Conflict, IncomeOnly} }

func (d *defaultSet) Run(container interface{}) (interface{}, error) {
	switch c := container.(type) {
	case Mapping:
		k, ok := d.key.(string)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("default set: mapping key must be a string, got %T", d.key))
		}
		c[k] = d.value
		return c, nil
	case Sequence:
		idx, ok := d.key.(int)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("default set: sequence key must be an int, got %T", d.key))
		}
		return growAndSet(c, idx, d.value), nil
	default:
		return container, NewTypeMismatchError("", "default set: target is not a container")
	}
}

// ---- JumpMerge ----

// JumpMerge collapses a chain of single-child intermediate containers into
// one hop: RelPath is a dotted relative path. Like Merge, it is a routing
// marker the Applicator special-cases rather than a mutation.
type JumpMerge struct {
	relPath string
}

// NewJumpMerge builds a JumpMerge(relPath, nil) operation.
func NewJumpMerge(relPath string) *JumpMerge { return &JumpMerge{relPath: relPath} }

func (j *JumpMerge) Key() interface{}          { return j.relPath }
func (j *JumpMerge) Value() interface{}        { return nil }
func (j *JumpMerge) RelPath() string           { return j.relPath }
func (j *JumpMerge) AllowedCases() []MatchCase { return []MatchCase{Conflict} }
func (j *JumpMerge) Run(container interface{}) (interface{}, error) {
	return container, nil
}

// ---- Remove ----

// Remove deletes an existing mapping entry, or blanks a sequence slot to
// nil (removing it outright would shift every later index's meaning, which
// would silently invalidate any other Operation already queued against
// this path). A no-op when the target doesn't exist. Has no token-string
// form of its own; it exists for the go-patch loader (SPEC_FULL.md §4.9),
// which builds Operations directly from a patch document's "remove" op.
type Remove struct {
	key interface{}
}

// NewRemove builds a Remove(key, nil) operation.
func NewRemove(key interface{}) *Remove { return &Remove{key: key} }

func (r *Remove) Key() interface{}          { return r.key }
func (r *Remove) Value() interface{}        { return nil }
func (r *Remove) AllowedCases() []MatchCase { return []MatchCase{Conflict} }

func (r *Remove) Run(container interface{}) (interface{}, error) {
	mc := ComputeMatchCase(container, r.key)
	if !allowed(r.AllowedCases(), mc) {
		return container, nil
	}
	switch c := container.(type) {
	case Mapping:
		k, ok := r.key.(string)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("remove: mapping key must be a string, got %T", r.key))
		}
		delete(c, k)
		return c, nil
	case Sequence:
		idx, ok := r.key.(int)
		if !ok {
			return container, NewTypeMismatchError("", fmt.Sprintf("remove: sequence key must be an int, got %T", r.key))
		}
		c[idx] = nil
		return c, nil
	default:
		return container, NewTypeMismatchError("", "remove: target is not a container")
	}
}
