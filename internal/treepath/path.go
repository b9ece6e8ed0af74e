// Package treepath implements TreePath, the immutable, rooted path type used
// throughout laminar to address nodes of a configuration tree.
//
// Grounded on internal/utils/tree/cursor.go (wayneeseguin/graft): the dotted
// parse/join logic is the same shape, but components here are a typed union
// of text key vs. sequence index instead of bare strings, per the data model
// in SPEC_FULL.md §3 ("Dynamic keys vs. strings").
package treepath

import (
	"strconv"
	"strings"
)

// RootName is the synthetic first component every Path begins with.
const RootName = "root"

// Component is one segment of a Path: either a textual mapping key or a
// non-negative sequence index. Never blur the two — a component that looks
// like "3" inside a dotted string is converted to an Index at the boundary
// (ensure_rooted / dotted-string parsing), but a Path built programmatically
// keeps whatever the caller constructed.
type Component struct {
	Text    string
	Index   int
	IsIndex bool
}

// Text returns a text component.
func Text(s string) Component { return Component{Text: s} }

// Idx returns an index component.
func Idx(i int) Component { return Component{Index: i, IsIndex: true} }

// String renders a single component the way it appears in dotted form.
func (c Component) String() string {
	if c.IsIndex {
		return strconv.Itoa(c.Index)
	}
	return c.Text
}

// Path is an immutable, ordered sequence of Components, always anchored at
// RootName. Treat values as read-only; every mutating-looking method returns
// a new Path.
type Path struct {
	components []Component
}

// Root returns the single-component path {root}.
func Root() Path {
	return Path{components: []Component{Text(RootName)}}
}

// New builds a Path from already-typed components, prefixing root if the
// caller didn't already include it.
func New(components ...Component) Path {
	if len(components) > 0 && !components[0].IsIndex && components[0].Text == RootName {
		return Path{components: append([]Component{}, components...)}
	}
	out := make([]Component, 0, len(components)+1)
	out = append(out, Text(RootName))
	out = append(out, components...)
	return Path{components: out}
}

// Parse accepts the dotted string form ("root.a.0.b") and converts it
// componentwise: integer-looking components become Index, everything else
// stays Text. A leading "root" is normalized away before re-prefixing so
// Parse(p.String()) round-trips for paths without dot-containing components.
func Parse(s string) Path {
	if s == "" {
		return Root()
	}
	parts := strings.Split(s, ".")
	if parts[0] == RootName {
		parts = parts[1:]
	}
	components := make([]Component, 0, len(parts)+1)
	components = append(components, Text(RootName))
	for _, p := range parts {
		if p == "" {
			continue
		}
		components = append(components, parseComponent(p))
	}
	return Path{components: components}
}

func parseComponent(s string) Component {
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && strconv.Itoa(i) == s {
		return Idx(i)
	}
	return Text(s)
}

// String renders the dotted form, e.g. "root.dicty.0.x".
func (p Path) String() string {
	parts := make([]string, len(p.components))
	for i, c := range p.components {
		parts[i] = c.String()
	}
	return strings.Join(parts, ".")
}

// Components returns the path's components. The returned slice is owned by
// the caller; mutating it does not affect p.
func (p Path) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// Len returns the number of components, including the synthetic root.
func (p Path) Len() int {
	return len(p.components)
}

// Last returns the final component and whether the path has one beyond root.
func (p Path) Last() (Component, bool) {
	if len(p.components) <= 1 {
		return Component{}, false
	}
	return p.components[len(p.components)-1], true
}

// Child returns a new Path with a text component appended.
func (p Path) Child(key string) Path {
	return p.appendComponent(Text(key))
}

// ChildIndex returns a new Path with an index component appended.
func (p Path) ChildIndex(i int) Path {
	return p.appendComponent(Idx(i))
}

// Append concatenates another Path's non-root components onto p.
func (p Path) Append(rel Path) Path {
	out := p.appendSlice(rel.components[1:])
	return out
}

// AppendDotted parses a dotted relative path (no leading "root") and
// concatenates it onto p; used by JumpMerge's rel_path encoding.
func (p Path) AppendDotted(rel string) Path {
	if rel == "" {
		return p
	}
	parts := strings.Split(rel, ".")
	comps := make([]Component, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		comps = append(comps, parseComponent(part))
	}
	return p.appendSlice(comps)
}

func (p Path) appendComponent(c Component) Path {
	out := make([]Component, len(p.components)+1)
	copy(out, p.components)
	out[len(p.components)] = c
	return Path{components: out}
}

func (p Path) appendSlice(rest []Component) Path {
	out := make([]Component, len(p.components)+len(rest))
	copy(out, p.components)
	copy(out[len(p.components):], rest)
	return Path{components: out}
}

// Equal reports whether two paths address the same node.
func (p Path) Equal(o Path) bool {
	if len(p.components) != len(o.components) {
		return false
	}
	for i := range p.components {
		if p.components[i] != o.components[i] {
			return false
		}
	}
	return true
}
