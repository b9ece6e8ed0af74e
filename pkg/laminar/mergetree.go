package laminar

import "github.com/laminarconf/laminar/internal/treepath"

// MergeTree is the flattened plan the Builder produces and the Applicator
// consumes: an ordered list of Operations per path that carries any, plus a
// side table of container-level and lazy meta-tokens (e.g. a bare
// "@append_unique" found as a sequence element) keyed by the path of the
// container they annotate.
// Per spec.md §3, both maps are keyed by the path's dotted string form so
// equal paths always collide regardless of how they were built.
type MergeTree struct {
	operations map[string][]Operation
	metaTokens map[string][]*Token
}

// NewMergeTree returns an empty tree.
func NewMergeTree() *MergeTree {
	return &MergeTree{
		operations: make(map[string][]Operation),
		metaTokens: make(map[string][]*Token),
	}
}

// Add appends op to the operation list for path, preserving the builder's
// pre-order insertion sequence (spec.md §4.5 ordering guarantee).
func (mt *MergeTree) Add(path treepath.Path, op Operation) {
	key := path.String()
	mt.operations[key] = append(mt.operations[key], op)
}

// Get returns the ordered operation list recorded at path, if any.
func (mt *MergeTree) Get(path treepath.Path) ([]Operation, bool) {
	ops, ok := mt.operations[path.String()]
	return ops, ok
}

// AddMetaToken records a container-level or lazy token against the path of
// the container it governs. Several may accumulate at one path (e.g. a
// lazy marker alongside a container-scoped operation marker).
func (mt *MergeTree) AddMetaToken(path treepath.Path, tok *Token) {
	key := path.String()
	mt.metaTokens[key] = append(mt.metaTokens[key], tok)
}

// GetMetaToken returns the meta-tokens recorded for path. If id is
// non-empty, only tokens whose ID matches are returned.
func (mt *MergeTree) GetMetaToken(path treepath.Path, id string) []*Token {
	all := mt.metaTokens[path.String()]
	if id == "" {
		return all
	}
	var matched []*Token
	for _, t := range all {
		if t.ID == id {
			matched = append(matched, t)
		}
	}
	return matched
}

// firstContainerLevelOp returns the first container-level operation
// meta-token attached to path, used by the Builder's precedence rule
// (spec.md §4.3 step 3b).
func (mt *MergeTree) firstContainerLevelOp(path treepath.Path) *Token {
	for _, t := range mt.metaTokens[path.String()] {
		if t.IsContainerLevel && t.IsOperation() {
			return t
		}
	}
	return nil
}

// Paths returns every path carrying at least one operation, for
// diagnostics and tests.
func (mt *MergeTree) Paths() []string {
	paths := make([]string, 0, len(mt.operations))
	for p := range mt.operations {
		paths = append(paths, p)
	}
	return paths
}

// Len reports the total number of operations the tree carries across all
// paths.
func (mt *MergeTree) Len() int {
	n := 0
	for _, ops := range mt.operations {
		n += len(ops)
	}
	return n
}
