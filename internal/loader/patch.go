package loader

import (
	"context"

	gopatch "github.com/cppforlife/go-patch/patch"
	"gopkg.in/yaml.v2"

	"github.com/laminarconf/laminar/internal/treepath"
	"github.com/laminarconf/laminar/pkg/laminar"
)

// PatchLoader parses a go-patch document (cppforlife/go-patch), the same
// library cmd/graft/main.go's parseGoPatch reaches for. It is supplemental
// to spec.md (SPEC_FULL.md §4.9): rather than producing a raw tree for the
// tokenizer/builder, BuildMergeTree translates each go-patch op directly
// into laminar Operations appended straight into a MergeTree, the same
// shortcut spec.md §8 scenario 4 takes when it builds operations by hand.
//
// PatchLoader still satisfies the Loader interface so it can sit in the
// same Registry as the format loaders; Parse/SplitEnvs return an empty tree
// since a patch document carries no settings of its own to merge into —
// callers that want the real behavior call BuildMergeTree instead.
type PatchLoader struct{}

// NewPatch returns the go-patch loader.
func NewPatch() *PatchLoader { return &PatchLoader{} }

// Read loads uri from disk, or stdin when uri is "-".
func (l *PatchLoader) Read(_ context.Context, uri string) ([]byte, error) {
	return readURI(uri)
}

// Parse always yields an empty tree; see the type doc.
func (l *PatchLoader) Parse(_ []byte) (laminar.Mapping, error) {
	return laminar.Mapping{}, nil
}

// SplitEnvs always yields {defaultEnv: {}}; see the type doc.
func (l *PatchLoader) SplitEnvs(_ laminar.Mapping, _ bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return map[string]laminar.Mapping{defaultEnv: {}}, nil
}

// BuildMergeTree parses raw as a list of go-patch OpDefinitions (identical
// to parseGoPatch in cmd/graft/main.go) and appends one laminar.Operation
// per supported op directly into mt under base, plus the Merge routing hops
// leading to it, bypassing CreateMergeTree entirely. Two ops sharing a
// parent each record their own hops, so that parent's operation list runs
// once per hop.
func (l *PatchLoader) BuildMergeTree(raw []byte, mt *laminar.MergeTree, base treepath.Path) error {
	var opdefs []gopatch.OpDefinition
	if err := yaml.Unmarshal(raw, &opdefs); err != nil {
		return laminar.NewMalformedTokenError("go-patch: " + err.Error())
	}
	ops, err := gopatch.NewOpsFromDefinitions(opdefs)
	if err != nil {
		return laminar.NewMalformedTokenError("go-patch: " + err.Error())
	}
	for _, op := range ops {
		if err := addPatchOp(mt, base, op); err != nil {
			return err
		}
	}
	return nil
}

func addPatchOp(mt *laminar.MergeTree, base treepath.Path, op gopatch.Op) error {
	switch o := op.(type) {
	case gopatch.ReplaceOp:
		parent, key, err := pointerToParentKey(mt, base, o.Path)
		if err != nil {
			return err
		}
		mt.Add(parent, laminar.NewReplace(key, o.Value))
	case gopatch.RemoveOp:
		parent, key, err := pointerToParentKey(mt, base, o.Path)
		if err != nil {
			return err
		}
		mt.Add(parent, laminar.NewRemove(key))
	default:
		return laminar.NewMalformedTokenError("go-patch: unsupported op type for direct translation")
	}
	return nil
}

// pointerToParentKey walks every token of p except the last into a
// treepath.Path rooted at base, recording a Merge routing hop in mt at each
// step, and returns that parent path plus the final token's key — the
// (containerPath, key) shape every laminar.Operation expects.
func pointerToParentKey(mt *laminar.MergeTree, base treepath.Path, p gopatch.Pointer) (treepath.Path, interface{}, error) {
	tokens := p.Tokens()
	// Pointer.Tokens() includes a leading RootToken; skip it like the
	// teacher's own pointer-walking code does.
	var comps []gopatch.Token
	for _, t := range tokens {
		if _, ok := t.(gopatch.RootToken); ok {
			continue
		}
		comps = append(comps, t)
	}
	if len(comps) == 0 {
		return base, nil, laminar.NewMalformedTokenError("go-patch: root path is not a valid operation target")
	}

	// The Applicator only reaches a nested path through a Merge hop recorded
	// at its parent, so one is added for every intermediate component.
	path := base
	for _, t := range comps[:len(comps)-1] {
		switch tok := t.(type) {
		case gopatch.KeyToken:
			mt.Add(path, laminar.NewMerge(tok.Key))
			path = path.Child(tok.Key)
		case gopatch.IndexToken:
			mt.Add(path, laminar.NewMerge(tok.Index))
			path = path.ChildIndex(tok.Index)
		default:
			return base, nil, laminar.NewMalformedTokenError("go-patch: unsupported path token for direct translation")
		}
	}

	switch tok := comps[len(comps)-1].(type) {
	case gopatch.KeyToken:
		return path, tok.Key, nil
	case gopatch.IndexToken:
		return path, tok.Index, nil
	default:
		return base, nil, laminar.NewMalformedTokenError("go-patch: unsupported terminal path token for direct translation")
	}
}
