package laminar

import (
	"github.com/laminarconf/laminar/internal/logx"
	"github.com/laminarconf/laminar/internal/treepath"
)

// ApplyMergeTree walks mt's operations against base in the order the
// Builder recorded them and returns the resulting rooted tree, per
// spec.md §4.5 (C7). With mutateBase=false, base is deep-copied first so
// the caller's tree is never touched. A type-mismatched operation at one
// path doesn't abort the whole walk: every error found along the way is
// accumulated into an Errors and returned together at the end, the same
// non-fatal-per-path role the teacher's MultiError plays in
// pkg/graft/merger/merge.go — the op simply has no effect at that path and
// the walk continues into its siblings and children.
func ApplyMergeTree(base Mapping, mt *MergeTree, mutateBase bool) (Mapping, error) {
	working := base
	if !mutateBase {
		working = DeepCopy(base).(Mapping)
	}
	rooted := EnsureRooted(working)
	top := rooted[treepath.RootName]

	errs := &Errors{}
	result := stepIn(top, treepath.Root(), mt, errs)
	rooted[treepath.RootName] = result
	return rooted, errs.ErrorOrNil()
}

// stepIn runs every operation recorded at path against container, in
// insertion order, recursing through Merge/JumpMerge markers rather than
// calling their Run. It returns the (possibly reallocated, for sequences)
// container after mutation; any op.Run failure is appended to errs and
// skipped rather than stopping the rest of the walk.
func stepIn(container interface{}, path treepath.Path, mt *MergeTree, errs *Errors) interface{} {
	ops, _ := mt.Get(path)
	cur := container
	for _, op := range ops {
		switch o := op.(type) {
		case *JumpMerge:
			cur = applyJumpMerge(cur, path, o, mt, errs)
		case *Merge:
			cur = applyMerge(cur, path, o, mt, errs)
		default:
			next, err := op.Run(cur)
			if err != nil {
				errs.Append(err)
				continue
			}
			cur = next
		}
	}
	return cur
}

func applyMerge(container interface{}, path treepath.Path, op *Merge, mt *MergeTree, errs *Errors) interface{} {
	comp := keyToComponent(op.Key())
	child, ok := getChild(container, comp)
	if !ok {
		logx.DEBUG("%s: merge target %v not found upstream, skipping", path.String(), op.Key())
		return container
	}
	childPath := childComponentPath(path, comp)
	newChild := stepIn(child, childPath, mt, errs)
	return setChild(container, op.Key(), newChild)
}

func applyJumpMerge(container interface{}, path treepath.Path, op *JumpMerge, mt *MergeTree, errs *Errors) interface{} {
	relComponents := relPathComponents(op.RelPath())
	sub, ok := resolveComponents(container, relComponents)
	if !ok {
		logx.DEBUG("%s: jump_merge target %q not found upstream, skipping", path.String(), op.RelPath())
		return container
	}
	targetPath := path.AppendDotted(op.RelPath())
	newSub := stepIn(sub, targetPath, mt, errs)
	return setAtRelPath(container, relComponents, newSub)
}

func childComponentPath(path treepath.Path, comp treepath.Component) treepath.Path {
	if comp.IsIndex {
		return path.ChildIndex(comp.Index)
	}
	return path.Child(comp.Text)
}

// relPathComponents converts a dotted relative path into its Components,
// reusing Path's own dotted parser so index-looking segments become Index
// components consistently with the rest of the package.
func relPathComponents(rel string) []treepath.Component {
	full := treepath.Root().AppendDotted(rel).Components()
	return full[1:]
}

func resolveComponents(container interface{}, comps []treepath.Component) (interface{}, bool) {
	cur := container
	for _, c := range comps {
		next, ok := getChild(cur, c)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func setAtRelPath(container interface{}, comps []treepath.Component, newValue interface{}) interface{} {
	if len(comps) == 0 {
		return newValue
	}
	if len(comps) == 1 {
		return setChild(container, componentKey(comps[0]), newValue)
	}
	child, ok := getChild(container, comps[0])
	if !ok {
		return container
	}
	updated := setAtRelPath(child, comps[1:], newValue)
	return setChild(container, componentKey(comps[0]), updated)
}

func setChild(container interface{}, key interface{}, value interface{}) interface{} {
	switch c := container.(type) {
	case Mapping:
		k, ok := key.(string)
		if !ok {
			return c
		}
		c[k] = value
		return c
	case Sequence:
		idx, ok := key.(int)
		if !ok || idx < 0 || idx >= len(c) {
			return c
		}
		c[idx] = value
		return c
	default:
		return container
	}
}

func keyToComponent(key interface{}) treepath.Component {
	switch k := key.(type) {
	case int:
		return treepath.Idx(k)
	default:
		if s, ok := k.(string); ok {
			return treepath.Text(s)
		}
		return treepath.Text("")
	}
}
