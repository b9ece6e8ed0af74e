package laminar

import (
	"github.com/laminarconf/laminar/internal/logx"
	"github.com/laminarconf/laminar/internal/treepath"
)

// tokenOperationAttrs and containerLevelAttrs describe, in the Policy
// Engine's terms, the two kinds of operation candidate the Builder can find
// itself choosing between at one terminal: one declared inline on the value
// itself, one inherited from a container-scoped meta-token on the enclosing
// container. Under the (symmetric) default weight map these tie, and the
// caller order to Winner breaks the tie toward the inline token — matching
// the fixed precedence in spec.md §4.3 step 3. A caller that installs an
// asymmetric weight map via PolicyRegistry.Update can invert that.
var (
	tokenOperationAttrs = RuleAttrs{ContainerScoped: false, Propagates: true, FromSchema: false}
	containerLevelAttrs = RuleAttrs{ContainerScoped: true, Propagates: false, FromSchema: false}
)

// CreateMergeTree walks data in pre-order and compiles it into a MergeTree,
// per spec.md §4.3 (C5). It is pure: the same (data, registry, policy)
// always yields an equivalent tree. A malformed token at one path doesn't
// stop the walk from reporting problems found at others: every error found
// is accumulated into an Errors and returned together at the end, mirroring
// the teacher's own MultiError role in pkg/graft/merger/merge.go.
func CreateMergeTree(data Mapping, registry *Registry, policy *PolicyRegistry) (*MergeTree, error) {
	rooted := EnsureRooted(data)
	top := rooted[treepath.RootName]
	mt := NewMergeTree()
	errs := &Errors{}
	buildContainer(top, treepath.Root(), mt, registry, policy, errs)
	return mt, errs.ErrorOrNil()
}

func buildContainer(container interface{}, path treepath.Path, mt *MergeTree, registry *Registry, policy *PolicyRegistry, errs *Errors) {
	switch c := container.(type) {
	case Mapping:
		for key, val := range c {
			childPath := path.Child(key)
			if IsContainer(val) {
				// Record a routing hop so the Applicator knows to descend
				// here (spec.md §4.5); the nested container's own ops land
				// on childPath via the recursive call below.
				mt.Add(path, NewMerge(key))
				buildContainer(val, childPath, mt, registry, policy, errs)
				continue
			}
			buildTerminal(path, treepath.Text(key), val, mt, registry, policy, false, errs)
		}
	case Sequence:
		for idx, val := range c {
			childPath := path.ChildIndex(idx)
			if IsContainer(val) {
				mt.Add(path, NewMerge(idx))
				buildContainer(val, childPath, mt, registry, policy, errs)
				continue
			}
			buildTerminal(path, treepath.Idx(idx), val, mt, registry, policy, true, errs)
		}
	}
}

// buildTerminal implements spec.md §4.3 steps 2-4 for one non-container
// value found at containerPath under comp. inSequence marks whether comp
// addresses a sequence element rather than a mapping key: a bare
// operation-only token found there is a container-level marker over the
// enclosing sequence (spec.md §6 — "appear as an element of a sequence"),
// not a per-index operation.
func buildTerminal(containerPath treepath.Path, comp treepath.Component, value interface{}, mt *MergeTree, registry *Registry, policy *PolicyRegistry, inSequence bool, errs *Errors) {
	key := componentKey(comp)

	tok, err := Tokenize(value, registry)
	if err != nil {
		errs.Append(err)
		return
	}
	if tok == nil {
		if metaOp := mt.firstContainerLevelOp(containerPath); metaOp != nil {
			mt.Add(containerPath, metaOp.OpFactory(key, value))
			return
		}
		logx.DEBUG("%s: %v has no token, default-upserting %v", containerPath.String(), key, value)
		mt.Add(containerPath, newDefaultSet(key, value))
		return
	}
	if inSequence && tok.IsOperation() {
		marked := *tok
		marked.IsContainerLevel = true
		mt.AddMetaToken(containerPath, &marked)
		return
	}
	if tok.IsLazy || tok.IsContainerLevel {
		mt.AddMetaToken(containerPath, tok)
		return
	}

	var cumulative interface{}
	var tokenOp OperationFactory
	for t := tok; t != nil; t = t.Next {
		if t.IsOperation() {
			tokenOp = t.OpFactory
			// An operation with no preceding transform still has its own
			// declared args; without this, a bare "@merge by_env" would
			// discard "by_env" entirely since no transform ever ran.
			if cumulative == nil && t.Args != nil {
				cumulative = *t.Args
			}
			break
		}
		args := ""
		if t.Args != nil {
			args = *t.Args
		}
		v, err := t.Fn(args, cumulative)
		if err != nil {
			errs.Append(err)
			return
		}
		cumulative = v
	}

	metaOp := mt.firstContainerLevelOp(containerPath)

	var op Operation
	switch {
	case tokenOp != nil && metaOp != nil:
		if policy.Winner(tokenOperationAttrs, containerLevelAttrs).ContainerScoped {
			logx.TRACE("%s: container-level meta-token outranks the inline token, using %s", containerPath.String(), metaOp.ID)
			op = metaOp.OpFactory(key, cumulative)
		} else {
			op = tokenOp(key, cumulative)
		}
	case tokenOp != nil:
		op = tokenOp(key, cumulative)
	case metaOp != nil:
		op = metaOp.OpFactory(key, cumulative)
	default:
		logx.DEBUG("%s: %v has no operation or meta-token, default-upserting %v", containerPath.String(), key, cumulative)
		op = newDefaultSet(key, cumulative)
	}
	mt.Add(containerPath, op)
}

// componentKey converts a path Component into the interface{} key shape
// Operations expect: string for text components, int for index components.
func componentKey(c treepath.Component) interface{} {
	if c.IsIndex {
		return c.Index
	}
	return c.Text
}
