// Package loader turns raw configuration sources (files, environment
// variables, already-parsed data) into the per-environment raw trees that
// feed the builder, per SPEC_FULL.md §4.9 (C11/C9). Loaders never touch the
// tokenizer or merge tree; they hand back plain laminar.Mapping trees.
package loader

import (
	"context"
	"strings"

	"github.com/laminarconf/laminar/internal/schema"
	"github.com/laminarconf/laminar/pkg/laminar"
)

// Loader is the three-step protocol spec.md §4.7 describes: read raw bytes,
// parse them into a tree, split that tree into per-environment trees.
type Loader interface {
	Read(ctx context.Context, uri string) ([]byte, error)
	Parse(raw []byte) (laminar.Mapping, error)
	SplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error)
}

// LoadRequest names one source to load and how to interpret it, per
// spec.md §4.7.
type LoadRequest struct {
	LoaderID        string
	URI             string
	Order           int
	HasExplicitEnvs bool
	AllowedEnvList  []string
	DirectData      laminar.Mapping
}

// LoadContext carries the settings shared across every LoadRequest in a
// single load pass.
type LoadContext struct {
	DefaultEnvName string
	EnvVarPrefix   string
	AllowedEnvs    []string
	SchemaTree     schema.Tree
	OnlySchemaKeys bool
}

// Registry maps loader_id to a concrete Loader, per spec.md §4.7's
// "registration by string loader_id".
type Registry map[string]Loader

// NewDefaultRegistry returns a Registry preloaded with every built-in
// loader, keyed the way SPEC_FULL.md §4.9 names them.
func NewDefaultRegistry() Registry {
	return Registry{
		"toml":   NewTOML(),
		"yaml":   NewYAML(),
		"json":   NewJSON(),
		"env":    NewEnv(),
		"direct": NewDirect(),
		"patch":  NewPatch(),
	}
}

// Load runs one LoadRequest end to end: read, parse, split, then filter the
// resulting environments down to whichever are actually allowed.
func Load(ctx context.Context, req LoadRequest, lc LoadContext, registry Registry) (map[string]laminar.Mapping, error) {
	l, ok := registry[req.LoaderID]
	if !ok {
		return nil, laminar.NewLoaderFailureError(req.LoaderID, nil)
	}

	if env, ok := l.(*EnvLoader); ok {
		l = env.withContext(lc)
	}

	var tree laminar.Mapping
	if direct, ok := l.(*DirectLoader); ok {
		tree = direct.data(req)
	} else {
		raw, err := l.Read(ctx, req.URI)
		if err != nil {
			return nil, laminar.NewLoaderFailureError(req.LoaderID, err)
		}
		parsed, err := l.Parse(raw)
		if err != nil {
			return nil, laminar.NewLoaderFailureError(req.LoaderID, err)
		}
		tree = parsed
	}

	defaultEnv := lc.DefaultEnvName
	if defaultEnv == "" {
		defaultEnv = "default"
	}

	envs, err := l.SplitEnvs(tree, req.HasExplicitEnvs, defaultEnv)
	if err != nil {
		return nil, laminar.NewLoaderFailureError(req.LoaderID, err)
	}

	return filterEnvs(envs, req.AllowedEnvList, lc.AllowedEnvs), nil
}

// filterEnvs applies the union of a request-level and context-level allow
// list, case-insensitively, per spec.md §4.7 ("applied post-split using
// case-insensitive comparison"). No filters at all passes everything.
func filterEnvs(envs map[string]laminar.Mapping, requestAllow, contextAllow []string) map[string]laminar.Mapping {
	allow := append(append([]string{}, requestAllow...), contextAllow...)
	if len(allow) == 0 {
		return envs
	}
	allowed := make(map[string]bool, len(allow))
	for _, a := range allow {
		allowed[strings.ToLower(a)] = true
	}
	out := make(map[string]laminar.Mapping, len(envs))
	for name, tree := range envs {
		if allowed[strings.ToLower(name)] {
			out[name] = tree
		}
	}
	return out
}

// defaultSplitEnvs is the shared SplitEnvs behavior every format loader
// (TOML/YAML/JSON) uses: without explicit envs the whole tree belongs to
// defaultEnv; with explicit envs, every top-level key is itself an
// environment name mapping to its subtree.
func defaultSplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	if !hasExplicitEnvs {
		return map[string]laminar.Mapping{defaultEnv: tree}, nil
	}
	out := make(map[string]laminar.Mapping, len(tree))
	for name, val := range tree {
		sub, ok := val.(laminar.Mapping)
		if !ok {
			return nil, laminar.NewMalformedTokenError("explicit environment " + name + " is not a mapping")
		}
		out[name] = sub
	}
	return out, nil
}
