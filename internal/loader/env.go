package loader

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/laminarconf/laminar/internal/schema"
	"github.com/laminarconf/laminar/pkg/laminar"
)

// EnvLoader scrapes os.Environ() for the environment-variable loading
// convention spec.md §6 defines: case-insensitive prefix match, prefix
// stripped, remainder split on "__" into path components, each component
// lower-cased unless the schema declares it integer-typed.
type EnvLoader struct {
	Prefix string
	Schema schema.Tree
}

// NewEnv returns an EnvLoader defaulting to the "LAMINAR_" prefix
// (SPEC_FULL.md §4.9) and no schema (every component stays a text key).
func NewEnv() *EnvLoader {
	return &EnvLoader{Prefix: "LAMINAR_", Schema: schema.Empty{}}
}

// withContext returns a copy of l configured from lc, applied by Load
// before Read/Parse run; EnvVarPrefix/SchemaTree have no other way to reach
// the loader through the fixed three-method Loader interface.
func (l *EnvLoader) withContext(lc LoadContext) *EnvLoader {
	out := *l
	if lc.EnvVarPrefix != "" {
		out.Prefix = lc.EnvVarPrefix
	}
	if lc.SchemaTree != nil {
		out.Schema = lc.SchemaTree
	}
	return &out
}

// Read ignores uri and snapshots the process environment as "KEY=VALUE"
// lines; Parse does the actual prefix/split/coerce work. Capturing the
// snapshot here (rather than in Parse) keeps Parse a pure function of its
// input, matching the rest of the Loader implementations.
func (l *EnvLoader) Read(_ context.Context, _ string) ([]byte, error) {
	return []byte(strings.Join(os.Environ(), "\n")), nil
}

// Parse turns the "KEY=VALUE" snapshot into a nested laminar.Mapping, per
// spec.md §6's env-var convention (e.g. LAMINAR_DICTY__X=by_env ->
// {dicty: {x: "by_env"}}).
func (l *EnvLoader) Parse(raw []byte) (laminar.Mapping, error) {
	out := laminar.Mapping{}
	for _, line := range strings.Split(string(raw), "\n") {
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(l.Prefix)) {
			continue
		}
		rest := name[len(l.Prefix):]
		if rest == "" {
			continue
		}
		parts := strings.Split(rest, "__")
		setEnvPath(out, parts, value, l.Schema)
	}
	return out, nil
}

// SplitEnvs: the env loader never carries explicit per-environment
// sections of its own (that's TOML/YAML's job); everything it scrapes
// belongs to defaultEnv.
func (l *EnvLoader) SplitEnvs(tree laminar.Mapping, _ bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return map[string]laminar.Mapping{defaultEnv: tree}, nil
}

// setEnvPath walks/creates nested Mappings for parts[:-1] and sets the
// final component to value, lower-casing each component unless the schema
// declares its dotted path integer-typed (in which case the component is
// parsed as an int and the container becomes addressable as a Sequence
// index downstream — the raw tree still stores it under a Mapping here,
// consistent with spec.md §6: coercion affects the TreePath component, not
// the value, which stays the raw string "as-is").
func setEnvPath(root laminar.Mapping, parts []string, value string, tree schema.Tree) {
	cur := root
	dotted := ""
	for i, raw := range parts {
		if dotted == "" {
			dotted = raw
		} else {
			dotted = dotted + "." + raw
		}
		key := normalizeEnvComponent(raw, dotted, tree)

		if i == len(parts)-1 {
			cur[key] = value
			return
		}
		next, ok := cur[key].(laminar.Mapping)
		if !ok {
			next = laminar.Mapping{}
			cur[key] = next
		}
		cur = next
	}
}

// normalizeEnvComponent renders one "__"-split component as the map key it
// becomes in the raw tree: lower-cased text, unless the schema marks the
// dotted path so far as integer-typed, in which case the parsed integer's
// decimal string is used as the key (the Builder's treepath.Parse will
// later recognize it as an index component).
func normalizeEnvComponent(raw, dotted string, tree schema.Tree) string {
	if tree != nil && tree.IsIntegerKey(dotted) {
		if n, err := strconv.Atoi(raw); err == nil {
			return strconv.Itoa(n)
		}
	}
	return strings.ToLower(raw)
}
