package loader

import (
	"context"

	"github.com/geofffranks/yaml"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// YAMLLoader reads and parses YAML documents with the teacher's own YAML
// fork, the same codec cmd/graft/main.go's parseYAML/readFile pair uses
// (keeping the go-yaml null-key fixes the teacher depends on).
type YAMLLoader struct{}

// NewYAML returns the YAML loader.
func NewYAML() *YAMLLoader { return &YAMLLoader{} }

// Read loads uri from disk, or stdin when uri is "-".
func (l *YAMLLoader) Read(_ context.Context, uri string) ([]byte, error) {
	return readURI(uri)
}

// Parse decodes raw as YAML into a laminar.Mapping. An empty document
// decodes to an empty mapping rather than an error, matching parseYAML's
// explicit empty-doc handling.
func (l *YAMLLoader) Parse(raw []byte) (laminar.Mapping, error) {
	if len(raw) == 0 {
		return laminar.Mapping{}, nil
	}
	var out map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return laminar.Mapping{}, nil
	}
	return normalize(out).(laminar.Mapping), nil
}

// SplitEnvs implements the shared top-level-key-as-env convention.
func (l *YAMLLoader) SplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return defaultSplitEnvs(tree, hasExplicitEnvs, defaultEnv)
}
