package loader

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// JSONLoader reads and parses JSON documents. JSON is a syntactic subset of
// YAML, so it shares the yaml.v3 codec the builtin "json" transform token
// uses (pkg/laminar/transforms/transform_json.go) instead of pulling in
// encoding/json as a second decoder for the same data.
type JSONLoader struct{}

// NewJSON returns the JSON loader.
func NewJSON() *JSONLoader { return &JSONLoader{} }

// Read loads uri from disk, or stdin when uri is "-".
func (l *JSONLoader) Read(_ context.Context, uri string) ([]byte, error) {
	return readURI(uri)
}

// Parse decodes raw as JSON into a laminar.Mapping.
func (l *JSONLoader) Parse(raw []byte) (laminar.Mapping, error) {
	if len(raw) == 0 {
		return laminar.Mapping{}, nil
	}
	var out map[string]interface{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return normalize(out).(laminar.Mapping), nil
}

// SplitEnvs implements the shared top-level-key-as-env convention.
func (l *JSONLoader) SplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return defaultSplitEnvs(tree, hasExplicitEnvs, defaultEnv)
}
