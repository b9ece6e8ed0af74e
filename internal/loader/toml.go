package loader

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// TOMLLoader reads and parses TOML documents. Grounded on the teacher's
// file-based readFile (cmd/graft/main.go), but decoded with BurntSushi/toml
// rather than geofffranks/yaml since the teacher carries no TOML reader of
// its own.
type TOMLLoader struct{}

// NewTOML returns the TOML loader.
func NewTOML() *TOMLLoader { return &TOMLLoader{} }

// Read loads uri from disk, or stdin when uri is "-".
func (l *TOMLLoader) Read(_ context.Context, uri string) ([]byte, error) {
	return readURI(uri)
}

// Parse decodes raw as TOML into a laminar.Mapping.
func (l *TOMLLoader) Parse(raw []byte) (laminar.Mapping, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return normalize(out).(laminar.Mapping), nil
}

// SplitEnvs implements the shared top-level-key-as-env convention.
func (l *TOMLLoader) SplitEnvs(tree laminar.Mapping, hasExplicitEnvs bool, defaultEnv string) (map[string]laminar.Mapping, error) {
	return defaultSplitEnvs(tree, hasExplicitEnvs, defaultEnv)
}
