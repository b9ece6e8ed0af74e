package loader

import (
	"fmt"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// normalize converts whatever shape a third-party decoder handed back
// (map[interface{}]interface{} from geofffranks/yaml, map[string]interface{}
// from yaml.v3/toml, their slice counterparts) into laminar's own
// Mapping/Sequence types, recursively, so the builder's type switch on
// laminar.Mapping/laminar.Sequence sees every container regardless of which
// loader produced it.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case laminar.Mapping:
		return normalizeStringMap(t)
	case map[string]interface{}:
		return normalizeStringMap(t)
	case map[interface{}]interface{}:
		out := make(laminar.Mapping, len(t))
		for k, val := range t {
			out[stringifyKey(k)] = normalize(val)
		}
		return out
	case laminar.Sequence:
		return normalizeSlice(t)
	case []interface{}:
		return normalizeSlice(t)
	default:
		return v
	}
}

func normalizeStringMap(t map[string]interface{}) laminar.Mapping {
	out := make(laminar.Mapping, len(t))
	for k, val := range t {
		out[k] = normalize(val)
	}
	return out
}

func normalizeSlice(t []interface{}) laminar.Sequence {
	out := make(laminar.Sequence, len(t))
	for i, val := range t {
		out[i] = normalize(val)
	}
	return out
}

func stringifyKey(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
