package transforms

import (
	"gopkg.in/yaml.v3"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// transformJSON decodes its operand as structured data. JSON is a strict
// subset of YAML, so yaml.v3's decoder handles it without a second parser
// dependency in the tree.
func transformJSON(args string, cumulative interface{}) (interface{}, error) {
	s := operand(args, cumulative)
	var out interface{}
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		return nil, laminar.NewMalformedTokenError("@json: " + err.Error())
	}
	return normalizeDecoded(out), nil
}

// normalizeDecoded converts yaml.v3's map[string]interface{} results (and
// nested occurrences of the same) into laminar.Mapping so downstream
// container dispatch (a type switch on laminar.Mapping/Sequence) sees it.
func normalizeDecoded(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(laminar.Mapping, len(t))
		for k, val := range t {
			out[k] = normalizeDecoded(val)
		}
		return out
	case []interface{}:
		out := make(laminar.Sequence, len(t))
		for i, val := range t {
			out[i] = normalizeDecoded(val)
		}
		return out
	default:
		return v
	}
}

func init() {
	register("json", laminar.Callback{Fn: transformJSON})
}
