package laminar

import "github.com/mitchellh/hashstructure"

// structurallyEqual reports whether a and b hash identically under
// hashstructure, used by AppendUnique to detect an already-present element
// without requiring its values to be comparable with ==  (maps and slices
// decoded from YAML/TOML are not).
func structurallyEqual(a, b interface{}) bool {
	ha, err := hashstructure.Hash(a, nil)
	if err != nil {
		return false
	}
	hb, err := hashstructure.Hash(b, nil)
	if err != nil {
		return false
	}
	return ha == hb
}
