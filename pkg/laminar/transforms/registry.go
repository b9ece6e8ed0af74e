// Package transforms registers laminar's built-in token identifiers: the
// scalar transforms (int, str, bool, float, json, sum) and the merge
// operations (add, replace, merge, append, append_unique, jump_merge), plus
// the "format" lazy marker. Kept separate from pkg/laminar so the core stays
// free of any one transform's dependencies (govaluate, yaml.v3).
package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

type registration struct {
	id string
	cb laminar.Callback
}

var registrations []registration

func register(id string, cb laminar.Callback) {
	registrations = append(registrations, registration{id: id, cb: cb})
}

// NewDefaultRegistry returns a fresh Registry preloaded with every built-in
// transform and operation.
func NewDefaultRegistry() *laminar.Registry {
	r := laminar.NewRegistry()
	for _, reg := range registrations {
		r.MustRegister(reg.id, reg.cb)
	}
	return r
}
