package laminar

// Registry maps a bare token identifier to its Callback, per SPEC_FULL.md
// §4.2 (Token Registry). Registration is idempotent but a duplicate id with
// a different callback raises DuplicateToken, matching spec.md §4.2.
type Registry struct {
	callbacks map[string]Callback
}

// NewRegistry returns an empty registry. Use transforms.NewDefaultRegistry
// for one preloaded with the built-in transforms and operations.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]Callback)}
}

// Register adds id -> cb. A second registration of the same id with an
// equivalent Callback is a no-op; a second registration with a different
// one raises DuplicateToken.
func (r *Registry) Register(id string, cb Callback) error {
	existing, ok := r.callbacks[id]
	if !ok {
		r.callbacks[id] = cb
		return nil
	}
	if !sameCallback(existing, cb) {
		return NewDuplicateTokenError(id)
	}
	return nil
}

// MustRegister panics if Register fails; used by the transforms
// subpackage's NewDefaultRegistry, where a registration conflict among the
// built-ins is a programming error, not a runtime one.
func (r *Registry) MustRegister(id string, cb Callback) {
	if err := r.Register(id, cb); err != nil {
		panic(err)
	}
}

// Lookup returns the callback for id, or UnknownToken if unregistered.
func (r *Registry) Lookup(id string) (Callback, error) {
	cb, ok := r.callbacks[id]
	if !ok {
		return Callback{}, NewUnknownTokenError(id)
	}
	return cb, nil
}

// sameCallback compares callbacks by identity of their function pointers so
// re-registering the exact same built-in (e.g. a package imported twice)
// doesn't trip DuplicateToken.
func sameCallback(a, b Callback) bool {
	return a.IsLazy == b.IsLazy &&
		a.IsContainerLevel == b.IsContainerLevel &&
		funcsEqual(a.Fn, b.Fn) &&
		opFactoriesEqual(a.OpFactory, b.OpFactory)
}
