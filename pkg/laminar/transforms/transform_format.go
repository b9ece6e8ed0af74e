package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

// transformFormat is never actually invoked by the builder: IsLazy routes
// "@format ..." straight into the merge tree's meta-tokens (spec.md §9
// "Lazy evaluation"), verbatim, for a later interpolation pass this core
// doesn't implement. The callback only exists so the registry has
// something non-nil to hand back.
func transformFormat(args string, cumulative interface{}) (interface{}, error) {
	return operand(args, cumulative), nil
}

func init() {
	register("format", laminar.Callback{Fn: transformFormat, IsLazy: true})
}
