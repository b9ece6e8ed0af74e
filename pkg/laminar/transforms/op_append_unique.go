package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

func init() {
	register("append_unique", laminar.Callback{
		OpFactory: func(_, value interface{}) laminar.Operation {
			return laminar.NewAppendUnique(value)
		},
	})
}
