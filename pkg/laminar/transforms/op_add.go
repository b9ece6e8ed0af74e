package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

func init() {
	register("add", laminar.Callback{
		OpFactory: func(key, value interface{}) laminar.Operation {
			return laminar.NewAdd(key, value)
		},
	})
}
