package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

func init() {
	register("replace", laminar.Callback{
		OpFactory: func(key, value interface{}) laminar.Operation {
			return laminar.NewReplace(key, value)
		},
	})
}
