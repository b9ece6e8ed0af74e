package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

func init() {
	register("jump_merge", laminar.Callback{
		OpFactory: func(_, value interface{}) laminar.Operation {
			relPath, _ := value.(string)
			return laminar.NewJumpMerge(relPath)
		},
	})
}
