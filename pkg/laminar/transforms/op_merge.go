package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

// The "merge" identifier resolves to different concrete operations
// depending on whether it carries an operand: a bare "@merge" (value nil)
// is the pure routing marker the Applicator special-cases, while
// "@merge <args>" (spec.md §8 scenario 1) folds its operand into whatever
// already lives at the target key.
func init() {
	register("merge", laminar.Callback{
		OpFactory: func(key, value interface{}) laminar.Operation {
			if value == nil {
				return laminar.NewMerge(key)
			}
			return laminar.NewMergeAppend(key, value)
		},
	})
}
