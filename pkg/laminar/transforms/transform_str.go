package transforms

import "github.com/laminarconf/laminar/pkg/laminar"

func transformStr(args string, cumulative interface{}) (interface{}, error) {
	return operand(args, cumulative), nil
}

func init() {
	register("str", laminar.Callback{Fn: transformStr})
}
