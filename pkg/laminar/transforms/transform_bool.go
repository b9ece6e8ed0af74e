package transforms

import (
	"strconv"

	"github.com/laminarconf/laminar/pkg/laminar"
)

func transformBool(args string, cumulative interface{}) (interface{}, error) {
	s := operand(args, cumulative)
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, laminar.NewMalformedTokenError("@bool: " + err.Error())
	}
	return b, nil
}

func init() {
	register("bool", laminar.Callback{Fn: transformBool})
}
