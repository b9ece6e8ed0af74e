package transforms

import (
	"strconv"

	"github.com/laminarconf/laminar/pkg/laminar"
)

func transformInt(args string, cumulative interface{}) (interface{}, error) {
	s := operand(args, cumulative)
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, laminar.NewMalformedTokenError("@int: " + err.Error())
	}
	return n, nil
}

func init() {
	register("int", laminar.Callback{Fn: transformInt})
}
