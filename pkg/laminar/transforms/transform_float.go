package transforms

import (
	"strconv"

	"github.com/laminarconf/laminar/pkg/laminar"
)

func transformFloat(args string, cumulative interface{}) (interface{}, error) {
	s := operand(args, cumulative)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, laminar.NewMalformedTokenError("@float: " + err.Error())
	}
	return f, nil
}

func init() {
	register("float", laminar.Callback{Fn: transformFloat})
}
