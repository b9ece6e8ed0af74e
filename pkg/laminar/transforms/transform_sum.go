package transforms

import (
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/laminarconf/laminar/pkg/laminar"
)

// transformSum adds a whitespace-separated list of numbers, e.g.
// "@sum 5 5 5 5" -> 20. Built on govaluate rather than hand-rolled parsing
// so the expression grammar (and future extension to arbitrary arithmetic
// args) comes for free.
func transformSum(args string, cumulative interface{}) (interface{}, error) {
	s := operand(args, cumulative)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, laminar.NewMalformedTokenError("@sum: no operands")
	}
	expr, err := govaluate.NewEvaluableExpression(strings.Join(fields, " + "))
	if err != nil {
		return nil, laminar.NewMalformedTokenError("@sum: " + err.Error())
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return nil, laminar.NewMalformedTokenError("@sum: " + err.Error())
	}
	return result, nil
}

func init() {
	register("sum", laminar.Callback{Fn: transformSum})
}
