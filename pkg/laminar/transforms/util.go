package transforms

import (
	"fmt"
	"strings"
)

// operand picks the text a transform should act on: its own declared args
// when present, otherwise the folded-in value from the previous token in
// the chain. This is what lets "@str @sum 5 5 5 5" thread sum's result into
// str with no args of its own, while "@int 123" uses args directly.
func operand(args string, cumulative interface{}) string {
	if trimmed := strings.TrimSpace(args); trimmed != "" {
		return trimmed
	}
	if cumulative != nil {
		return fmt.Sprint(cumulative)
	}
	return ""
}
