package laminar

import (
	"regexp"
	"strings"
)

var tokenMarkerRx = regexp.MustCompile(`@[A-Za-z0-9_-]+`)

// IsTokenString reports whether v is a textual candidate for tokenization:
// a string beginning with "@", per spec.md §4.1.
func IsTokenString(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(s, "@")
}

type partialToken struct {
	id   string
	args *string
}

// Tokenize parses a scalar string "@t1 args @t2 args ..." into a linked
// chain of Tokens in evaluation order (innermost/rightmost-declared first),
// or returns (nil, nil) when value isn't a token string at all. Unknown
// identifiers and malformed chains (operation not leftmost, bare "@") are
// reported eagerly, per spec.md §4.1 / §7.
func Tokenize(value interface{}, registry *Registry) (*Token, error) {
	if !IsTokenString(value) {
		return nil, nil
	}
	s := value.(string)

	segments, err := splitDeclared(s)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, NewMalformedTokenError("token string contains no identifier: " + s)
	}

	// Scan declared segments right-to-left, pairing each "@id" marker with
	// the text immediately to its right (or nil), threading a stack of
	// partial tokens in evaluation order.
	var stack []partialToken
	var argsMemory *string
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if strings.HasPrefix(seg, "@") {
			id := strings.TrimPrefix(seg, "@")
			// A text segment that starts with "@" but is not a whole marker
			// (e.g. "@ bare") carries a sigil with no identifier after it.
			if id == "" || tokenMarkerRx.FindString(seg) != seg {
				return nil, NewMalformedTokenError("empty token identifier in: " + s)
			}
			stack = append(stack, partialToken{id: id, args: argsMemory})
			argsMemory = nil
		} else {
			text := seg
			argsMemory = &text
		}
	}
	if len(stack) == 0 {
		return nil, NewMalformedTokenError("token string contains no identifier: " + s)
	}

	head, err := popToken(&stack, nil, registry)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		head, err = popToken(&stack, head, registry)
		if err != nil {
			return nil, err
		}
	}

	if err := validateOperationPlacement(head); err != nil {
		return nil, err
	}
	return head, nil
}

func popToken(stack *[]partialToken, next *Token, registry *Registry) (*Token, error) {
	last := (*stack)[len(*stack)-1]
	*stack = (*stack)[:len(*stack)-1]
	cb, err := registry.Lookup(last.id)
	if err != nil {
		return nil, err
	}
	return &Token{
		ID:               last.id,
		Args:             last.args,
		Fn:               cb.Fn,
		OpFactory:        cb.OpFactory,
		IsLazy:           cb.IsLazy,
		IsContainerLevel: cb.IsContainerLevel,
		Next:             next,
	}, nil
}

// validateOperationPlacement enforces that an operation token, if present,
// is the last node reachable via Next — i.e. the leftmost declared segment.
func validateOperationPlacement(head *Token) error {
	for t := head; t != nil; t = t.Next {
		if t.IsOperation() && t.Next != nil {
			return NewMalformedTokenError("operator token @" + t.ID + " must be the leftmost segment")
		}
	}
	return nil
}

// splitDeclared splits a token string into its declared-order segments:
// "@id" markers and the (trimmed, non-empty) argument text between them.
func splitDeclared(s string) ([]string, error) {
	matches := tokenMarkerRx.FindAllStringIndex(s, -1)
	var segments []string
	last := 0
	for _, m := range matches {
		if m[0] > last {
			if text := strings.TrimSpace(s[last:m[0]]); text != "" {
				segments = append(segments, text)
			}
		}
		segments = append(segments, s[m[0]:m[1]])
		last = m[1]
	}
	if last < len(s) {
		if text := strings.TrimSpace(s[last:]); text != "" {
			segments = append(segments, text)
		}
	}
	return segments, nil
}
