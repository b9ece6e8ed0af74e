package laminar

import "testing"

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister("upper", Callback{Fn: func(args string, cumulative interface{}) (interface{}, error) {
		return args, nil
	}})
	r.MustRegister("add", Callback{OpFactory: func(key, value interface{}) Operation {
		return NewAdd(key, value)
	}})
	r.MustRegister("format", Callback{Fn: func(args string, cumulative interface{}) (interface{}, error) {
		return args, nil
	}, IsLazy: true})
	return r
}

func TestTokenizeNonTokenString(t *testing.T) {
	r := testRegistry(t)
	tok, err := Tokenize("plain value", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != nil {
		t.Fatalf("expected nil token for non-token string, got %+v", tok)
	}
}

func TestTokenizeNonString(t *testing.T) {
	r := testRegistry(t)
	tok, err := Tokenize(42, r)
	if err != nil || tok != nil {
		t.Fatalf("Tokenize(42) = %+v, %v, want nil, nil", tok, err)
	}
}

func TestTokenizeSingleOperation(t *testing.T) {
	r := testRegistry(t)
	tok, err := Tokenize("@add hello", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || !tok.IsOperation() {
		t.Fatalf("expected an operation token, got %+v", tok)
	}
	if tok.Args == nil || *tok.Args != "hello" {
		t.Fatalf("tok.Args = %v, want \"hello\"", tok.Args)
	}
	if tok.Next != nil {
		t.Fatalf("expected no chained token, got %+v", tok.Next)
	}
}

func TestTokenizeChain(t *testing.T) {
	r := testRegistry(t)
	// Declared left to right, evaluated right to left: @upper (rightmost
	// declared) runs first against "value"; @add (leftmost declared, the
	// operation) is reached last via Next, per spec.md §4.1.
	tok, err := Tokenize("@add @upper value", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || tok.IsOperation() {
		t.Fatalf("expected the first-evaluated token to be the @upper transform, got %+v", tok)
	}
	if tok.Args == nil || *tok.Args != "value" {
		t.Fatalf("tok.Args = %v, want \"value\"", tok.Args)
	}
	if tok.Next == nil || !tok.Next.IsOperation() {
		t.Fatalf("expected the chained token to be the @add operation, got %+v", tok.Next)
	}
	if tok.Next.Next != nil {
		t.Fatalf("expected the operation token to be the chain's end, got Next = %+v", tok.Next.Next)
	}
}

func TestTokenizeUnknownIdentifier(t *testing.T) {
	r := testRegistry(t)
	_, err := Tokenize("@nope args", r)
	if err == nil {
		t.Fatal("expected an error for an unregistered identifier")
	}
	laminarErr, ok := err.(*Error)
	if !ok || laminarErr.Type != UnknownToken {
		t.Fatalf("err = %v, want UnknownToken", err)
	}
}

func TestTokenizeEmptyIdentifier(t *testing.T) {
	r := testRegistry(t)
	_, err := Tokenize("@ bare", r)
	if err == nil {
		t.Fatal("expected a malformed-token error for a bare @")
	}
}

func TestTokenizeOperationNotLeftmost(t *testing.T) {
	r := testRegistry(t)
	_, err := Tokenize("@upper @add value", r)
	if err == nil {
		t.Fatal("expected an error when the operation token isn't leftmost")
	}
	laminarErr, ok := err.(*Error)
	if !ok || laminarErr.Type != MalformedToken {
		t.Fatalf("err = %v, want MalformedToken", err)
	}
}

func TestTokenizeLazy(t *testing.T) {
	r := testRegistry(t)
	tok, err := Tokenize("@format hello {name}", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || !tok.IsLazy {
		t.Fatalf("expected a lazy token, got %+v", tok)
	}
}

func TestIsTokenString(t *testing.T) {
	if !IsTokenString("@add x") {
		t.Error("expected @add x to be a token string")
	}
	if IsTokenString("plain") {
		t.Error("expected plain to not be a token string")
	}
	if IsTokenString(5) {
		t.Error("expected a non-string to not be a token string")
	}
}
