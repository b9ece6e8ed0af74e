package laminar

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	cb := Callback{Fn: func(args string, cumulative interface{}) (interface{}, error) { return args, nil }}
	if err := r.Register("upper", cb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := r.Lookup("upper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fn == nil {
		t.Fatal("expected a non-nil Fn")
	}
}

func TestLookupUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("nope")
	if err == nil {
		t.Fatal("expected an error for an unregistered id")
	}
	laminarErr, ok := err.(*Error)
	if !ok || laminarErr.Type != UnknownToken {
		t.Fatalf("err = %v, want UnknownToken", err)
	}
}

func TestRegisterDuplicateSameCallbackIsNoop(t *testing.T) {
	r := NewRegistry()
	fn := func(args string, cumulative interface{}) (interface{}, error) { return args, nil }
	if err := r.Register("upper", Callback{Fn: fn}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("upper", Callback{Fn: fn}); err != nil {
		t.Fatalf("re-registering the identical callback should be a no-op, got %v", err)
	}
}

func TestRegisterDuplicateDifferentCallbackErrors(t *testing.T) {
	r := NewRegistry()
	fnA := func(args string, cumulative interface{}) (interface{}, error) { return args, nil }
	fnB := func(args string, cumulative interface{}) (interface{}, error) { return cumulative, nil }
	if err := r.Register("upper", Callback{Fn: fnA}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register("upper", Callback{Fn: fnB})
	if err == nil {
		t.Fatal("expected a DuplicateToken error")
	}
	laminarErr, ok := err.(*Error)
	if !ok || laminarErr.Type != DuplicateToken {
		t.Fatalf("err = %v, want DuplicateToken", err)
	}
}

func TestMustRegisterPanicsOnConflict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustRegister to panic on conflict")
		}
	}()
	r := NewRegistry()
	r.MustRegister("upper", Callback{Fn: func(string, interface{}) (interface{}, error) { return nil, nil }})
	r.MustRegister("upper", Callback{Fn: func(string, interface{}) (interface{}, error) { return 1, nil }})
}
