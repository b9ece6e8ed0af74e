package laminar

import "testing"

func TestEnsureRooted(t *testing.T) {
	data := Mapping{"foo": "bar"}
	rooted := EnsureRooted(data)
	top, ok := rooted["root"].(Mapping)
	if !ok {
		t.Fatalf("rooted[%q] is not a Mapping: %#v", "root", rooted["root"])
	}
	if top["foo"] != "bar" {
		t.Errorf("top[\"foo\"] = %v, want \"bar\"", top["foo"])
	}
}

func TestEnsureRootedIdempotent(t *testing.T) {
	data := Mapping{"foo": "bar"}
	once := EnsureRooted(data)
	twice := EnsureRooted(once)
	if twice["root"].(Mapping)["foo"] != "bar" {
		t.Errorf("EnsureRooted should be idempotent, got %#v", twice)
	}
	if _, doubled := twice["root"].(Mapping)["root"]; doubled {
		t.Error("EnsureRooted nested the tree a second time")
	}
}

func TestEnsureRootedNil(t *testing.T) {
	rooted := EnsureRooted(nil)
	top, ok := rooted["root"].(Mapping)
	if !ok || len(top) != 0 {
		t.Errorf("EnsureRooted(nil) = %#v, want an empty root mapping", rooted)
	}
}

func TestIsContainer(t *testing.T) {
	if !IsContainer(Mapping{}) {
		t.Error("Mapping should be a container")
	}
	if !IsContainer(Sequence{}) {
		t.Error("Sequence should be a container")
	}
	if IsContainer("scalar") {
		t.Error("a string should not be a container")
	}
	if IsContainer(42) {
		t.Error("an int should not be a container")
	}
}

func TestDeepCopyIsolatesNestedState(t *testing.T) {
	original := Mapping{
		"a": Mapping{"b": 1},
		"list": Sequence{1, 2, Mapping{"c": 3}},
	}
	copied := DeepCopy(original).(Mapping)

	copied["a"].(Mapping)["b"] = 99
	copied["list"].(Sequence)[2].(Mapping)["c"] = 99

	if original["a"].(Mapping)["b"] != 1 {
		t.Error("mutating the copy mutated the original nested mapping")
	}
	if original["list"].(Sequence)[2].(Mapping)["c"] != 3 {
		t.Error("mutating the copy mutated the original nested sequence element")
	}
}
