package treepath

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "root"},
		{"root", "root"},
		{"root.a.b", "root.a.b"},
		{"a.b", "root.a.b"},
		{"dicty.0.x", "root.dicty.0.x"},
	}
	for _, c := range cases {
		got := Parse(c.in).String()
		if got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseIndexComponents(t *testing.T) {
	p := Parse("root.listy.2")
	comps := p.Components()
	if len(comps) != 3 {
		t.Fatalf("len(comps) = %d, want 3", len(comps))
	}
	if !comps[2].IsIndex || comps[2].Index != 2 {
		t.Errorf("comps[2] = %+v, want index 2", comps[2])
	}
	if comps[1].IsIndex || comps[1].Text != "listy" {
		t.Errorf("comps[1] = %+v, want text \"listy\"", comps[1])
	}
}

func TestChildAndChildIndex(t *testing.T) {
	p := Root().Child("dicty").ChildIndex(3)
	if p.String() != "root.dicty.3" {
		t.Errorf("p.String() = %q, want %q", p.String(), "root.dicty.3")
	}
	if p.Len() != 3 {
		t.Errorf("p.Len() = %d, want 3", p.Len())
	}
	last, ok := p.Last()
	if !ok || !last.IsIndex || last.Index != 3 {
		t.Errorf("Last() = %+v, %v, want index 3, true", last, ok)
	}
}

func TestAppendDotted(t *testing.T) {
	base := Root().Child("a")
	got := base.AppendDotted("b.c.0").String()
	want := "root.a.b.c.0"
	if got != want {
		t.Errorf("AppendDotted = %q, want %q", got, want)
	}
}

func TestAppendDottedEmpty(t *testing.T) {
	base := Root().Child("a")
	got := base.AppendDotted("")
	if !got.Equal(base) {
		t.Errorf("AppendDotted(\"\") = %q, want %q", got.String(), base.String())
	}
}

func TestEqual(t *testing.T) {
	a := Parse("root.a.0.b")
	b := New(Text(RootName), Text("a"), Idx(0), Text("b"))
	if !a.Equal(b) {
		t.Errorf("%q and %q should be equal", a.String(), b.String())
	}
	c := Parse("root.a.1.b")
	if a.Equal(c) {
		t.Errorf("%q and %q should not be equal", a.String(), c.String())
	}
}

func TestRootHasNoLast(t *testing.T) {
	_, ok := Root().Last()
	if ok {
		t.Error("Root().Last() should report false")
	}
}
