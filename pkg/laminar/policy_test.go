package laminar

import "testing"

func TestDefaultWeightMapOrdering(t *testing.T) {
	w := DefaultWeightMap()
	containerScoped := RuleAttrs{ContainerScoped: true}
	fromSchema := RuleAttrs{FromSchema: true}
	if w.Weight(containerScoped) <= w.Weight(fromSchema) {
		t.Errorf("container-scoped weight %d should outrank from-schema weight %d",
			w.Weight(containerScoped), w.Weight(fromSchema))
	}
}

func TestWinnerTiesFavorFirstArgument(t *testing.T) {
	p := NewPolicyRegistry()
	a := RuleAttrs{ContainerScoped: false}
	b := RuleAttrs{ContainerScoped: false}
	if p.Winner(a, b) != a {
		t.Error("Winner should favor the first argument on a tie")
	}
}

func TestWinnerStrictlyGreater(t *testing.T) {
	p := NewPolicyRegistry()
	low := RuleAttrs{}
	high := RuleAttrs{ContainerScoped: true}
	if p.Winner(low, high) != high {
		t.Error("Winner should pick the strictly heavier rule")
	}
	if p.Winner(high, low) != high {
		t.Error("Winner should pick the strictly heavier rule regardless of argument order")
	}
}

func TestUpdateFindsAnOrderSatisfyingWeightMap(t *testing.T) {
	p := NewPolicyRegistry()
	priority := []RuleAttrs{
		{ContainerScoped: true},
		{Propagates: true},
		{FromSchema: true},
	}
	if err := p.Update(priority); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := p.WeightMap()
	if !strictlyDecreasing(w, priority) {
		t.Errorf("weight map %+v does not strictly decrease across %+v", w, priority)
	}
}

func TestUpdateEmptyPriorityAlwaysSucceeds(t *testing.T) {
	// strictlyDecreasing is vacuously true for fewer than two rules, so the
	// very first random trial satisfies it.
	p := NewPolicyRegistry()
	if err := p.Update(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
