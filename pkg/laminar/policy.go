package laminar

import "math/rand"

// RuleAttrs is the three-boolean classification the Builder (C5) consults
// when more than one candidate operation applies at a node: whether the
// rule is container-scoped, whether it propagates, and whether it came
// from a schema rather than an inline token. 8 combinations total.
type RuleAttrs struct {
	ContainerScoped bool
	Propagates      bool
	FromSchema      bool
}

// WeightMap assigns each attribute a (false-weight, true-weight) pair; a
// combination's weight is the sum of the three selected values.
type WeightMap struct {
	ContainerScoped [2]int
	Propagates      [2]int
	FromSchema      [2]int
}

// DefaultWeightMap is container-scoped ≫ propagates ≫ from-schema, per
// spec.md §4.6.
func DefaultWeightMap() WeightMap {
	return WeightMap{
		ContainerScoped: [2]int{10, 10},
		Propagates:      [2]int{4, 4},
		FromSchema:      [2]int{1, 1},
	}
}

func b2i(pair [2]int, v bool) int {
	if v {
		return pair[1]
	}
	return pair[0]
}

// Weight computes r's weight under w.
func (w WeightMap) Weight(r RuleAttrs) int {
	return b2i(w.ContainerScoped, r.ContainerScoped) +
		b2i(w.Propagates, r.Propagates) +
		b2i(w.FromSchema, r.FromSchema)
}

// PolicyRegistry holds the weight map the Builder consults when arbitrating
// between candidate operations at one node. The zero value holds an all-zero
// weight map, under which every rule ties; NewPolicyRegistry seeds it with
// DefaultWeightMap instead.
type PolicyRegistry struct {
	weights WeightMap
}

// NewPolicyRegistry returns a registry seeded with the default weight map.
func NewPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{weights: DefaultWeightMap()}
}

// WeightMap returns the currently active weight map.
func (p *PolicyRegistry) WeightMap() WeightMap {
	return p.weights
}

// Update searches for a weight assignment under which priority, a list of
// RuleAttrs ordered highest to lowest priority, induces strictly decreasing
// weights, and installs it. Per spec.md §4.6 the reference search draws
// small positive integers and checks monotonicity, retrying up to 1000
// times before giving up with UnsatisfiablePolicy.
func (p *PolicyRegistry) Update(priority []RuleAttrs) error {
	const limit = 1000
	for attempt := 0; attempt < limit; attempt++ {
		trial := WeightMap{
			ContainerScoped: [2]int{randSmall(), randSmall()},
			Propagates:      [2]int{randSmall(), randSmall()},
			FromSchema:      [2]int{randSmall(), randSmall()},
		}
		if strictlyDecreasing(trial, priority) {
			p.weights = trial
			return nil
		}
	}
	return NewUnsatisfiablePolicyError(limit)
}

func randSmall() int {
	return rand.Intn(100) + 1
}

func strictlyDecreasing(w WeightMap, priority []RuleAttrs) bool {
	for i := 1; i < len(priority); i++ {
		if w.Weight(priority[i-1]) <= w.Weight(priority[i]) {
			return false
		}
	}
	return true
}

// Winner returns whichever of a, b has the greater weight under the
// registry's current map; ties favor a, matching the builder's stable
// precedence order (token_operation candidates are offered before
// container-level ones).
func (p *PolicyRegistry) Winner(a, b RuleAttrs) RuleAttrs {
	if p.weights.Weight(b) > p.weights.Weight(a) {
		return b
	}
	return a
}
