package algebra

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// groupKey identifies a bucket of constraints that share a
// (numerator, denominator) pair, letting Combine fold their contributions
// into one TraceExpression sum and letting the evaluator (component G)
// perform the division by denominator once per bucket instead of once
// per constraint.
type groupKey struct {
	numerator   string
	denominator string
}

type constraintBucket struct {
	numerator   *SparsePolynomial
	denominator *SparsePolynomial
	sum         TraceExpression
}

// GroupedConstraints is the result of combining a list of Constraints
// with random verifier challenges into a single composition expression,
// grouped by (numerator, denominator) to share division work.
type GroupedConstraints struct {
	buckets      map[groupKey]*constraintBucket
	order        []groupKey // insertion order, for deterministic iteration
	targetDegree int
}

// TargetDegree returns the composition degree D* computed by Combine:
// the smallest (power of two - 1) at least as large as the maximum
// input constraint's degree.
func (g *GroupedConstraints) TargetDegree() int { return g.targetDegree }

// Buckets returns the combiner's (numerator, denominator, sum) triples in
// deterministic order.
func (g *GroupedConstraints) Buckets() []struct {
	Numerator   *SparsePolynomial
	Denominator *SparsePolynomial
	Sum         TraceExpression
} {
	keys := append([]groupKey(nil), g.order...)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].denominator != keys[j].denominator {
			return keys[i].denominator < keys[j].denominator
		}
		return keys[i].numerator < keys[j].numerator
	})

	out := make([]struct {
		Numerator   *SparsePolynomial
		Denominator *SparsePolynomial
		Sum         TraceExpression
	}, 0, len(keys))
	for _, k := range keys {
		b := g.buckets[k]
		out = append(out, struct {
			Numerator   *SparsePolynomial
			Denominator *SparsePolynomial
			Sum         TraceExpression
		}{Numerator: b.numerator, Denominator: b.denominator, Sum: b.sum})
	}
	return out
}

// Len returns the number of distinct (numerator, denominator) buckets.
func (g *GroupedConstraints) Len() int { return len(g.buckets) }

// Combine folds constraints into a GroupedConstraints using the verifier
// challenge coefficients (two per constraint: a base coefficient and a
// degree-adjustment coefficient). traceLength determines each
// constraint's concrete degree. cfg may be nil, in which case
// DefaultConfig() applies.
//
// The target degree is the smallest (power of two - 1) at least as
// large as the maximum constraint degree, so that every constraint's
// degree-adjustment exponent e_i = target - deg(constraint_i) is
// non-negative, and each constraint contributes
//
//	coefficients[2i]*base + coefficients[2i+1]*base*X^e_i
//
// to its (numerator, denominator) bucket. Exceeding ConstraintCap
// constraints is not fatal: the excess is dropped and a warning is
// logged.
func Combine(constraints []*Constraint, coefficients []field.Element, traceLength int, cfg *Config) (*GroupedConstraints, error) {
	cfg = resolveConfig(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, wrapError(ErrUnknown, "Combine: invalid configuration", err)
	}

	n := len(constraints)
	capped := n
	if capped > cfg.ConstraintCap {
		log.Warn().
			Int("supplied", n).
			Int("cap", cfg.ConstraintCap).
			Msg("constraint-algebra: Combine truncating constraints to configured cap")
		capped = cfg.ConstraintCap
	}
	if len(coefficients) < 2*capped {
		return nil, newError(ErrUnknown, "Combine: fewer than 2*len(constraints) coefficients supplied")
	}

	targetDegree := 0
	for i := 0; i < capped; i++ {
		if d := constraints[i].Degree(traceLength); d > targetDegree {
			targetDegree = d
		}
	}
	targetDegree = nextPowerOfTwo(targetDegree+1) - 1

	gc := &GroupedConstraints{buckets: map[groupKey]*constraintBucket{}, targetDegree: targetDegree}
	for i := 0; i < capped; i++ {
		c := constraints[i]
		adjustment := targetDegree - c.Degree(traceLength)
		if adjustment < 0 {
			return nil, newError(ErrNegativeDegreeAdjustment,
				"Combine: constraint degree exceeds target degree; degree adjustment would be negative")
		}

		base := MulTrace(Poly(Constant(coefficients[2*i])), c.Base)
		adjusted := MulTrace(
			Poly(Constant(coefficients[2*i+1])),
			MulTrace(c.Base, Poly(PowPoly(X(), adjustment))),
		)
		term := AddTrace(base, adjusted)

		key := groupKey{numerator: c.Numerator.Key(), denominator: c.Denominator.Key()}
		if bucket, ok := gc.buckets[key]; ok {
			bucket.sum = AddTrace(bucket.sum, term)
		} else {
			gc.buckets[key] = &constraintBucket{numerator: c.Numerator, denominator: c.Denominator, sum: term}
			gc.order = append(gc.order, key)
		}
	}

	return gc, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
