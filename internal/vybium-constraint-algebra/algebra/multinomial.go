package algebra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// tracePair is one factor of a monomial: a reference to Trace(column,
// offset). A monomial is a sorted multiset of tracePairs — sorted so
// that two monomials built in different orders (e.g. Trace(0,0) *
// Trace(1,0) vs. Trace(1,0) * Trace(0,0)) produce identical keys.
type tracePair struct {
	Column int
	Offset int
}

func (t tracePair) less(other tracePair) bool {
	if t.Column != other.Column {
		return t.Column < other.Column
	}
	return t.Offset < other.Offset
}

type monomialTerm struct {
	factors     []tracePair
	coefficient *Fraction
}

func monomialKey(factors []tracePair) string {
	var b strings.Builder
	for _, f := range factors {
		fmt.Fprintf(&b, "%d:%d|", f.Column, f.Offset)
	}
	return b.String()
}

func sortedFactors(factors []tracePair) []tracePair {
	out := append([]tracePair(nil), factors...)
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// TraceMultinomial is the canonical sum-of-monomials form of a
// TraceExpression: a map from a sorted monomial (a multiset of
// Trace(column, offset) factors) to a Fraction coefficient. Every
// TraceExpression reduces to exactly one TraceMultinomial, built by the
// recursive rules in FromTraceExpression.
type TraceMultinomial struct {
	terms map[string]monomialTerm
}

// ZeroMultinomial returns the empty (additive identity) multinomial.
func ZeroMultinomial() *TraceMultinomial {
	return &TraceMultinomial{terms: map[string]monomialTerm{}}
}

// FromTraceExpression flattens a TraceExpression into its canonical
// TraceMultinomial form.
func FromTraceExpression(e TraceExpression) *TraceMultinomial {
	switch v := e.(type) {
	case polyLeaf:
		m := ZeroMultinomial()
		m.insert(nil, NewFraction(Poly(v.inner)))
		return m
	case traceLeaf:
		m := ZeroMultinomial()
		m.insert([]tracePair{{Column: v.column, Offset: v.offset}}, OneFraction())
		return m
	case negTrace:
		return FromTraceExpression(v.inner).Neg()
	case addTrace:
		return FromTraceExpression(v.left).Add(FromTraceExpression(v.right))
	case mulTrace:
		return FromTraceExpression(v.left).Mul(FromTraceExpression(v.right))
	default:
		panic(fmt.Sprintf("algebra.FromTraceExpression: unhandled TraceExpression variant %T", e))
	}
}

func (m *TraceMultinomial) insert(factors []tracePair, coefficient *Fraction) {
	key := monomialKey(sortedFactors(factors))
	if existing, ok := m.terms[key]; ok {
		m.terms[key] = monomialTerm{factors: existing.factors, coefficient: existing.coefficient.Add(coefficient)}
		return
	}
	m.terms[key] = monomialTerm{factors: sortedFactors(factors), coefficient: coefficient}
}

// Terms returns the multinomial's (monomial, coefficient) pairs in a
// deterministic order (sorted by monomial key).
func (m *TraceMultinomial) Terms() []struct {
	Factors     []tracePair
	Coefficient *Fraction
} {
	keys := make([]string, 0, len(m.terms))
	for k := range m.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]struct {
		Factors     []tracePair
		Coefficient *Fraction
	}, 0, len(keys))
	for _, k := range keys {
		t := m.terms[k]
		out = append(out, struct {
			Factors     []tracePair
			Coefficient *Fraction
		}{Factors: t.factors, Coefficient: t.coefficient})
	}
	return out
}

// Len returns the number of distinct monomials.
func (m *TraceMultinomial) Len() int { return len(m.terms) }

// Neg negates every coefficient.
func (m *TraceMultinomial) Neg() *TraceMultinomial {
	result := ZeroMultinomial()
	for key, t := range m.terms {
		result.terms[key] = monomialTerm{factors: t.factors, coefficient: t.coefficient.Neg()}
	}
	return result
}

// Add merges two multinomials pointwise, summing coefficients that share
// a monomial.
func (m *TraceMultinomial) Add(other *TraceMultinomial) *TraceMultinomial {
	result := ZeroMultinomial()
	for key, t := range m.terms {
		result.terms[key] = t
	}
	for key, t := range other.terms {
		if existing, ok := result.terms[key]; ok {
			result.terms[key] = monomialTerm{factors: existing.factors, coefficient: existing.coefficient.Add(t.coefficient)}
		} else {
			result.terms[key] = t
		}
	}
	return result
}

// Mul computes the Cauchy product of two multinomials: every pair of
// monomials is concatenated (and re-sorted) and their coefficients
// multiplied, accumulating into the resulting monomial's slot.
func (m *TraceMultinomial) Mul(other *TraceMultinomial) *TraceMultinomial {
	result := ZeroMultinomial()
	for _, a := range m.terms {
		for _, b := range other.terms {
			factors := append(append([]tracePair(nil), a.factors...), b.factors...)
			coefficient, err := a.coefficient.Mul(b.coefficient)
			if err != nil {
				// A pure TraceExpression (no Div) only ever produces
				// coefficients with empty denominator sets, so this
				// multiplication can never hit a non-disjoint clash; a
				// panic here indicates FromTraceExpression was fed an
				// expression built through Fraction/Div machinery
				// instead of the plain TraceExpression constructors.
				panic(fmt.Sprintf("algebra.TraceMultinomial.Mul: %v", err))
			}
			result.insert(factors, coefficient)
		}
	}
	return result
}

// DivByPolynomial divides every coefficient by a SparsePolynomial,
// inserting it into each monomial's Fraction denominator set.
func (m *TraceMultinomial) DivByPolynomial(denom *SparsePolynomial) *TraceMultinomial {
	result := ZeroMultinomial()
	for key, t := range m.terms {
		result.terms[key] = monomialTerm{factors: t.factors, coefficient: t.coefficient.Div(denom)}
	}
	return result
}

// EvaluateAtRow evaluates the multinomial pointwise by evaluating each
// monomial's trace-leaf product and its Fraction coefficient, and
// summing.
func (m *TraceMultinomial) EvaluateAtRow(accessor TraceAccessor, row int) (field.Element, error) {
	sum := field.Zero
	for _, t := range m.terms {
		monomialValue := field.One
		for _, factor := range t.factors {
			column := accessor.Column(factor.Column)
			n := len(column)
			idx := ((row+factor.Offset)%n + n) % n
			monomialValue = monomialValue.Mul(column[idx])
		}
		coeffValue, err := t.coefficient.EvaluateAtRow(accessor, row)
		if err != nil {
			return field.Element{}, err
		}
		sum = sum.Add(monomialValue.Mul(coeffValue))
	}
	return sum, nil
}
