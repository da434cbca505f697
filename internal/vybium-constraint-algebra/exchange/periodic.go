package exchange

import (
	"github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// interpolateSparse builds the unique SparsePolynomial of degree less
// than len(points) passing through the given (point, value) pairs, via
// Lagrange interpolation, rewritten against algebra.SparsePolynomial
// instead of a bigint-pointer polynomial representation.
func interpolateSparse(points, values []field.Element) *algebra.SparsePolynomial {
	result := algebra.ZeroSparsePolynomial()
	for i, xi := range points {
		basis := algebra.ConstantSparsePolynomial(field.One)
		for j, xj := range points {
			if i == j {
				continue
			}
			denom := xi.Sub(xj)
			inverseDenom, err := field.One.Div(denom)
			if err != nil {
				panic("exchange.interpolateSparse: interpolation points are not distinct")
			}
			// basis *= (X - xj) / (xi - xj)
			factor := algebra.NewSparsePolynomial(
				algebra.SparseTerm(inverseDenom, 1),
				algebra.SparseTerm(field.Zero.Sub(xj.Mul(inverseDenom)), 0),
			)
			basis = basis.Mul(factor)
		}
		scaled := algebra.NewSparsePolynomial(algebra.SparseTerm(values[i], 0)).Mul(basis)
		result = result.Add(scaled)
	}
	return result
}

// composeWithPower substitutes X^power for X in q: a term (c, k) becomes
// (c, k*power). Combined with interpolation over a period-th-roots-of-
// unity subgroup, this is the standard way a STARK AIR expresses a
// periodic column of period p over a length-L trace domain: interpolate
// the p-sample pattern over the p-th roots of unity, then compose with
// X^(L/p) so the result is a bona fide low-degree polynomial in the
// trace's own indeterminate, repeating every p rows.
func composeWithPower(q *algebra.SparsePolynomial, power int) *algebra.SparsePolynomial {
	terms := make([]algebra.Term, 0, q.Len())
	for _, t := range q.Terms() {
		terms = append(terms, algebra.SparseTerm(t.Coefficient, t.Exponent*power))
	}
	return algebra.NewSparsePolynomial(terms...)
}

// periodicIndicator returns a PolynomialExpression that evaluates to 1 on
// trace rows i with i%period == phase, and 0 on every other row of a
// length domainLength trace domain generated by domainGenerator.
// domainLength must be a multiple of period.
func periodicIndicator(domainGenerator field.Element, domainLength, period, phase int) algebra.PolynomialExpression {
	if domainLength%period != 0 {
		panic("exchange.periodicIndicator: domainLength must be a multiple of period")
	}
	step := domainLength / period
	subgroupGenerator := domainGenerator.Pow(uint64(step))

	points := make([]field.Element, period)
	values := make([]field.Element, period)
	current := field.One
	for i := 0; i < period; i++ {
		points[i] = current
		if i == phase {
			values[i] = field.One
		} else {
			values[i] = field.Zero
		}
		current = current.Mul(subgroupGenerator)
	}

	pattern := interpolateSparse(points, values)
	periodic := composeWithPower(pattern, step)
	return algebra.PeriodicColumn(periodic, period)
}

// periodicIndicatorTrace is periodicIndicator lifted to a TraceExpression
// leaf, for direct use inside constraint bases.
func periodicIndicatorTrace(domainGenerator field.Element, domainLength, period, phase int) algebra.TraceExpression {
	return algebra.Poly(periodicIndicator(domainGenerator, domainLength, period, phase))
}
