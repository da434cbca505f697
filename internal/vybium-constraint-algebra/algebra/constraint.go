package algebra

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// Constraint is a single AIR constraint as a (base, numerator,
// denominator) triple: the value it represents is
//
//	base * numerator / denominator
//
// where base is the trace expression asserted to vanish (e.g. a
// transition or boundary relation), numerator is an extra polynomial
// factor (usually 1), and denominator is the domain polynomial the
// relation is divided by (e.g. a vanishing-domain factor restricting the
// constraint to a subset of rows).
type Constraint struct {
	Base        TraceExpression
	Numerator   *SparsePolynomial
	Denominator *SparsePolynomial
}

// NewConstraint builds a Constraint, defaulting a nil numerator or
// denominator to the constant polynomial 1.
func NewConstraint(base TraceExpression, numerator, denominator *SparsePolynomial) *Constraint {
	if numerator == nil {
		numerator = ConstantSparsePolynomial(field.One)
	}
	if denominator == nil {
		denominator = ConstantSparsePolynomial(field.One)
	}
	return &Constraint{Base: base, Numerator: numerator, Denominator: denominator}
}

// Degree returns deg(base, traceLength) + deg(numerator) - deg(denominator).
func (c *Constraint) Degree(traceLength int) int {
	return c.Base.Degree(traceLength) + c.Numerator.Degree() - c.Denominator.Degree()
}

// AsFraction reifies the constraint as a Fraction: base * numerator, over
// denominator.
func (c *Constraint) AsFraction() *Fraction {
	scaled := MulTrace(c.Base, Poly(reifiedLeaf{poly: c.Numerator}))
	return NewFraction(scaled, c.Denominator)
}

// EvaluateAtRow evaluates the constraint pointwise through its Fraction
// form, so that a non-trivial Numerator/Denominator (not just Base) is
// taken into account. Like Fraction.EvaluateAtRow, it errors if the
// denominator vanishes at this row — which it will, by construction, at
// a boundary constraint's own pinned row; GroupedConstraints.Eval fails
// there too, while GroupedConstraints.EvalOnDomain divides it out as a
// polynomial.
func (c *Constraint) EvaluateAtRow(accessor TraceAccessor, row int) (field.Element, error) {
	return c.AsFraction().EvaluateAtRow(accessor, row)
}

