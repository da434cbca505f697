package vybiumconstraintalgebra

import "github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"

// Config, re-exported from package algebra.
type Config = algebra.Config

// DefaultConfig returns a 30-constraint cap and a 20-term cutover.
func DefaultConfig() *Config { return algebra.DefaultConfig() }

// PolynomialExpression, TraceExpression, Fraction, TraceMultinomial,
// Constraint, GroupedConstraints, SparsePolynomial, DensePolynomial, and
// TraceAccessor, re-exported from package algebra.
type (
	PolynomialExpression = algebra.PolynomialExpression
	TraceExpression      = algebra.TraceExpression
	Fraction             = algebra.Fraction
	TraceMultinomial     = algebra.TraceMultinomial
	Constraint           = algebra.Constraint
	GroupedConstraints   = algebra.GroupedConstraints
	SparsePolynomial     = algebra.SparsePolynomial
	DensePolynomial      = algebra.DensePolynomial
	TraceAccessor        = algebra.TraceAccessor
)

// X, Constant, and PeriodicColumn build PolynomialExpression leaves.
var (
	X              = algebra.X
	Constant       = algebra.Constant
	PeriodicColumn = algebra.PeriodicColumn
)

// Poly and Trace build TraceExpression leaves.
var (
	Poly  = algebra.Poly
	Trace = algebra.Trace
)

// NewFraction builds a Fraction: numerator over the product of factors.
func NewFraction(numerator TraceExpression, factors ...*SparsePolynomial) *Fraction {
	return algebra.NewFraction(numerator, factors...)
}

// NewConstraint builds a Constraint.
func NewConstraint(base TraceExpression, numerator, denominator *SparsePolynomial) *Constraint {
	return algebra.NewConstraint(base, numerator, denominator)
}

// Combine folds constraints, scaled by verifier challenge coefficients,
// into a GroupedConstraints. cfg may be nil, in which case DefaultConfig()
// applies.
func Combine(constraints []*Constraint, coefficients []FieldElement, traceLength int, cfg *Config) (*GroupedConstraints, error) {
	return algebra.Combine(constraints, coefficients, traceLength, cfg)
}

// FromTraceExpression flattens a TraceExpression into its canonical
// TraceMultinomial form.
func FromTraceExpression(e TraceExpression) *TraceMultinomial {
	return algebra.FromTraceExpression(e)
}

// NewSparsePolynomial builds a SparsePolynomial from (coefficient,
// exponent) pairs.
func NewSparsePolynomial(terms ...algebra.Term) *SparsePolynomial {
	return algebra.NewSparsePolynomial(terms...)
}

// SparseTerm constructs a single (coefficient, exponent) pair for use
// with NewSparsePolynomial.
func SparseTerm(coefficient FieldElement, exponent int) algebra.Term {
	return algebra.SparseTerm(coefficient, exponent)
}
