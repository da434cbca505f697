// Package algebra implements a constraint-algebra engine for building and
// evaluating AIR constraints over an execution trace.
//
// The type hierarchy is layered:
//
//   - PolynomialExpression (poly_expr.go) is a lazy AST over X: the
//     indeterminate, field constants, and periodic columns.
//   - TraceExpression (trace_expr.go) extends PolynomialExpression with a
//     Trace(column, offset) leaf referencing a concrete trace cell.
//   - Fraction (fraction.go) pairs a TraceExpression numerator with a set
//     of SparsePolynomial denominator factors.
//   - TraceMultinomial (multinomial.go) is the canonical sum-of-monomials
//     form of a TraceExpression, used by the domain evaluator.
//   - Constraint (constraint.go) is a (base, numerator, denominator)
//     triple representing one AIR relation.
//   - GroupedConstraints (combiner.go) folds many Constraints, scaled by
//     verifier challenges, into buckets sharing a (numerator,
//     denominator) pair.
//   - The evaluator (evaluator.go) evaluates a GroupedConstraints either
//     pointwise at a single row or densely across an entire trace domain.
//
// Degree tracking, not simplification, is this package's concern:
// expressions are never canonicalized or algebraically reduced beyond
// what is needed to track degree and divide out denominators correctly.
package algebra
