// Package vybiumconstraintalgebra is the public facade over
// internal/vybium-constraint-algebra/{algebra,exchange}: it re-exports the
// types a caller needs to build, combine, and evaluate AIR constraints
// without importing internal packages directly, keeping the pkg/
// (public) vs. internal/ (private) split clean.
//
// # Architecture
//
// The constraint algebra itself (expression ASTs, fractions, the
// trace-multinomial canonical form, constraint combination, and domain
// evaluation) lives in internal/vybium-constraint-algebra/algebra, and is
// type-aliased here. The exchange-circuit reference harness lives in
// internal/vybium-constraint-algebra/exchange and is imported directly by
// callers that want it.
//
// A typical caller:
//
//	constraints := []*vybiumconstraintalgebra.Constraint{ /* ... */ }
//	grouped, err := vybiumconstraintalgebra.Combine(constraints, challenges, traceLength, nil)
//	if err != nil {
//		// err is a *vybiumconstraintalgebra.AlgebraError
//	}
//	values, err := grouped.EvalOnDomain(accessor, domainLength, nil)
package vybiumconstraintalgebra
