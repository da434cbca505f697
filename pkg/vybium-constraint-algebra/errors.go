package vybiumconstraintalgebra

import "github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"

// AlgebraError is the typed error returned by this package's
// constructors and evaluators.
type AlgebraError = algebra.AlgebraError

// ErrorCode identifies a class of constraint-algebra failure.
type ErrorCode = algebra.ErrorCode

// Error codes re-exported from package algebra.
const (
	ErrUnknown                  = algebra.ErrUnknown
	ErrNegativeDegreeAdjustment = algebra.ErrNegativeDegreeAdjustment
	ErrDivisionByZero           = algebra.ErrDivisionByZero
	ErrNonDisjointDenominators  = algebra.ErrNonDisjointDenominators
	ErrUnsupportedOperation     = algebra.ErrUnsupportedOperation
	ErrConstraintCapExceeded    = algebra.ErrConstraintCapExceeded
)
