package algebra

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// PolynomialExpression is a lazy AST over the indeterminate X: a leaf is
// either X itself, a field constant, or a periodic column (a low-degree
// polynomial sampled at every row of a trace domain); the internal nodes
// are Neg/Add/Mul/Pow. It never holds a Trace leaf — that is what
// TraceExpression adds in trace_expr.go.
//
// PolynomialExpression is a sealed interface: the only implementations
// are the ones in this file.
type PolynomialExpression interface {
	// Degree returns the symbolic degree of the expression, independent
	// of any particular trace length.
	Degree() int

	// Evaluate evaluates the expression pointwise at x.
	Evaluate(x field.Element) field.Element

	// Reify flattens the expression into a SparsePolynomial. Every
	// PolynomialExpression can be reified exactly, since it never holds
	// a Trace leaf.
	Reify() *SparsePolynomial

	String() string

	polynomialExpression()
}

// X is the indeterminate.
func X() PolynomialExpression { return xExpr{} }

// Constant lifts a field element into the expression tree.
func Constant(c field.Element) PolynomialExpression { return constantExpr{value: c} }

// PeriodicColumn wraps a SparsePolynomial that represents a periodic
// pattern over the trace domain: its value at trace index i is the
// polynomial evaluated at generator^i, repeating every `period` rows when
// it is built that way (the exchange harness interpolates a degree <
// period pattern and composes it with X^(L/period)); PeriodicColumn
// itself does not check the polynomial against period. Periodic columns
// are how the reference AIR harness (component H) expresses guards like
// "every 256th row" without resorting to Go conditionals inside the
// algebra itself.
func PeriodicColumn(values *SparsePolynomial, period int) PolynomialExpression {
	return periodicColumnExpr{values: values, period: period}
}

// NegPoly negates an expression.
func NegPoly(e PolynomialExpression) PolynomialExpression { return negExpr{inner: e} }

// AddPoly adds two expressions.
func AddPoly(a, b PolynomialExpression) PolynomialExpression { return addExpr{left: a, right: b} }

// SubPoly subtracts b from a.
func SubPoly(a, b PolynomialExpression) PolynomialExpression { return addExpr{left: a, right: negExpr{inner: b}} }

// MulPoly multiplies two expressions.
func MulPoly(a, b PolynomialExpression) PolynomialExpression { return mulExpr{left: a, right: b} }

// PowPoly raises an expression to a non-negative integer power.
func PowPoly(e PolynomialExpression, n int) PolynomialExpression {
	if n < 0 {
		panic("algebra.PowPoly: negative exponent")
	}
	return powExpr{inner: e, exponent: n}
}

type xExpr struct{}

func (xExpr) polynomialExpression()              {}
func (xExpr) Degree() int                        { return 1 }
func (xExpr) Evaluate(x field.Element) field.Element { return x }
func (xExpr) Reify() *SparsePolynomial           { return XSparsePolynomial() }
func (xExpr) String() string                     { return "X" }

type constantExpr struct{ value field.Element }

func (constantExpr) polynomialExpression() {}
func (c constantExpr) Degree() int         { return 0 }
func (c constantExpr) Evaluate(field.Element) field.Element { return c.value }
func (c constantExpr) Reify() *SparsePolynomial             { return ConstantSparsePolynomial(c.value) }
func (c constantExpr) String() string                       { return c.value.String() }

type periodicColumnExpr struct {
	values *SparsePolynomial
	period int
}

func (periodicColumnExpr) polynomialExpression() {}
func (p periodicColumnExpr) Degree() int         { return p.values.Degree() }
func (p periodicColumnExpr) Evaluate(x field.Element) field.Element {
	return p.values.Evaluate(x)
}
func (p periodicColumnExpr) Reify() *SparsePolynomial { return p.values }
func (p periodicColumnExpr) String() string {
	return fmt.Sprintf("Periodic(period=%d, %s)", p.period, p.values.String())
}

type negExpr struct{ inner PolynomialExpression }

func (negExpr) polynomialExpression() {}
func (n negExpr) Degree() int         { return n.inner.Degree() }
func (n negExpr) Evaluate(x field.Element) field.Element {
	return field.Zero.Sub(n.inner.Evaluate(x))
}
func (n negExpr) Reify() *SparsePolynomial { return n.inner.Reify().Neg() }
func (n negExpr) String() string           { return fmt.Sprintf("-(%s)", n.inner.String()) }

type addExpr struct{ left, right PolynomialExpression }

func (addExpr) polynomialExpression() {}
func (a addExpr) Degree() int {
	return maxInt(a.left.Degree(), a.right.Degree())
}
func (a addExpr) Evaluate(x field.Element) field.Element {
	return a.left.Evaluate(x).Add(a.right.Evaluate(x))
}
func (a addExpr) Reify() *SparsePolynomial { return a.left.Reify().Add(a.right.Reify()) }
func (a addExpr) String() string           { return fmt.Sprintf("(%s + %s)", a.left.String(), a.right.String()) }

type mulExpr struct{ left, right PolynomialExpression }

func (mulExpr) polynomialExpression() {}
func (m mulExpr) Degree() int {
	return m.left.Degree() + m.right.Degree()
}
func (m mulExpr) Evaluate(x field.Element) field.Element {
	return m.left.Evaluate(x).Mul(m.right.Evaluate(x))
}
func (m mulExpr) Reify() *SparsePolynomial { return m.left.Reify().Mul(m.right.Reify()) }
func (m mulExpr) String() string           { return fmt.Sprintf("(%s * %s)", m.left.String(), m.right.String()) }

type powExpr struct {
	inner    PolynomialExpression
	exponent int
}

func (powExpr) polynomialExpression() {}
func (p powExpr) Degree() int         { return p.inner.Degree() * p.exponent }
func (p powExpr) Evaluate(x field.Element) field.Element {
	return p.inner.Evaluate(x).Pow(uint64(p.exponent))
}
func (p powExpr) Reify() *SparsePolynomial { return p.inner.Reify().Pow(p.exponent) }
func (p powExpr) String() string           { return fmt.Sprintf("(%s)^%d", p.inner.String(), p.exponent) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
