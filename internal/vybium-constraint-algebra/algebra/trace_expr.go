package algebra

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// TraceAccessor exposes a single trace column's values over the trace
// domain, in row order. Row offsets in a Trace leaf wrap modulo the
// column length, so a leaf with offset j evaluates at row r against
// column value at row (r+j) mod len.
type TraceAccessor interface {
	Column(col int) []field.Element

	// DomainElement returns the X-value associated with a row, so that a
	// PolynomialExpression leaf embedded via Poly can be evaluated
	// alongside Trace leaves at the same row.
	DomainElement(row int) field.Element
}

// TraceExpression is a lazy AST over X and the trace: it extends
// PolynomialExpression with a Trace(column, offset) leaf, and restricts
// the internal nodes to Neg/Add/Mul — no Pow, no Div. Pow is dropped
// because a trace leaf's degree depends on the (runtime) trace length,
// so "squaring" a trace cell is just `Mul(e, e)`; Div is dropped because
// dividing by a trace-dependent quantity is exactly what promotes an
// expression to a Fraction (component C).
//
// TraceExpression is a sealed interface: the only implementations are
// the ones in this file.
type TraceExpression interface {
	// Degree returns the expression's degree given a trace length L: a
	// bare trace leaf is treated as a column interpolated over a
	// length-L domain, i.e. degree L-1.
	Degree(traceLength int) int

	// EvaluateAtRow evaluates the expression pointwise at a concrete
	// trace row, resolving Trace leaves against accessor.
	EvaluateAtRow(accessor TraceAccessor, row int) field.Element

	// Reify flattens the expression into a SparsePolynomial. It fails
	// with ErrUnsupportedOperation if the expression contains any Trace
	// leaf, since a trace cell has no representation independent of a
	// concrete trace.
	Reify() (*SparsePolynomial, error)

	String() string

	traceExpression()
}

// Poly lifts a PolynomialExpression into a TraceExpression leaf.
func Poly(e PolynomialExpression) TraceExpression { return polyLeaf{inner: e} }

// Trace references a trace cell: column `col`, row offset `offset`
// relative to the row being evaluated.
func Trace(col, offset int) TraceExpression { return traceLeaf{column: col, offset: offset} }

// NegTrace negates a trace expression.
func NegTrace(e TraceExpression) TraceExpression { return negTrace{inner: e} }

// AddTrace adds two trace expressions.
func AddTrace(a, b TraceExpression) TraceExpression { return addTrace{left: a, right: b} }

// SubTrace subtracts b from a.
func SubTrace(a, b TraceExpression) TraceExpression {
	return addTrace{left: a, right: negTrace{inner: b}}
}

// MulTrace multiplies two trace expressions.
func MulTrace(a, b TraceExpression) TraceExpression { return mulTrace{left: a, right: b} }

type polyLeaf struct{ inner PolynomialExpression }

func (polyLeaf) traceExpression()                          {}
func (p polyLeaf) Degree(int) int { return p.inner.Degree() }
func (p polyLeaf) EvaluateAtRow(accessor TraceAccessor, row int) field.Element {
	return p.inner.Evaluate(accessor.DomainElement(row))
}
func (p polyLeaf) Reify() (*SparsePolynomial, error) { return p.inner.Reify(), nil }
func (p polyLeaf) String() string                    { return p.inner.String() }

type traceLeaf struct {
	column int
	offset int
}

func (traceLeaf) traceExpression() {}
func (t traceLeaf) Degree(traceLength int) int {
	return traceLength - 1
}
func (t traceLeaf) EvaluateAtRow(accessor TraceAccessor, row int) field.Element {
	column := accessor.Column(t.column)
	n := len(column)
	idx := ((row+t.offset)%n + n) % n
	return column[idx]
}
func (t traceLeaf) Reify() (*SparsePolynomial, error) {
	return nil, newError(ErrUnsupportedOperation,
		fmt.Sprintf("cannot reify a Trace(%d, %d) leaf to a SparsePolynomial", t.column, t.offset))
}
func (t traceLeaf) String() string { return fmt.Sprintf("Trace(%d, %d)", t.column, t.offset) }

type negTrace struct{ inner TraceExpression }

func (negTrace) traceExpression() {}
func (n negTrace) Degree(traceLength int) int {
	return n.inner.Degree(traceLength)
}
func (n negTrace) EvaluateAtRow(accessor TraceAccessor, row int) field.Element {
	return field.Zero.Sub(n.inner.EvaluateAtRow(accessor, row))
}
func (n negTrace) Reify() (*SparsePolynomial, error) {
	inner, err := n.inner.Reify()
	if err != nil {
		return nil, err
	}
	return inner.Neg(), nil
}
func (n negTrace) String() string { return fmt.Sprintf("-(%s)", n.inner.String()) }

type addTrace struct{ left, right TraceExpression }

func (addTrace) traceExpression() {}
func (a addTrace) Degree(traceLength int) int {
	return maxInt(a.left.Degree(traceLength), a.right.Degree(traceLength))
}
func (a addTrace) EvaluateAtRow(accessor TraceAccessor, row int) field.Element {
	return a.left.EvaluateAtRow(accessor, row).Add(a.right.EvaluateAtRow(accessor, row))
}
func (a addTrace) Reify() (*SparsePolynomial, error) {
	left, err := a.left.Reify()
	if err != nil {
		return nil, err
	}
	right, err := a.right.Reify()
	if err != nil {
		return nil, err
	}
	return left.Add(right), nil
}
func (a addTrace) String() string {
	return fmt.Sprintf("(%s + %s)", a.left.String(), a.right.String())
}

type mulTrace struct{ left, right TraceExpression }

func (mulTrace) traceExpression() {}
func (m mulTrace) Degree(traceLength int) int {
	return m.left.Degree(traceLength) + m.right.Degree(traceLength)
}
func (m mulTrace) EvaluateAtRow(accessor TraceAccessor, row int) field.Element {
	return m.left.EvaluateAtRow(accessor, row).Mul(m.right.EvaluateAtRow(accessor, row))
}
func (m mulTrace) Reify() (*SparsePolynomial, error) {
	left, err := m.left.Reify()
	if err != nil {
		return nil, err
	}
	right, err := m.right.Reify()
	if err != nil {
		return nil, err
	}
	return left.Mul(right), nil
}
func (m mulTrace) String() string {
	return fmt.Sprintf("(%s * %s)", m.left.String(), m.right.String())
}
