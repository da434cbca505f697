package algebra

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestFromTraceExpressionFlattensToMonomials(t *testing.T) {
	accessor := &sliceAccessor{
		columns: [][]field.Element{
			{field.New(2), field.New(3)},
			{field.New(5), field.New(7)},
		},
		domain: geometricDomain(field.New(2), 2),
	}

	expr := MulTrace(Trace(0, 0), Trace(1, 0))
	m := FromTraceExpression(expr)

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	value, err := m.EvaluateAtRow(accessor, 0)
	if err != nil {
		t.Fatalf("EvaluateAtRow() error = %v", err)
	}
	if want := field.New(10); value.Cmp(want) != 0 { // 2 * 5
		t.Errorf("EvaluateAtRow() = %s, want %s", value, want)
	}
}

func TestFromTraceExpressionAddKeepsDistinctMonomials(t *testing.T) {
	expr := AddTrace(Trace(0, 0), Trace(1, 0))
	m := FromTraceExpression(expr)
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (Trace(0,0) and Trace(1,0) are distinct monomials)", m.Len())
	}
}

func TestFromTraceExpressionSquareAccumulatesOneMonomial(t *testing.T) {
	leaf := Trace(0, 0)
	expr := MulTrace(leaf, leaf)
	m := FromTraceExpression(expr)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (Trace(0,0)^2 is a single monomial)", m.Len())
	}

	accessor := &sliceAccessor{
		columns: [][]field.Element{{field.New(3)}},
		domain:  []field.Element{field.One},
	}
	value, err := m.EvaluateAtRow(accessor, 0)
	if err != nil {
		t.Fatalf("EvaluateAtRow() error = %v", err)
	}
	if want := field.New(9); value.Cmp(want) != 0 {
		t.Errorf("EvaluateAtRow() = %s, want %s", value, want)
	}
}

func TestFromTraceExpressionPolyLeafCarriesNoFactors(t *testing.T) {
	expr := Poly(Constant(field.New(42)))
	m := FromTraceExpression(expr)
	terms := m.Terms()
	if len(terms) != 1 {
		t.Fatalf("Terms() has %d entries, want 1", len(terms))
	}
	if len(terms[0].Factors) != 0 {
		t.Errorf("Factors = %v, want empty (a pure Poly leaf contributes to the constant monomial)", terms[0].Factors)
	}
}
