package algebra

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestTraceExpressionEvaluateAtRow(t *testing.T) {
	accessor := &sliceAccessor{
		columns: [][]field.Element{
			{field.New(1), field.New(2), field.New(3), field.New(4)},
			{field.New(10), field.New(20), field.New(30), field.New(40)},
		},
		domain: geometricDomain(field.New(2), 4),
	}

	t.Run("current row access", func(t *testing.T) {
		expr := Trace(0, 0)
		got := expr.EvaluateAtRow(accessor, 1)
		if want := field.New(2); got.Cmp(want) != 0 {
			t.Errorf("EvaluateAtRow() = %s, want %s", got, want)
		}
	})

	t.Run("next-row offset wraps at the trace boundary", func(t *testing.T) {
		expr := Trace(0, 1)
		got := expr.EvaluateAtRow(accessor, 3)
		if want := field.New(1); got.Cmp(want) != 0 {
			t.Errorf("EvaluateAtRow() = %s, want %s (wrap-around)", got, want)
		}
	})

	t.Run("transition relation: next - current - other", func(t *testing.T) {
		// Trace(0, 1) - Trace(0, 0) - Trace(1, 0), evaluated at row 0:
		// 2 - 1 - 10 = -9
		expr := SubTrace(SubTrace(Trace(0, 1), Trace(0, 0)), Trace(1, 0))
		got := expr.EvaluateAtRow(accessor, 0)
		want := field.Zero.Sub(field.New(9))
		if got.Cmp(want) != 0 {
			t.Errorf("EvaluateAtRow() = %s, want %s", got, want)
		}
	})
}

func TestTraceExpressionDegreeUsesTraceLength(t *testing.T) {
	expr := MulTrace(Trace(0, 0), Trace(1, 0))
	if got := expr.Degree(16); got != 30 {
		t.Errorf("Degree(16) = %d, want 30", got)
	}
}

func TestTraceExpressionReifyRejectsTraceLeaves(t *testing.T) {
	expr := AddTrace(Poly(X()), Trace(0, 0))
	if _, err := expr.Reify(); err == nil {
		t.Error("Reify() expected an error for an expression containing a Trace leaf")
	}

	pure := Poly(AddPoly(X(), Constant(field.New(1))))
	if _, err := pure.Reify(); err != nil {
		t.Errorf("Reify() unexpected error for a pure Poly leaf: %v", err)
	}
}
