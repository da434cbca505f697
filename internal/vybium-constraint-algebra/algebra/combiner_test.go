package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// bucketComparer lets cmp.Diff compare the anonymous structs Buckets()
// returns without reaching into SparsePolynomial's or TraceExpression's
// unexported fields: both types already expose a canonical string form.
var bucketComparer = cmp.Options{
	cmp.Comparer(func(a, b *SparsePolynomial) bool { return a.Key() == b.Key() }),
	cmp.Comparer(func(a, b TraceExpression) bool { return a.String() == b.String() }),
}

func transitionConstraint(col int) *Constraint {
	base := SubTrace(Trace(col, 1), Trace(col, 0))
	return NewConstraint(base, nil, nil)
}

func TestCombineProducesNonNegativeAdjustments(t *testing.T) {
	constraints := []*Constraint{transitionConstraint(0), transitionConstraint(1)}
	coefficients := []field.Element{field.New(1), field.New(2), field.New(3), field.New(4)}

	gc, err := Combine(constraints, coefficients, 16, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if gc.Len() == 0 {
		t.Fatal("Combine() produced no buckets")
	}
}

func TestCombineSharesBucketsByNumeratorDenominator(t *testing.T) {
	// Both constraints share the default (1, 1) numerator/denominator, so
	// they should fold into a single bucket.
	constraints := []*Constraint{transitionConstraint(0), transitionConstraint(1)}
	coefficients := []field.Element{field.New(1), field.New(2), field.New(3), field.New(4)}

	gc, err := Combine(constraints, coefficients, 16, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if gc.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (both constraints share numerator=denominator=1)", gc.Len())
	}
}

func TestCombineRespectsConstraintCap(t *testing.T) {
	var constraints []*Constraint
	var coefficients []field.Element
	for i := 0; i < 5; i++ {
		constraints = append(constraints, transitionConstraint(0))
		coefficients = append(coefficients, field.New(uint64(i+1)), field.New(uint64(i+10)))
	}

	cfg := DefaultConfig().WithConstraintCap(2)
	gc, err := Combine(constraints, coefficients, 16, cfg)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	// All 5 constraints share a bucket, but only the first 2 should have
	// been folded in; we can't observe the count directly, so this checks
	// that a cap below the constraint count does not fail the call and
	// still yields the single shared bucket.
	if gc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", gc.Len())
	}
}

func TestCombineRejectsTooFewCoefficients(t *testing.T) {
	constraints := []*Constraint{transitionConstraint(0)}
	if _, err := Combine(constraints, []field.Element{field.One}, 16, nil); err == nil {
		t.Error("Combine() expected an error when fewer than 2*len(constraints) coefficients are supplied")
	}
}

func TestCombineIsDeterministicAcrossRuns(t *testing.T) {
	constraints := []*Constraint{transitionConstraint(0), transitionConstraint(1)}
	coefficients := []field.Element{field.New(1), field.New(2), field.New(3), field.New(4)}

	first, err := Combine(constraints, coefficients, 16, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	second, err := Combine(constraints, coefficients, 16, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if diff := cmp.Diff(first.Buckets(), second.Buckets(), bucketComparer); diff != "" {
		t.Errorf("Combine() is not deterministic (-first +second):\n%s", diff)
	}
}
