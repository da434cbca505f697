package algebra

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestSparsePolynomialDegree(t *testing.T) {
	t.Run("zero polynomial has degree zero", func(t *testing.T) {
		p := ZeroSparsePolynomial()
		if got := p.Degree(); got != 0 {
			t.Errorf("Degree() = %d, want 0", got)
		}
	})

	t.Run("degree is highest non-zero exponent", func(t *testing.T) {
		p := NewSparsePolynomial(
			SparseTerm(field.New(1), 0),
			SparseTerm(field.New(2), 3),
			SparseTerm(field.New(0), 7), // zero coefficient must be dropped
		)
		if got := p.Degree(); got != 3 {
			t.Errorf("Degree() = %d, want 3", got)
		}
		if got := p.Len(); got != 2 {
			t.Errorf("Len() = %d, want 2", got)
		}
	})
}

func TestSparsePolynomialArithmetic(t *testing.T) {
	t.Run("add combines like terms", func(t *testing.T) {
		a := NewSparsePolynomial(SparseTerm(field.New(2), 1))
		b := NewSparsePolynomial(SparseTerm(field.New(3), 1))
		sum := a.Add(b)
		want := NewSparsePolynomial(SparseTerm(field.New(5), 1))
		if !sum.Equal(want) {
			t.Errorf("Add() = %s, want %s", sum, want)
		}
	})

	t.Run("mul distributes across terms", func(t *testing.T) {
		a := NewSparsePolynomial(SparseTerm(field.New(1), 1), SparseTerm(field.New(1), 0)) // X + 1
		b := NewSparsePolynomial(SparseTerm(field.New(1), 1), SparseTerm(field.New(1), 0)) // X + 1
		product := a.Mul(b)
		// (X+1)^2 = X^2 + 2X + 1
		want := NewSparsePolynomial(
			SparseTerm(field.New(1), 2),
			SparseTerm(field.New(2), 1),
			SparseTerm(field.New(1), 0),
		)
		if !product.Equal(want) {
			t.Errorf("Mul() = %s, want %s", product, want)
		}
	})

	t.Run("exact division recovers the original factor", func(t *testing.T) {
		a := NewSparsePolynomial(SparseTerm(field.New(1), 1), SparseTerm(field.New(1), 0)) // X + 1
		squared := a.Mul(a)
		quotient, err := squared.Div(a)
		if err != nil {
			t.Fatalf("Div() error = %v", err)
		}
		if !quotient.Equal(a) {
			t.Errorf("Div() = %s, want %s", quotient, a)
		}
	})

	t.Run("inexact division returns an error", func(t *testing.T) {
		a := NewSparsePolynomial(SparseTerm(field.New(1), 2))
		b := NewSparsePolynomial(SparseTerm(field.New(1), 1), SparseTerm(field.New(1), 0))
		if _, err := a.Div(b); err == nil {
			t.Error("Div() expected an error for inexact division, got nil")
		}
	})

	t.Run("pow matches repeated multiplication", func(t *testing.T) {
		x := XSparsePolynomial()
		cubed := x.Pow(3)
		want := x.Mul(x).Mul(x)
		if !cubed.Equal(want) {
			t.Errorf("Pow(3) = %s, want %s", cubed, want)
		}
	})
}

func TestSparsePolynomialCompare(t *testing.T) {
	t.Run("higher degree compares greater", func(t *testing.T) {
		low := NewSparsePolynomial(SparseTerm(field.New(1), 1))
		high := NewSparsePolynomial(SparseTerm(field.New(1), 2))
		if low.Compare(high) >= 0 {
			t.Error("expected low < high")
		}
	})

	t.Run("equal polynomials compare equal regardless of construction order", func(t *testing.T) {
		a := NewSparsePolynomial(SparseTerm(field.New(1), 0), SparseTerm(field.New(2), 1))
		b := NewSparsePolynomial(SparseTerm(field.New(2), 1), SparseTerm(field.New(1), 0))
		if a.Compare(b) != 0 {
			t.Error("expected equal polynomials to compare equal")
		}
		if a.Key() != b.Key() {
			t.Error("expected equal polynomials to share a Key()")
		}
	})
}
