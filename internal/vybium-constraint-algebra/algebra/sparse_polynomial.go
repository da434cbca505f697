package algebra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// SparsePolynomial is an ordered sequence of (coefficient, exponent)
// pairs with exponent >= 0 and non-zero coefficients. vybium-crypto
// ships a dense polynomial.Polynomial (used as the basis for
// DensePolynomial below) but no sparse form, so this type is written
// here as a term-list representation suited to denominator sets and
// periodic-column construction, where most exponents are zero.
//
// Ordering is total: by degree, then lexicographically over
// (exponent, coefficient) pairs from the highest exponent down. This lets
// SparsePolynomial key a map (see GroupedConstraints) or sit in a sorted
// denominator set (see Fraction).
type SparsePolynomial struct {
	terms []Term // sorted by exponent ascending; non-zero coefficients only
}

type Term struct {
	Coefficient field.Element
	Exponent    int
}

// NewSparsePolynomial builds a SparsePolynomial from (coefficient,
// exponent) pairs, combining duplicate exponents and dropping zero
// coefficients.
func NewSparsePolynomial(terms ...Term) *SparsePolynomial {
	byExponent := make(map[int]field.Element, len(terms))
	for _, t := range terms {
		if existing, ok := byExponent[t.Exponent]; ok {
			byExponent[t.Exponent] = existing.Add(t.Coefficient)
		} else {
			byExponent[t.Exponent] = t.Coefficient
		}
	}

	p := &SparsePolynomial{}
	for exp, coeff := range byExponent {
		if coeff.IsZero() {
			continue
		}
		p.terms = append(p.terms, Term{Coefficient: coeff, Exponent: exp})
	}
	sort.Slice(p.terms, func(i, j int) bool { return p.terms[i].Exponent < p.terms[j].Exponent })
	return p
}

// SparseTerm constructs a single (coefficient, exponent) pair for use with
// NewSparsePolynomial.
func SparseTerm(coefficient field.Element, exponent int) Term {
	return Term{Coefficient: coefficient, Exponent: exponent}
}

// ZeroSparsePolynomial returns the additive identity.
func ZeroSparsePolynomial() *SparsePolynomial {
	return &SparsePolynomial{}
}

// ConstantSparsePolynomial returns the degree-0 polynomial with value c.
func ConstantSparsePolynomial(c field.Element) *SparsePolynomial {
	return NewSparsePolynomial(SparseTerm(c, 0))
}

// XSparsePolynomial returns the indeterminate X as a SparsePolynomial.
func XSparsePolynomial() *SparsePolynomial {
	return NewSparsePolynomial(SparseTerm(field.One, 1))
}

// Degree returns the highest exponent with a non-zero coefficient, or 0
// for the zero polynomial (matching the convention used throughout this
// package that the zero and unit polynomials both report degree 0 in
// constraint-degree arithmetic; callers that need "degree of zero is
// undefined" semantics should check IsZero first).
func (p *SparsePolynomial) Degree() int {
	if len(p.terms) == 0 {
		return 0
	}
	return p.terms[len(p.terms)-1].Exponent
}

// Len returns the number of non-zero terms.
func (p *SparsePolynomial) Len() int {
	return len(p.terms)
}

// IsZero reports whether the polynomial has no non-zero terms.
func (p *SparsePolynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Terms returns the polynomial's (coefficient, exponent) pairs, ordered by
// ascending exponent. The returned slice must not be mutated.
func (p *SparsePolynomial) Terms() []Term {
	return p.terms
}

// Evaluate evaluates the polynomial at x using Horner-adjacent repeated
// squaring over the sparse term list.
func (p *SparsePolynomial) Evaluate(x field.Element) field.Element {
	result := field.Zero
	for _, t := range p.terms {
		result = result.Add(t.Coefficient.Mul(x.Pow(uint64(t.Exponent))))
	}
	return result
}

// Add returns p + other.
func (p *SparsePolynomial) Add(other *SparsePolynomial) *SparsePolynomial {
	terms := make([]Term, 0, len(p.terms)+len(other.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, other.terms...)
	return NewSparsePolynomial(terms...)
}

// Sub returns p - other.
func (p *SparsePolynomial) Sub(other *SparsePolynomial) *SparsePolynomial {
	negated := make([]Term, len(other.terms))
	for i, t := range other.terms {
		negated[i] = Term{Coefficient: field.Zero.Sub(t.Coefficient), Exponent: t.Exponent}
	}
	terms := make([]Term, 0, len(p.terms)+len(negated))
	terms = append(terms, p.terms...)
	terms = append(terms, negated...)
	return NewSparsePolynomial(terms...)
}

// Neg returns -p.
func (p *SparsePolynomial) Neg() *SparsePolynomial {
	return ZeroSparsePolynomial().Sub(p)
}

// Mul returns p * other.
func (p *SparsePolynomial) Mul(other *SparsePolynomial) *SparsePolynomial {
	terms := make([]Term, 0, len(p.terms)*len(other.terms))
	for _, a := range p.terms {
		for _, b := range other.terms {
			terms = append(terms, Term{
				Coefficient: a.Coefficient.Mul(b.Coefficient),
				Exponent:    a.Exponent + b.Exponent,
			})
		}
	}
	return NewSparsePolynomial(terms...)
}

// Pow raises p to a non-negative integer power by repeated squaring.
func (p *SparsePolynomial) Pow(n int) *SparsePolynomial {
	if n < 0 {
		panic("SparsePolynomial.Pow: negative exponent")
	}
	result := ConstantSparsePolynomial(field.One)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Div performs exact polynomial division, returning an error if the
// division leaves a non-zero remainder.
func (p *SparsePolynomial) Div(other *SparsePolynomial) (*SparsePolynomial, error) {
	if other.IsZero() {
		return nil, newError(ErrDivisionByZero, "SparsePolynomial.Div: divisor is zero")
	}

	remainder := append([]Term(nil), p.terms...)
	leadingOther := other.terms[len(other.terms)-1]

	var quotientTerms []Term
	for len(remainder) > 0 && remainder[len(remainder)-1].Exponent >= leadingOther.Exponent {
		leadingRem := remainder[len(remainder)-1]
		coeff, err := leadingRem.Coefficient.Div(leadingOther.Coefficient)
		if err != nil {
			return nil, wrapError(ErrDivisionByZero, "SparsePolynomial.Div: leading coefficient division failed", err)
		}
		exp := leadingRem.Exponent - leadingOther.Exponent
		quotientTerms = append(quotientTerms, Term{Coefficient: coeff, Exponent: exp})

		subtrahend := NewSparsePolynomial(Term{Coefficient: coeff, Exponent: exp}).Mul(other)
		remainder = NewSparsePolynomial(remainder...).Sub(subtrahend).terms
	}

	quotient := NewSparsePolynomial(quotientTerms...)
	if len(remainder) != 0 {
		return nil, newError(ErrDivisionByZero,
			fmt.Sprintf("SparsePolynomial.Div: division is not exact, remainder has %d terms", len(remainder)))
	}
	return quotient, nil
}

// Compare implements a total order: by degree, then lexicographically
// over (exponent, coefficient) pairs from the highest exponent down.
// Two polynomials that are structurally equal compare equal.
func (p *SparsePolynomial) Compare(other *SparsePolynomial) int {
	if d := p.Degree() - other.Degree(); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}

	for i, j := len(p.terms)-1, len(other.terms)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		var a, b Term
		hasA, hasB := i >= 0, j >= 0
		if hasA {
			a = p.terms[i]
		}
		if hasB {
			b = other.terms[j]
		}
		switch {
		case hasA && !hasB:
			return 1
		case !hasA && hasB:
			return -1
		case a.Exponent != b.Exponent:
			if a.Exponent > b.Exponent {
				return 1
			}
			return -1
		default:
			if c := a.Coefficient.Cmp(b.Coefficient); c != 0 {
				return c
			}
		}
	}
	return 0
}

// Equal reports structural equality.
func (p *SparsePolynomial) Equal(other *SparsePolynomial) bool {
	return p.Compare(other) == 0
}

// Key returns a deterministic string uniquely identifying this
// polynomial's term list, suitable as a Go map key (SparsePolynomial
// itself, holding a slice, is not comparable).
func (p *SparsePolynomial) Key() string {
	var b strings.Builder
	for _, t := range p.terms {
		fmt.Fprintf(&b, "%d:%s|", t.Exponent, t.Coefficient.String())
	}
	return b.String()
}

func (p *SparsePolynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(p.terms))
	for i := len(p.terms) - 1; i >= 0; i-- {
		t := p.terms[i]
		switch t.Exponent {
		case 0:
			parts = append(parts, t.Coefficient.String())
		case 1:
			parts = append(parts, fmt.Sprintf("%s*X", t.Coefficient.String()))
		default:
			parts = append(parts, fmt.Sprintf("%s*X^%d", t.Coefficient.String(), t.Exponent))
		}
	}
	return strings.Join(parts, " + ")
}
