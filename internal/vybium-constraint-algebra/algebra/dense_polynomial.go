package algebra

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/polynomial"
)

// DensePolynomial is a coefficient-vector polynomial backed by
// vybium-crypto's polynomial.Polynomial. It exists alongside
// SparsePolynomial because the domain evaluator promotes a sparse
// numerator to dense form once its term count crosses
// Config.SparseDenseCutover: below the cutover, term-by-term sparse
// multiplication against a dense operand is cheaper than expanding the
// sparse side first.
type DensePolynomial struct {
	inner *polynomial.Polynomial
}

// NewDensePolynomial wraps a coefficient slice, lowest degree first.
func NewDensePolynomial(coefficients []field.Element) *DensePolynomial {
	return &DensePolynomial{inner: polynomial.New(coefficients)}
}

// DenseFromSparse expands a SparsePolynomial into dense coefficient form.
func DenseFromSparse(p *SparsePolynomial) *DensePolynomial {
	if p.IsZero() {
		return NewDensePolynomial(nil)
	}
	coeffs := make([]field.Element, p.Degree()+1)
	for i := range coeffs {
		coeffs[i] = field.Zero
	}
	for _, t := range p.Terms() {
		coeffs[t.Exponent] = t.Coefficient
	}
	return NewDensePolynomial(coeffs)
}

// Degree returns the polynomial's degree.
func (p *DensePolynomial) Degree() int {
	return p.inner.Degree()
}

// Coefficients returns the coefficient vector, lowest degree first.
func (p *DensePolynomial) Coefficients() []field.Element {
	return p.inner.Coefficients()
}

// Evaluate evaluates the polynomial at x.
func (p *DensePolynomial) Evaluate(x field.Element) field.Element {
	return p.inner.Evaluate(x)
}

// Add returns p + other.
func (p *DensePolynomial) Add(other *DensePolynomial) (*DensePolynomial, error) {
	sum, err := p.inner.Add(other.inner)
	if err != nil {
		return nil, wrapError(ErrUnknown, "DensePolynomial.Add failed", err)
	}
	return &DensePolynomial{inner: sum}, nil
}

// Sub returns p - other.
func (p *DensePolynomial) Sub(other *DensePolynomial) (*DensePolynomial, error) {
	diff, err := p.inner.Sub(other.inner)
	if err != nil {
		return nil, wrapError(ErrUnknown, "DensePolynomial.Sub failed", err)
	}
	return &DensePolynomial{inner: diff}, nil
}

// Mul returns p * other.
func (p *DensePolynomial) Mul(other *DensePolynomial) (*DensePolynomial, error) {
	product, err := p.inner.Mul(other.inner)
	if err != nil {
		return nil, wrapError(ErrUnknown, "DensePolynomial.Mul failed", err)
	}
	return &DensePolynomial{inner: product}, nil
}

// Scale returns c * p.
func (p *DensePolynomial) Scale(c field.Element) (*DensePolynomial, error) {
	scaled, err := p.inner.MulScalar(c)
	if err != nil {
		return nil, wrapError(ErrUnknown, "DensePolynomial.Scale failed", err)
	}
	return &DensePolynomial{inner: scaled}, nil
}

// MulSparse multiplies a dense polynomial by a sparse one without first
// expanding the sparse side, term by term against the dense coefficient
// vector. This is the below-cutover path of the domain evaluator.
func (p *DensePolynomial) MulSparse(s *SparsePolynomial) (*DensePolynomial, error) {
	if s.IsZero() {
		return NewDensePolynomial(nil), nil
	}
	coeffs := p.Coefficients()
	resultLen := len(coeffs) + s.Degree()
	result := make([]field.Element, resultLen)
	for i := range result {
		result[i] = field.Zero
	}
	for _, t := range s.Terms() {
		for i, c := range coeffs {
			result[i+t.Exponent] = result[i+t.Exponent].Add(c.Mul(t.Coefficient))
		}
	}
	return NewDensePolynomial(result), nil
}

// AddSparse adds a sparse polynomial into a dense one.
func (p *DensePolynomial) AddSparse(s *SparsePolynomial) *DensePolynomial {
	coeffs := append([]field.Element(nil), p.Coefficients()...)
	for _, t := range s.Terms() {
		for len(coeffs) <= t.Exponent {
			coeffs = append(coeffs, field.Zero)
		}
		coeffs[t.Exponent] = coeffs[t.Exponent].Add(t.Coefficient)
	}
	return NewDensePolynomial(coeffs)
}

// IsZero reports whether every coefficient is zero.
func (p *DensePolynomial) IsZero() bool {
	for _, c := range p.Coefficients() {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Div performs exact polynomial long division of p by a SparsePolynomial
// divisor, returning an error if the division leaves a non-zero
// remainder. This is what lets a genuine boundary constraint's
// denominator (X - point) divide out across the whole domain: the
// quotient is a polynomial identity, checked by long division here, not
// a per-point field division that would fail exactly at the point the
// denominator vanishes.
func (p *DensePolynomial) Div(other *SparsePolynomial) (*DensePolynomial, error) {
	if other.IsZero() {
		return nil, newError(ErrDivisionByZero, "DensePolynomial.Div: divisor is zero")
	}

	remainder := append([]field.Element(nil), p.Coefficients()...)
	divisorTerms := other.Terms()
	leadingOther := divisorTerms[len(divisorTerms)-1]
	divisorDegree := leadingOther.Exponent

	var quotient []field.Element
	for {
		remDegree := denseDegree(remainder)
		if remDegree < 0 || remDegree < divisorDegree {
			break
		}

		coeff, err := remainder[remDegree].Div(leadingOther.Coefficient)
		if err != nil {
			return nil, wrapError(ErrDivisionByZero, "DensePolynomial.Div: leading coefficient division failed", err)
		}
		shift := remDegree - divisorDegree
		for len(quotient) <= shift {
			quotient = append(quotient, field.Zero)
		}
		quotient[shift] = coeff

		for _, t := range divisorTerms {
			idx := t.Exponent + shift
			remainder[idx] = remainder[idx].Sub(coeff.Mul(t.Coefficient))
		}
	}

	if denseDegree(remainder) >= 0 {
		return nil, newError(ErrDivisionByZero, "DensePolynomial.Div: division is not exact, remainder is non-zero")
	}
	return NewDensePolynomial(quotient), nil
}

// denseDegree returns the highest index with a non-zero coefficient, or
// -1 for the all-zero slice.
func denseDegree(coeffs []field.Element) int {
	for i := len(coeffs) - 1; i >= 0; i-- {
		if !coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}
