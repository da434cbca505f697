package algebra

import (
	"sort"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Fraction is a TraceExpression numerator over a *set* of SparsePolynomial
// denominators, each implicitly multiplied together: the represented
// value is numerator / (d1 * d2 * ... * dk). Keeping the denominators as
// a set instead of eagerly multiplying them lets addition find a common
// denominator by set union/difference instead of cross-multiplying,
// avoiding a blowup in the denominator's degree across a long chain of
// additions.
type Fraction struct {
	numerator   TraceExpression
	denominator map[string]*SparsePolynomial // keyed by SparsePolynomial.Key()
}

// ZeroFraction returns the additive identity: 0 / 1.
func ZeroFraction() *Fraction {
	return &Fraction{
		numerator:   Poly(Constant(field.Zero)),
		denominator: map[string]*SparsePolynomial{},
	}
}

// OneFraction returns the multiplicative identity: 1 / 1.
func OneFraction() *Fraction {
	return &Fraction{
		numerator:   Poly(Constant(field.One)),
		denominator: map[string]*SparsePolynomial{},
	}
}

// NewFraction builds numerator / (product of factors).
func NewFraction(numerator TraceExpression, factors ...*SparsePolynomial) *Fraction {
	denom := map[string]*SparsePolynomial{}
	for _, f := range factors {
		if f.IsZero() {
			continue
		}
		denom[f.Key()] = f
	}
	return &Fraction{numerator: numerator, denominator: denom}
}

// Numerator returns the fraction's numerator.
func (f *Fraction) Numerator() TraceExpression { return f.numerator }

// DenominatorFactors returns the fraction's denominator factors in a
// deterministic order (sorted by SparsePolynomial.Compare).
func (f *Fraction) DenominatorFactors() []*SparsePolynomial {
	factors := make([]*SparsePolynomial, 0, len(f.denominator))
	for _, d := range f.denominator {
		factors = append(factors, d)
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Compare(factors[j]) < 0 })
	return factors
}

// Denominator reifies the product of the denominator factors into a
// single SparsePolynomial.
func (f *Fraction) Denominator() *SparsePolynomial {
	result := ConstantSparsePolynomial(field.One)
	for _, d := range f.DenominatorFactors() {
		result = result.Mul(d)
	}
	return result
}

// Degree returns the fraction's degree relative to a trace length:
// deg(numerator) - deg(denominator).
func (f *Fraction) Degree(traceLength int) int {
	return f.numerator.Degree(traceLength) - f.Denominator().Degree()
}

// Add returns f + other, merging denominators by set union: factors that
// appear in both sets are not duplicated, so the combined denominator is
// the union, and each numerator is scaled by only the factors it was
// missing (the "common denominator" trick, not a full cross-multiply).
func (f *Fraction) Add(other *Fraction) *Fraction {
	union := map[string]*SparsePolynomial{}
	for k, v := range f.denominator {
		union[k] = v
	}
	for k, v := range other.denominator {
		union[k] = v
	}

	leftMissing := factorsNotIn(other.denominator, f.denominator)
	rightMissing := factorsNotIn(f.denominator, other.denominator)

	leftNumerator := scaleNumeratorByFactors(f.numerator, leftMissing)
	rightNumerator := scaleNumeratorByFactors(other.numerator, rightMissing)

	return &Fraction{
		numerator:   AddTrace(leftNumerator, rightNumerator),
		denominator: union,
	}
}

// Sub returns f - other.
func (f *Fraction) Sub(other *Fraction) *Fraction {
	return f.Add(other.Neg())
}

// Neg returns -f.
func (f *Fraction) Neg() *Fraction {
	return &Fraction{numerator: NegTrace(f.numerator), denominator: f.denominator}
}

// Mul returns f * other. The two denominator sets must be disjoint: if
// they share a factor, the product's denominator would need that
// factor's square tracked, which this representation (a set, not a
// multiset) cannot express, mirroring fraction.rs's MulAssign assertion.
func (f *Fraction) Mul(other *Fraction) (*Fraction, error) {
	for k := range f.denominator {
		if _, clash := other.denominator[k]; clash {
			return nil, newError(ErrNonDisjointDenominators,
				"Fraction.Mul: denominator sets share a factor")
		}
	}

	union := map[string]*SparsePolynomial{}
	for k, v := range f.denominator {
		union[k] = v
	}
	for k, v := range other.denominator {
		union[k] = v
	}

	return &Fraction{
		numerator:   MulTrace(f.numerator, other.numerator),
		denominator: union,
	}, nil
}

// Div returns f / denom, inserting denom into the denominator set.
func (f *Fraction) Div(denom *SparsePolynomial) *Fraction {
	union := map[string]*SparsePolynomial{}
	for k, v := range f.denominator {
		union[k] = v
	}
	if !denom.IsZero() {
		union[denom.Key()] = denom
	}
	return &Fraction{numerator: f.numerator, denominator: union}
}

// EvaluateAtRow evaluates the fraction pointwise, returning an
// ErrDivisionByZero error if the denominator vanishes at the row's
// domain point.
func (f *Fraction) EvaluateAtRow(accessor TraceAccessor, row int) (field.Element, error) {
	denomValue := f.Denominator().Evaluate(accessor.DomainElement(row))
	if denomValue.IsZero() {
		return field.Element{}, newError(ErrDivisionByZero,
			"Fraction.EvaluateAtRow: denominator vanishes at this row")
	}
	numValue := f.numerator.EvaluateAtRow(accessor, row)
	result, err := numValue.Div(denomValue)
	if err != nil {
		return field.Element{}, wrapError(ErrDivisionByZero, "Fraction.EvaluateAtRow: division failed", err)
	}
	return result, nil
}

func factorsNotIn(present, absent map[string]*SparsePolynomial) []*SparsePolynomial {
	var missing []*SparsePolynomial
	for k, v := range present {
		if _, ok := absent[k]; !ok {
			missing = append(missing, v)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Compare(missing[j]) < 0 })
	return missing
}

func scaleNumeratorByFactors(numerator TraceExpression, factors []*SparsePolynomial) TraceExpression {
	if len(factors) == 0 {
		return numerator
	}
	product := ConstantSparsePolynomial(field.One)
	for _, f := range factors {
		product = product.Mul(f)
	}
	return MulTrace(numerator, Poly(reifiedLeaf{poly: product}))
}

// reifiedLeaf lifts an already-computed SparsePolynomial back into a
// PolynomialExpression leaf, used internally when Fraction arithmetic
// needs to multiply a TraceExpression numerator by a denominator factor
// without re-deriving the factor from an expression tree.
type reifiedLeaf struct{ poly *SparsePolynomial }

func (reifiedLeaf) polynomialExpression()        {}
func (r reifiedLeaf) Degree() int                { return r.poly.Degree() }
func (r reifiedLeaf) Evaluate(x field.Element) field.Element { return r.poly.Evaluate(x) }
func (r reifiedLeaf) Reify() *SparsePolynomial   { return r.poly }
func (r reifiedLeaf) String() string             { return r.poly.String() }
