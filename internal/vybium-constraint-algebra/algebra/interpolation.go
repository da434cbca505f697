package algebra

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// interpolateDense returns the unique dense polynomial of degree less
// than len(points) passing through the given (point, value) pairs, via
// Lagrange interpolation. It is how the domain evaluator turns a trace
// oracle's point-sampled column into a genuine polynomial: dividing that
// polynomial by a constraint's denominator is then an exact long
// division (DensePolynomial.Div), not a per-point field division that
// fails at the denominator's roots.
func interpolateDense(points, values []field.Element) *DensePolynomial {
	result := NewDensePolynomial(nil)
	for i, xi := range points {
		basis := NewDensePolynomial([]field.Element{field.One})
		denominator := field.One
		for j, xj := range points {
			if i == j {
				continue
			}
			factor := NewDensePolynomial([]field.Element{field.Zero.Sub(xj), field.One})
			var err error
			basis, err = basis.Mul(factor)
			if err != nil {
				panic("algebra.interpolateDense: basis polynomial multiplication failed")
			}
			denominator = denominator.Mul(xi.Sub(xj))
		}

		scale, err := values[i].Div(denominator)
		if err != nil {
			panic("algebra.interpolateDense: duplicate interpolation point")
		}
		term, err := basis.Scale(scale)
		if err != nil {
			panic("algebra.interpolateDense: basis scaling failed")
		}
		result, err = result.Add(term)
		if err != nil {
			panic("algebra.interpolateDense: accumulation failed")
		}
	}
	return result
}
