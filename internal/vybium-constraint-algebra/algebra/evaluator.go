package algebra

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"golang.org/x/sync/errgroup"
)

// Eval evaluates a GroupedConstraints pointwise at a single trace row:
// for every bucket, it evaluates the bucket's combined trace expression,
// multiplies by the bucket's numerator and divides by the bucket's
// denominator, and sums the results, erroring if a denominator
// vanishes at that row's domain point. A constraint whose denominator is
// built to vanish at a specific row (a boundary constraint) cannot be
// evaluated at that row through this method; use EvalOnDomain, which
// divides the whole bucket out as an exact polynomial identity instead
// of a per-point field division.
func (g *GroupedConstraints) Eval(accessor TraceAccessor, row int) (field.Element, error) {
	result := field.Zero
	for _, bucket := range g.Buckets() {
		x := accessor.DomainElement(row)
		numeratorValue := bucket.Sum.EvaluateAtRow(accessor, row).Mul(bucket.Numerator.Evaluate(x))
		denomValue := bucket.Denominator.Evaluate(x)
		if denomValue.IsZero() {
			return field.Element{}, newError(ErrDivisionByZero,
				"GroupedConstraints.Eval: bucket denominator vanishes at this row")
		}
		contribution, err := numeratorValue.Div(denomValue)
		if err != nil {
			return field.Element{}, wrapError(ErrDivisionByZero, "GroupedConstraints.Eval: division failed", err)
		}
		result = result.Add(contribution)
	}
	return result, nil
}

// EvalOnDomain evaluates a GroupedConstraints across an entire trace
// domain and returns the composition as a DensePolynomial. For each
// bucket it flattens the combined trace expression to a TraceMultinomial
// (component D), builds every monomial's trace-leaf product as a dense
// polynomial by interpolating each referenced column over the domain,
// multiplies by the monomial coefficient's reified numerator (applying
// the sparse/dense cutover in cfg.SparseDenseCutover), and divides
// exactly by the coefficient's denominator factors. The bucket's own
// numerator and denominator (shared across every constraint folded into
// it) are then multiplied and divided in once, which is the grouped-eval
// optimization: one division per bucket instead of one per constraint.
//
// Because every division here is an exact polynomial division
// (DensePolynomial.Div), not a per-point field division, a boundary
// constraint's denominator — built to vanish at exactly the row it pins
// — still divides out cleanly: the quotient is a polynomial identity
// over the whole domain, and the generic field-division failure at that
// one row never arises. cfg may be nil, in which case DefaultConfig()
// applies.
func (g *GroupedConstraints) EvalOnDomain(accessor TraceAccessor, domainLength int, cfg *Config) (*DensePolynomial, error) {
	cfg = resolveConfig(cfg)
	result := NewDensePolynomial(nil)

	for _, bucket := range g.Buckets() {
		bucketPoly, err := evaluateBucketOnDomain(bucket, accessor, domainLength, cfg)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(bucketPoly)
		if err != nil {
			return nil, wrapError(ErrUnknown, "GroupedConstraints.EvalOnDomain: accumulation failed", err)
		}
	}

	if cfg.DebugChecks {
		checkDegreePostCondition(g, result, domainLength)
	}
	return result, nil
}

// EvalOnDomainConcurrent is EvalOnDomain with each bucket's computation
// parallelized via an errgroup, grounded on protocols/constraints.go's
// ParallelEvaluateQuotients (a sync.WaitGroup fan-out into a pre-sized,
// index-addressed results slice) upgraded to errgroup.WithContext so the
// first bucket-level error cancels the remaining work. Bucket results
// are written directly into their index's slot and summed in bucket
// order afterward, so the reduction order is identical to the
// sequential path regardless of goroutine completion order.
func (g *GroupedConstraints) EvalOnDomainConcurrent(ctx context.Context, accessor TraceAccessor, domainLength int, cfg *Config) (*DensePolynomial, error) {
	cfg = resolveConfig(cfg)
	buckets := g.Buckets()
	bucketPolys := make([]*DensePolynomial, len(buckets))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		i, bucket := i, bucket
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			bucketPoly, err := evaluateBucketOnDomain(bucket, accessor, domainLength, cfg)
			if err != nil {
				return err
			}
			bucketPolys[i] = bucketPoly
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := NewDensePolynomial(nil)
	for _, bucketPoly := range bucketPolys {
		var err error
		result, err = result.Add(bucketPoly)
		if err != nil {
			return nil, wrapError(ErrUnknown, "GroupedConstraints.EvalOnDomainConcurrent: accumulation failed", err)
		}
	}

	if cfg.DebugChecks {
		checkDegreePostCondition(g, result, domainLength)
	}
	return result, nil
}

// evaluateBucketOnDomain flattens one bucket's combined expression to a
// TraceMultinomial, evaluates it on the domain, and applies the bucket's
// shared numerator/denominator once.
func evaluateBucketOnDomain(bucket struct {
	Numerator   *SparsePolynomial
	Denominator *SparsePolynomial
	Sum         TraceExpression
}, accessor TraceAccessor, domainLength int, cfg *Config) (*DensePolynomial, error) {
	multinomial := FromTraceExpression(bucket.Sum)
	combined, err := evaluateMultinomialOnDomain(multinomial, accessor, domainLength, cfg)
	if err != nil {
		return nil, err
	}

	combined, err = multiplyByNumerator(combined, bucket.Numerator, cfg)
	if err != nil {
		return nil, err
	}

	combined, err = combined.Div(bucket.Denominator)
	if err != nil {
		return nil, wrapError(ErrDivisionByZero, "evaluateBucketOnDomain: bucket denominator division failed", err)
	}
	return combined, nil
}

// evaluateMultinomialOnDomain implements the domain-eval algorithm: for
// each monomial it builds the dense product of its trace-leaf factors
// (via per-column interpolation), multiplies by the reified numerator of
// the monomial's Fraction coefficient, divides exactly by each of that
// coefficient's denominator factors in canonical order, and sums the
// monomials.
func evaluateMultinomialOnDomain(m *TraceMultinomial, accessor TraceAccessor, domainLength int, cfg *Config) (*DensePolynomial, error) {
	result := NewDensePolynomial(nil)

	for _, term := range m.Terms() {
		product := NewDensePolynomial([]field.Element{field.One})
		for _, factor := range term.Factors {
			leafPoly := traceOraclePolynomial(accessor, factor.Column, factor.Offset, domainLength)
			var err error
			product, err = product.Mul(leafPoly)
			if err != nil {
				return nil, wrapError(ErrUnknown, "evaluateMultinomialOnDomain: trace-leaf product failed", err)
			}
		}

		numeratorPoly, err := term.Coefficient.Numerator().Reify()
		if err != nil {
			return nil, wrapError(ErrUnsupportedOperation,
				"evaluateMultinomialOnDomain: coefficient numerator still contains a Trace leaf", err)
		}
		product, err = multiplyByNumerator(product, numeratorPoly, cfg)
		if err != nil {
			return nil, err
		}

		for _, factor := range term.Coefficient.DenominatorFactors() {
			product, err = product.Div(factor)
			if err != nil {
				return nil, wrapError(ErrDivisionByZero, "evaluateMultinomialOnDomain: monomial coefficient division failed", err)
			}
		}

		result, err = result.Add(product)
		if err != nil {
			return nil, wrapError(ErrUnknown, "evaluateMultinomialOnDomain: accumulation failed", err)
		}
	}

	return result, nil
}

// multiplyByNumerator multiplies a dense polynomial by a SparsePolynomial
// numerator, applying the sparse/dense cutover: below
// cfg.SparseDenseCutover non-zero terms, the sparse numerator multiplies
// the dense operand directly; at or above it, the sparse side is
// promoted to dense form first.
func multiplyByNumerator(p *DensePolynomial, numerator *SparsePolynomial, cfg *Config) (*DensePolynomial, error) {
	if numerator.Len() < cfg.SparseDenseCutover {
		return p.MulSparse(numerator)
	}
	return p.Mul(DenseFromSparse(numerator))
}

// traceOraclePolynomial interpolates the dense polynomial whose
// evaluation at accessor.DomainElement(row) equals the trace column's
// value at row+offset (wrapped modulo the column length), for every row
// in the domain. Unlike the pointwise accessor, the domain evaluator
// needs a genuine polynomial here so that division by a constraint's
// denominator can be carried out exactly, including at the rows where
// that denominator vanishes.
func traceOraclePolynomial(accessor TraceAccessor, column, offset, domainLength int) *DensePolynomial {
	values := accessor.Column(column)
	n := len(values)
	points := make([]field.Element, domainLength)
	shifted := make([]field.Element, domainLength)
	for row := 0; row < domainLength; row++ {
		points[row] = accessor.DomainElement(row)
		idx := ((row+offset)%n + n) % n
		shifted[row] = values[idx]
	}
	return interpolateDense(points, shifted)
}

// checkDegreePostCondition logs a diagnostic comparing the combined
// composition's actual degree against Combine's target degree D*: at
// debug level when they agree (or the result is zero), at warn level
// when they differ. It never fails the call, it only logs.
func checkDegreePostCondition(g *GroupedConstraints, result *DensePolynomial, domainLength int) {
	actual := result.Degree()
	event := log.Debug()
	if !result.IsZero() && actual != g.targetDegree {
		event = log.Warn()
	}
	event.
		Int("domain_length", domainLength).
		Int("target_degree", g.targetDegree).
		Int("actual_degree", actual).
		Msg("constraint-algebra: degree post-condition check")
}
