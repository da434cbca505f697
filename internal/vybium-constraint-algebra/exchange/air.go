package exchange

import (
	"github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// HashLaneParams fixes the curve point (constX, constY) added into the
// incremental EC-subset-sum accumulator at each Pedersen hash step, and
// the period over which one hash computation's steps repeat.
type HashLaneParams struct {
	ConstX field.Element
	ConstY field.Element
	Period int
}

// ExchangeParams bundles the reference harness's per-lane and boundary
// parameters, standing in for the fixed curve constants and periodicity
// the real StarkDEX circuit derives from its Pedersen hash and Merkle
// tree configuration.
type ExchangeParams struct {
	LaneA HashLaneParams
	LaneB HashLaneParams

	MerkleSidePeriod int
	PhasePeriod      int // settlement/modification split: trace length / 2

	ECDSAKeyPeriod       int
	ECDSAGeneratorPeriod int

	InitialRoot field.Element
	FinalRoot   field.Element
}

func pointDenominator(point field.Element) *algebra.SparsePolynomial {
	return algebra.NewSparsePolynomial(
		algebra.SparseTerm(field.One, 1),
		algebra.SparseTerm(field.Zero.Sub(point), 0),
	)
}

// hashLaneConstraints builds the four-constraint EC-subset-sum step
// shape for a single Pedersen hash lane: bit booleanity, a slope-line
// relation and a slope-square relation (both active only when the bit is
// set), and a carry relation that holds the point's x coordinate steady
// when the bit is clear (y is not carried by a constraint of its own). Grounded on trace_table.rs's hash-pool constraints (lines
// 161-212), restated as TraceExpression/Constraint values instead of
// Rust closures over a concrete trace.
func hashLaneConstraints(sourceCol, slopeCol, xCol, yCol int, table *TraceTable, params HashLaneParams) []*algebra.Constraint {
	domainLength := table.Length()
	generator := table.Generator()

	// Active on every row of a hash-computation block except its last,
	// so the transition relations never reach across a lane boundary.
	guard := algebra.SubPoly(algebra.Constant(field.One),
		periodicIndicator(generator, domainLength, params.Period, params.Period-1))

	one := algebra.Poly(algebra.Constant(field.One))
	bit := algebra.Trace(sourceCol, 0)
	notBit := algebra.SubTrace(one, bit)

	booleanity := algebra.NewConstraint(
		algebra.MulTrace(algebra.Poly(guard), algebra.MulTrace(bit, notBit)),
		nil, nil,
	)

	slopeLineBase := algebra.MulTrace(bit, algebra.SubTrace(
		algebra.MulTrace(algebra.Trace(slopeCol, 0), algebra.SubTrace(algebra.Trace(xCol, 0), algebra.Poly(algebra.Constant(params.ConstX)))),
		algebra.SubTrace(algebra.Trace(yCol, 0), algebra.Poly(algebra.Constant(params.ConstY))),
	))
	slopeLine := algebra.NewConstraint(algebra.MulTrace(algebra.Poly(guard), slopeLineBase), nil, nil)

	slopeSquareBase := algebra.MulTrace(bit, algebra.SubTrace(
		algebra.MulTrace(algebra.Trace(slopeCol, 0), algebra.Trace(slopeCol, 0)),
		algebra.AddTrace(algebra.AddTrace(algebra.Trace(xCol, 0), algebra.Poly(algebra.Constant(params.ConstX))), algebra.Trace(xCol, 1)),
	))
	slopeSquare := algebra.NewConstraint(algebra.MulTrace(algebra.Poly(guard), slopeSquareBase), nil, nil)

	carryBase := algebra.MulTrace(notBit, algebra.SubTrace(algebra.Trace(xCol, 1), algebra.Trace(xCol, 0)))
	carry := algebra.NewConstraint(algebra.MulTrace(algebra.Poly(guard), carryBase), nil, nil)

	return []*algebra.Constraint{booleanity, slopeLine, slopeSquare, carry}
}

// merkleConstraints builds the authentication-path side-bit booleanity
// constraint and the initial/final root boundary equalities, grounded on
// trace_table.rs lines 241-341.
func merkleConstraints(table *TraceTable, params ExchangeParams) []*algebra.Constraint {
	domainLength := table.Length()
	generator := table.Generator()
	one := algebra.Poly(algebra.Constant(field.One))

	sideBit := algebra.Trace(ColMystery, 0)
	sideBitGuard := periodicIndicator(generator, domainLength, params.MerkleSidePeriod, 0)
	booleanity := algebra.NewConstraint(
		algebra.MulTrace(algebra.Poly(sideBitGuard), algebra.MulTrace(sideBit, algebra.SubTrace(one, sideBit))),
		nil, nil,
	)

	initialRootBase := algebra.SubTrace(algebra.Trace(ColAccumulator, 0), algebra.Poly(algebra.Constant(params.InitialRoot)))
	initialRoot := algebra.NewConstraint(initialRootBase, nil, pointDenominator(field.One))

	finalPoint := generator.Pow(uint64(domainLength - 1))
	finalRootBase := algebra.SubTrace(algebra.Trace(ColAccumulator, 0), algebra.Poly(algebra.Constant(params.FinalRoot)))
	finalRoot := algebra.NewConstraint(finalRootBase, nil, pointDenominator(finalPoint))

	return []*algebra.Constraint{booleanity, initialRoot, finalRoot}
}

// settlementConstraints builds a representative subset of the
// settlement/modification boundary equalities from trace_table.rs lines
// 700-860: two linkage equalities (vault and amount continuity) pinned
// at the row splitting the trace into its settlement and modification
// halves. The remaining
// ~15-cell linkage in the original is structurally identical (an
// equality between two Trace leaves at the phase boundary) and is not
// reproduced cell-for-cell here.
func settlementConstraints(table *TraceTable, params ExchangeParams) []*algebra.Constraint {
	generator := table.Generator()
	midpointRow := params.PhasePeriod
	midpoint := generator.Pow(uint64(midpointRow))

	vaultContinuityBase := algebra.SubTrace(algebra.Trace(ColAccumulator, -1), algebra.Trace(ColHashAX, 0))
	vaultContinuity := algebra.NewConstraint(vaultContinuityBase, nil, pointDenominator(midpoint))

	amountContinuityBase := algebra.SubTrace(algebra.Trace(ColHashBY, -1), algebra.Trace(ColHashBY, 0))
	amountContinuity := algebra.NewConstraint(amountContinuityBase, nil, pointDenominator(midpoint))

	return []*algebra.Constraint{vaultContinuity, amountContinuity}
}

// ecdsaConstraints carries the booleanity shape of the exponentiation
// bits from sig_verify__exponentiate_key__bit and
// sig_verify__exponentiate_generator__bit (trace_table.rs lines 98-155).
// It does not implement signature recovery: only the bit-decomposition
// shape a real verification circuit would also need is reproduced.
func ecdsaConstraints(table *TraceTable, params ExchangeParams) []*algebra.Constraint {
	domainLength := table.Length()
	generator := table.Generator()
	one := algebra.Poly(algebra.Constant(field.One))

	keyBit := algebra.Trace(ColHashBSource, 0)
	keyGuard := periodicIndicator(generator, domainLength, params.ECDSAKeyPeriod, 0)
	keyBooleanity := algebra.NewConstraint(
		algebra.MulTrace(algebra.Poly(keyGuard), algebra.MulTrace(keyBit, algebra.SubTrace(one, keyBit))),
		nil, nil,
	)

	generatorBit := algebra.Trace(ColHashASource, 0)
	generatorGuard := periodicIndicator(generator, domainLength, params.ECDSAGeneratorPeriod, 0)
	generatorBooleanity := algebra.NewConstraint(
		algebra.MulTrace(algebra.Poly(generatorGuard), algebra.MulTrace(generatorBit, algebra.SubTrace(one, generatorBit))),
		nil, nil,
	)

	return []*algebra.Constraint{keyBooleanity, generatorBooleanity}
}

// BuildExchangeConstraints assembles the reference AIR's full constraint
// list: the two Pedersen hash lanes, the Merkle authentication-path
// shape, a representative settlement/modification boundary subset, and
// the ECDSA exponentiation-bit shape.
func BuildExchangeConstraints(table *TraceTable, params ExchangeParams) []*algebra.Constraint {
	var constraints []*algebra.Constraint
	constraints = append(constraints, hashLaneConstraints(ColHashASource, ColHashASlope, ColHashAX, ColHashAY, table, params.LaneA)...)
	constraints = append(constraints, hashLaneConstraints(ColHashBSource, ColHashBSlope, ColHashBX, ColHashBY, table, params.LaneB)...)
	constraints = append(constraints, merkleConstraints(table, params)...)
	constraints = append(constraints, settlementConstraints(table, params)...)
	constraints = append(constraints, ecdsaConstraints(table, params)...)
	return constraints
}
