package exchange

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

const testTraceLength = 16

func buildTrivialValidTrace(t *testing.T) (*TraceTable, ExchangeParams) {
	t.Helper()
	generator := field.PrimitiveRootOfUnity(uint64(testTraceLength))
	table := NewTraceTable(testTraceLength, generator)

	root := field.New(777)
	for row := 0; row < testTraceLength; row++ {
		// All selector bits zero: booleanity holds trivially, and every
		// bit-gated relation (slope-line, slope-square) is multiplied by
		// zero regardless of the slope/x/y values left at their zero
		// defaults. The carry relation then requires x to stay fixed
		// across the lane, which it does (zero-initialized).
		table.Set(ColAccumulator, row, root)
	}

	params := ExchangeParams{
		LaneA:                HashLaneParams{ConstX: field.New(2), ConstY: field.New(3), Period: 4},
		LaneB:                HashLaneParams{ConstX: field.New(5), ConstY: field.New(7), Period: 4},
		MerkleSidePeriod:     8,
		PhasePeriod:          8,
		ECDSAKeyPeriod:       4,
		ECDSAGeneratorPeriod: 8,
		InitialRoot:          root,
		FinalRoot:            root,
	}
	return table, params
}

func TestHashLaneConstraintsVanishOnTrivialTrace(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	constraints := hashLaneConstraints(ColHashASource, ColHashASlope, ColHashAX, ColHashAY, table, params.LaneA)

	coefficients := make([]field.Element, 2*len(constraints))
	for i := range coefficients {
		coefficients[i] = field.New(uint64(i + 1))
	}
	gc, err := algebra.Combine(constraints, coefficients, testTraceLength, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	dense, err := gc.EvalOnDomain(table, testTraceLength, nil)
	if err != nil {
		t.Fatalf("EvalOnDomain() error = %v", err)
	}
	for row := 0; row < testTraceLength; row++ {
		if v := dense.Evaluate(table.DomainElement(row)); !v.IsZero() {
			t.Errorf("row %d: expected hash-lane constraints to vanish on the trivial trace, got %s", row, v)
		}
	}
}

func TestHashLaneConstraintsCatchAMutatedBit(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	table.Set(ColHashASource, 1, field.One) // flip a selector bit away from its consistent zero state

	constraints := hashLaneConstraints(ColHashASource, ColHashASlope, ColHashAX, ColHashAY, table, params.LaneA)
	coefficients := make([]field.Element, 2*len(constraints))
	for i := range coefficients {
		coefficients[i] = field.New(uint64(i + 1))
	}
	gc, err := algebra.Combine(constraints, coefficients, testTraceLength, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	dense, err := gc.EvalOnDomain(table, testTraceLength, nil)
	if err != nil {
		t.Fatalf("EvalOnDomain() error = %v", err)
	}

	anyNonZero := false
	for row := 0; row < testTraceLength; row++ {
		if v := dense.Evaluate(table.DomainElement(row)); !v.IsZero() {
			anyNonZero = true
			break
		}
	}
	if !anyNonZero {
		t.Error("expected the mutated selector bit to produce a non-vanishing constraint somewhere on the domain")
	}
}

func TestMerkleSideBitBooleanityVanishes(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	constraints := merkleConstraints(table, params)
	booleanity := constraints[0]

	for row := 0; row < testTraceLength; row++ {
		value, err := booleanity.EvaluateAtRow(table, row)
		if err != nil {
			t.Fatalf("row %d: EvaluateAtRow() error = %v", row, err)
		}
		if !value.IsZero() {
			t.Errorf("row %d: expected Merkle side-bit booleanity to vanish, got %s", row, value)
		}
	}
}

func TestMerkleRootBoundariesHoldAtTheirPinnedRows(t *testing.T) {
	// initialRoot and finalRoot divide by (X - point): the point is
	// exactly the row the boundary pins, so this only evaluates through
	// EvalOnDomain's exact polynomial division, not a per-row field
	// division (which would fail precisely at that row).
	table, params := buildTrivialValidTrace(t)
	constraints := merkleConstraints(table, params)

	coefficients := make([]field.Element, 2*len(constraints))
	for i := range coefficients {
		coefficients[i] = field.New(uint64(i + 1))
	}
	gc, err := algebra.Combine(constraints, coefficients, testTraceLength, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	dense, err := gc.EvalOnDomain(table, testTraceLength, nil)
	if err != nil {
		t.Fatalf("EvalOnDomain() error = %v", err)
	}
	for row := 0; row < testTraceLength; row++ {
		if v := dense.Evaluate(table.DomainElement(row)); !v.IsZero() {
			t.Errorf("row %d: expected Merkle constraints, including both root boundaries, to vanish on a valid trace, got %s", row, v)
		}
	}
}

func TestMerkleRootBoundaryCatchesAWrongInitialRoot(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	params.InitialRoot = field.New(999) // no longer matches the accumulator's value at row 0
	constraints := merkleConstraints(table, params)

	coefficients := make([]field.Element, 2*len(constraints))
	for i := range coefficients {
		coefficients[i] = field.New(uint64(i + 1))
	}
	gc, err := algebra.Combine(constraints, coefficients, testTraceLength, nil)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	// (accumulator - 999) is a non-zero constant on the domain, so the
	// initial-root bucket is not divisible by (X - 1): the exact division
	// in EvalOnDomain reports the non-zero remainder.
	_, err = gc.EvalOnDomain(table, testTraceLength, nil)
	if err == nil {
		t.Fatal("EvalOnDomain() error = nil, want an error for a wrong initial root")
	}
	if !errors.Is(err, &algebra.AlgebraError{Code: algebra.ErrDivisionByZero}) {
		t.Errorf("EvalOnDomain() error = %v, want an inexact-division error", err)
	}
}

func TestECDSABitBooleanityVanishesOnTrivialTrace(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	constraints := ecdsaConstraints(table, params)
	for _, c := range constraints {
		for row := 0; row < testTraceLength; row++ {
			v, err := c.EvaluateAtRow(table, row)
			if err != nil {
				t.Fatalf("row %d: EvaluateAtRow() error = %v", row, err)
			}
			if !v.IsZero() {
				t.Errorf("row %d: expected ECDSA bit booleanity to vanish, got %s", row, v)
			}
		}
	}
}

func TestBuildExchangeConstraintsProducesTheFullSet(t *testing.T) {
	table, params := buildTrivialValidTrace(t)
	constraints := BuildExchangeConstraints(table, params)
	// 4 (lane A) + 4 (lane B) + 3 (Merkle) + 2 (settlement) + 2 (ECDSA)
	if want := 15; len(constraints) != want {
		t.Errorf("BuildExchangeConstraints() produced %d constraints, want %d", len(constraints), want)
	}
}
