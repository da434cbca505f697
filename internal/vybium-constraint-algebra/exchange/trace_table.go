package exchange

import (
	"github.com/vybium/vybium-constraint-algebra/internal/vybium-constraint-algebra/algebra"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Column layout of the exchange circuit's reference trace table: two
// Pedersen EC-subset-sum hash lanes (each a row of source/slope/x/y
// cells), a third accumulator/hash lane, and an auxiliary "mystery" lane
// carrying settlement/modification bookkeeping.
const (
	ColHashASource = 0
	ColHashASlope  = 1
	ColHashAX      = 2
	ColHashAY      = 3

	ColHashBSource = 4
	ColHashBSlope  = 5
	ColHashBX      = 6
	ColHashBY      = 7

	ColAccumulator = 8
	ColMystery     = 9

	NumColumns = 10
)

// TraceTable is a concrete, dense implementation of algebra.TraceAccessor
// over the ten-column exchange layout.
type TraceTable struct {
	columns   [NumColumns][]field.Element
	generator field.Element
}

// NewTraceTable allocates a TraceTable of the given length, zero-filled,
// evaluated over the domain generated by generator.
func NewTraceTable(length int, generator field.Element) *TraceTable {
	t := &TraceTable{generator: generator}
	for c := 0; c < NumColumns; c++ {
		column := make([]field.Element, length)
		for i := range column {
			column[i] = field.Zero
		}
		t.columns[c] = column
	}
	return t
}

// Length returns the number of rows.
func (t *TraceTable) Length() int { return len(t.columns[0]) }

// Generator returns the trace domain's generator.
func (t *TraceTable) Generator() field.Element { return t.generator }

// Set writes a cell value.
func (t *TraceTable) Set(col, row int, value field.Element) {
	t.columns[col][row] = value
}

// Get reads a cell value.
func (t *TraceTable) Get(col, row int) field.Element {
	return t.columns[col][row]
}

// Column implements algebra.TraceAccessor.
func (t *TraceTable) Column(col int) []field.Element {
	return t.columns[col]
}

// DomainElement implements algebra.TraceAccessor: row i maps to
// generator^i.
func (t *TraceTable) DomainElement(row int) field.Element {
	return t.generator.Pow(uint64(row))
}

var _ algebra.TraceAccessor = (*TraceTable)(nil)
