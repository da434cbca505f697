package vybiumconstraintalgebra_test

import (
	"testing"

	vca "github.com/vybium/vybium-constraint-algebra/pkg/vybium-constraint-algebra"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

type sliceAccessor struct {
	columns [][]field.Element
	domain  []field.Element
}

func (a *sliceAccessor) Column(col int) []field.Element      { return a.columns[col] }
func (a *sliceAccessor) DomainElement(row int) field.Element { return a.domain[row] }

func TestFacadeCombineAndEvaluate(t *testing.T) {
	const length = 4
	column := []field.Element{field.New(0), field.New(1), field.New(2), field.New(3)}
	domain := []field.Element{field.New(1), field.New(2), field.New(4), field.New(8)}
	accessor := &sliceAccessor{columns: [][]field.Element{column}, domain: domain}

	base := vca.Trace(0, 0)
	c := vca.NewConstraint(base, nil, nil)

	gc, err := vca.Combine([]*vca.Constraint{c}, []vca.FieldElement{field.One, field.Zero}, length, vca.DefaultConfig())
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	value, err := gc.Eval(accessor, 2)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if want := field.New(2); value.Cmp(want) != 0 {
		t.Errorf("Eval() = %s, want %s", value, want)
	}
}
