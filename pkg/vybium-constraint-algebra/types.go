package vybiumconstraintalgebra

import "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

// FieldElement is the field element type this package's arithmetic and
// challenges are expressed in, re-exported from vybium-crypto.
type FieldElement = field.Element
