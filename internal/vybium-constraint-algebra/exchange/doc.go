// Package exchange is a reference AIR harness for an exchange-style
// circuit: a ten-column trace table (two Pedersen EC-subset-sum hash
// lanes, a Merkle-tree accumulator lane, and a settlement/modification
// auxiliary lane) and the constraint set that binds them, built on top of
// package algebra. It exercises the constraint algebra engine's
// periodic-column, boundary-constraint, and domain-evaluation machinery
// against a realistic (if simplified) circuit shape.
//
// This package does not implement a real Pedersen hash, Merkle proof, or
// ECDSA verification: it reproduces the algebraic *shape* those
// primitives impose on a trace (booleanity, incremental point addition,
// boundary pinning), which is what an AIR constraint set actually checks.
package exchange
