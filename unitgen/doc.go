// Package unitgen turns a declarative unit-system description into Go
// source code.
//
// A declaration names a family and lists its base dimensions in order;
// derived units are unit expressions over dimension symbols and earlier
// unit names, and any unit can request decimal-prefixed variants
// (quecto through quetta). The generator resolves every expression in
// descriptor space — one decimal-scale exponent plus one integer
// exponent per dimension, all arithmetic bounded to -30..30 — and emits
// one generic zero-size family type plus a type alias per resolved
// unit.
//
// Generation fails on unknown symbols, duplicate names, non-exact
// exponent division and any exponent leaving the bounded range. A
// declaration that generates cleanly yields a self-consistent family:
// arbitrary compositions of its units resolve to structurally identical
// descriptor types regardless of the order of operations.
package unitgen
