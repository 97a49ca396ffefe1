// Package si is the generated SI unit catalog: the Si descriptor
// family over the eight base dimensions, the coherent derived units
// and their common decimal-prefixed aliases.
//
// The catalog is produced by unitgen from si.yaml; edit the
// declaration, not si_gen.go.
package si

//go:generate go run github.com/unyt-go/unyt/cmd/unitgen --declaration si.yaml --out si_gen.go
