package unitgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/unyt-go/unyt/internal/dim"
)

// unytPath is the import path of the marker and quantity package the
// emitted code builds on.
const unytPath = "github.com/unyt-go/unyt"

var fileTemplate = template.Must(template.New("family").Parse(`// Code generated by unitgen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.UnytPath}}"
)

// {{.System}} is the unit descriptor family over the dimensions
// {{.DimsDoc}}.
// EXP carries the decimal scale exponent, the remaining type parameters
// carry one exponent per dimension in declaration order. Every
// instantiation is a zero-size marker; quantities tagged with it store
// nothing but their raw value.
type {{.System}}[{{.Params}} unyt.Const] struct{}

// Scale reports the decimal scale exponent, making every instantiation
// of {{.System}} a unyt.Unit.
func ({{.System}}[{{.Params}}]) Scale() int {
	var e EXP
	return e.Int()
}

{{range .Aliases}}// {{.Doc}}
type {{.Name}} = {{$.System}}[{{.Markers}}]

{{end -}}
{{range .Quantities}}
// {{.Name}} is a quantity measured in {{.Unit}}.
type {{.Name}}[T unyt.Real] = unyt.Quantity[T, {{.Unit}}]
{{end}}`))

type fileData struct {
	Package    string
	UnytPath   string
	System     string
	DimsDoc    string
	Params     string
	Aliases    []aliasData
	Quantities []quantityData
}

type aliasData struct {
	Name    string
	Doc     string
	Markers string
}

type quantityData struct {
	Name string
	Unit string
}

// Generate emits the family as a gofmt-formatted Go source file.
func (f *Family) Generate() ([]byte, error) {
	var dims []string
	for _, d := range f.decl.Dimensions {
		dims = append(dims, fmt.Sprintf("%s (%s)", d.Name, d.Symbol))
	}

	data := fileData{
		Package:  f.decl.Package,
		UnytPath: unytPath,
		System:   f.decl.System,
		DimsDoc:  strings.Join(dims, ", "),
		Params:   strings.Join(f.params, ", "),
	}

	for _, a := range f.aliases {
		markers, err := markerList(a.desc)
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", a.name, err)
		}

		data.Aliases = append(data.Aliases, aliasData{
			Name:    a.name,
			Doc:     a.doc,
			Markers: markers,
		})

		if a.quantity != "" {
			data.Quantities = append(data.Quantities, quantityData{
				Name: a.quantity,
				Unit: a.name,
			})
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute family template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}

// markerList renders a descriptor as the family's type argument list,
// e.g. "unyt.Z0, unyt.N2, unyt.P1, unyt.P1".
func markerList(d dim.Desc) (string, error) {
	names := make([]string, 0, len(d.Dims)+1)

	scale, err := dim.ConstName(d.Scale)
	if err != nil {
		return "", err
	}
	names = append(names, "unyt."+scale)

	for _, v := range d.Dims {
		n, err := dim.ConstName(v)
		if err != nil {
			return "", err
		}
		names = append(names, "unyt."+n)
	}

	return strings.Join(names, ", "), nil
}

// Generate is the one-call front: declaration bytes in, generated Go
// source out.
func Generate(declaration []byte) ([]byte, error) {
	decl, err := ParseDeclaration(declaration)
	if err != nil {
		return nil, err
	}

	fam, err := NewFamily(decl)
	if err != nil {
		return nil, err
	}

	return fam.Generate()
}
