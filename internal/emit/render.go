package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "person_optics.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// fileTemplate is the skeleton every generated file fills in.
var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by optic-gen. DO NOT EDIT.

package {{.PkgName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Aliased}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{.Body}}`))

type fileData struct {
	PkgName string
	Imports []importView
	Body    string
}

type importView struct {
	Alias   string
	Path    string
	Aliased bool
}

// Render renders a declaration list into one formatted Go file. On a
// formatting failure the unformatted content is returned alongside the
// error so callers can write a debug sidecar.
func Render(pkgName, filename string, fmtr *Formatter, decls []Decl) (*GeneratedFile, error) {
	var body strings.Builder

	for i, d := range decls {
		if i > 0 {
			body.WriteString("\n")
		}

		d.render(&body)
	}

	data := fileData{
		PkgName: pkgName,
		Body:    body.String(),
	}

	for _, imp := range fmtr.Imports() {
		data.Imports = append(data.Imports, importView{
			Alias:   imp.Alias,
			Path:    imp.Path,
			Aliased: imp.Alias != path.Base(imp.Path),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}
