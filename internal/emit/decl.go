package emit

import "strings"

// Decl is one synthesized top-level declaration, held as plain data until a
// renderer turns it into source text. Generators build decls; they never
// print code themselves.
type Decl interface {
	render(sb *strings.Builder)
}

// Param is one named parameter (or type parameter) of a generated function.
type Param struct {
	Name string
	Type string
}

// Comment is a free-standing comment declaration.
type Comment struct {
	Text string // may span lines
}

func (c Comment) render(sb *strings.Builder) {
	for _, line := range strings.Split(c.Text, "\n") {
		sb.WriteString("// ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// Var is a variable declaration. Signature derivers use it with a blank
// name to pin a generated function to its expected type.
type Var struct {
	Name  string
	Type  string
	Value string
}

func (v Var) render(sb *strings.Builder) {
	sb.WriteString("var ")
	sb.WriteString(v.Name)

	if v.Type != "" {
		sb.WriteString(" ")
		sb.WriteString(v.Type)
	}

	if v.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(v.Value)
	}

	sb.WriteString("\n")
}

// Func is a generated function: name, parameter pattern, and body
// statements. Body lines are emitted verbatim at one indent level;
// formatting is left to go/format.
type Func struct {
	Name       string
	Doc        string
	TypeParams []Param
	Params     []Param
	Result     string
	Body       []string
}

func (f Func) render(sb *strings.Builder) {
	if f.Doc != "" {
		Comment{Text: f.Doc}.render(sb)
	}

	sb.WriteString("func ")
	sb.WriteString(f.Name)

	if len(f.TypeParams) > 0 {
		sb.WriteString("[")
		writeParams(sb, f.TypeParams)
		sb.WriteString("]")
	}

	sb.WriteString("(")
	writeParams(sb, f.Params)
	sb.WriteString(")")

	if f.Result != "" {
		sb.WriteString(" ")
		sb.WriteString(f.Result)
	}

	sb.WriteString(" {\n")

	for _, line := range f.Body {
		sb.WriteString("\t")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("}\n")
}

func writeParams(sb *strings.Builder, params []Param) {
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}

		if p.Name != "" {
			sb.WriteString(p.Name)
			sb.WriteString(" ")
		}

		sb.WriteString(p.Type)
	}
}
