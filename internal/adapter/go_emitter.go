package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strings"
	"text/template"

	"github.com/dekarrin/rosed"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"

	m "github.com/mouse-blink/defargs/internal/model"
)

// RuntimeImportPath is the package every generated file imports.
const RuntimeImportPath = "github.com/mouse-blink/defargs/pkg/defargs"

const docWidth = 76

// ErrUnexportedCallable is returned when generated code would live in another
// package but has to reference an unexported identifier.
var ErrUnexportedCallable = errors.New("unexported identifier cannot be referenced from another package")

// Qualifier names the package the callables are declared in when the
// generated file belongs to a different package.
type Qualifier struct {
	Path string // import path of the declaring package
	Name string // package name used to qualify references
}

// EmitOptions controls how one generated file is rendered.
type EmitOptions struct {
	// Source is the file name recorded in the generated header.
	Source string
	// Output is the path the generated file will be written to.
	Output m.Path
	// Qualifier is nil when the output shares the declaring package.
	Qualifier *Qualifier
}

// GoEmitter renders dispatch tables as Go source.
type GoEmitter interface {
	Emit(pkg string, tables []m.DispatchTable, opts EmitOptions) (m.GeneratedFile, error)
}

// LocalGoEmitter renders with text/template and formats with goimports.
type LocalGoEmitter struct {
	tmpl *template.Template
}

// NewLocalGoEmitter constructs a LocalGoEmitter.
func NewLocalGoEmitter() *LocalGoEmitter {
	return &LocalGoEmitter{tmpl: template.Must(template.New("wrappers").Parse(wrappersTemplate))}
}

// Emit renders one file holding a wrapper for every table, in table order.
func (e *LocalGoEmitter) Emit(pkg string, tables []m.DispatchTable, opts EmitOptions) (m.GeneratedFile, error) {
	file := emitFile{Source: opts.Source, Package: pkg}
	importSet := map[string]string{"defargs": RuntimeImportPath}

	for _, table := range tables {
		q, err := newRefQualifier(table.Callable, opts.Qualifier)
		if err != nil {
			return m.GeneratedFile{}, err
		}

		w, err := buildWrapper(table, q)
		if err != nil {
			return m.GeneratedFile{}, err
		}

		for name, path := range table.Callable.Imports {
			if prev, ok := importSet[name]; ok && prev != path {
				return m.GeneratedFile{}, fmt.Errorf("%s: import name %s refers to both %s and %s",
					table.Callable.Position, name, prev, path)
			}

			importSet[name] = path
		}

		file.Wrappers = append(file.Wrappers, w)
	}

	if opts.Qualifier != nil {
		importSet[opts.Qualifier.Name] = opts.Qualifier.Path
	}

	file.Imports = sortedImports(importSet)

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, file); err != nil {
		return m.GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	out, err := imports.Process(string(opts.Output), buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return m.GeneratedFile{}, fmt.Errorf("formatting generated code for %s: %w", opts.Source, err)
	}

	return m.GeneratedFile{Path: opts.Output, Content: out}, nil
}

type importEntry struct {
	Alias string
	Path  string
}

type emitFile struct {
	Source   string
	Package  string
	Imports  []importEntry
	Wrappers []emitWrapper
}

type emitWrapper struct {
	Name    string
	Label   string // callable name reported in runtime errors
	Doc     []string
	Results []emitResult
	Assign  string // "dfR0, dfR1 = " or empty
	Returns string // "dfR0, dfR1, " or empty
	Cases   []emitCase
}

type emitResult struct {
	Name string
	Type string
}

type emitCase struct {
	Key   string
	Binds []emitBind
	Call  string
}

type emitBind struct {
	Var   string
	Type  string
	Index int
}

func buildWrapper(table m.DispatchTable, q *refQualifier) (emitWrapper, error) {
	c := table.Callable

	w := emitWrapper{
		Name:  c.Wrapper,
		Label: c.Package + "." + c.Name,
		Doc:   wrapperDoc(c, len(table.Entries)),
	}

	results := c.Results
	if c.Kind != m.KindFunction {
		results = []string{c.Name}
	}

	names := make([]string, 0, len(results))

	for i, r := range results {
		typ, err := q.expr(r)
		if err != nil {
			return emitWrapper{}, err
		}

		name := fmt.Sprintf("dfR%d", i)
		names = append(names, name)
		w.Results = append(w.Results, emitResult{Name: name, Type: typ})
	}

	if len(names) > 0 {
		w.Assign = strings.Join(names, ", ") + " = "
		w.Returns = strings.Join(names, ", ") + ", "
	}

	for _, entry := range table.Entries {
		ec, err := buildCase(c, entry, q)
		if err != nil {
			return emitWrapper{}, err
		}

		w.Cases = append(w.Cases, ec)
	}

	return w, nil
}

func buildCase(c m.Callable, entry m.DispatchEntry, q *refQualifier) (emitCase, error) {
	ec := emitCase{Key: entry.Key}
	args := make([]string, 0, len(entry.Call))

	for _, arg := range entry.Call {
		typ, err := q.expr(arg.Param.Type)
		if err != nil {
			return emitCase{}, err
		}

		var value string

		switch {
		case arg.Supplied():
			value = fmt.Sprintf("dfV%d", arg.ArgIndex)
			ec.Binds = append(ec.Binds, emitBind{Var: value, Type: typ, Index: arg.ArgIndex})
		case arg.Default.Kind == m.DefaultZero:
			if c.Kind == m.KindNamedAggregate {
				// keyed literals leave the field at its zero value
				continue
			}

			value = "*new(" + typ + ")"
		default:
			value, err = q.expr(arg.Default.Expr)
			if err != nil {
				return emitCase{}, err
			}
		}

		if c.Kind == m.KindNamedAggregate {
			value = arg.Param.Name + ": " + value
		}

		args = append(args, value)
	}

	slices.SortFunc(ec.Binds, func(a, b emitBind) int { return a.Index - b.Index })

	target := q.ref(c.Name)

	switch c.Kind {
	case m.KindFunction:
		ec.Call = target + "(" + strings.Join(args, ", ") + ")"
	default:
		ec.Call = target + "{" + strings.Join(args, ", ") + "}"
	}

	return ec, nil
}

func wrapperDoc(c m.Callable, shapes int) []string {
	verb := "calls " + c.Name
	if c.Kind != m.KindFunction {
		verb = "builds a " + c.Name
	}

	intro := fmt.Sprintf("%s %s from arguments passed by position (defargs.Pos) or by name (defargs.Named). "+
		"Arguments with a default may be left out.", c.Wrapper, verb)

	switch c.Kind {
	case m.KindNamedAggregate:
		intro += " Leaving out a field requires a trailing defargs.Rest()."
	case m.KindTupleAggregate:
		intro = fmt.Sprintf("%s builds a %s from arguments passed by position (defargs.Pos). "+
			"Trailing fields with a default may be left out.", c.Wrapper, c.Name)
	}

	intro += fmt.Sprintf(" It accepts %d argument shapes; anything else returns an error matching defargs.ErrNoMatch.", shapes)

	lines := strings.Split(rosed.Edit(intro).Wrap(docWidth).String(), "\n")
	if len(c.Params) == 0 {
		return lines
	}

	lines = append(lines, "", "Parameters:", "")

	for _, p := range c.Params {
		line := fmt.Sprintf("  - %s %s", p.Name, p.Type)
		if p.HasDefault() {
			line += ", default " + p.Default.String()
		}

		lines = append(lines, line)
	}

	return lines
}

func sortedImports(set map[string]string) []importEntry {
	entries := make([]importEntry, 0, len(set))

	for name, path := range set {
		entry := importEntry{Path: path}
		if ImportName(path) != name {
			entry.Alias = name
		}

		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b importEntry) int { return strings.Compare(a.Path, b.Path) })

	return entries
}

// refQualifier rewrites source-package references when the generated file
// lives in another package. A nil pkg leaves expressions untouched.
type refQualifier struct {
	callable m.Callable
	pkg      string
}

func newRefQualifier(c m.Callable, q *Qualifier) (*refQualifier, error) {
	if q == nil {
		return &refQualifier{callable: c}, nil
	}

	if !c.Exported() {
		return nil, fmt.Errorf("%s: %s: %w", c.Position, c.Name, ErrUnexportedCallable)
	}

	if c.Kind == m.KindNamedAggregate || c.Kind == m.KindTupleAggregate {
		for _, p := range c.Params {
			if !token.IsExported(p.Name) {
				return nil, fmt.Errorf("%s: %s field %s: %w", c.Position, c.Name, p.Name, ErrUnexportedCallable)
			}
		}
	}

	return &refQualifier{callable: c, pkg: q.Name}, nil
}

func (q *refQualifier) ref(name string) string {
	if q.pkg == "" {
		return name
	}

	return q.pkg + "." + name
}

// expr qualifies every free identifier of src that is declared in the
// source package.
func (q *refQualifier) expr(src string) (string, error) {
	if q.pkg == "" {
		return src, nil
	}

	parsed, err := parser.ParseExpr(src)
	if err != nil {
		return "", fmt.Errorf("%s: parsing %q: %w", q.callable.Position, src, err)
	}

	var unexported []string

	rewritten := astutil.Apply(parsed, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			if id, ok := n.X.(*ast.Ident); ok {
				if _, isImport := q.callable.Imports[id.Name]; isImport {
					return false
				}
			}
		case *ast.Ident:
			if q.skip(c) || q.local(n.Name) {
				return false
			}

			if !token.IsExported(n.Name) {
				unexported = append(unexported, n.Name)

				return false
			}

			c.Replace(&ast.SelectorExpr{X: ast.NewIdent(q.pkg), Sel: ast.NewIdent(n.Name)})
		}

		return true
	}, nil)

	if len(unexported) > 0 {
		return "", fmt.Errorf("%s: %s references %s: %w",
			q.callable.Position, q.callable.Name, strings.Join(unexported, ", "), ErrUnexportedCallable)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), rewritten); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// skip reports whether the identifier under c names a selector, a field or
// a composite literal key rather than a package-level declaration.
func (q *refQualifier) skip(c *astutil.Cursor) bool {
	switch c.Name() {
	case "Sel", "Names", "Label":
		return true
	case "Key":
		_, isKeyValue := c.Parent().(*ast.KeyValueExpr)

		return isKeyValue
	}

	return false
}

// local reports whether name resolves without the declaring package.
func (q *refQualifier) local(name string) bool {
	if name == "_" || types.Universe.Lookup(name) != nil {
		return true
	}

	_, isImport := q.callable.Imports[name]

	return isImport
}

const wrappersTemplate = `// Code generated by defargs from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{range $w := .Wrappers}}
{{range $w.Doc}}//{{if .}} {{.}}{{end}}
{{end -}}
func {{$w.Name}}(dfArgs ...defargs.Arg) ({{range $w.Results}}{{.Name}} {{.Type}}, {{end}}dfErr error) {
	switch defargs.Shape(dfArgs) {
{{- range $w.Cases}}
	case {{printf "%q" .Key}}:
{{- if .Binds}}
		dfBinder := defargs.NewBinder({{printf "%q" $w.Label}}, dfArgs)
{{- range .Binds}}
		{{.Var}} := defargs.Bind[{{.Type}}](dfBinder, {{.Index}})
{{- end}}
		if dfErr = dfBinder.Err(); dfErr != nil {
			return {{$w.Returns}}dfErr
		}
{{- end}}
		{{$w.Assign}}{{.Call}}

		return {{$w.Returns}}nil
{{- end}}
	}

	return {{$w.Returns}}defargs.NoMatch({{printf "%q" $w.Label}}, dfArgs)
}
{{end}}`
