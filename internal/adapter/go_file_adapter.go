package adapter

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"path"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/defargs/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing and declaration reading so
// the domain layer can focus on dispatch rules while delegating syntax
// details to an infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)
	// ExtractCallables returns every declaration marked for generation.
	ExtractCallables(fileSet *token.FileSet, file *ast.File) ([]m.Callable, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractCallables walks the top-level declarations of file and builds a
// Callable for each function or struct type carrying a generate directive.
func (a *LocalGoFileAdapter) ExtractCallables(fileSet *token.FileSet, file *ast.File) ([]m.Callable, error) {
	r := &declReader{fset: fileSet, file: file, imports: fileImports(file)}

	var callables []m.Callable

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			c, ok, err := r.readFunc(d)
			if err != nil {
				return nil, err
			}

			if ok {
				callables = append(callables, c)
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}

			for _, spec := range d.Specs {
				ts, _ := spec.(*ast.TypeSpec)

				groups := []*ast.CommentGroup{ts.Doc}
				if len(d.Specs) == 1 {
					groups = append(groups, d.Doc)
				}

				c, ok, err := r.readType(ts, groups)
				if err != nil {
					return nil, err
				}

				if ok {
					callables = append(callables, c)
				}
			}
		}
	}

	return callables, nil
}

type declReader struct {
	fset    *token.FileSet
	file    *ast.File
	imports map[string]string
}

func (r *declReader) errorf(pos token.Pos, format string, args ...any) error {
	return &DirectiveError{Pos: r.position(pos), Msg: fmt.Sprintf(format, args...)}
}

func (r *declReader) position(pos token.Pos) string {
	p := r.fset.Position(pos)

	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

func (r *declReader) readFunc(fd *ast.FuncDecl) (m.Callable, bool, error) {
	directives := collectDirectives(fd.Doc)

	gen, found, err := r.findGenerate(directives)
	if err != nil || !found {
		return m.Callable{}, false, err
	}

	if gen.positional {
		return m.Callable{}, false, r.errorf(fd.Pos(), "positional option applies to struct types only")
	}

	if fd.Recv != nil {
		return m.Callable{}, false, r.errorf(fd.Pos(), "method %s: only package-level functions are supported", fd.Name.Name)
	}

	if fd.Type.TypeParams != nil && len(fd.Type.TypeParams.List) > 0 {
		return m.Callable{}, false, r.errorf(fd.Pos(), "function %s: generic functions are not supported", fd.Name.Name)
	}

	defaults, err := r.defaultRules(directives)
	if err != nil {
		return m.Callable{}, false, err
	}

	used := make(map[string]*ast.Ident)

	var params m.Params

	for _, field := range fd.Type.Params.List {
		if _, variadic := field.Type.(*ast.Ellipsis); variadic {
			return m.Callable{}, false, r.errorf(field.Pos(), "function %s: variadic parameters are not supported", fd.Name.Name)
		}

		if len(field.Names) == 0 {
			return m.Callable{}, false, r.errorf(field.Pos(), "function %s: every parameter needs a name", fd.Name.Name)
		}

		typ := r.exprString(field.Type)
		r.noteSelectors(field.Type, used)

		for _, name := range field.Names {
			if name.Name == "_" {
				return m.Callable{}, false, r.errorf(name.Pos(), "function %s: blank parameters cannot be named by callers", fd.Name.Name)
			}

			p := m.Parameter{Name: name.Name, Type: typ}

			if rule, ok := defaults[name.Name]; ok {
				p.Default, err = r.defaultValue(rule.expr, rule.pos, used)
				if err != nil {
					return m.Callable{}, false, err
				}

				delete(defaults, name.Name)
			}

			params = append(params, p)
		}
	}

	for name, rule := range defaults {
		return m.Callable{}, false, r.errorf(rule.pos, "default directive names unknown parameter %s", name)
	}

	var results []string

	if fd.Type.Results != nil {
		for _, field := range fd.Type.Results.List {
			typ := r.exprString(field.Type)
			r.noteSelectors(field.Type, used)

			for range max(len(field.Names), 1) {
				results = append(results, typ)
			}
		}
	}

	wrapper := gen.wrapper
	if wrapper == "" {
		wrapper = fd.Name.Name + "Args"
	}

	return m.Callable{
		Name:     fd.Name.Name,
		Kind:     m.KindFunction,
		Params:   params,
		Results:  results,
		Wrapper:  wrapper,
		Doc:      docText(fd.Doc),
		Package:  r.file.Name.Name,
		Position: r.position(fd.Pos()),
		Imports:  r.resolveImports(used),
	}, true, nil
}

func (r *declReader) readType(ts *ast.TypeSpec, groups []*ast.CommentGroup) (m.Callable, bool, error) {
	directives := collectDirectives(groups...)

	gen, found, err := r.findGenerate(directives)
	if err != nil || !found {
		return m.Callable{}, false, err
	}

	for _, d := range directives {
		if d.verb == defaultDirective {
			return m.Callable{}, false, r.errorf(d.pos, "struct %s: use a default struct tag instead of a default directive", ts.Name.Name)
		}
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return m.Callable{}, false, r.errorf(ts.Pos(), "type %s: only struct types are supported", ts.Name.Name)
	}

	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return m.Callable{}, false, r.errorf(ts.Pos(), "type %s: generic types are not supported", ts.Name.Name)
	}

	used := make(map[string]*ast.Ident)

	var params m.Params

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return m.Callable{}, false, r.errorf(field.Pos(), "struct %s: embedded fields are not supported", ts.Name.Name)
		}

		typ := r.exprString(field.Type)
		r.noteSelectors(field.Type, used)

		def, err := r.tagDefault(field, used)
		if err != nil {
			return m.Callable{}, false, err
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				return m.Callable{}, false, r.errorf(name.Pos(), "struct %s: blank fields are not supported", ts.Name.Name)
			}

			params = append(params, m.Parameter{Name: name.Name, Type: typ, Default: def})
		}
	}

	kind := m.KindNamedAggregate
	if gen.positional {
		kind = m.KindTupleAggregate
	}

	wrapper := gen.wrapper
	if wrapper == "" {
		wrapper = constructorName(ts.Name.Name)
	}

	return m.Callable{
		Name:     ts.Name.Name,
		Kind:     kind,
		Params:   params,
		Wrapper:  wrapper,
		Doc:      docText(groups...),
		Package:  r.file.Name.Name,
		Position: r.position(ts.Pos()),
		Imports:  r.resolveImports(used),
	}, true, nil
}

func (r *declReader) findGenerate(directives []directive) (generateRule, bool, error) {
	var (
		rule  generateRule
		found bool
	)

	for _, d := range directives {
		switch d.verb {
		case generateDirective:
			if found {
				return generateRule{}, false, r.errorf(d.pos, "duplicate generate directive")
			}

			parsed, err := parseGenerateRule(d.args)
			if err != nil {
				return generateRule{}, false, r.errorf(d.pos, "%v", err)
			}

			rule, found = parsed, true
		case defaultDirective:
		default:
			return generateRule{}, false, r.errorf(d.pos, "unknown directive %q", directivePrefix+d.verb)
		}
	}

	if !found {
		for _, d := range directives {
			return generateRule{}, false, r.errorf(d.pos, "default directive without generate directive")
		}
	}

	return rule, found, nil
}

func (r *declReader) defaultRules(directives []directive) (map[string]defaultRule, error) {
	rules := make(map[string]defaultRule)

	for _, d := range directives {
		if d.verb != defaultDirective {
			continue
		}

		rule, err := parseDefaultRule(d)
		if err != nil {
			return nil, r.errorf(d.pos, "%v", err)
		}

		if _, dup := rules[rule.name]; dup {
			return nil, r.errorf(d.pos, "duplicate default directive for %s", rule.name)
		}

		rules[rule.name] = rule
	}

	return rules, nil
}

func (r *declReader) tagDefault(field *ast.Field, used map[string]*ast.Ident) (*m.DefaultValue, error) {
	if field.Tag == nil {
		return nil, nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return nil, r.errorf(field.Tag.Pos(), "malformed struct tag %s", field.Tag.Value)
	}

	expr, ok := reflect.StructTag(raw).Lookup(defaultTag)
	if !ok {
		return nil, nil
	}

	return r.defaultValue(strings.TrimSpace(expr), field.Tag.Pos(), used)
}

func (r *declReader) defaultValue(expr string, pos token.Pos, used map[string]*ast.Ident) (*m.DefaultValue, error) {
	if expr == "" {
		return m.ZeroDefault(), nil
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, r.errorf(pos, "invalid default expression %q: %v", expr, err)
	}

	r.noteSelectors(parsed, used)

	return m.ExprDefault(expr), nil
}

// noteSelectors records package qualifiers referenced by expr.
func (r *declReader) noteSelectors(expr ast.Expr, used map[string]*ast.Ident) {
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			if _, isImport := r.imports[id.Name]; isImport {
				used[id.Name] = id
			}
		}

		return true
	})
}

func (r *declReader) resolveImports(used map[string]*ast.Ident) map[string]string {
	if len(used) == 0 {
		return nil
	}

	out := make(map[string]string, len(used))
	for name := range used {
		out[name] = r.imports[name]
	}

	return out
}

func (r *declReader) exprString(expr ast.Expr) string {
	var buf bytes.Buffer

	_ = printer.Fprint(&buf, r.fset, expr)

	return buf.String()
}

// fileImports maps the local name of every import in file to its path.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := ImportName(importPath)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		imports[name] = importPath
	}

	return imports
}

// ImportName guesses the package name of an import path the way goimports
// does: the last element, skipping a major version suffix, with any "go-"
// prefix and ".ext" suffix removed.
func ImportName(importPath string) string {
	parts := strings.Split(importPath, "/")
	last := parts[len(parts)-1]

	if len(parts) > 1 && isMajorVersion(last) {
		last = parts[len(parts)-2]
	}

	last = strings.TrimPrefix(last, "go-")
	if i := strings.IndexByte(last, '.'); i > 0 {
		last = last[:i]
	}

	return strings.ReplaceAll(path.Base(last), "-", "")
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	_, err := strconv.Atoi(s[1:])

	return err == nil
}

func constructorName(typeName string) string {
	r, size := utf8.DecodeRuneInString(typeName)
	if unicode.IsUpper(r) {
		return "New" + typeName
	}

	return "new" + string(unicode.ToUpper(r)) + typeName[size:]
}

func docText(groups ...*ast.CommentGroup) string {
	var lines []string

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, line := range strings.Split(strings.TrimSpace(g.Text()), "\n") {
			if strings.HasPrefix(line, directivePrefix) {
				continue
			}

			lines = append(lines, line)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
