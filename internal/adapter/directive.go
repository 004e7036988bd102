package adapter

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

const (
	directivePrefix   = "defargs:"
	generateDirective = "generate"
	defaultDirective  = "default"
	positionalOption  = "positional"
	defaultTag        = "default"
)

// DirectiveError reports a malformed or misplaced directive.
type DirectiveError struct {
	Pos string
	Msg string
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type directive struct {
	verb string
	args string
	pos  token.Pos
}

// generateRule is the parsed //defargs:generate line of a declaration.
type generateRule struct {
	positional bool
	wrapper    string
}

// defaultRule is one //defargs:default line.
type defaultRule struct {
	name string
	expr string // empty means zero value
	pos  token.Pos
}

func parseDirective(c *ast.Comment) (directive, bool) {
	s := strings.TrimSpace(c.Text)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimPrefix(s, "//")
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	// directives follow the //go: convention: no space after the slashes
	if !strings.HasPrefix(s, directivePrefix) {
		return directive{}, false
	}

	rest := strings.TrimPrefix(s, directivePrefix)
	verb, args, _ := strings.Cut(rest, " ")

	return directive{verb: verb, args: strings.TrimSpace(args), pos: c.Slash}, true
}

func collectDirectives(groups ...*ast.CommentGroup) []directive {
	var out []directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if d, ok := parseDirective(c); ok {
				out = append(out, d)
			}
		}
	}

	return out
}

func parseGenerateRule(args string) (generateRule, error) {
	var rule generateRule

	for _, field := range strings.Fields(args) {
		switch {
		case field == positionalOption && !rule.positional:
			rule.positional = true
		case rule.wrapper == "" && token.IsIdentifier(field):
			rule.wrapper = field
		default:
			return generateRule{}, fmt.Errorf("unexpected %q in generate directive", field)
		}
	}

	return rule, nil
}

func parseDefaultRule(d directive) (defaultRule, error) {
	name, expr, hasExpr := strings.Cut(d.args, "=")
	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)

	if !token.IsIdentifier(name) {
		return defaultRule{}, fmt.Errorf("default directive needs a parameter name, got %q", d.args)
	}

	if hasExpr && expr == "" {
		return defaultRule{}, fmt.Errorf("default directive for %s has an empty expression", name)
	}

	return defaultRule{name: name, expr: expr, pos: d.pos}, nil
}
