package compiler

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"reflect"
	"strings"
)

func containsExpr(expr, contains constraint.Expr) bool {
	switch x := expr.(type) {
	case *constraint.AndExpr:
		return containsExpr(x.X, contains) || containsExpr(x.Y, contains)
	case *constraint.OrExpr:
		return containsExpr(x.X, contains) && containsExpr(x.Y, contains)
	default:
		return reflect.DeepEqual(expr, contains)
	}
}

// and returns the conjunction of two build constraints, either of which may
// be nil.
func and(x, y constraint.Expr) constraint.Expr {
	switch {
	case y == nil || containsExpr(x, y):
		return x
	case x == nil:
		return y
	default:
		return &constraint.AndExpr{X: x, Y: y}
	}
}

func parseBuildTags(file *ast.File) (constraint.Expr, error) {
	groups := commentGroupsOf(file)

	for _, group := range groups {
		for _, c := range group.List {
			if constraint.IsGoBuild(c.Text) {
				return constraint.Parse(c.Text)
			}
		}
	}

	var plusBuildLines constraint.Expr
	for _, group := range groups {
		for _, c := range group.List {
			if constraint.IsPlusBuild(c.Text) {
				x, err := constraint.Parse(c.Text)
				if err != nil {
					return nil, err
				}
				plusBuildLines = and(plusBuildLines, x)
			}
		}
	}

	return plusBuildLines, nil
}

// buildConstraint returns the build constraint of a generated file: the
// constraint of the source files declaring generators, which must all be the
// same, and the build tags passed to the compiler.
func (c *compiler) buildConstraint(generators []*generatorFunc) (constraint.Expr, error) {
	var expr constraint.Expr
	var from *generatorFunc
	for _, g := range generators {
		x, err := parseBuildTags(g.file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.name, err)
		}
		if from == nil {
			expr, from = x, g
			continue
		}
		if constraintString(x) != constraintString(expr) {
			return nil, fmt.Errorf("generators %s and %s are declared in files with different build constraints (%q and %q)",
				from.name, g.name, constraintString(expr), constraintString(x))
		}
	}

	if tags := strings.TrimSpace(c.buildTags); tags != "" {
		x, err := constraint.Parse("//go:build " + tags)
		if err != nil {
			return nil, fmt.Errorf("invalid build tags %q: %w", tags, err)
		}
		expr = and(expr, x)
	}
	return expr, nil
}

func constraintString(expr constraint.Expr) string {
	if expr == nil {
		return ""
	}
	return expr.String()
}
