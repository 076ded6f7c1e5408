package compiler

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"regexp"
)

// ErrUnsupportedControlFlow is matched by every UnsupportedError.
var ErrUnsupportedControlFlow = errors.New("unsupported control flow")

// UnsupportedError is returned when a generator function uses a construct
// that cannot be compiled into a state machine.
type UnsupportedError struct {
	// Func is the name of the generator function.
	Func string
	// Construct names the offending language construct.
	Construct string
	// Reason explains why the construct is not supported.
	Reason string
	// Pos is the position of the construct in the source.
	Pos token.Position
	// SuspendPoint is the 1-based index, in source order, of the call to the
	// suspend capability involved in the error, or zero if there is none.
	SuspendPoint int
}

func (e *UnsupportedError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s: %s", e.Pos, e.Func, e.Construct, e.Reason)
	if e.SuspendPoint > 0 {
		msg += fmt.Sprintf(" (suspend point %d)", e.SuspendPoint)
	}
	return msg
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedControlFlow }

// unsupported checks a generator function for unsupported language features.
func unsupported(u *unit, g *generatorFunc, mayYield map[ast.Node]struct{}) (err error) {
	fail := func(n ast.Node, construct, reason string, suspendPoint int) {
		if err != nil {
			return
		}
		err = &UnsupportedError{
			Func:         g.name,
			Construct:    construct,
			Reason:       reason,
			Pos:          u.fset.Position(n.Pos()),
			SuspendPoint: suspendPoint,
		}
	}
	yields := func(n ast.Node) bool {
		_, ok := mayYield[n]
		return ok
	}

	var stack []ast.Node
	var funcLits int
	var suspendPoints int

	ast.Inspect(g.decl.Body, func(node ast.Node) bool {
		if node == nil {
			if _, ok := stack[len(stack)-1].(*ast.FuncLit); ok {
				funcLits--
			}
			stack = stack[:len(stack)-1]
			return true
		}
		parent := func(i int) ast.Node {
			if i >= len(stack) {
				return nil
			}
			return stack[len(stack)-1-i]
		}
		stack = append(stack, node)

		switch n := node.(type) {
		case *ast.FuncLit:
			funcLits++

		case *ast.Ident:
			if reservedName.MatchString(n.Name) && !isMember(u.info.ObjectOf(n)) {
				fail(n, "identifier", fmt.Sprintf("%s is reserved for the names of the generated code", n.Name), 0)
				break
			}
			if u.info.Uses[n] != g.yield {
				break
			}
			suspendPoints++
			call, ok := parent(1).(*ast.CallExpr)
			if !ok || call.Fun != n {
				fail(n, "suspend capability", "may only be called, not used as a value", suspendPoints)
				break
			}
			switch s := parent(2).(type) {
			case *ast.ExprStmt:
			case *ast.GoStmt:
				fail(s, "go", "suspend point in a goroutine", suspendPoints)
			case *ast.DeferStmt:
				fail(s, "defer", "suspend point in a deferred call", suspendPoints)
			default:
				fail(n, "suspend capability", "must be called as a statement", suspendPoints)
			}
			if err == nil && funcLits > 0 {
				fail(n, "function literal", "suspend point inside a function literal", suspendPoints)
			}
		}

		if funcLits > 0 || err != nil {
			return err == nil
		}

		switch n := node.(type) {
		case *ast.DeferStmt:
			fail(n, "defer", "deferred calls would run each time the generator suspends", 0)
		case *ast.GoStmt:
			fail(n, "go", "goroutines would access the generator state concurrently", 0)
		case *ast.BranchStmt:
			switch n.Tok {
			case token.GOTO:
				fail(n, "goto", "jumps are not supported in generator functions", 0)
			case token.FALLTHROUGH:
				for i := len(stack) - 1; i >= 0; i-- {
					if s, ok := stack[i].(*ast.SwitchStmt); ok {
						if yields(s) {
							fail(n, "fallthrough", "switch contains a suspend point", suspendPoints+1)
						}
						break
					}
				}
			}
		case *ast.LabeledStmt:
			if yields(n) {
				switch n.Stmt.(type) {
				case *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt:
				default:
					fail(n, "label", "labels containing a suspend point must be attached to for or switch statements", suspendPoints+1)
				}
			}
		case *ast.SelectStmt:
			if yields(n) {
				fail(n, "select", "select statement contains a suspend point", suspendPoints+1)
			}
		case *ast.ForStmt:
			if yields(n) {
				switch p := n.Post.(type) {
				case nil, *ast.IncDecStmt:
				case *ast.AssignStmt:
					if len(p.Lhs) != len(p.Rhs) {
						fail(p, "for", "loop post statement with unbalanced assignment", suspendPoints+1)
					}
				default:
					fail(p, "for", fmt.Sprintf("loop post statement %T", p), suspendPoints+1)
				}
			}
		case *ast.RangeStmt:
			if yields(n) {
				t := u.info.TypeOf(n.X)
				switch kind, _ := rangeKindOf(t); kind {
				case rangeUnsupported:
					if _, ok := t.Underlying().(*types.Signature); ok {
						fail(n, "range", "suspend point inside the body of a range-over-func loop", suspendPoints+1)
					} else {
						fail(n, "range", fmt.Sprintf("range over %s", t), suspendPoints+1)
					}
				}
			}
		}
		return err == nil
	})
	return err
}

// reservedName matches the identifiers that the generated code declares or
// uses in the Next method of a generator.
var reservedName = regexp.MustCompile(`^_(g|ip|y|[clov][0-9]+)$`)

// isMember is true if obj is a struct field or a method, whose names do not
// conflict with the identifiers of a function body.
func isMember(obj types.Object) bool {
	switch obj := obj.(type) {
	case *types.Var:
		return obj.IsField()
	case *types.Func:
		return obj.Type().(*types.Signature).Recv() != nil
	}
	return false
}

// localType returns the first named type declared within a function that t
// refers to, or nil if there is none.
func localType(t types.Type) *types.TypeName {
	switch t := t.(type) {
	case *types.Alias:
		return localType(types.Unalias(t))
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil && obj.Parent() != obj.Pkg().Scope() {
			return obj
		}
		if args := t.TypeArgs(); args != nil {
			for i := range args.Len() {
				if obj := localType(args.At(i)); obj != nil {
					return obj
				}
			}
		}
	case *types.Pointer:
		return localType(t.Elem())
	case *types.Slice:
		return localType(t.Elem())
	case *types.Array:
		return localType(t.Elem())
	case *types.Chan:
		return localType(t.Elem())
	case *types.Map:
		if obj := localType(t.Key()); obj != nil {
			return obj
		}
		return localType(t.Elem())
	case *types.Struct:
		for i := range t.NumFields() {
			if obj := localType(t.Field(i).Type()); obj != nil {
				return obj
			}
		}
	case *types.Signature:
		for _, tuple := range []*types.Tuple{t.Params(), t.Results()} {
			for i := range tuple.Len() {
				if obj := localType(tuple.At(i).Type()); obj != nil {
					return obj
				}
			}
		}
	}
	return nil
}

// foreignType returns a description of the first part of t that cannot be
// referred to from package pkg, or the empty string if there is none.
// Unexported types of other packages cannot be named, and unnamed types with
// unexported fields or methods of other packages cannot be spelled out.
func foreignType(pkg *types.Package, t types.Type) string {
	switch t := t.(type) {
	case *types.Alias:
		return foreignType(pkg, types.Unalias(t))
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil && obj.Pkg() != pkg && !obj.Exported() {
			return fmt.Sprintf("unexported type %s.%s", obj.Pkg().Name(), obj.Name())
		}
		if args := t.TypeArgs(); args != nil {
			for i := range args.Len() {
				if s := foreignType(pkg, args.At(i)); s != "" {
					return s
				}
			}
		}
	case *types.Pointer:
		return foreignType(pkg, t.Elem())
	case *types.Slice:
		return foreignType(pkg, t.Elem())
	case *types.Array:
		return foreignType(pkg, t.Elem())
	case *types.Chan:
		return foreignType(pkg, t.Elem())
	case *types.Map:
		if s := foreignType(pkg, t.Key()); s != "" {
			return s
		}
		return foreignType(pkg, t.Elem())
	case *types.Struct:
		for i := range t.NumFields() {
			f := t.Field(i)
			if !f.Exported() && f.Pkg() != pkg {
				return fmt.Sprintf("unexported field %s of a struct type of package %s", f.Name(), f.Pkg().Name())
			}
			if s := foreignType(pkg, f.Type()); s != "" {
				return s
			}
		}
	case *types.Interface:
		for i := range t.NumExplicitMethods() {
			m := t.ExplicitMethod(i)
			if !m.Exported() && m.Pkg() != pkg {
				return fmt.Sprintf("unexported method %s of an interface type of package %s", m.Name(), m.Pkg().Name())
			}
			if s := foreignType(pkg, m.Type()); s != "" {
				return s
			}
		}
		for i := range t.NumEmbeddeds() {
			if s := foreignType(pkg, t.EmbeddedType(i)); s != "" {
				return s
			}
		}
	case *types.Signature:
		for _, tuple := range []*types.Tuple{t.Params(), t.Results()} {
			for i := range tuple.Len() {
				if s := foreignType(pkg, tuple.At(i).Type()); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
