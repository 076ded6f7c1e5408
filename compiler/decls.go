package compiler

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// Handle declarations.
//
// Types, constants and variables can be defined within any scope in the
// function, and can shadow previous declarations. The dispatch mechanism
// introduces new scopes, which may prevent the declarations from being visible
// to other statements, or may cause some statements to unexpectedly observe an
// unshadowed type or value.
//
// Declarations found in statement lists that contain a suspend point are
// therefore hoisted: variables live across a suspend point are stored in the
// generator record, the others become local variables of the Next method with
// a unique name, as do types and constants. Inline var decls and assignments
// that use := are downgraded to assignments that use =.
//
// Declarations in statements that do not contain a suspend point are left
// untouched.

// hoistDecls rewrites the declarations of the statement lists that contain a
// suspend point into assignments.
func (m *machine) hoistDecls(u *unit, stmt ast.Stmt, mayYield map[ast.Node]struct{}) {
	if _, ok := mayYield[stmt]; !ok {
		return
	}
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		s.List = m.hoistList(u, s.List, mayYield)
	case *ast.CaseClause:
		s.Body = m.hoistList(u, s.Body, mayYield)
	case *ast.LabeledStmt:
		m.hoistDecls(u, s.Stmt, mayYield)
	case *ast.IfStmt:
		m.hoistDecls(u, s.Body, mayYield)
		if s.Else != nil {
			m.hoistDecls(u, s.Else, mayYield)
		}
	case *ast.ForStmt:
		m.hoistDecls(u, s.Body, mayYield)
	case *ast.SwitchStmt:
		m.hoistDecls(u, s.Body, mayYield)
	}
}

func (m *machine) hoistList(u *unit, stmts []ast.Stmt, mayYield map[ast.Node]struct{}) []ast.Stmt {
	hoisted := make([]ast.Stmt, 0, len(stmts))
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			if s.Tok == token.DEFINE {
				for _, lhs := range s.Lhs {
					hoisted = m.appendAlloc(u, hoisted, u.info.Defs[lhs.(*ast.Ident)])
				}
				s.Tok = token.ASSIGN
			}
		case *ast.DeclStmt:
			decl := s.Decl.(*ast.GenDecl)
			if decl.Tok != token.VAR {
				// Types and constants are declared in the prologue.
				continue
			}
			for _, spec := range decl.Specs {
				spec := spec.(*ast.ValueSpec)
				lhs := make([]ast.Expr, len(spec.Names))
				for i, name := range spec.Names {
					lhs[i] = name
					hoisted = m.appendAlloc(u, hoisted, u.info.Defs[name])
				}
				if len(spec.Values) > 0 {
					hoisted = append(hoisted, &ast.AssignStmt{Lhs: lhs, Tok: token.ASSIGN, Rhs: spec.Values})
					continue
				}
				// Variables declared without a value are reset each time
				// the declaration is executed, e.g. in loops.
				for _, name := range spec.Names {
					obj := u.info.Defs[name]
					if name.Name == "_" || obj == nil || m.isCaptured(obj) {
						continue
					}
					hoisted = append(hoisted, &ast.AssignStmt{
						Lhs: []ast.Expr{name},
						Tok: token.ASSIGN,
						Rhs: []ast.Expr{u.zeroExpr(obj.Type())},
					})
				}
			}
			continue
		default:
			m.hoistDecls(u, stmt, mayYield)
		}
		hoisted = append(hoisted, stmt)
	}
	return hoisted
}

// appendAlloc appends the allocation of the variable of a captured binding,
// which happens each time its declaration is executed.
func (m *machine) appendAlloc(u *unit, stmts []ast.Stmt, obj types.Object) []ast.Stmt {
	if obj == nil || !m.isCaptured(obj) {
		return stmts
	}
	return append(stmts, &ast.AssignStmt{
		Lhs: []ast.Expr{m.storage(obj)},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{&ast.CallExpr{
			Fun:  ast.NewIdent("new"),
			Args: []ast.Expr{u.typeExpr(obj.Type())},
		}},
	})
}

// redeclare returns the statements giving a new cell to each captured
// variable declared by the init statement of a for loop. They run before the
// post statement, so that the next iteration starts with a copy of the
// variable and the previous one keeps its cell:
//
//	_c0 := _g.x1
//	_g.x1 = new(int)
//	*_g.x1 = *_c0
func (m *machine) redeclare(u *unit, s *ast.ForStmt) []ast.Stmt {
	var stmts []ast.Stmt
	for _, obj := range u.loopVars[s] {
		if !m.isCaptured(obj) {
			continue
		}
		cell := ast.NewIdent("_c" + strconv.Itoa(m.cells))
		m.cells++
		stmts = append(stmts, &ast.AssignStmt{
			Lhs: []ast.Expr{cell},
			Tok: token.DEFINE,
			Rhs: []ast.Expr{m.storage(obj)},
		})
		stmts = m.appendAlloc(u, stmts, obj)
		stmts = append(stmts, &ast.AssignStmt{
			Lhs: []ast.Expr{&ast.StarExpr{X: m.storage(obj)}},
			Tok: token.ASSIGN,
			Rhs: []ast.Expr{&ast.StarExpr{X: ast.NewIdent(cell.Name)}},
		})
	}
	return stmts
}

// renameObjects replaces the references to bindings and hoisted declarations
// with references to their storage.
func (m *machine) renameObjects(u *unit, tree ast.Node) ast.Node {
	return m.rename(u, tree, nil, true)
}

// rename replaces references to bindings in a tree. Bindings found in cells
// are referred to through the cell instead of the storage of the binding.
func (m *machine) rename(u *unit, tree ast.Node, cells map[types.Object]*ast.Ident, closures bool) ast.Node {
	return astutil.Apply(tree,
		func(cursor *astutil.Cursor) bool {
			switch n := cursor.Node().(type) {
			case *ast.FuncLit:
				if closures {
					cursor.Replace(m.closure(u, n))
					return false
				}
			case *ast.Ident:
				obj := u.info.ObjectOf(n)
				if obj == nil {
					break
				}
				if cell, ok := cells[obj]; ok {
					cursor.Replace(&ast.ParenExpr{X: &ast.StarExpr{X: ast.NewIdent(cell.Name)}})
				} else if x := m.ref(obj); x != nil {
					cursor.Replace(x)
				}
			}
			return true
		},
		nil,
	)
}

// closure rewrites a function literal referring to captured bindings so that
// it holds the cells of the bindings at the time it is created, rather than
// the storage of the bindings which may change after the literal was
// evaluated (e.g. in the next iteration of a loop declaring a binding):
//
//	func(_c0 *int) func() int {
//		return func() int { return (*_c0) }
//	}(_g.x1)
func (m *machine) closure(u *unit, lit *ast.FuncLit) ast.Expr {
	cells := map[types.Object]*ast.Ident{}
	var params []*ast.Field
	var args []ast.Expr
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		ident, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		obj := u.info.ObjectOf(ident)
		if obj == nil || !m.isCaptured(obj) {
			return true
		}
		if _, ok := cells[obj]; ok {
			return true
		}
		cell := ast.NewIdent("_c" + strconv.Itoa(m.cells))
		m.cells++
		cells[obj] = cell
		params = append(params, &ast.Field{
			Names: []*ast.Ident{cell},
			Type:  &ast.StarExpr{X: u.typeExpr(obj.Type())},
		})
		args = append(args, m.storage(obj))
		return true
	})

	lit = m.rename(u, lit, cells, false).(*ast.FuncLit)
	if len(cells) == 0 {
		return lit
	}
	return &ast.CallExpr{
		Fun: &ast.FuncLit{
			Type: &ast.FuncType{
				Params:  &ast.FieldList{List: params},
				Results: &ast.FieldList{List: []*ast.Field{{Type: lit.Type}}},
			},
			Body: &ast.BlockStmt{List: []ast.Stmt{
				&ast.ReturnStmt{Results: []ast.Expr{lit}},
			}},
		},
		Args: args,
	}
}

// rewriteReturns turns the return statements of a generator body into
// terminal transitions of the state machine.
func (m *machine) rewriteReturns(body *ast.BlockStmt) {
	astutil.Apply(body,
		func(cursor *astutil.Cursor) bool {
			switch n := cursor.Node().(type) {
			case *ast.FuncLit:
				return false
			case *ast.ReturnStmt:
				var result ast.Expr
				switch {
				case len(n.Results) == 1:
					result = n.Results[0]
				case m.result != nil:
					result = m.ref(m.result)
				default:
					result = ast.NewIdent("nil")
				}
				n.Results = []ast.Expr{m.done(result)}
			}
			return true
		},
		nil,
	)
}

// done returns a call to the method terminating the generator with err.
func (m *machine) done(err ast.Expr) ast.Expr {
	return &ast.CallExpr{
		Fun:  &ast.SelectorExpr{X: ast.NewIdent("_g"), Sel: ast.NewIdent("done")},
		Args: []ast.Expr{err},
	}
}
