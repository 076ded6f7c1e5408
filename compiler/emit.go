package compiler

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"
)

// emit returns the declarations implementing the state machine of a
// generator: the record type, its constructor, and the Next, Stop and done
// methods. body is the rewritten body of the generator function.
func (m *machine) emit(u *unit, body *ast.BlockStmt, decls []*ast.GenDecl, mayYield map[ast.Node]struct{}) []ast.Decl {
	return []ast.Decl{
		m.emitType(u),
		m.emitConstructor(u),
		m.emitNext(u, body, decls, mayYield),
		m.emitStop(),
		m.emitDone(u),
	}
}

func (m *machine) emitType(u *unit) ast.Decl {
	fields := []*ast.Field{{
		Names: []*ast.Ident{ast.NewIdent("state")},
		Type:  ast.NewIdent("int"),
	}}
	for _, s := range m.slots {
		fields = append(fields, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(s.field)},
			Type:  m.storageType(u, s.binding),
		})
	}

	var doc []*ast.Comment
	doc = appendComment(doc, fmt.Sprintf("// %s is the state machine of the generator function %s.", m.typeName(), m.name))
	doc = appendComment(doc, fmt.Sprintf("// Generated from %s.", m.position(u)))
	return &ast.GenDecl{
		Doc: &ast.CommentGroup{List: doc},
		Tok: token.TYPE,
		Specs: []ast.Spec{&ast.TypeSpec{
			Name:       ast.NewIdent(m.typeName()),
			TypeParams: m.decl.Type.TypeParams,
			Type:       &ast.StructType{Fields: &ast.FieldList{List: fields}},
		}},
	}
}

// emitConstructor emits the function returning a generator in its initial
// state. It takes the receiver and the parameters of the generator function,
// except for the suspend capability.
func (m *machine) emitConstructor(u *unit) ast.Decl {
	var params []*ast.Field
	var elts []ast.Expr
	addParams := func(list *ast.FieldList) {
		if list == nil {
			return
		}
		for _, field := range list.List {
			if types.Identical(u.info.TypeOf(field.Type), m.yield.Type()) {
				continue
			}
			names := field.Names
			if len(names) == 0 {
				names = []*ast.Ident{ast.NewIdent("_")}
			}
			for _, name := range names {
				obj := u.info.Defs[name]
				params = append(params, &ast.Field{
					Names: []*ast.Ident{ast.NewIdent(name.Name)},
					Type:  field.Type,
				})
				if s, ok := m.fields[obj]; ok && obj != nil {
					var value ast.Expr = ast.NewIdent(name.Name)
					if s.binding.captured {
						value = &ast.UnaryExpr{Op: token.AND, X: value}
					}
					elts = append(elts, &ast.KeyValueExpr{Key: ast.NewIdent(s.field), Value: value})
				}
			}
		}
	}
	addParams(m.decl.Recv)
	addParams(m.decl.Type.Params)
	if m.result != nil {
		if s, ok := m.fields[m.result]; ok && s.binding.captured {
			elts = append(elts, &ast.KeyValueExpr{
				Key: ast.NewIdent(s.field),
				Value: &ast.CallExpr{
					Fun:  ast.NewIdent("new"),
					Args: []ast.Expr{u.typeExpr(m.result.Type())},
				},
			})
		}
	}

	var doc []*ast.Comment
	doc = appendComment(doc, fmt.Sprintf("// %s returns a generator emitting the values of %s.", m.constructorName(), m.name))
	return &ast.FuncDecl{
		Doc:  &ast.CommentGroup{List: doc},
		Name: ast.NewIdent(m.constructorName()),
		Type: &ast.FuncType{
			TypeParams: m.decl.Type.TypeParams,
			Params:     &ast.FieldList{List: params},
			Results: &ast.FieldList{List: []*ast.Field{{
				Type: &ast.StarExpr{X: m.recordType()},
			}}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			&ast.ReturnStmt{Results: []ast.Expr{
				&ast.UnaryExpr{Op: token.AND, X: &ast.CompositeLit{Type: m.recordType(), Elts: elts}},
			}},
		}},
	}
}

// emitNext emits the resume operation of the generator.
//
// The method starts by turning the state of the record into the instruction
// pointer to resume at, then marks the record terminal for the duration of
// the step, so that a panic escaping the body leaves it terminal. Suspend
// points and return statements set the state before returning.
func (m *machine) emitNext(u *unit, body *ast.BlockStmt, decls []*ast.GenDecl, mayYield map[ast.Node]struct{}) ast.Decl {
	var resume []ast.Stmt
	if len(m.suspendPoints) > 0 {
		spans := trackDispatchSpans(body, mayYield)
		ids := map[*ast.ExprStmt]int{}
		for _, p := range m.suspendPoints {
			ids[p.stmt] = p.ID
		}

		var cases []ast.Stmt
		d := &dispatcher{
			spans: spans,
			suspend: func(stmt *ast.ExprStmt, resumeID int) []ast.Stmt {
				id := ids[stmt]
				cases = append(cases, &ast.CaseClause{
					List: []ast.Expr{intLit(id)},
					Body: []ast.Stmt{
						&ast.AssignStmt{Lhs: []ast.Expr{ip()}, Tok: token.ASSIGN, Rhs: []ast.Expr{intLit(resumeID)}},
					},
				})
				return m.suspend(u, stmt, id)
			},
			redeclare: func(s *ast.ForStmt) []ast.Stmt {
				return m.redeclare(u, s)
			},
		}
		body = d.compileDispatch(body).(*ast.BlockStmt)

		// var _ip int
		// switch _g.state { case k: _ip = ... }
		resume = append(resume,
			&ast.DeclStmt{Decl: &ast.GenDecl{
				Tok:   token.VAR,
				Specs: []ast.Spec{&ast.ValueSpec{Names: []*ast.Ident{ip()}, Type: ast.NewIdent("int")}},
			}},
			&ast.SwitchStmt{Tag: m.field("state"), Body: &ast.BlockStmt{List: cases}},
		)
	}

	gen := &ast.BlockStmt{}
	// if _g.state < 0 { return }
	gen.List = append(gen.List, &ast.IfStmt{
		Cond: &ast.BinaryExpr{X: m.field("state"), Op: token.LSS, Y: zeroInt()},
		Body: &ast.BlockStmt{List: []ast.Stmt{&ast.ReturnStmt{}}},
	})
	gen.List = append(gen.List, resume...)
	gen.List = append(gen.List, &ast.AssignStmt{
		Lhs: []ast.Expr{m.field("state")},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{&ast.UnaryExpr{Op: token.SUB, X: intLit(1)}},
	})
	for _, decl := range decls {
		gen.List = append(gen.List, &ast.DeclStmt{Decl: decl})
	}
	for _, l := range m.locals {
		if l.binding == nil {
			continue
		}
		gen.List = append(gen.List, &ast.DeclStmt{Decl: &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{&ast.ValueSpec{
				Names: []*ast.Ident{ast.NewIdent(l.name)},
				Type:  m.storageType(u, l.binding),
			}},
		}})
	}
	gen.List = append(gen.List, body.List...)

	var result ast.Expr = ast.NewIdent("nil")
	if m.result != nil {
		result = m.ref(m.result)
	}
	if !endsWithReturn(gen.List) {
		gen.List = append(gen.List, &ast.ReturnStmt{Results: []ast.Expr{m.done(result)}})
	}

	var doc []*ast.Comment
	doc = appendComment(doc, "// Next resumes the generator until it emits its next value.")
	return &ast.FuncDecl{
		Doc:  &ast.CommentGroup{List: doc},
		Recv: m.receiver(),
		Name: ast.NewIdent("Next"),
		Type: &ast.FuncType{
			Params: &ast.FieldList{},
			Results: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent("_")}, Type: u.typeExpr(m.elem)},
				{Names: []*ast.Ident{ast.NewIdent("_")}, Type: ast.NewIdent("bool")},
				{Names: []*ast.Ident{ast.NewIdent("_")}, Type: ast.NewIdent("error")},
			}},
		},
		Body: gen,
	}
}

// suspend compiles suspend point id. The emitted value is evaluated first,
// then the record is reset to the slots live at the suspend point.
func (m *machine) suspend(u *unit, stmt *ast.ExprStmt, id int) []ast.Stmt {
	value := stmt.X.(*ast.CallExpr).Args[0]
	y := ast.NewIdent("_y")

	// var _y T = value
	stmts := []ast.Stmt{&ast.DeclStmt{Decl: &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names:  []*ast.Ident{y},
			Type:   u.typeExpr(m.elem),
			Values: []ast.Expr{value},
		}},
	}}}

	live := m.live[id]
	if len(live) == len(m.slots) {
		// _g.state = id
		stmts = append(stmts, &ast.AssignStmt{
			Lhs: []ast.Expr{m.field("state")},
			Tok: token.ASSIGN,
			Rhs: []ast.Expr{intLit(id)},
		})
	} else {
		// *_g = G{state: id, xN: _g.xN, ...}
		elts := []ast.Expr{&ast.KeyValueExpr{Key: ast.NewIdent("state"), Value: intLit(id)}}
		for _, s := range live {
			elts = append(elts, &ast.KeyValueExpr{Key: ast.NewIdent(s.field), Value: m.field(s.field)})
		}
		stmts = append(stmts, &ast.AssignStmt{
			Lhs: []ast.Expr{&ast.StarExpr{X: ast.NewIdent("_g")}},
			Tok: token.ASSIGN,
			Rhs: []ast.Expr{&ast.CompositeLit{Type: m.recordType(), Elts: elts}},
		})
	}

	// return _y, true, nil
	return append(stmts, &ast.ReturnStmt{Results: []ast.Expr{
		ast.NewIdent("_y"), ast.NewIdent("true"), ast.NewIdent("nil"),
	}})
}

func (m *machine) emitStop() ast.Decl {
	var doc []*ast.Comment
	doc = appendComment(doc, "// Stop releases the state of the generator without running the rest of")
	doc = append(doc, &ast.Comment{Text: "// its body. Subsequent calls to Next report completion."})
	return &ast.FuncDecl{
		Doc:  &ast.CommentGroup{List: doc},
		Recv: m.receiver(),
		Name: ast.NewIdent("Stop"),
		Type: &ast.FuncType{Params: &ast.FieldList{}},
		Body: &ast.BlockStmt{List: []ast.Stmt{m.terminate()}},
	}
}

func (m *machine) emitDone(u *unit) ast.Decl {
	return &ast.FuncDecl{
		Recv: m.receiver(),
		Name: ast.NewIdent("done"),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent("err")}, Type: ast.NewIdent("error")},
			}},
			Results: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent("v")}, Type: u.typeExpr(m.elem)},
				{Names: []*ast.Ident{ast.NewIdent("_")}, Type: ast.NewIdent("bool")},
				{Names: []*ast.Ident{ast.NewIdent("_")}, Type: ast.NewIdent("error")},
			}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			m.terminate(),
			&ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent("v"), ast.NewIdent("false"), ast.NewIdent("err")}},
		}},
	}
}

// terminate returns the statement resetting the record to its terminal state.
func (m *machine) terminate() ast.Stmt {
	return &ast.AssignStmt{
		Lhs: []ast.Expr{&ast.StarExpr{X: ast.NewIdent("_g")}},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{&ast.CompositeLit{
			Type: m.recordType(),
			Elts: []ast.Expr{&ast.KeyValueExpr{
				Key:   ast.NewIdent("state"),
				Value: &ast.UnaryExpr{Op: token.SUB, X: intLit(1)},
			}},
		}},
	}
}

func (m *machine) receiver() *ast.FieldList {
	return &ast.FieldList{List: []*ast.Field{{
		Names: []*ast.Ident{ast.NewIdent("_g")},
		Type:  &ast.StarExpr{X: m.recordType()},
	}}}
}

func (m *machine) field(name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ast.NewIdent("_g"), Sel: ast.NewIdent(name)}
}

func (m *machine) position(u *unit) string {
	pos := u.fset.Position(m.decl.Pos())
	return filepath.Base(pos.Filename) + ":" + strconv.Itoa(pos.Line)
}

func endsWithReturn(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*ast.ReturnStmt)
	return ok
}
