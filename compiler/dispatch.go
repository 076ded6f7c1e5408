package compiler

import (
	"go/ast"
	"go/token"
	"strconv"
)

// trackDispatchSpans assigns a non-zero monotonically increasing integer ID to
// each leaf statement in the tree using a post-order traversal, and then
// assigns a "span" to all statements in the tree which is equal to the
// half-open range of IDs seen in that subtree.
//
// Only statements containing a suspend point are split into their children;
// every other statement is a leaf. Suspend points occupy two IDs: the
// generator resumes after a suspend point by jumping to its second ID.
//
// The resulting information is used to build the dispatch switch statements.
func trackDispatchSpans(stmt ast.Stmt, mayYield map[ast.Node]struct{}) map[ast.Stmt]dispatchSpan {
	spans := map[ast.Stmt]dispatchSpan{}
	trackDispatchSpans0(stmt, mayYield, spans, 1)
	return spans
}

type dispatchSpan struct{ start, end int }

func trackDispatchSpans0(stmt ast.Stmt, mayYield map[ast.Node]struct{}, dispatchSpans map[ast.Stmt]dispatchSpan, nextID int) int {
	startID := nextID
	if _, ok := mayYield[stmt]; !ok {
		nextID++ // leaf
	} else {
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			nextID += 2 // suspend point
		case *ast.BlockStmt:
			for _, child := range s.List {
				nextID = trackDispatchSpans0(child, mayYield, dispatchSpans, nextID)
			}
		case *ast.IfStmt:
			nextID = trackDispatchSpans0(s.Body, mayYield, dispatchSpans, nextID)
			if s.Else != nil {
				nextID = trackDispatchSpans0(s.Else, mayYield, dispatchSpans, nextID)
			}
		case *ast.ForStmt:
			nextID = trackDispatchSpans0(s.Body, mayYield, dispatchSpans, nextID)
		case *ast.SwitchStmt:
			nextID = trackDispatchSpans0(s.Body, mayYield, dispatchSpans, nextID)
		case *ast.CaseClause:
			for _, child := range s.Body {
				nextID = trackDispatchSpans0(child, mayYield, dispatchSpans, nextID)
			}
		case *ast.LabeledStmt:
			nextID = trackDispatchSpans0(s.Stmt, mayYield, dispatchSpans, nextID)
		default:
			panic("unexpected statement containing a suspend point")
		}
	}
	dispatchSpans[stmt] = dispatchSpan{startID, nextID}
	return nextID
}

// dispatcher adds the dispatch statements of a generator to a tree.
//
// The dispatch mechanism is used when resuming a generator. The body needs to
// jump to the statement following the suspend point that the generator was
// suspended at, even when there are arbitrary levels of branches and loops.
// To do this, we generate a switch inside each block, using the information
// from trackDispatchSpans and the instruction pointer _ip which is initialized
// from the state of the generator.
type dispatcher struct {
	spans map[ast.Stmt]dispatchSpan
	// suspend compiles a suspend point, given the ID that the generator
	// resumes at.
	suspend func(stmt *ast.ExprStmt, resumeID int) []ast.Stmt
	// redeclare returns the statements to run before the post statement of
	// a for loop, or nil.
	redeclare func(s *ast.ForStmt) []ast.Stmt
}

func (d *dispatcher) compileDispatch(stmt ast.Stmt) ast.Stmt {
	span, ok := d.spans[stmt]
	if !ok || span.end-span.start == 1 {
		return stmt // leaf
	}

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		// if _ip < resumeID { ... }
		resumeID := span.start + 1
		return &ast.IfStmt{
			Cond: ipLess(resumeID),
			Body: &ast.BlockStmt{List: d.suspend(s, resumeID)},
		}
	case *ast.BlockStmt:
		switch {
		case len(s.List) == 1:
			child := d.compileDispatch(s.List[0])
			s.List[0] = unnestBlocks(child)
		case len(s.List) > 1:
			stmt = &ast.BlockStmt{List: []ast.Stmt{d.compileDispatch0(s.List)}}
		}
	case *ast.IfStmt:
		s.Body = d.compileDispatch(s.Body).(*ast.BlockStmt)
		if s.Else != nil {
			s.Else = d.compileDispatch(s.Else)
		}
	case *ast.ForStmt:
		forSpan := d.spans[s]
		s.Body = d.compileDispatch(s.Body).(*ast.BlockStmt)
		// Reset IP after each loop iteration.
		ipVal := intLit(forSpan.start)
		switch post := s.Post.(type) {
		case nil:
			s.Post = &ast.AssignStmt{Lhs: []ast.Expr{ip()}, Tok: token.ASSIGN, Rhs: []ast.Expr{ipVal}}
		case *ast.IncDecStmt:
			op := token.ADD
			if post.Tok == token.DEC {
				op = token.SUB
			}
			s.Post = &ast.AssignStmt{
				Lhs: []ast.Expr{post.X, ip()},
				Tok: token.ASSIGN,
				Rhs: []ast.Expr{
					&ast.BinaryExpr{X: post.X, Op: op, Y: intLit(1)},
					ipVal,
				},
			}
		case *ast.AssignStmt:
			if op, ok := assignOps[post.Tok]; ok {
				y := post.Rhs[0]
				if _, ok := y.(*ast.BinaryExpr); ok {
					y = &ast.ParenExpr{X: y}
				}
				s.Post = &ast.AssignStmt{
					Lhs: []ast.Expr{post.Lhs[0], ip()},
					Tok: token.ASSIGN,
					Rhs: []ast.Expr{
						&ast.BinaryExpr{X: post.Lhs[0], Op: op, Y: y},
						ipVal,
					},
				}
			} else {
				s.Post = &ast.AssignStmt{
					Lhs: append(post.Lhs, ip()),
					Tok: token.ASSIGN,
					Rhs: append(post.Rhs, ipVal),
				}
			}
		}
		if d.redeclare != nil {
			if prologue := d.redeclare(s); len(prologue) > 0 {
				// for ; ; func() { prologue; post }() { ... }
				s.Post = &ast.ExprStmt{X: &ast.CallExpr{Fun: &ast.FuncLit{
					Type: &ast.FuncType{Params: &ast.FieldList{}},
					Body: &ast.BlockStmt{List: append(prologue, s.Post)},
				}}}
			}
		}
	case *ast.SwitchStmt:
		for i, child := range s.Body.List {
			s.Body.List[i] = d.compileDispatch(child)
		}
	case *ast.CaseClause:
		switch {
		case len(s.Body) == 1:
			child := d.compileDispatch(s.Body[0])
			s.Body[0] = unnestBlocks(child)
		case len(s.Body) > 1:
			s.Body = []ast.Stmt{d.compileDispatch0(s.Body)}
		}
	case *ast.LabeledStmt:
		s.Stmt = d.compileDispatch(s.Stmt)
	}
	return stmt
}

func (d *dispatcher) compileDispatch0(stmts []ast.Stmt) ast.Stmt {
	var cases []ast.Stmt
	for i, child := range stmts {
		childSpan := d.spans[child]
		compiledChild := d.compileDispatch(child)
		compiledChild = unnestBlocks(compiledChild)
		caseBody := []ast.Stmt{compiledChild}
		if i < len(stmts)-1 {
			caseBody = append(caseBody,
				&ast.AssignStmt{
					Lhs: []ast.Expr{ip()},
					Tok: token.ASSIGN,
					Rhs: []ast.Expr{intLit(childSpan.end)},
				},
				&ast.BranchStmt{Tok: token.FALLTHROUGH})
		}
		cases = append(cases, &ast.CaseClause{
			List: []ast.Expr{ipLess(childSpan.end)},
			Body: caseBody,
		})
	}
	return &ast.SwitchStmt{Body: &ast.BlockStmt{List: cases}}
}

var assignOps = map[token.Token]token.Token{
	token.ADD_ASSIGN:     token.ADD,
	token.SUB_ASSIGN:     token.SUB,
	token.MUL_ASSIGN:     token.MUL,
	token.QUO_ASSIGN:     token.QUO,
	token.REM_ASSIGN:     token.REM,
	token.AND_ASSIGN:     token.AND,
	token.OR_ASSIGN:      token.OR,
	token.XOR_ASSIGN:     token.XOR,
	token.SHL_ASSIGN:     token.SHL,
	token.SHR_ASSIGN:     token.SHR,
	token.AND_NOT_ASSIGN: token.AND_NOT,
}

func ip() *ast.Ident { return ast.NewIdent("_ip") }

func ipLess(id int) ast.Expr {
	return &ast.BinaryExpr{X: ip(), Op: token.LSS, Y: intLit(id)}
}

func intLit(v int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(v)}
}

func unnestBlocks(stmt ast.Stmt) ast.Stmt {
	for {
		s, ok := stmt.(*ast.BlockStmt)
		if !ok || len(s.List) != 1 {
			return stmt
		}
		stmt = s.List[0]
	}
}
