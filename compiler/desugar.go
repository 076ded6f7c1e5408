package compiler

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// desugar recursively replaces sugared statements containing suspend points
// with simpler constructs.
//
// The goal is that no header expression of a statement containing a suspend
// point has to be evaluated again when the generator resumes within that
// statement: if conditions are hoisted into temporaries, loop conditions become
// break guards at the top of the loop body, range loops become index loops
// over a snapshot of the ranged value, and switch statements become if-chains.
// Initialization statements are hoisted out of branches and loops, so that
// resuming within the branch or loop skips them.
//
// Implicit branch targets (e.g. via break/continue) are made explicit using
// labels, since the dispatch mechanism wraps statement lists in switch
// statements that would otherwise capture them.
//
// Statements that do not contain a suspend point are left untouched, except
// for the targets of their branch statements.
//
// Desugaring is performed after packages have been loaded, parsed and
// type-checked, which means that the AST transformations below that introduce
// temporary variables must also update the associated types.Info.
func desugar(u *unit, body *ast.BlockStmt, mayYield map[ast.Node]struct{}) *ast.BlockStmt {
	d := desugarer{unit: u, nodesThatMayYield: mayYield}
	body = d.desugar(body, nil, nil, nil).(*ast.BlockStmt)

	// Unused labels cause a compile error (label X defined and not used)
	// so we need a second pass over the tree to delete unused labels.
	astutil.Apply(body, func(cursor *astutil.Cursor) bool {
		if ls, ok := cursor.Node().(*ast.LabeledStmt); ok && d.isUnusedLabel(ls.Label) {
			cursor.Replace(ls.Stmt)
		}
		return true
	}, nil)

	return body
}

type desugarer struct {
	*unit
	vars              int
	labels            int
	nodesThatMayYield map[ast.Node]struct{}
	unusedLabels      map[*ast.Ident]struct{}
	userLabels        map[types.Object]*ast.Ident
}

func (d *desugarer) desugar(stmt ast.Stmt, breakTo, continueTo, userLabel *ast.Ident) ast.Stmt {
	if !d.mayYield(stmt) {
		d.relabel(stmt, breakTo, continueTo)
		return stmt
	}

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		// Suspend point.

	case *ast.BlockStmt:
		stmt = d.block(d.desugarList(s.List, breakTo, continueTo))

	case *ast.LabeledStmt:
		// Remove the user's label, but notify the next step so that generated
		// labels can be mapped.
		stmt = d.desugar(s.Stmt, breakTo, continueTo, s.Label)

	case *ast.IfStmt:
		// Rewrite `if init; cond { ... }` => `{ init; _v := cond; if _v { ... } }`
		var prologue []ast.Stmt
		if s.Init != nil {
			prologue = append(prologue, s.Init)
		}
		condType := d.info.TypeOf(s.Cond)
		if condType == nil {
			condType = types.Typ[types.Bool]
		}
		cond := d.newVar(types.Default(condType))
		prologue = append(prologue, d.define(cond, s.Cond))
		ifStmt := &ast.IfStmt{
			Cond: d.use(cond),
			Body: d.desugar(s.Body, breakTo, continueTo, nil).(*ast.BlockStmt),
		}
		if s.Else != nil {
			ifStmt.Else = d.desugar(s.Else, breakTo, continueTo, nil)
		}
		d.mark(ifStmt)
		stmt = d.block(append(prologue, ifStmt))

	case *ast.ForStmt:
		// Rewrite for statements:
		// - `for init; cond; post { ... }` => `{ init; for ; ; post { ... } }`
		// - `for ; cond; post { ... }` => `for ; ; post { if !cond { break } ... }`
		// Variables declared by init that get a new instance at each
		// iteration are recorded, see machine.redeclare.
		forLabel := d.newLabel()
		if userLabel != nil {
			d.addUserLabel(userLabel, forLabel)
		}
		var body []ast.Stmt
		if s.Cond != nil {
			d.useLabel(forLabel)
			body = append(body, &ast.IfStmt{
				Cond: not(s.Cond),
				Body: &ast.BlockStmt{List: []ast.Stmt{
					&ast.BranchStmt{Tok: token.BREAK, Label: forLabel},
				}},
			})
		}
		body = append(body, d.desugarList(s.Body.List, forLabel, forLabel)...)
		forStmt := &ast.ForStmt{Post: s.Post, Body: d.block(body)}
		d.mark(forStmt)
		stmt = d.labeled(forLabel, forStmt)
		if s.Init != nil {
			d.addLoopVars(forStmt, s.Init)
			stmt = d.block([]ast.Stmt{s.Init, stmt})
		}

	case *ast.RangeStmt:
		stmt = d.desugarRange(s, breakTo, continueTo, userLabel)

	case *ast.SwitchStmt:
		// Rewrite switch statements:
		// - `switch init; tag { case a, b: ... default: ... }` =>
		//   `{ init; _v := tag; _l: switch { default: if _v == a || _v == b { ... } else { ... } } }`
		switchLabel := d.newLabel()
		if userLabel != nil {
			d.addUserLabel(userLabel, switchLabel)
		}
		var prologue []ast.Stmt
		if s.Init != nil {
			prologue = append(prologue, s.Init)
		}
		var clauses []*ast.CaseClause
		var defaultClause *ast.CaseClause
		for _, c := range s.Body.List {
			if c := c.(*ast.CaseClause); c.List == nil {
				defaultClause = c
			} else {
				clauses = append(clauses, c)
			}
		}

		var tag *ast.Ident
		switch {
		case s.Tag == nil:
		case len(clauses) == 0:
			prologue = append(prologue, &ast.AssignStmt{
				Lhs: []ast.Expr{ast.NewIdent("_")},
				Tok: token.ASSIGN,
				Rhs: []ast.Expr{s.Tag},
			})
		default:
			tag = d.newVar(types.Default(d.info.TypeOf(s.Tag)))
			prologue = append(prologue, d.define(tag, s.Tag))
		}

		// Case clauses are evaluated in order, the default clause is only
		// selected if none of the others match so it ends the chain.
		var head ast.Stmt
		if defaultClause != nil {
			head = d.clauseBlock(defaultClause)
		}
		for i := len(clauses) - 1; i >= 0; i-- {
			c := clauses[i]
			var cond ast.Expr
			for _, value := range c.List {
				if tag != nil {
					value = &ast.BinaryExpr{X: d.use(tag), Op: token.EQL, Y: value}
				}
				if cond == nil {
					cond = value
				} else {
					cond = &ast.BinaryExpr{X: cond, Op: token.LOR, Y: value}
				}
			}
			ifStmt := &ast.IfStmt{Cond: cond, Body: d.clauseBlock(c), Else: head}
			if d.mayYield(ifStmt.Body) || d.mayYield(head) {
				d.mark(ifStmt)
			}
			head = ifStmt
		}

		caseClause := &ast.CaseClause{Body: d.desugarList([]ast.Stmt{head}, switchLabel, continueTo)}
		switchStmt := &ast.SwitchStmt{Body: &ast.BlockStmt{List: []ast.Stmt{caseClause}}}
		d.mark(caseClause)
		d.mark(switchStmt.Body)
		d.mark(switchStmt)
		stmt = d.labeled(switchLabel, switchStmt)
		if len(prologue) > 0 {
			stmt = d.block(append(prologue, stmt))
		}

	case *ast.TypeSwitchStmt:
		stmt = d.desugarTypeSwitch(s, breakTo, continueTo, userLabel)

	default:
		panic(fmt.Sprintf("unsupported ast.Stmt: %T", stmt))
	}
	return stmt
}

func (d *desugarer) desugarList(stmts []ast.Stmt, breakTo, continueTo *ast.Ident) []ast.Stmt {
	desugared := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		// All declarations of a list containing a suspend point are hoisted,
		// so nested blocks can be flattened without changing scoping.
		desugared = d.appendFlat(desugared, d.desugar(s, breakTo, continueTo, nil))
	}
	return desugared
}

// desugarRange rewrites range loops into three-clause for loops iterating over
// a snapshot of the ranged value, and desugars the result further.
func (d *desugarer) desugarRange(s *ast.RangeStmt, breakTo, continueTo, userLabel *ast.Ident) ast.Stmt {
	rangeType := d.info.TypeOf(s.X)
	kind, t := rangeKindOf(rangeType)

	var x *ast.Ident
	var prologue []ast.Stmt
	if kind == rangeString && !types.Identical(rangeType, types.Typ[types.String]) {
		x = d.newVar(types.Typ[types.String])
		prologue = append(prologue, d.define(x, &ast.CallExpr{Fun: d.builtin("string"), Args: []ast.Expr{s.X}}))
	} else {
		x = d.newVar(types.Default(rangeType))
		prologue = append(prologue, d.define(x, s.X))
	}
	body := s.Body.List

	var forStmt *ast.ForStmt
	switch kind {
	case rangeSlice:
		// Rewrite `for k, v := range x { ... }` =>
		// `{ _x := x; for _i := 0; _i < len(_x); _i++ { k, v := _i, _x[_i]; ... } }`
		i := d.newVar(types.Typ[types.Int])
		if assign := d.rangeAssign(s, d.use(i), &ast.IndexExpr{X: d.use(x), Index: d.use(i)}); assign != nil {
			body = append([]ast.Stmt{assign}, body...)
		}
		forStmt = &ast.ForStmt{
			Init: d.define(i, zeroInt()),
			Cond: &ast.BinaryExpr{X: d.use(i), Op: token.LSS, Y: d.call("len", d.use(x))},
			Post: &ast.IncDecStmt{X: d.use(i), Tok: token.INC},
		}

	case rangeString:
		// Rewrite `for k, v := range x { ... }` =>
		// `{ _x := x; for _i := 0; _i < len(_x); _i += _n { _r, _n := utf8.DecodeRuneInString(_x[_i:]); k, v := _i, _r; ... } }`
		i := d.newVar(types.Typ[types.Int])
		n := d.newVar(types.Typ[types.Int])
		var r ast.Expr = ast.NewIdent("_")
		var value ast.Expr
		if s.Value != nil && !isBlank(s.Value) {
			rv := d.newVar(types.Typ[types.Rune])
			r, value = rv, d.use(rv)
		}
		decode := &ast.AssignStmt{
			Lhs: []ast.Expr{r, n},
			Tok: token.DEFINE,
			Rhs: []ast.Expr{&ast.CallExpr{
				Fun:  d.qualified("unicode/utf8", "utf8", "DecodeRuneInString"),
				Args: []ast.Expr{&ast.SliceExpr{X: d.use(x), Low: d.use(i)}},
			}},
		}
		head := []ast.Stmt{decode}
		if assign := d.rangeAssign(s, d.use(i), value); assign != nil {
			head = append(head, assign)
		}
		body = append(head, body...)
		forStmt = &ast.ForStmt{
			Init: d.define(i, zeroInt()),
			Cond: &ast.BinaryExpr{X: d.use(i), Op: token.LSS, Y: d.call("len", d.use(x))},
			Post: &ast.AssignStmt{Lhs: []ast.Expr{d.use(i)}, Tok: token.ADD_ASSIGN, Rhs: []ast.Expr{d.use(n)}},
		}

	case rangeInt:
		// Rewrite `for i := range n { ... }` =>
		// `{ _x := n; for _i := 0; _i < _x; _i++ { i := _i; ... } }`
		i := d.newVar(d.info.ObjectOf(x).Type())
		if assign := d.rangeAssign(s, d.use(i), nil); assign != nil {
			body = append([]ast.Stmt{assign}, body...)
		}
		forStmt = &ast.ForStmt{
			Init: d.define(i, zeroInt()),
			Cond: &ast.BinaryExpr{X: d.use(i), Op: token.LSS, Y: d.use(x)},
			Post: &ast.IncDecStmt{X: d.use(i), Tok: token.INC},
		}

	case rangeMap:
		// Since map iteration order is not deterministic, and the map may be
		// modified while the generator is suspended, we split the loop into
		// two. The first loop collects keys, and the second loop iterates
		// over those keys, skipping the ones that were deleted.
		m := t.(*types.Map)
		keysType := types.NewSlice(m.Key())
		keys := d.newVar(keysType)
		k := d.newVar(m.Key())
		prologue = append(prologue,
			// _keys := make([]K, 0, len(_x))
			d.define(keys, &ast.CallExpr{
				Fun:  d.builtin("make"),
				Args: []ast.Expr{d.typeExpr(keysType), zeroInt(), d.call("len", d.use(x))},
			}),
			// for _k := range _x { _keys = append(_keys, _k) }
			// Note that this loop isn't desugared!
			&ast.RangeStmt{
				Key: k,
				Tok: token.DEFINE,
				X:   d.use(x),
				Body: &ast.BlockStmt{List: []ast.Stmt{
					&ast.AssignStmt{
						Lhs: []ast.Expr{d.use(keys)},
						Tok: token.ASSIGN,
						Rhs: []ast.Expr{d.call("append", d.use(keys), d.use(k))},
					},
				}},
			},
		)

		i := d.newVar(types.Typ[types.Int])
		key := d.newVar(m.Key())
		ok := d.newVar(types.Typ[types.Bool])
		var val ast.Expr = ast.NewIdent("_")
		var value ast.Expr
		if s.Value != nil && !isBlank(s.Value) {
			v := d.newVar(m.Elem())
			val, value = v, d.use(v)
		}
		guardBody := s.Body
		if assign := d.rangeAssign(s, d.use(key), value); assign != nil {
			guardBody = &ast.BlockStmt{List: append([]ast.Stmt{assign}, body...)}
			d.mark(guardBody)
		}
		guard := &ast.IfStmt{Cond: d.use(ok), Body: guardBody}
		d.mark(guard)
		body = []ast.Stmt{
			d.define(key, &ast.IndexExpr{X: d.use(keys), Index: d.use(i)}),
			&ast.AssignStmt{
				Lhs: []ast.Expr{val, ok},
				Tok: token.DEFINE,
				Rhs: []ast.Expr{&ast.IndexExpr{X: d.use(x), Index: d.use(key)}},
			},
			guard,
		}
		forStmt = &ast.ForStmt{
			Init: d.define(i, zeroInt()),
			Cond: &ast.BinaryExpr{X: d.use(i), Op: token.LSS, Y: d.call("len", d.use(keys))},
			Post: &ast.IncDecStmt{X: d.use(i), Tok: token.INC},
		}

	case rangeChan:
		// Rewrite `for v := range x { ... }` =>
		// `{ _x := x; for { _v, _ok := <-_x; if !_ok { break }; v := _v; ... } }`
		c := t.(*types.Chan)
		var v, recv ast.Expr = nil, ast.NewIdent("_")
		if s.Key != nil && !isBlank(s.Key) {
			elem := d.newVar(c.Elem())
			v, recv = d.use(elem), elem
		}
		ok := d.newVar(types.Typ[types.Bool])
		head := []ast.Stmt{
			&ast.AssignStmt{
				Lhs: []ast.Expr{recv, ok},
				Tok: token.DEFINE,
				Rhs: []ast.Expr{&ast.UnaryExpr{Op: token.ARROW, X: d.use(x)}},
			},
			&ast.IfStmt{
				Cond: not(d.use(ok)),
				Body: &ast.BlockStmt{List: []ast.Stmt{&ast.BranchStmt{Tok: token.BREAK}}},
			},
		}
		if assign := d.rangeAssign(s, v, nil); assign != nil {
			head = append(head, assign)
		}
		body = append(head, body...)
		forStmt = &ast.ForStmt{}

	default:
		panic(fmt.Sprintf("not implemented: for range over %s", rangeType))
	}

	forStmt.Body = &ast.BlockStmt{List: body}
	d.mark(forStmt)
	return d.block(d.appendFlat(prologue, d.desugar(forStmt, breakTo, continueTo, userLabel)))
}

// appendFlat appends stmt to a statement list, splicing the statements of
// blocks containing a suspend point.
func (d *desugarer) appendFlat(stmts []ast.Stmt, stmt ast.Stmt) []ast.Stmt {
	if b, ok := stmt.(*ast.BlockStmt); ok && d.mayYield(b) {
		return append(stmts, b.List...)
	}
	return append(stmts, stmt)
}

// rangeAssign returns the statement assigning the iteration values of a
// range loop, or nil if the loop does not have iteration variables.
func (d *desugarer) rangeAssign(s *ast.RangeStmt, key, value ast.Expr) ast.Stmt {
	var lhs, rhs []ast.Expr
	if s.Key != nil && !isBlank(s.Key) {
		lhs = append(lhs, s.Key)
		rhs = append(rhs, key)
	}
	if s.Value != nil && !isBlank(s.Value) && value != nil {
		lhs = append(lhs, s.Value)
		rhs = append(rhs, value)
	}
	if len(lhs) == 0 {
		return nil
	}
	return &ast.AssignStmt{Lhs: lhs, Tok: s.Tok, Rhs: rhs}
}

// desugarTypeSwitch rewrites type switches into a type switch that only
// records the selected clause, followed by a switch over that selection:
//
//	switch x := y.(type) {
//	case T1:
//	  ...
//	case T2, T3:
//	  ...
//	}
//
// becomes:
//
//	_v0 := y
//	_v1 := 0
//	switch _v0.(type) {
//	case T1:
//	  _v1 = 1
//	case T2, T3:
//	  _v1 = 2
//	}
//	switch _v1 {
//	case 1:
//	  x := _v0.(T1)
//	  ...
//	case 2:
//	  x := _v0
//	  ...
//	}
//
// The second switch is desugared further.
func (d *desugarer) desugarTypeSwitch(s *ast.TypeSwitchStmt, breakTo, continueTo, userLabel *ast.Ident) ast.Stmt {
	var prologue []ast.Stmt
	if s.Init != nil {
		prologue = append(prologue, s.Init)
	}

	// https://go.dev/ref/spec#TypeSwitchStmt
	var t *ast.TypeAssertExpr
	var symbol *ast.Ident
	switch a := s.Assign.(type) {
	case *ast.ExprStmt:
		t = a.X.(*ast.TypeAssertExpr)
	case *ast.AssignStmt:
		t = a.Rhs[0].(*ast.TypeAssertExpr)
		symbol = a.Lhs[0].(*ast.Ident)
	}

	subject := d.newVar(d.info.TypeOf(t.X))
	selection := d.newVar(types.Typ[types.Int])
	prologue = append(prologue,
		d.define(subject, t.X),
		d.define(selection, zeroInt()),
	)

	recordSwitch := &ast.TypeSwitchStmt{
		Assign: &ast.ExprStmt{X: &ast.TypeAssertExpr{X: d.use(subject)}},
		Body:   &ast.BlockStmt{},
	}
	selectSwitch := &ast.SwitchStmt{Tag: d.use(selection), Body: &ast.BlockStmt{}}
	d.mark(selectSwitch)

	for i, c := range s.Body.List {
		cc := c.(*ast.CaseClause)
		id := &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(i + 1)}
		recordSwitch.Body.List = append(recordSwitch.Body.List, &ast.CaseClause{
			List: cc.List,
			Body: []ast.Stmt{
				&ast.AssignStmt{Lhs: []ast.Expr{d.use(selection)}, Tok: token.ASSIGN, Rhs: []ast.Expr{id}},
			},
		})

		body := cc.Body
		if symbol != nil {
			if obj := d.info.Implicits[cc]; obj != nil && usesObject(d.info, body, obj) {
				var value ast.Expr = d.use(subject)
				if len(cc.List) == 1 && !isNil(d.info, cc.List[0]) {
					value = &ast.TypeAssertExpr{X: value, Type: cc.List[0]}
				}
				name := ast.NewIdent(symbol.Name)
				d.info.Defs[name] = obj
				body = append([]ast.Stmt{
					&ast.AssignStmt{Lhs: []ast.Expr{name}, Tok: token.DEFINE, Rhs: []ast.Expr{value}},
				}, body...)
			}
		}
		selectSwitch.Body.List = append(selectSwitch.Body.List, &ast.CaseClause{
			List: []ast.Expr{&ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(i + 1)}},
			Body: body,
		})
	}

	prologue = append(prologue, recordSwitch)
	return d.block(d.appendFlat(prologue, d.desugar(selectSwitch, breakTo, continueTo, userLabel)))
}

// clauseBlock returns the body of a case clause as a block.
func (d *desugarer) clauseBlock(c *ast.CaseClause) *ast.BlockStmt {
	b := &ast.BlockStmt{List: c.Body}
	for _, s := range c.Body {
		if d.mayYield(s) {
			d.mark(b)
			break
		}
	}
	return b
}

// relabel makes the targets of branch statements within a statement that is
// not desugared explicit, when they refer to a statement that was.
func (d *desugarer) relabel(node ast.Node, breakTo, continueTo *ast.Ident) {
	switch n := node.(type) {
	case nil, *ast.FuncLit:
		return
	case *ast.BranchStmt:
		if n.Label != nil {
			if label := d.getUserLabel(n.Label); label != nil {
				d.useLabel(label)
				n.Label = label
			}
			return
		}
		var target *ast.Ident
		switch n.Tok {
		case token.BREAK:
			target = breakTo
		case token.CONTINUE:
			target = continueTo
		}
		if target != nil {
			d.useLabel(target)
			n.Label = target
		}
		return
	case *ast.ForStmt, *ast.RangeStmt:
		breakTo, continueTo = nil, nil
	case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
		breakTo = nil
	}
	first := true
	ast.Inspect(node, func(child ast.Node) bool {
		if first {
			first = false
			return true
		}
		d.relabel(child, breakTo, continueTo)
		return false
	})
}

func (d *desugarer) mayYield(n ast.Node) bool {
	switch n.(type) {
	case nil:
		return false
	}
	_, ok := d.nodesThatMayYield[n]
	return ok
}

func (d *desugarer) mark(n ast.Node) {
	d.nodesThatMayYield[n] = struct{}{}
}

func (d *desugarer) block(stmts []ast.Stmt) *ast.BlockStmt {
	b := &ast.BlockStmt{List: stmts}
	d.mark(b)
	return b
}

func (d *desugarer) labeled(label *ast.Ident, stmt ast.Stmt) *ast.LabeledStmt {
	l := &ast.LabeledStmt{Label: label, Stmt: stmt}
	d.mark(l)
	return l
}

func (d *desugarer) define(lhs *ast.Ident, rhs ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{Lhs: []ast.Expr{lhs}, Tok: token.DEFINE, Rhs: []ast.Expr{rhs}}
}

func (d *desugarer) builtin(name string) *ast.Ident {
	ident := ast.NewIdent(name)
	d.info.Uses[ident] = types.Universe.Lookup(name)
	return ident
}

func (d *desugarer) call(builtin string, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: d.builtin(builtin), Args: args}
}

// qualified returns a selector expression referring to a member of a package
// that the generated code needs to import.
func (d *desugarer) qualified(path, name, sel string) *ast.SelectorExpr {
	pkgident := ast.NewIdent(name)
	d.info.Uses[pkgident] = types.NewPkgName(token.NoPos, d.pkg, name, types.NewPackage(path, name))
	return &ast.SelectorExpr{X: pkgident, Sel: ast.NewIdent(sel)}
}

func (d *desugarer) newVar(t types.Type) *ast.Ident {
	v := ast.NewIdent("_v" + strconv.Itoa(d.vars))
	d.vars++
	d.info.Defs[v] = types.NewVar(token.NoPos, d.pkg, v.Name, t)
	return v
}

// use returns a new identifier referring to the object defined by ident.
func (d *desugarer) use(ident *ast.Ident) *ast.Ident {
	u := ast.NewIdent(ident.Name)
	d.info.Uses[u] = d.info.ObjectOf(ident)
	return u
}

// addLoopVars records the variables declared by the init statement of a for
// loop moved out of the loop, if each iteration has its own instance of them.
func (d *desugarer) addLoopVars(forStmt *ast.ForStmt, init ast.Stmt) {
	assign, ok := init.(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE || !d.perIterationLoopVars(assign.Pos()) {
		return
	}
	var vars []types.Object
	for _, lhs := range assign.Lhs {
		if obj := d.info.Defs[lhs.(*ast.Ident)]; obj != nil {
			vars = append(vars, obj)
		}
	}
	if len(vars) == 0 {
		return
	}
	if d.loopVars == nil {
		d.loopVars = map[*ast.ForStmt][]types.Object{}
	}
	d.loopVars[forStmt] = vars
}

func (d *desugarer) newLabel() *ast.Ident {
	l := ast.NewIdent("_l" + strconv.Itoa(d.labels))
	d.labels++

	// Mark labels as unused initially.
	if d.unusedLabels == nil {
		d.unusedLabels = map[*ast.Ident]struct{}{}
	}
	d.unusedLabels[l] = struct{}{}

	return l
}

func (d *desugarer) addUserLabel(userLabel, replacement *ast.Ident) {
	if d.userLabels == nil {
		d.userLabels = map[types.Object]*ast.Ident{}
	}
	d.userLabels[d.info.ObjectOf(userLabel)] = replacement
}

func (d *desugarer) getUserLabel(userLabel *ast.Ident) *ast.Ident {
	return d.userLabels[d.info.ObjectOf(userLabel)]
}

func (d *desugarer) useLabel(label *ast.Ident) {
	delete(d.unusedLabels, label)
}

func (d *desugarer) isUnusedLabel(label *ast.Ident) bool {
	_, ok := d.unusedLabels[label]
	return ok
}

type rangeKind int

const (
	rangeUnsupported rangeKind = iota
	rangeSlice
	rangeString
	rangeInt
	rangeMap
	rangeChan
)

// rangeKindOf classifies the type of a ranged value, returning its core type.
func rangeKindOf(t types.Type) (rangeKind, types.Type) {
	switch u := t.Underlying().(type) {
	case *types.Slice, *types.Array:
		return rangeSlice, u
	case *types.Pointer:
		if _, ok := u.Elem().Underlying().(*types.Array); ok {
			return rangeSlice, u
		}
	case *types.Basic:
		switch {
		case u.Info()&types.IsString != 0:
			return rangeString, u
		case u.Info()&types.IsInteger != 0:
			return rangeInt, u
		}
	case *types.Map:
		return rangeMap, u
	case *types.Chan:
		return rangeChan, u
	}
	return rangeUnsupported, nil
}

func not(x ast.Expr) ast.Expr {
	switch x.(type) {
	case *ast.Ident, *ast.CallExpr, *ast.ParenExpr, *ast.SelectorExpr:
	default:
		x = &ast.ParenExpr{X: x}
	}
	return &ast.UnaryExpr{Op: token.NOT, X: x}
}

func zeroInt() *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: "0"}
}

func isNil(info *types.Info, e ast.Expr) bool {
	ident, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}
	_, ok = info.ObjectOf(ident).(*types.Nil)
	return ok
}

// usesObject is true if any of the statements refer to obj.
func usesObject(info *types.Info, stmts []ast.Stmt, obj types.Object) (used bool) {
	for _, s := range stmts {
		ast.Inspect(s, func(n ast.Node) bool {
			if ident, ok := n.(*ast.Ident); ok && info.Uses[ident] == obj {
				used = true
			}
			return !used
		})
	}
	return used
}

// findYields marks the statements that call the suspend capability of a
// generator, and all nodes that lead to them.
func findYields(tree ast.Node, info *types.Info, yield types.Object) map[ast.Node]struct{} {
	mayYield := map[ast.Node]struct{}{}
	var stack []ast.Node
	ast.Inspect(tree, func(node ast.Node) bool {
		if node != nil {
			stack = append(stack, node)

			if isYield(node, info, yield) {
				// Mark this node, and all nodes that lead to it.
			addNodes:
				for i := len(stack) - 1; i >= 0; i-- {
					n := stack[i]
					switch n.(type) {
					case *ast.FuncDecl, *ast.FuncLit:
						break addNodes
					}
					if _, ok := mayYield[n]; ok {
						break
					}
					mayYield[n] = struct{}{}
				}
			}
		} else {
			stack = stack[:len(stack)-1]
		}
		return true
	})

	return mayYield
}

// isYield is true if node is a statement calling the suspend capability.
func isYield(node ast.Node, info *types.Info, yield types.Object) bool {
	s, ok := node.(*ast.ExprStmt)
	if !ok {
		return false
	}
	c, ok := s.X.(*ast.CallExpr)
	if !ok {
		return false
	}
	fn, ok := c.Fun.(*ast.Ident)
	return ok && info.Uses[fn] == yield
}
