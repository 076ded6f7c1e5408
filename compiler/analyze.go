package compiler

import (
	"go/ast"
	"go/token"
	"go/types"
	"math"
	"slices"
)

// SuspendPoint is a call to the suspend capability of a generator function.
type SuspendPoint struct {
	// ID is the 1-based index of the suspend point in the straight-line
	// traversal of the desugared body. It is also the state identifier of
	// the generator while suspended at this point.
	ID int
	// Expr is the emitted value.
	Expr ast.Expr
	// Pos is the position of the call in the source.
	Pos token.Position

	stmt  *ast.ExprStmt
	ord   int
	loops []*loopRange
	// Bindings read by the conditions of the if statements enclosing the
	// suspend point.
	headers map[*Binding]struct{}
}

// BindingKind describes where a binding was declared.
type BindingKind int

const (
	Local BindingKind = iota
	Parameter
	Receiver
	Result
	Temporary
)

func (k BindingKind) String() string {
	switch k {
	case Local:
		return "local"
	case Parameter:
		return "parameter"
	case Receiver:
		return "receiver"
	case Result:
		return "result"
	case Temporary:
		return "temporary"
	default:
		return "unknown"
	}
}

// Binding is a variable of a generator function body.
type Binding struct {
	Name string
	Type types.Type
	Kind BindingKind
	// LiveAt lists the IDs of the suspend points across which the binding
	// is live, in increasing order.
	LiveAt []int

	obj types.Object
	// Traversal ordinals of the declaration, the end of the declaring scope
	// and every use of the binding.
	declOrd  int
	scopeEnd int
	uses     []int
	// pinned bindings are live across every suspend point of their scope;
	// captured bindings are also stored in a heap cell so that function
	// literals and pointers observe a single variable.
	pinned   bool
	captured bool
}

// Captured is true if the binding is referenced by a function literal or has
// its address taken.
func (b *Binding) Captured() bool { return b.captured }

type loopRange struct{ start, end int }

// analysis is the result of the analysis of a desugared generator body.
type analysis struct {
	suspendPoints []*SuspendPoint
	bindings      []*Binding
	byObject      map[types.Object]*Binding
	// Type and constant declarations found in statement lists containing
	// a suspend point, in order.
	decls []*ast.GenDecl
}

// analyze discovers the suspend points and bindings of a desugared generator
// body, and computes the set of bindings live across each suspend point.
//
// Liveness is computed on traversal ordinals of the desugared body: binding b
// is live across suspend point P iff b is declared before P in a scope that
// encloses P, and one of the following holds:
//   - b is used after P,
//   - b is declared outside of a loop enclosing P and used within that loop,
//   - b is used by the condition of an if statement enclosing P, which is
//     evaluated again when resuming at P,
//   - b is pinned (captured, address taken, or a named result).
func analyze(u *unit, g *generatorFunc, body *ast.BlockStmt, mayYield map[ast.Node]struct{}) *analysis {
	a := &analysis{byObject: map[types.Object]*Binding{}}

	// Receiver, parameters and named results are captured when the
	// generator is constructed, and are in scope for the whole body.
	addParam := func(v *types.Var, kind BindingKind) *Binding {
		if v == nil || v == g.yield || v.Name() == "" || v.Name() == "_" {
			return nil
		}
		return a.add(v, kind, -1, math.MaxInt)
	}
	addParam(g.sig.Recv(), Receiver)
	params := g.sig.Params()
	for i := range params.Len() {
		addParam(params.At(i), Parameter)
	}
	if b := addParam(g.result, Result); b != nil {
		// Bare returns read named results.
		b.pinned = true
	}

	w := &walker{unit: u, a: a, yield: g.yield, mayYield: mayYield}
	w.stmt(body)

	for _, b := range a.bindings {
		for _, p := range a.suspendPoints {
			if a.liveAt(b, p) {
				b.LiveAt = append(b.LiveAt, p.ID)
			}
		}
	}
	return a
}

func (a *analysis) add(obj types.Object, kind BindingKind, declOrd, scopeEnd int) *Binding {
	b := &Binding{
		Name:     obj.Name(),
		Type:     obj.Type(),
		Kind:     kind,
		obj:      obj,
		declOrd:  declOrd,
		scopeEnd: scopeEnd,
	}
	a.bindings = append(a.bindings, b)
	a.byObject[obj] = b
	return b
}

func (a *analysis) liveAt(b *Binding, p *SuspendPoint) bool {
	if b.declOrd >= p.ord || p.ord >= b.scopeEnd {
		return false
	}
	if b.pinned {
		return true
	}
	if len(b.uses) > 0 && b.uses[len(b.uses)-1] > p.ord {
		return true
	}
	for _, loop := range p.loops {
		if b.declOrd < loop.start && slices.ContainsFunc(b.uses, func(use int) bool {
			return use >= loop.start && use <= loop.end
		}) {
			return true
		}
	}
	if _, ok := p.headers[b]; ok {
		return true
	}
	return false
}

// walker traverses a desugared body, assigning an ordinal to each node it
// visits. Statements containing suspend points are traversed structurally;
// loop post statements are visited after the loop body since that is when
// they are executed.
type walker struct {
	*unit
	a        *analysis
	yield    types.Object
	mayYield map[ast.Node]struct{}
	ord      int
	loops    []*loopRange
	headers  []ast.Expr
}

func (w *walker) yields(n ast.Node) bool {
	_, ok := w.mayYield[n]
	return ok
}

func (w *walker) stmt(stmt ast.Stmt) {
	if !w.yields(stmt) {
		w.inspect(stmt)
		return
	}
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		call := s.X.(*ast.CallExpr)
		for _, arg := range call.Args {
			w.inspect(arg)
		}
		w.ord++
		w.a.suspendPoints = append(w.a.suspendPoints, &SuspendPoint{
			ID:      len(w.a.suspendPoints) + 1,
			Expr:    call.Args[0],
			Pos:     w.fset.Position(call.Pos()),
			stmt:    s,
			ord:     w.ord,
			loops:   slices.Clone(w.loops),
			headers: w.headerBindings(),
		})
	case *ast.BlockStmt:
		w.list(s.List)
	case *ast.CaseClause:
		w.list(s.Body)
	case *ast.LabeledStmt:
		w.stmt(s.Stmt)
	case *ast.IfStmt:
		w.inspect(s.Cond)
		w.headers = append(w.headers, s.Cond)
		w.stmt(s.Body)
		if s.Else != nil {
			w.stmt(s.Else)
		}
		w.headers = w.headers[:len(w.headers)-1]
	case *ast.ForStmt:
		loop := &loopRange{start: w.ord + 1}
		w.loops = append(w.loops, loop)
		w.stmt(s.Body)
		if s.Post != nil {
			w.inspect(s.Post)
		}
		w.loops = w.loops[:len(w.loops)-1]
		loop.end = w.ord
	case *ast.SwitchStmt:
		w.stmt(s.Body)
	default:
		panic("unexpected statement containing a suspend point")
	}
}

// list traverses a statement list containing a suspend point. The variables
// declared in the list become bindings, the other declarations are hoisted.
func (w *walker) list(stmts []ast.Stmt) {
	var declared []*Binding
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			if s.Tok != token.DEFINE {
				break
			}
			for _, rhs := range s.Rhs {
				w.inspect(rhs)
			}
			w.ord++
			for _, lhs := range s.Lhs {
				ident := lhs.(*ast.Ident)
				if ident.Name == "_" {
					continue
				}
				if obj := w.info.Defs[ident]; obj != nil {
					declared = append(declared, w.declare(obj))
				} else {
					w.inspect(ident)
				}
			}
			continue
		case *ast.DeclStmt:
			decl := s.Decl.(*ast.GenDecl)
			if decl.Tok != token.VAR {
				w.a.decls = append(w.a.decls, decl)
				continue
			}
			for _, spec := range decl.Specs {
				spec := spec.(*ast.ValueSpec)
				for _, value := range spec.Values {
					w.inspect(value)
				}
				w.ord++
				for _, name := range spec.Names {
					if obj := w.info.Defs[name]; obj != nil && name.Name != "_" {
						declared = append(declared, w.declare(obj))
					}
				}
			}
			continue
		}
		w.stmt(stmt)
	}
	w.ord++
	for _, b := range declared {
		b.scopeEnd = w.ord
	}
}

func (w *walker) headerBindings() map[*Binding]struct{} {
	bindings := map[*Binding]struct{}{}
	for _, header := range w.headers {
		ast.Inspect(header, func(n ast.Node) bool {
			if ident, ok := n.(*ast.Ident); ok {
				if b := w.a.byObject[w.info.ObjectOf(ident)]; b != nil {
					bindings[b] = struct{}{}
				}
			}
			return true
		})
	}
	return bindings
}

func (w *walker) declare(obj types.Object) *Binding {
	kind := Local
	if obj.Pos() == token.NoPos {
		kind = Temporary
	}
	return w.a.add(obj, kind, w.ord, math.MaxInt)
}

// inspect traverses a node that does not contain suspend points, recording
// the uses of bindings.
func (w *walker) inspect(node ast.Node) {
	var stack []ast.Node
	var funcLits int
	ast.Inspect(node, func(n ast.Node) bool {
		if n == nil {
			if _, ok := stack[len(stack)-1].(*ast.FuncLit); ok {
				funcLits--
			}
			stack = stack[:len(stack)-1]
			return true
		}
		stack = append(stack, n)
		w.ord++

		switch x := n.(type) {
		case *ast.FuncLit:
			funcLits++
		case *ast.Ident:
			if b := w.a.byObject[w.info.ObjectOf(x)]; b != nil {
				b.uses = append(b.uses, w.ord)
				if funcLits > 0 {
					b.pinned, b.captured = true, true
				}
			}
		case *ast.UnaryExpr:
			if x.Op == token.AND {
				w.pin(x.X)
			}
		case *ast.SliceExpr:
			if _, ok := w.info.TypeOf(x.X).Underlying().(*types.Array); ok {
				w.pin(x.X)
			}
		case *ast.SelectorExpr:
			// Calling a method with a pointer receiver on an addressable
			// value takes its address.
			sel := w.info.Selections[x]
			if sel == nil || sel.Kind() == types.FieldVal {
				break
			}
			recv := sel.Obj().Type().(*types.Signature).Recv()
			if recv == nil {
				break
			}
			if _, ok := recv.Type().(*types.Pointer); !ok {
				break
			}
			if _, ok := w.info.TypeOf(x.X).Underlying().(*types.Pointer); !ok {
				w.pin(x.X)
			}
		}
		return true
	})
}

// pin marks the binding that expr is rooted at as captured.
func (w *walker) pin(expr ast.Expr) {
	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X
		case *ast.SelectorExpr:
			if _, ok := w.info.TypeOf(e.X).Underlying().(*types.Pointer); ok {
				return
			}
			expr = e.X
		case *ast.IndexExpr:
			if _, ok := w.info.TypeOf(e.X).Underlying().(*types.Array); !ok {
				return
			}
			expr = e.X
		case *ast.Ident:
			if b := w.a.byObject[w.info.ObjectOf(e)]; b != nil {
				b.pinned, b.captured = true, true
			}
			return
		default:
			return
		}
	}
}
