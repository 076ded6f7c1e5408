package compiler

import (
	"fmt"
	"go/ast"
	"go/types"
	"strconv"
)

// Layout describes the state machine synthesized for a generator function.
type Layout struct {
	Package     string
	Func        string
	Type        string
	Constructor string
	// Elem is the type of the values emitted by the generator.
	Elem   string
	States []State
	Slots  []Slot
	// Locals lists the bindings that are never live across a suspend point.
	// They are declared as local variables of the Next method.
	Locals []string
}

// StateKind classifies the states of a generator.
type StateKind int

const (
	Initial StateKind = iota
	Suspended
	Terminal
)

func (k StateKind) String() string {
	switch k {
	case Initial:
		return "initial"
	case Suspended:
		return "suspended"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// State is a state of a generator.
type State struct {
	// ID is the value of the state field of the record: 0 for the initial
	// state, -1 for the terminal state, and the suspend point ID otherwise.
	ID   int
	Kind StateKind
	// Pos is the position of the suspend point of a suspended state.
	Pos string
	// Live lists the record fields populated in this state.
	Live []string
}

// Slot is a field of a generator record.
type Slot struct {
	Field    string
	Binding  string
	Kind     BindingKind
	Type     string
	Captured bool
	// LiveAt lists the states in which the slot is populated.
	LiveAt []int
}

// machine is the state machine of a generator function: the layout of its
// record and the storage of each of its bindings.
type machine struct {
	*generatorFunc
	layout        *Layout
	suspendPoints []*SuspendPoint
	slots         []*slot
	fields        map[types.Object]*slot
	locals        []*local
	names         map[types.Object]*local
	// live lists the slots populated in each suspended state.
	live map[int][]*slot
	// cells counts the cells of captured bindings passed to function
	// literals.
	cells int
}

type slot struct {
	field   string
	binding *Binding
}

type local struct {
	name    string
	binding *Binding // nil for hoisted types and constants
}

// synthesize lays out the record of a generator: one slot per binding live
// across at least one suspend point, in binding discovery order. The receiver,
// parameters and named result always get a slot since they are captured when
// the generator is constructed.
func synthesize(u *unit, g *generatorFunc, a *analysis) (*machine, error) {
	m := &machine{
		generatorFunc: g,
		suspendPoints: a.suspendPoints,
		fields:        map[types.Object]*slot{},
		names:         map[types.Object]*local{},
		live:          map[int][]*slot{},
	}
	u.renamed = map[types.Object]string{}

	newLocal := func(b *Binding) *local {
		l := &local{name: "_o" + strconv.Itoa(len(m.locals)), binding: b}
		m.locals = append(m.locals, l)
		return l
	}
	for _, decl := range a.decls {
		for _, spec := range decl.Specs {
			var names []*ast.Ident
			switch s := spec.(type) {
			case *ast.TypeSpec:
				names = []*ast.Ident{s.Name}
			case *ast.ValueSpec:
				names = s.Names
			}
			for _, name := range names {
				if obj := u.info.Defs[name]; obj != nil && name.Name != "_" {
					l := newLocal(nil)
					m.names[obj] = l
					u.renamed[obj] = l.name
				}
			}
		}
	}

	for _, b := range a.bindings {
		if s := foreignType(u.pkg, b.Type); s != "" {
			return nil, &UnsupportedError{
				Func:      g.name,
				Construct: "type",
				Reason:    fmt.Sprintf("%s of %s cannot be referred to from package %s", s, b.Name, u.pkg.Name()),
				Pos:       u.fset.Position(b.obj.Pos()),
			}
		}
		switch {
		case b.Kind == Receiver, b.Kind == Parameter, b.Kind == Result, len(b.LiveAt) > 0:
			if obj := localType(b.Type); obj != nil {
				return nil, &UnsupportedError{
					Func:      g.name,
					Construct: "type declaration",
					Reason:    fmt.Sprintf("type %s is local to the function but %s is live across a suspend point", obj.Name(), b.Name),
					Pos:       u.fset.Position(b.obj.Pos()),
				}
			}
			s := &slot{field: "x" + strconv.Itoa(len(m.slots)), binding: b}
			m.slots = append(m.slots, s)
			m.fields[b.obj] = s
			for _, id := range b.LiveAt {
				m.live[id] = append(m.live[id], s)
			}
		default:
			m.names[b.obj] = newLocal(b)
		}
	}

	m.layout = m.describe(u)
	return m, nil
}

func (m *machine) describe(u *unit) *Layout {
	qualifier := types.RelativeTo(u.pkg)
	layout := &Layout{
		Package:     u.pkg.Path(),
		Func:        m.name,
		Type:        m.typeName(),
		Constructor: m.constructorName(),
		Elem:        types.TypeString(m.elem, qualifier),
	}

	initial := State{ID: 0, Kind: Initial}
	for _, s := range m.slots {
		b := s.binding
		layout.Slots = append(layout.Slots, Slot{
			Field:    s.field,
			Binding:  b.Name,
			Kind:     b.Kind,
			Type:     types.TypeString(b.Type, qualifier),
			Captured: b.captured,
			LiveAt:   b.LiveAt,
		})
		if b.Kind == Receiver || b.Kind == Parameter || (b.Kind == Result && b.captured) {
			initial.Live = append(initial.Live, s.field)
		}
	}
	layout.States = append(layout.States, initial)
	for _, p := range m.suspendPoints {
		state := State{ID: p.ID, Kind: Suspended, Pos: p.Pos.String()}
		for _, s := range m.live[p.ID] {
			state.Live = append(state.Live, s.field)
		}
		layout.States = append(layout.States, state)
	}
	layout.States = append(layout.States, State{ID: -1, Kind: Terminal})

	for _, l := range m.locals {
		if l.binding != nil {
			layout.Locals = append(layout.Locals, l.binding.Name)
		}
	}
	return layout
}

// storage returns an expression referring to the storage of a binding: a field
// of the record or a local variable of the Next method. For captured bindings,
// the storage holds a pointer to the variable.
func (m *machine) storage(obj types.Object) ast.Expr {
	if s, ok := m.fields[obj]; ok {
		return &ast.SelectorExpr{X: ast.NewIdent("_g"), Sel: ast.NewIdent(s.field)}
	}
	if l, ok := m.names[obj]; ok {
		return ast.NewIdent(l.name)
	}
	return nil
}

// ref returns an expression referring to a binding, or nil if obj is not a
// binding nor a hoisted declaration.
func (m *machine) ref(obj types.Object) ast.Expr {
	x := m.storage(obj)
	if x == nil {
		return nil
	}
	if m.isCaptured(obj) {
		return &ast.ParenExpr{X: &ast.StarExpr{X: x}}
	}
	return x
}

func (m *machine) isCaptured(obj types.Object) bool {
	if s, ok := m.fields[obj]; ok {
		return s.binding.captured
	}
	if l, ok := m.names[obj]; ok && l.binding != nil {
		return l.binding.captured
	}
	return false
}

// recordType returns the type expression of the generator record.
func (m *machine) recordType() ast.Expr {
	name := ast.NewIdent(m.typeName())
	tparams := m.decl.Type.TypeParams
	if tparams == nil || len(tparams.List) == 0 {
		return name
	}
	var indices []ast.Expr
	for _, field := range tparams.List {
		for _, n := range field.Names {
			indices = append(indices, ast.NewIdent(n.Name))
		}
	}
	return indexExpr(name, indices)
}

// storageType returns the type of the storage of a binding.
func (m *machine) storageType(u *unit, b *Binding) ast.Expr {
	t := u.typeExpr(b.Type)
	if b.captured {
		return &ast.StarExpr{X: t}
	}
	return t
}
