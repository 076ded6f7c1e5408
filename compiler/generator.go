package compiler

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"unicode"
	"unicode/utf8"
)

// generatorFunc is a generator function found in a package.
type generatorFunc struct {
	file *ast.File
	decl *ast.FuncDecl
	sig  *types.Signature
	// name is the display name of the function, e.g. "Squares" or
	// "(*Library).Books".
	name string
	// base is the name that generated declarations are derived from, e.g.
	// "Squares" or "LibraryBooks".
	base string
	// yield is the suspend capability parameter, and elem the type of
	// values that it emits.
	yield types.Object
	elem  types.Type
	// result is the named error result, if any.
	result *types.Var
}

func (g *generatorFunc) typeName() string { return g.base + "Generator" }

func (g *generatorFunc) constructorName() string {
	if ast.IsExported(g.base) {
		return "New" + g.base + "Generator"
	}
	return "new" + upperFirst(g.base) + "Generator"
}

// findGenerators returns the generator functions declared in a list of files.
// A function is a generator when one of its parameters has the suspend
// capability type.
func (c *compiler) findGenerators(u *unit, files []*ast.File) ([]*generatorFunc, error) {
	var generators []*generatorFunc
	for _, f := range files {
		for _, anydecl := range f.Decls {
			decl, ok := anydecl.(*ast.FuncDecl)
			if !ok || decl.Body == nil {
				continue
			}
			g, err := c.generatorOf(u, decl)
			if err != nil {
				return nil, err
			}
			if g != nil {
				g.file = f
				generators = append(generators, g)
			}
		}
	}
	return generators, nil
}

func (c *compiler) generatorOf(u *unit, decl *ast.FuncDecl) (*generatorFunc, error) {
	fn, ok := u.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil, nil
	}
	sig := fn.Type().(*types.Signature)
	g := &generatorFunc{decl: decl, sig: sig, name: decl.Name.Name, base: decl.Name.Name}

	if recv := sig.Recv(); recv != nil {
		t := recv.Type()
		ptr := ""
		if p, ok := t.(*types.Pointer); ok {
			t, ptr = p.Elem(), "*"
		}
		named, ok := types.Unalias(t).(*types.Named)
		if !ok {
			return nil, nil
		}
		g.name = fmt.Sprintf("(%s%s).%s", ptr, named.Obj().Name(), decl.Name.Name)
		// Generated names of methods are exported if the method is.
		g.base = named.Obj().Name() + upperFirst(decl.Name.Name)
		if !ast.IsExported(decl.Name.Name) {
			g.base = lowerFirst(g.base)
		}
	}

	params := sig.Params()
	for i := range params.Len() {
		p := params.At(i)
		elem, ok := c.yieldElem(p.Type())
		if !ok {
			continue
		}
		if g.yield != nil {
			return nil, g.unsupported(u, decl.Type, "signature", "more than one suspend capability parameter")
		}
		g.yield, g.elem = p, elem
	}
	if g.yield == nil {
		return nil, nil
	}

	if sig.Recv() != nil && sig.RecvTypeParams().Len() > 0 {
		return nil, g.unsupported(u, decl.Recv, "method", "generator methods cannot have a generic receiver")
	}
	if sig.Variadic() && params.At(params.Len()-1) == g.yield {
		return nil, g.unsupported(u, decl.Type, "signature", "the suspend capability cannot be variadic")
	}
	if g.yield.Name() == "" || g.yield.Name() == "_" {
		c.logger.Warn("generator does not name its suspend capability", "func", g.name)
	}

	switch results := sig.Results(); results.Len() {
	case 0:
	case 1:
		r := results.At(0)
		if !types.Identical(r.Type(), types.Universe.Lookup("error").Type()) {
			return nil, g.unsupported(u, decl.Type.Results, "signature", "generator functions may only return an error")
		}
		if r.Name() != "" && r.Name() != "_" {
			g.result = r
		}
	default:
		return nil, g.unsupported(u, decl.Type.Results, "signature", "generator functions may only return an error")
	}

	for _, name := range []string{g.typeName(), g.constructorName()} {
		if obj := u.pkg.Scope().Lookup(name); obj != nil && !c.isGenerated(u, obj) {
			return nil, fmt.Errorf("%s: %s: generated name %s conflicts with %s declared at %s",
				u.fset.Position(decl.Pos()), g.name, name, obj.Name(), u.fset.Position(obj.Pos()))
		}
	}
	return g, nil
}

// yieldElem returns the element type of t if it is an instance of the suspend
// capability type.
func (c *compiler) yieldElem(t types.Type) (types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Origin().Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != c.yieldPackage || obj.Name() != c.yieldType {
		return nil, false
	}
	args := named.TypeArgs()
	if args.Len() != 1 {
		return nil, false
	}
	return args.At(0), true
}

// isGenerated is true if obj is declared in a file previously written by the
// compiler.
func (c *compiler) isGenerated(u *unit, obj types.Object) bool {
	filename := u.fset.Position(obj.Pos()).Filename
	return filename != "" && filepath.Base(filename) == c.outputFilename
}

func (g *generatorFunc) unsupported(u *unit, n ast.Node, construct, reason string) error {
	return &UnsupportedError{
		Func:      g.name,
		Construct: construct,
		Reason:    reason,
		Pos:       u.fset.Position(n.Pos()),
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
