package compiler

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"go/version"
	"strconv"
)

// unit is the type-checked package that generators are compiled from.
type unit struct {
	fset *token.FileSet
	pkg  *types.Package
	info *types.Info

	// Local type and constant declarations hoisted out of a generator body
	// are renamed; typeExpr consults this map so that hoisted locals can
	// refer to them.
	renamed map[types.Object]string

	// Variables declared by the init statement of desugared for loops that
	// get a new instance at each iteration.
	loopVars map[*ast.ForStmt][]types.Object
}

// perIterationLoopVars is true if the file containing pos is compiled with
// the for loop semantics of Go 1.22 and later, where each iteration has its
// own instance of the variables declared by the init statement. Files of
// unknown version use the current semantics.
func (u *unit) perIterationLoopVars(pos token.Pos) bool {
	for f, v := range u.info.FileVersions {
		if f.FileStart <= pos && pos < f.FileEnd {
			return !version.IsValid(v) || version.Compare(v, "go1.22") >= 0
		}
	}
	return true
}

// typeExpr converts a types.Type to an ast.Expr.
func (u *unit) typeExpr(typ types.Type) ast.Expr {
	switch t := typ.(type) {
	case *types.Alias:
		return u.typeExpr(types.Unalias(t))
	case *types.Basic:
		switch t {
		case types.Typ[types.UntypedBool]:
			t = types.Typ[types.Bool]
		case types.Typ[types.UntypedInt]:
			t = types.Typ[types.Int]
		case types.Typ[types.UntypedFloat]:
			t = types.Typ[types.Float64]
		case types.Typ[types.UntypedRune]:
			t = types.Typ[types.Rune]
		case types.Typ[types.UntypedString]:
			t = types.Typ[types.String]
		}
		return ast.NewIdent(t.String())
	case *types.Slice:
		return &ast.ArrayType{Elt: u.typeExpr(t.Elem())}
	case *types.Array:
		return &ast.ArrayType{
			Len: &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(t.Len(), 10)},
			Elt: u.typeExpr(t.Elem()),
		}
	case *types.Map:
		return &ast.MapType{
			Key:   u.typeExpr(t.Key()),
			Value: u.typeExpr(t.Elem()),
		}
	case *types.Struct:
		fields := make([]*ast.Field, t.NumFields())
		for i := range fields {
			f := t.Field(i)
			fields[i] = &ast.Field{Type: u.typeExpr(f.Type())}
			if !f.Anonymous() {
				fields[i].Names = []*ast.Ident{ast.NewIdent(f.Name())}
			}
			if tag := t.Tag(i); tag != "" {
				fields[i].Tag = &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(tag)}
			}
		}
		return &ast.StructType{Fields: &ast.FieldList{List: fields}}
	case *types.Pointer:
		return &ast.StarExpr{X: u.typeExpr(t.Elem())}
	case *types.Interface:
		if t.Empty() {
			return ast.NewIdent("any")
		}
		var methods []*ast.Field
		for i := range t.NumEmbeddeds() {
			methods = append(methods, &ast.Field{Type: u.typeExpr(t.EmbeddedType(i))})
		}
		for i := range t.NumExplicitMethods() {
			m := t.ExplicitMethod(i)
			methods = append(methods, &ast.Field{
				Names: []*ast.Ident{ast.NewIdent(m.Name())},
				Type:  u.funcType(m.Type().(*types.Signature)),
			})
		}
		return &ast.InterfaceType{Methods: &ast.FieldList{List: methods}}
	case *types.Signature:
		return u.funcType(t)
	case *types.Named:
		obj := t.Obj()
		var namedExpr ast.Expr
		if name, ok := u.renamed[obj]; ok {
			namedExpr = ast.NewIdent(name)
		} else if pkg := obj.Pkg(); pkg == nil || pkg == u.pkg {
			namedExpr = ast.NewIdent(obj.Name())
		} else {
			// Record the package name as used so that addImports picks it
			// up when assembling the generated file.
			pkgident := ast.NewIdent(pkg.Name())
			u.info.Uses[pkgident] = types.NewPkgName(token.NoPos, u.pkg, pkgident.Name, pkg)
			namedExpr = &ast.SelectorExpr{X: pkgident, Sel: ast.NewIdent(obj.Name())}
		}
		if typeArgs := t.TypeArgs(); typeArgs != nil {
			indices := make([]ast.Expr, typeArgs.Len())
			for i := range indices {
				indices[i] = u.typeExpr(typeArgs.At(i))
			}
			namedExpr = indexExpr(namedExpr, indices)
		}
		return namedExpr
	case *types.Chan:
		c := &ast.ChanType{Value: u.typeExpr(t.Elem())}
		switch t.Dir() {
		case types.SendRecv:
			c.Dir = ast.SEND | ast.RECV
		case types.SendOnly:
			c.Dir = ast.SEND
		case types.RecvOnly:
			c.Dir = ast.RECV
		}
		return c
	case *types.TypeParam:
		obj := t.Obj()
		ident := ast.NewIdent(obj.Name())
		u.info.Uses[ident] = obj
		return ident
	}
	panic(fmt.Sprintf("not implemented: %T", typ))
}

func (u *unit) funcType(signature *types.Signature) *ast.FuncType {
	params := u.fieldList(signature.Params())
	if signature.Variadic() {
		last := params.List[len(params.List)-1]
		last.Type = &ast.Ellipsis{Elt: last.Type.(*ast.ArrayType).Elt}
	}
	return &ast.FuncType{
		Params:  params,
		Results: u.fieldList(signature.Results()),
	}
}

func (u *unit) fieldList(tuple *types.Tuple) *ast.FieldList {
	fields := make([]*ast.Field, tuple.Len())
	for i := range fields {
		fields[i] = &ast.Field{Type: u.typeExpr(tuple.At(i).Type())}
	}
	return &ast.FieldList{List: fields}
}

// zeroExpr returns an expression for the zero value of typ.
func (u *unit) zeroExpr(typ types.Type) ast.Expr {
	switch t := typ.Underlying().(type) {
	case *types.Basic:
		switch {
		case t.Info()&types.IsBoolean != 0:
			return ast.NewIdent("false")
		case t.Info()&types.IsString != 0:
			return &ast.BasicLit{Kind: token.STRING, Value: `""`}
		case t.Info()&types.IsNumeric != 0:
			return &ast.BasicLit{Kind: token.INT, Value: "0"}
		}
		return ast.NewIdent("nil") // unsafe.Pointer
	case *types.Struct, *types.Array:
		return &ast.CompositeLit{Type: u.typeExpr(typ)}
	case *types.Interface:
		if _, ok := types.Unalias(typ).(*types.TypeParam); ok {
			return &ast.StarExpr{X: &ast.CallExpr{
				Fun:  ast.NewIdent("new"),
				Args: []ast.Expr{u.typeExpr(typ)},
			}}
		}
	}
	return ast.NewIdent("nil")
}

func indexExpr(x ast.Expr, indices []ast.Expr) ast.Expr {
	if len(indices) == 1 {
		return &ast.IndexExpr{X: x, Index: indices[0]}
	}
	return &ast.IndexListExpr{X: x, Indices: indices}
}

// isBlank is true if e is the blank identifier.
func isBlank(e ast.Expr) bool {
	i, ok := e.(*ast.Ident)
	return ok && i.Name == "_"
}
