package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

const (
	// DefaultYieldPackage is the import path of the package declaring the
	// default suspend capability type.
	DefaultYieldPackage = "github.com/stealthrocket/itergen"
	// DefaultYieldType is the name of the default suspend capability type.
	DefaultYieldType = "Yield"
	// DefaultOutputFilename is the name of the files that the compiler
	// writes generated code to.
	DefaultOutputFilename = "itergen_generated.go"
)

const generatedHeader = "// Code generated by itergen. DO NOT EDIT."

// Compile compiles generator functions in a module.
//
// The path argument can either be a path to a package within
// the module, or a pattern that matches multiple packages in the
// module (for example, /path/to/module/...). Each package declaring
// generator functions gets a generated file containing their state
// machines; generated files of packages that no longer declare
// generators are removed.
//
// The path can be absolute, or relative to the current working directory.
func Compile(ctx context.Context, path string, options ...Option) error {
	c := newCompiler(options...)
	_, err := c.compile(ctx, path, true)
	return err
}

// Inspect returns the layout of the state machine of each generator function
// found in the packages matched by path, without writing any file.
func Inspect(ctx context.Context, path string, options ...Option) ([]*Layout, error) {
	c := newCompiler(options...)
	return c.compile(ctx, path, false)
}

// GenerateFile compiles the generator functions of a type-checked package
// into the source of a Go file, and returns it along with the layout of each
// state machine. It returns a nil source if the package declares no generator
// functions.
//
// info must record Types, Defs, Uses, Implicits and Selections. The syntax
// trees of the generator functions and info are modified.
func GenerateFile(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info, options ...Option) ([]byte, []*Layout, error) {
	c := newCompiler(options...)
	c.fset = fset
	u := &unit{fset: fset, pkg: pkg, info: info}
	generators, err := c.findGenerators(u, files)
	if err != nil {
		return nil, nil, err
	}
	return c.generate(u, generators)
}

func newCompiler(options ...Option) *compiler {
	c := &compiler{
		outputFilename: DefaultOutputFilename,
		yieldPackage:   DefaultYieldPackage,
		yieldType:      DefaultYieldType,
		concurrency:    runtime.GOMAXPROCS(0),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		fset:           token.NewFileSet(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

type compiler struct {
	outputFilename string
	buildTags      string
	yieldPackage   string
	yieldType      string
	concurrency    int
	logger         *slog.Logger

	fset *token.FileSet
}

func (c *compiler) compile(ctx context.Context, path string, write bool) ([]*Layout, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	var dotdotdot bool
	absPath, dotdotdot = strings.CutSuffix(absPath, "...")
	if s, err := os.Stat(absPath); err != nil {
		return nil, err
	} else if !s.IsDir() {
		// Make sure we're loading whole packages.
		absPath = filepath.Dir(absPath)
	}
	var pattern string
	if dotdotdot {
		pattern = "./..."
	} else {
		pattern = "."
	}

	c.logger.Info("reading, parsing and type-checking", "path", path)
	conf := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedModule |
			packages.NeedImports | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes |
			packages.NeedTypesInfo,
		Fset: c.fset,
		Dir:  absPath,
	}
	pkgs, err := packages.Load(conf, pattern)
	if err != nil {
		return nil, fmt.Errorf("packages.Load %q: %w", path, err)
	}

	var (
		mutex   sync.Mutex
		layouts = map[*packages.Package][]*Layout{}
	)
	group, ctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		group.SetLimit(c.concurrency)
	}
	for _, p := range pkgs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := c.compilePackage(p, write)
			if err != nil {
				return fmt.Errorf("package %s: %w", p.PkgPath, err)
			}
			mutex.Lock()
			layouts[p] = l
			mutex.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var all []*Layout
	for _, p := range pkgs {
		all = append(all, layouts[p]...)
	}
	c.logger.Info("done", "packages", len(pkgs), "generators", len(all))
	return all, nil
}

func (c *compiler) compilePackage(p *packages.Package, write bool) ([]*Layout, error) {
	for _, err := range p.Errors {
		if err.Kind != packages.TypeError {
			return nil, err
		}
	}
	if p.Types == nil || p.TypesInfo == nil {
		return nil, fmt.Errorf("missing type information")
	}
	c.logger.Debug("compiling package", "package", p.PkgPath)

	u := &unit{fset: c.fset, pkg: p.Types, info: p.TypesInfo}
	files := make([]*ast.File, 0, len(p.Syntax))
	for _, f := range p.Syntax {
		if filepath.Base(c.fset.Position(f.Package).Filename) != c.outputFilename {
			files = append(files, f)
		}
	}

	// Type errors are expected in packages that call the constructors of
	// generators that were not generated yet. Only errors within generator
	// functions prevent compiling them.
	generators, err := c.findGenerators(u, files)
	if err != nil {
		return nil, err
	}
	for _, typeErr := range p.TypeErrors {
		if slices.ContainsFunc(generators, func(g *generatorFunc) bool {
			return g.decl.Pos() <= typeErr.Pos && typeErr.Pos < g.decl.End()
		}) {
			return nil, typeErr
		}
		c.logger.Debug("ignoring type error", "package", p.PkgPath, "error", typeErr.Msg)
	}

	src, layouts, err := c.generate(u, generators)
	if err != nil {
		return nil, err
	}
	if !write || len(p.GoFiles) == 0 {
		return layouts, nil
	}

	outputPath := filepath.Join(filepath.Dir(p.GoFiles[0]), c.outputFilename)
	if src == nil {
		return nil, c.removeStaleFile(outputPath)
	}
	c.logger.Info("writing generated file", "path", outputPath, "generators", len(layouts))
	if err := os.WriteFile(outputPath, src, 0644); err != nil {
		return nil, err
	}
	return layouts, nil
}

// removeStaleFile removes a file previously generated in a package that no
// longer declares generator functions.
func (c *compiler) removeStaleFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !bytes.HasPrefix(b, []byte(generatedHeader)) {
		return nil
	}
	c.logger.Info("removing stale generated file", "path", path)
	return os.Remove(path)
}

func (c *compiler) generate(u *unit, generators []*generatorFunc) ([]byte, []*Layout, error) {
	if len(generators) == 0 {
		return nil, nil, nil
	}

	gen := &ast.File{Name: ast.NewIdent(u.pkg.Name())}
	layouts := make([]*Layout, 0, len(generators))
	for _, g := range generators {
		decls, layout, err := c.compileGenerator(u, g)
		if err != nil {
			return nil, nil, err
		}
		gen.Decls = append(gen.Decls, decls...)
		layouts = append(layouts, layout)
	}

	if err := addImports(u, gen); err != nil {
		return nil, nil, err
	}
	expr, err := c.buildConstraint(generators)
	if err != nil {
		return nil, nil, err
	}
	clearPos(gen)

	// Comments are awkward to attach to the tree (they rely on token.Pos, which
	// is coupled to a token.FileSet). Instead, just write out the raw strings.
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	b.WriteString("\n\n")
	if expr != nil {
		b.WriteString("//go:build ")
		b.WriteString(expr.String())
		b.WriteString("\n\n")
	}
	if err := format.Node(&b, u.fset, gen); err != nil {
		return nil, nil, err
	}
	return b.Bytes(), layouts, nil
}

// compileGenerator compiles a generator function into the declarations of its
// state machine.
func (c *compiler) compileGenerator(u *unit, g *generatorFunc) (decls []ast.Decl, layout *Layout, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %s: internal error: %v", u.fset.Position(g.decl.Pos()), g.name, r)
		}
	}()
	c.logger.Debug("compiling generator", "package", u.pkg.Path(), "func", g.name)

	mayYield := findYields(g.decl.Body, u.info, g.yield)
	if err := unsupported(u, g, mayYield); err != nil {
		return nil, nil, err
	}
	body := desugar(u, g.decl.Body, mayYield)

	a := analyze(u, g, body, mayYield)
	m, err := synthesize(u, g, a)
	if err != nil {
		return nil, nil, err
	}

	m.hoistDecls(u, body, mayYield)
	body = m.renameObjects(u, body).(*ast.BlockStmt)
	for i, decl := range a.decls {
		a.decls[i] = m.renameObjects(u, decl).(*ast.GenDecl)
	}
	m.rewriteReturns(body)

	return m.emit(u, body, a.decls, mayYield), m.layout, nil
}

// addImports adds the imports required by the generated code to a file.
func addImports(u *unit, gen *ast.File) error {
	imports := map[string]string{}

	var err error
	var visit func(ast.Node) bool
	visit = func(n ast.Node) bool {
		if err != nil {
			return false
		}
		switch x := n.(type) {
		case *ast.SelectorExpr:
			ident, ok := x.X.(*ast.Ident)
			if !ok || ident.Name == "" {
				break
			}
			pkgname, ok := u.info.ObjectOf(ident).(*types.PkgName)
			if !ok {
				break
			}
			importPath := pkgname.Imported().Path()
			if existing, ok := imports[ident.Name]; ok && existing != importPath {
				err = fmt.Errorf("conflicting imports: %s refers to both %q and %q", ident.Name, existing, importPath)
				return false
			}
			imports[ident.Name] = importPath
			return false
		case *ast.Ident:
			obj := u.info.Uses[x]
			if obj == nil || obj.Pkg() == nil || obj.Pkg() == u.pkg {
				break
			}
			if _, ok := obj.(*types.PkgName); ok {
				break
			}
			if obj.Parent() == obj.Pkg().Scope() {
				err = fmt.Errorf("%s: dot-imported identifier %s is not supported in generator functions", u.fset.Position(x.Pos()), x.Name)
				return false
			}
		}
		return true
	}
	ast.Inspect(gen, visit)
	if err != nil {
		return err
	}

	if len(imports) == 0 {
		return nil
	}

	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	slices.Sort(names)

	importspecs := make([]ast.Spec, 0, len(imports))
	for _, name := range names {
		importPath := imports[name]
		spec := &ast.ImportSpec{
			Path: &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(importPath)},
		}
		if name != path.Base(importPath) {
			spec.Name = ast.NewIdent(name)
		}
		importspecs = append(importspecs, spec)
	}

	gen.Decls = append([]ast.Decl{&ast.GenDecl{
		Tok:   token.IMPORT,
		Specs: importspecs,
	}}, gen.Decls...)

	return nil
}
