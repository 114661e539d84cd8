// Package purity finds functions with observable side effects in Go source:
// writes to package-level variables and writes through their parameters.
package purity

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// Kind classifies a side effect.
type Kind int

const (
	KindUnknown Kind = iota
	// GlobalWrite is an assignment to a package-level variable.
	GlobalWrite
	// ArgumentWrite is an assignment through a pointer, slice or map parameter.
	ArgumentWrite
)

func (k Kind) String() string {
	switch k {
	case GlobalWrite:
		return "global-write"
	case ArgumentWrite:
		return "argument-write"
	default:
		return "unknown"
	}
}

// Finding is one side effect in one function. Repeated writes to the same
// target are reported once, at the first write.
type Finding struct {
	Package  string
	Function string
	Kind     Kind
	Target   string
	Pos      token.Position
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s.%s: %s of %s", f.Pos, f.Package, f.Function, f.Kind, f.Target)
}

// Checker loads packages and reports their impure functions.
//
// The zero value is ready to use.
type Checker struct {
	fset *token.FileSet
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
}

// NewChecker creates a new checker.
func NewChecker() *Checker {
	return &Checker{fset: token.NewFileSet()}
}

// Check loads the packages matching patterns and returns their findings,
// ordered by position.
func (c *Checker) Check(patterns ...string) ([]Finding, error) {
	if c.fset == nil {
		c.fset = token.NewFileSet()
	}
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
		Fset: c.fset,
		Dir:  c.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages contain errors: %v", patterns)
	}

	var findings []Finding
	for _, pkg := range pkgs {
		findings = append(findings, c.checkPackage(pkg)...)
	}
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i].Pos, findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return findings, nil
}

func (c *Checker) checkPackage(pkg *packages.Package) []Finding {
	var findings []Finding
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				continue
			}
			fn := &funcScan{
				pkg:    pkg,
				fset:   c.fset,
				name:   funcName(fd),
				params: paramObjects(fd, pkg.TypesInfo),
			}
			ast.Inspect(fd.Body, fn.visit)
			findings = append(findings, fn.findings...)
		}
	}
	return findings
}

type funcScan struct {
	pkg      *packages.Package
	fset     *token.FileSet
	name     string
	params   map[types.Object]bool
	seen     map[string]bool
	findings []Finding
}

func (s *funcScan) visit(n ast.Node) bool {
	switch stmt := n.(type) {
	case *ast.AssignStmt:
		if stmt.Tok == token.DEFINE {
			return true
		}
		for _, lhs := range stmt.Lhs {
			s.checkWrite(lhs)
		}
	case *ast.IncDecStmt:
		s.checkWrite(stmt.X)
	case *ast.CallExpr:
		s.checkBuiltinCall(stmt)
	}
	return true
}

func (s *funcScan) checkWrite(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Ident:
		if v, ok := s.pkg.TypesInfo.Uses[e].(*types.Var); ok && isPackageLevel(v, s.pkg.Types) {
			s.report(GlobalWrite, e.Name, e.Pos())
		}
	case *ast.ParenExpr:
		s.checkWrite(e.X)
	case *ast.StarExpr:
		s.checkThrough(e.X, e.Pos())
	case *ast.IndexExpr:
		s.checkThrough(e.X, e.Pos())
	case *ast.SelectorExpr:
		// p.Field = x writes through p only when p is a pointer.
		if id, ok := e.X.(*ast.Ident); ok {
			if obj := s.pkg.TypesInfo.Uses[id]; obj != nil && s.params[obj] {
				if _, isPtr := obj.Type().Underlying().(*types.Pointer); isPtr {
					s.report(ArgumentWrite, id.Name, e.Pos())
				}
			}
		}
		s.checkWrite(e.X)
	}
}

// checkBuiltinCall handles delete, clear and copy, which all write into
// their first argument.
func (s *funcScan) checkBuiltinCall(call *ast.CallExpr) {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok || len(call.Args) == 0 {
		return
	}
	if _, ok := s.pkg.TypesInfo.Uses[id].(*types.Builtin); !ok {
		return
	}
	switch id.Name {
	case "delete", "clear", "copy":
		s.checkThrough(call.Args[0], call.Pos())
	}
}

// checkThrough handles *x = v and x[i] = v, which write into whatever x
// refers to.
func (s *funcScan) checkThrough(x ast.Expr, pos token.Pos) {
	id, ok := ast.Unparen(x).(*ast.Ident)
	if !ok {
		s.checkWrite(x)
		return
	}
	obj := s.pkg.TypesInfo.Uses[id]
	if obj == nil {
		return
	}
	if s.params[obj] {
		s.report(ArgumentWrite, id.Name, pos)
		return
	}
	if v, ok := obj.(*types.Var); ok && isPackageLevel(v, s.pkg.Types) {
		s.report(GlobalWrite, id.Name, pos)
	}
}

func (s *funcScan) report(kind Kind, target string, pos token.Pos) {
	key := kind.String() + " " + target
	if s.seen[key] {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	s.seen[key] = true
	s.findings = append(s.findings, Finding{
		Package:  s.pkg.PkgPath,
		Function: s.name,
		Kind:     kind,
		Target:   target,
		Pos:      s.fset.Position(pos),
	})
}

func isPackageLevel(v *types.Var, pkg *types.Package) bool {
	return pkg != nil && v.Parent() == pkg.Scope()
}

// paramObjects collects the receiver and parameters of fd whose writes are
// visible to the caller: pointers, slices and maps.
func paramObjects(fd *ast.FuncDecl, info *types.Info) map[types.Object]bool {
	params := make(map[types.Object]bool)
	var fields []*ast.Field
	if fd.Recv != nil {
		fields = append(fields, fd.Recv.List...)
	}
	if fd.Type.Params != nil {
		fields = append(fields, fd.Type.Params.List...)
	}
	for _, field := range fields {
		for _, name := range field.Names {
			obj := info.Defs[name]
			if obj == nil {
				continue
			}
			switch obj.Type().Underlying().(type) {
			case *types.Pointer, *types.Slice, *types.Map:
				params[obj] = true
			}
		}
	}
	return params
}

func funcName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	recv := fd.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	if idx, ok := recv.(*ast.IndexExpr); ok {
		recv = idx.X
	}
	if id, ok := recv.(*ast.Ident); ok {
		return id.Name + "." + fd.Name.Name
	}
	return fd.Name.Name
}
