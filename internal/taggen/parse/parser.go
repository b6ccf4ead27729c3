package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

func IsTaggenImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/sublee/taggen"
}

// Parser parses an AST of the underlying package to collect taggen enum
// declarations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the taggen directive function if the call
// expression is a taggen directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsTaggenImport(pkg.Path()) {
		// Not taggen function
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a taggen directive with the
// given name. If name is empty, it checks if the call is any taggen directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		// Any taggen directive
		return true
	}

	return calleeName == name
}

// TaggenGoFiles returns the Go files that have a "//go:build taggen"
// constraint.
func (p *Parser) TaggenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildTaggen(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildTaggen checks if the file has a "//go:build taggen" constraint.
func hasGoBuildTaggen(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "taggen" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// unchain unrolls a method chain of call expressions. It returns the calls
// in source order, so the root call comes first.
//
//	Unit("Amber").Value("2")
//	^^^^^^^^^^^^^ root
func unchain(call *ast.CallExpr) []*ast.CallExpr {
	calls := []*ast.CallExpr{call}
	for {
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			break
		}

		prev, ok := ast.Unparen(sel.X).(*ast.CallExpr)
		if !ok {
			break
		}

		calls = append(calls, prev)
		call = prev
	}

	slices.Reverse(calls)
	return calls
}
