package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/taggen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Many validation rules are implemented in the expected paths by narrow parsing
// functions. But some rules need to be checked globally. That's what this
// function does.
func (p *Parser) Validate(mods map[token.Pos]*Module) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateAssignedDirectives(file))
		errs = errors.Join(errs, p.validateDeclOnly(file, mods))
	}
	errs = errors.Join(errs, p.validateModuleUsages(mods))
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/taggen" have
// "//go:build taggen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find taggen import
	var taggenImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsTaggenImport(strings.Trim(imp.Path.Value, `"`)) {
			taggenImport = imp
			break
		}
	}
	if taggenImport == nil {
		return nil // No taggen import found
	}

	// Check for "//go:build taggen" constraint
	if hasGoBuildTaggen(file) {
		return nil // Constraint satisfied
	}

	// This file imports taggen but has no "//go:build taggen" constraint
	return codefmt.Errorf(p, taggenImport, `file must have "//go:build taggen" constraint when importing taggen`)
}

// validateAssignedDirectives checks illegal assignments of taggen directives.
//
// Only modules and enums are declared by assignment. Other directives, for
// example options and variants, must stay inlined in their enclosing
// directive call.
func (p *Parser) validateAssignedDirectives(file *ast.File) error {
	if !hasGoBuildTaggen(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ValueSpec, *ast.AssignStmt:
			ast.Inspect(node, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}

				directive, ok := p.GetDirective(call)
				if !ok {
					return true
				}

				// Modules and enums are declared by assignment.
				switch directive {
				case "Module", "Enum":
					return false
				}

				err := codefmt.Errorf(p, call, "cannot assign %s to variable", directive)
				errs = errors.Join(errs, err)
				return false
			})
			return false
		}
		return true
	})
	return errs
}

// validateDeclOnly checks that taggen files declare nothing but taggen
// directives.
//
// Taggen files build only under the taggen tag. A type or function declared
// there is invisible to regular builds, while generated code and sample
// expressions may still reference it. Restricting taggen files to directive
// declarations keeps every referenced name in a regular file.
func (p *Parser) validateDeclOnly(file *ast.File, mods map[token.Pos]*Module) error {
	if !hasGoBuildTaggen(file) {
		return nil
	}

	var errs error
	flag := func(poser codefmt.Poser, name string) {
		err := codefmt.Errorf(p, poser, "cannot declare %s in taggen file; invisible without the taggen tag", name)
		errs = errors.Join(errs, err)
	}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			flag(decl.Name, decl.Name.Name)

		case *ast.GenDecl:
			switch decl.Tok {
			case token.IMPORT:
				continue

			case token.TYPE:
				for _, spec := range decl.Specs {
					spec := spec.(*ast.TypeSpec)
					flag(spec.Name, spec.Name.Name)
				}

			case token.CONST, token.VAR:
				for _, spec := range decl.Specs {
					spec := spec.(*ast.ValueSpec)
					if decl.Tok == token.VAR && p.isDirectiveSpec(spec, mods) {
						continue
					}
					flag(spec, spec.Names[0].Name)
				}
			}
		}
	}
	return errs
}

// isDirectiveSpec reports whether every value of the var spec is a taggen
// directive call or a reference to a module.
func (p *Parser) isDirectiveSpec(spec *ast.ValueSpec, mods map[token.Pos]*Module) bool {
	if len(spec.Names) != len(spec.Values) {
		return false
	}

	for _, value := range spec.Values {
		if call, ok := ast.Unparen(value).(*ast.CallExpr); ok && p.IsDirective(call, "") {
			continue
		}
		if p.isModuleIdent(value, mods) {
			continue
		}
		return false
	}
	return true
}

func (p *Parser) isModuleIdent(expr ast.Expr, mods map[token.Pos]*Module) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false
	}

	obj := p.pkg.TypesInfo.ObjectOf(id)
	if obj == nil {
		return false
	}

	_, ok = mods[obj.Pos()]
	return ok
}

// validateModuleUsages checks illegal references to modules.
//
// Modules are only allowed to be assigned to variables (except exported ones)
// or used as arguments to taggen directives. Any other usages are illegal,
// because modules live in taggen files only, and any remaining references to
// modules will not compile without the taggen tag.
func (p *Parser) validateModuleUsages(mods map[token.Pos]*Module) error {
	var errs error
	blanks := p.findBlankValues()
	for _, file := range p.Pkg().Syntax {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			if call, ok := c.Node().(*ast.CallExpr); ok {
				if p.IsDirective(call, "") {
					// A module can be used by taggen directives. That's fine.
					return false
				}
				return true
			}

			// We will check all use of identifiers.
			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			if _, ok := blanks[id.Pos()]; ok {
				// Assigned to blank identifier. That's fine.
				return false
			}

			obj := p.pkg.TypesInfo.ObjectOf(id)
			if obj == nil {
				// Cannot resolve identifier. Skip it.
				return false
			}

			mod, ok := mods[obj.Pos()]
			if !ok {
				// Not a module identifier. Skip it.
				return false
			}

			if id.IsExported() {
				err := codefmt.Errorf(p, id, "cannot export module %q; invisible without the taggen tag", mod.Name)
				errs = errors.Join(errs, err)
				return false
			}

			if id.Pos() == obj.Pos() {
				// This is the module identifier declaration. That's fine.
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use module %q outside taggen directives; invisible without the taggen tag", mod.Name)
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}

// findBlankValues finds all expressions assigned to blank identifier (_) by its
// position.
func (p *Parser) findBlankValues() map[token.Pos]struct{} {
	blanks := make(map[token.Pos]struct{})
	for _, file := range p.Pkg().Syntax {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			switch node := c.Node().(type) {
			case *ast.ValueSpec:
				if len(node.Names) == len(node.Values) {
					// var a = b
					// var c, d = e, f
					for i, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Names) > 1 && len(node.Values) == 1 {
					// var a, b = f()
					for _, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[0].Pos()] = struct{}{}
						}
					}
				}
			case *ast.AssignStmt:
				if len(node.Lhs) == len(node.Rhs) {
					// a := b
					// c, d := e, f
					for i, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Lhs) > 1 && len(node.Rhs) == 1 {
					// a, b := f()
					for _, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[0].Pos()] = struct{}{}
						}
					}
				}
			}
			return true
		}, nil)
	}
	return blanks
}
