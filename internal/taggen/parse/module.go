package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/typeinfo"
)

// Module is a shared context for enum declarations. Every enum belonging to
// a module inherits its configuration. Modules never survive generation;
// they exist only inside taggen files.
type Module struct {
	// Name is the module name user gave when declaring the module as a
	// variable. It can be empty if the module is declared inline.
	Name string

	// Config holds all configuration options defined in this module.
	Config Config

	pos token.Pos
}

func (m *Module) Pos() token.Pos { return m.pos }

// NilModule returns a new empty module with no configuration.
func NilModule() *Module {
	return &Module{}
}

// ParseModules finds and parses all taggen.Module calls in the parsed files.
func (p *Parser) ParseModules() (map[token.Pos]*Module, error) {
	var errs error
	mods := make(map[token.Pos]*Module)

	for _, file := range p.TaggenGoFiles() {
		for id, call := range p.FindModules(file) {
			name := id.Name
			if name == "_" {
				name = ""
			}

			mod, err := p.ParseModule(call, name)
			mods[id.Pos()] = mod
			errs = errors.Join(errs, err)
		}
	}

	return mods, errs
}

// FindModules collects and iterates package-level [taggen.Module] calls. It
// does not collect inline calls.
func (p *Parser) FindModules(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Module") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseModule parses a [taggen.Module] call expression and returns a new
// module.
func (p *Parser) ParseModule(call *ast.CallExpr, name string) (*Module, error) {
	var cfg Config
	err := p.ParseConfig(&cfg, call.Args)

	return &Module{Name: name, Config: cfg, pos: call.Pos()}, err
}

// ParseModuleArg parses a taggen module argument from the given expression.
func (p *Parser) ParseModuleArg(expr ast.Expr, mods map[token.Pos]*Module) (*Module, error) {
	expr = ast.Unparen(expr)

	// Inline Module Declaration
	// =========================
	//
	//	var _ = taggen.Enum(taggen.Module(...), "Light", ...)
	//	                    ^^^^^^^^^^^^^^^^^^
	// This type of module is anonymous and cannot be shared by other enums.
	// It is still useful to group options apart from the variant list.
	if call, ok := expr.(*ast.CallExpr); ok && p.IsDirective(call, "Module") {
		return p.ParseModule(call, "")
	}

	// Validate identifier
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "module must be taggen.Module() or package-level variable")
	}

	t := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(id))

	// Nil Module
	// ==========
	//
	//	var _ = taggen.Enum(nil, "Light", ...)
	//	                    ^^^
	// Nil indicates a new empty module with no configuration.
	if t.IsNil() {
		return NilModule(), nil
	}

	// Package-level Module
	// ====================
	//
	//	var (
	//		mod = taggen.Module(...)
	//		^^^
	//		_ = taggen.Enum(mod, "Light", ...)
	//		_ = taggen.Enum(mod, "Shape", ...)
	//	)
	//
	// This is the most common way to declare and use a module. Multiple
	// enums can belong to the same package-level module.
	modPos := p.Pkg().TypesInfo.ObjectOf(id).Pos()
	mod, ok := mods[modPos]
	if !ok {
		return nil, codefmt.Errorf(p, expr, "cannot find %q module declared by taggen.Module", id.Name)
	}
	return mod, nil
}
