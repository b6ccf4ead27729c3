package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/taggen/internal/codefmt"
)

// Enum is one parsed enum declaration with its effective config and ordered
// variants.
type Enum struct {
	Name     string
	Doc      string
	Config   Config
	Variants []Variant

	// NamePos points at the name argument of the Enum call. Errors about
	// the enum as a whole anchor here.
	NamePos token.Pos

	// Pos and End span the whole var declaration.
	pos, end token.Pos
}

func (e *Enum) Pos() token.Pos { return e.pos }
func (e *Enum) End() token.Pos { return e.end }

// SetSpan records the source range of the declaration. The parser spans the
// whole var declaration; the schema frontend spans the enum's mapping node.
func (e *Enum) SetSpan(pos, end token.Pos) { e.pos, e.end = pos, end }

// ParseEnums parses every enum declaration in the package's taggen files.
// Enums keep their declaration order across files. Declarations that fail
// to parse are dropped from the result while their errors are joined, so
// the returned enums are always safe to build and independent declarations
// keep reporting their own errors.
func (p *Parser) ParseEnums(mods map[token.Pos]*Module) ([]*Enum, error) {
	var errs error
	enums := linkedhashmap.New()

	for _, file := range p.TaggenGoFiles() {
		for enum, err := range p.findEnumsInFile(file, mods) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if old, ok := enums.Get(enum.Name); ok {
				errs = errors.Join(errs, codefmt.Errorf(p, enum, "enum %s already declared at %b", enum.Name, old.(*Enum)))
				continue
			}
			enums.Put(enum.Name, enum)
		}
	}

	parsed := make([]*Enum, 0, enums.Size())
	it := enums.Iterator()
	for it.Next() {
		parsed = append(parsed, it.Value().(*Enum))
	}
	return parsed, errs
}

// findEnumsInFile finds and parses var declarations assigning taggen.Enum in
// the file.
func (p *Parser) findEnumsInFile(file *ast.File, mods map[token.Pos]*Module) iter.Seq2[*Enum, error] {
	return func(yield func(*Enum, error) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok || len(val.Names) != len(val.Values) {
					continue
				}

				for i, value := range val.Values {
					call, ok := ast.Unparen(value).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Enum") {
						continue
					}

					// A single var declaration without parentheses hangs
					// its doc on the GenDecl, not on the spec.
					doc := val.Doc
					if doc == nil {
						doc = gen.Doc
					}

					enum, err := p.parseEnum(val.Names[i], call, doc, val, mods)
					if !yield(enum, err) {
						return
					}
				}
			}
		}
	}
}

func (p *Parser) parseEnum(id *ast.Ident, call *ast.CallExpr, doc *ast.CommentGroup, spec *ast.ValueSpec, mods map[token.Pos]*Module) (*Enum, error) {
	var errs []error

	if id.Name != "_" {
		errs = append(errs, codefmt.Errorf(p, id, "enum declaration must be assigned to the blank identifier"))
	}

	if len(call.Args) < 2 {
		errs = append(errs, codefmt.Errorf(p, call, "need at least 2 parameters"))
		return nil, errors.Join(errs...)
	}

	mod, err := p.ParseModuleArg(call.Args[0], mods)
	if err != nil {
		errs = append(errs, err)
		// Prevent nil panic to collect as many errors as possible.
		mod = NilModule()
	}

	enum := &Enum{Config: mod.Config.Fork()}
	enum.SetSpan(spec.Pos(), spec.End())
	enum.Doc = strings.TrimSuffix(doc.Text(), "\n")

	name, err := parseArgExpr[string](p, call.Args[1])
	switch {
	case err != nil:
		errs = append(errs, err)
	case !token.IsIdentifier(name) || name == "_":
		errs = append(errs, codefmt.Errorf(p, call.Args[1], "invalid enum name %q", name))
	default:
		enum.Name = name
		enum.NamePos = call.Args[1].Pos()
	}

	names := linkedhashset.New()
	for _, arg := range call.Args[2:] {
		if !p.isVariantArg(arg) {
			if err := p.ParseConfigArg(&enum.Config, arg); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		v, err := p.ParseVariant(ast.Unparen(arg).(*ast.CallExpr))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if names.Contains(v.Name) {
			errs = append(errs, codefmt.Errorf(p, codefmt.Pos(v.NamePos), "variant %s already declared in %s", v.Name, enum.Name))
			continue
		}
		names.Add(v.Name)
		enum.Variants = append(enum.Variants, v)
	}

	// Generated methods share the field namespace of data variants, so the
	// check runs after options since Stringer may come after any variant.
	for _, v := range enum.Variants {
		for _, f := range v.Fields {
			if f.Name == "Discriminant" || (enum.Config.Stringer && f.Name == "String") {
				errs = append(errs, codefmt.Errorf(p, codefmt.Pos(f.Pos), "field name %s is reserved for a generated method", f.Name))
			}
		}
	}

	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return enum, nil
}
