package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/typeinfo"
)

// VariantKind tells whether a variant carries data and how its fields are
// addressed.
type VariantKind int

const (
	// UnitKind is a variant without data, represented purely by its
	// discriminant.
	UnitKind VariantKind = iota

	// TupleKind is a variant with positional fields.
	TupleKind

	// RecordKind is a variant with named fields.
	RecordKind
)

func (k VariantKind) String() string {
	switch k {
	case UnitKind:
		return "unit"
	case TupleKind:
		return "tuple"
	case RecordKind:
		return "record"
	}
	return "unknown"
}

// Variant is one declared variant of an enum, in source order. The explicit
// discriminant, if any, is kept as the raw literal text; it is parsed and
// range-checked against the enum's representation later, so every width's
// value range survives the trip through the declaration.
type Variant struct {
	Name   string
	Kind   VariantKind
	Fields []Field

	Value    string
	HasValue bool

	NamePos  token.Pos
	ValuePos token.Pos
}

// IsUnit reports whether the variant carries no data.
func (v Variant) IsUnit() bool { return v.Kind == UnitKind }

// Field is one field of a tuple or record variant. Tuple fields are named
// F0, F1, and so on by the parser.
type Field struct {
	Name string
	Type typeinfo.Type
	Pos  token.Pos
}

// isVariantArg reports whether the argument is a variant directive call,
// possibly with a Value chain on it.
func (p *Parser) isVariantArg(arg ast.Expr) bool {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok {
		return false
	}

	root := unchain(call)[0]
	return p.IsDirective(root, "Unit") || p.IsDirective(root, "Tuple") || p.IsDirective(root, "Record")
}

// ParseVariant parses a variant directive call including its Value chain.
func (p *Parser) ParseVariant(call *ast.CallExpr) (Variant, error) {
	var v Variant
	var errs []error

	calls := unchain(call)
	root := calls[0]

	name, _ := p.GetDirective(root)
	switch name {
	case "Unit":
		v.Kind = UnitKind
		if arg, err := needArgs1(p, root); err != nil {
			errs = append(errs, err)
		} else if err := p.parseVariantName(&v, arg); err != nil {
			errs = append(errs, err)
		}

	case "Tuple":
		v.Kind = TupleKind
		if len(root.Args) < 2 {
			errs = append(errs, codefmt.Errorf(p, root, "need at least 2 parameters"))
			break
		}
		if err := p.parseVariantName(&v, root.Args[0]); err != nil {
			errs = append(errs, err)
		}
		for i, arg := range root.Args[1:] {
			t, err := p.parseSampleType(arg)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			v.Fields = append(v.Fields, Field{Name: fmt.Sprintf("F%d", i), Type: t, Pos: arg.Pos()})
		}

	case "Record":
		v.Kind = RecordKind
		if len(root.Args) < 2 {
			errs = append(errs, codefmt.Errorf(p, root, "need at least 2 parameters"))
			break
		}
		if err := p.parseVariantName(&v, root.Args[0]); err != nil {
			errs = append(errs, err)
		}
		names := linkedhashset.New()
		for _, arg := range root.Args[1:] {
			f, err := p.parseField(arg)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if names.Contains(f.Name) {
				errs = append(errs, codefmt.Errorf(p, codefmt.Pos(f.Pos), "field %s already declared in %s", f.Name, v.Name))
				continue
			}
			names.Add(f.Name)
			v.Fields = append(v.Fields, f)
		}

	default:
		panic("unexpected variant directive")
	}

	for _, link := range calls[1:] {
		sel := link.Fun.(*ast.SelectorExpr)
		if sel.Sel.Name != "Value" {
			errs = append(errs, codefmt.Errorf(p, link.Fun, "%s is not supported directive", sel.Sel.Name))
			continue
		}

		if v.HasValue {
			errs = append(errs, codefmt.Errorf(p, link, "discriminant already declared for %s", v.Name))
			continue
		}

		lit, err := parseArg1[string](p, link)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		v.Value = lit
		v.HasValue = true
		v.ValuePos = link.Args[0].Pos()
	}

	return v, errors.Join(errs...)
}

func (p *Parser) parseVariantName(v *Variant, arg ast.Expr) error {
	name, err := parseArgExpr[string](p, arg)
	if err != nil {
		return err
	}

	if !token.IsIdentifier(name) || name == "_" {
		return codefmt.Errorf(p, arg, "invalid variant name %q", name)
	}

	v.Name = name
	v.NamePos = arg.Pos()
	return nil
}

func (p *Parser) parseField(arg ast.Expr) (Field, error) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok || !p.IsDirective(call, "Field") {
		return Field{}, codefmt.Errorf(p, arg, "record fields must be taggen.Field")
	}

	nameArg, sampleArg, err := needArgs2(p, call)
	if err != nil {
		return Field{}, err
	}

	name, err := parseArgExpr[string](p, nameArg)
	if err != nil {
		return Field{}, err
	}
	if !token.IsIdentifier(name) || name == "_" {
		return Field{}, codefmt.Errorf(p, nameArg, "invalid field name %q", name)
	}

	t, err := p.parseSampleType(sampleArg)
	if err != nil {
		return Field{}, err
	}

	return Field{Name: name, Type: t, Pos: call.Pos()}, nil
}

// parseSampleType resolves the type a payload field will have from a sample
// value expression.
func (p *Parser) parseSampleType(arg ast.Expr) (typeinfo.Type, error) {
	tv := p.Pkg().TypesInfo.TypeOf(arg)
	if tv == nil {
		return typeinfo.Type{}, codefmt.Errorf(p, arg, "cannot determine type of %c", arg)
	}

	t := typeinfo.TypeOf(tv)
	if t.IsNil() {
		return typeinfo.Type{}, codefmt.Errorf(p, arg, "cannot use nil as field sample")
	}
	if t.IsUntyped() {
		t = typeinfo.TypeOf(types.Default(tv))
	}
	if t.IsGeneric() {
		return typeinfo.Type{}, codefmt.Errorf(p, arg, "cannot use generic %t as field sample", t)
	}
	return t, nil
}
