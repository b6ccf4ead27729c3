// Package gen builds the generated declarations for parsed enums.
//
// [Build] resolves the backing representation, runs the discriminant scan,
// and checks the preconditions of every enabled derive, accumulating all
// errors. Once Build succeeds for every enum in the package, writing the
// code cannot fail.
package gen

import (
	"errors"
	"go/token"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/parse"
	"github.com/sublee/taggen/internal/taggen/scan"
)

// Gen writes the generated declarations of one enum.
type Gen interface {
	WriteDefineCode(w *codefmt.Writer)
	Pos() token.Pos
}

// Build prepares code generation for one enum. All potential errors are
// returned by this function; [Gen.WriteDefineCode] never fails afterwards.
//
// Every generated package-level name is reserved in ns, so collisions with
// the package's own declarations and with other enums are reported here.
func Build(pkger codefmt.Pkger, enum *parse.Enum, ns codefmt.NS) (Gen, error) {
	repr, err := scan.ResolveRepr(pkger, enum)
	if err != nil {
		// The scan is parameterized by the representation, so nothing
		// else can be checked without one.
		return nil, err
	}

	var errs []error

	resolved, err := scan.Scan(pkger, enum.Variants, repr)
	if err != nil {
		errs = append(errs, err)
	}

	g := &enumGen{
		enum:     enum,
		repr:     repr,
		resolved: resolved,
		prefix:   enum.Name,
	}
	if enum.Config.HasConstPrefix {
		// An explicit empty prefix generates bare variant names; the
		// default prefixes the enum name so variants do not squat the
		// package namespace.
		g.prefix = enum.Config.ConstPrefix
	}

	for _, derive := range []struct {
		name    string
		enabled bool
	}{
		{"Number", enum.Config.Number},
		{"FromNumber", enum.Config.FromNumber},
	} {
		if !derive.enabled {
			continue
		}
		for _, v := range enum.Variants {
			if !v.IsUnit() {
				err := codefmt.Errorf(pkger, codefmt.Pos(v.NamePos), "cannot derive %s for %s: not all variants are unit", derive.name, enum.Name)
				errs = append(errs, err)
				break
			}
		}
	}

	for _, name := range g.declNames() {
		if !ns.Reserve(name) {
			err := codefmt.Errorf(pkger, codefmt.Pos(enum.NamePos), "cannot declare %s; name already used in the package", name)
			errs = append(errs, err)
		}
	}

	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}
