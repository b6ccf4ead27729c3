package taggeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/gen"
	"github.com/sublee/taggen/internal/taggen/parse"
)

// Taggen generates enum code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Taggen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	mods map[token.Pos]*parse.Module
	gens []gen.Gen
}

// New creates a new [Taggen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
//
// outFile is the name of the file the generated code will be written to.
// Declarations found in that file belong to a previous run, so their names
// stay available for regeneration.
func New(pkg *packages.Package, outFile string) (*Taggen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Taggen{
		p:   parser,
		ns:  newNS(pkg, outFile),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// newNS seeds the namespace with the package's top-level names, skipping
// names declared in the output file of a previous run.
func newNS(pkg *packages.Package, outFile string) codefmt.NS {
	ns := codefmt.NS{}
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if f := pkg.Fset.File(obj.Pos()); f != nil && filepath.Base(f.Name()) == outFile {
			continue
		}
		ns.Reserve(name)
	}
	return ns
}

// Build prepares code generation by parsing declarations and building enum
// generators. All potential errors are returned by this method. It must be
// called before [Generate].
func (tg *Taggen) Build() error {
	// Parse modules and enums from the package.
	mods, errs := tg.p.ParseModules()
	tg.mods = mods

	errs = errors.Join(errs, tg.p.Validate(mods))

	enums, err := tg.p.ParseEnums(mods)
	errs = errors.Join(errs, err)

	// Build a generator per enum that parsed cleanly, even when sibling
	// declarations have errors, so every independent enum keeps reporting
	// its own. Generated names are reserved in the shared namespace so
	// cross-enum collisions are caught here too.
	for _, enum := range enums {
		g, err := gen.Build(tg.p, enum, tg.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		tg.gens = append(tg.gens, g)
	}

	if errs != nil {
		tg.gens = nil
		return errs
	}
	return nil
}

// Generate generates enum code for the package. It must be called after
// [Build] succeeds. It returns nil when the package declares no enums.
func (tg *Taggen) Generate() []byte {
	if len(tg.gens) == 0 {
		return nil
	}

	tg.writeEnumCode()
	return tg.frameCode()
}

// writeEnumCode writes the declarations of every built enum in source order.
func (tg *Taggen) writeEnumCode() {
	gens := slices.Clone(tg.gens)
	slices.SortFunc(gens, func(a, b gen.Gen) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})

	for _, g := range gens {
		local := maps.Clone(tg.ns)
		w := tg.w.WithNS(local)
		g.WriteDefineCode(w)
		tg.w.Printf("\n")
	}
}

// frameCode prepends the header and import block, then applies gofmt. The
// generated file carries no build constraint: it must be visible both to
// regular builds and to taggen's own loads.
func (tg *Taggen) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/taggen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", tg.p.Pkg().Name)

	if len(tg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range tg.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, tg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
