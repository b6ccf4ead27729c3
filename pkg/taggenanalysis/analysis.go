// Package taggenanalysis exposes taggen's validation as a go/analysis
// analyzer, so editors and lint runners report taggen errors in place.
package taggenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/taggen/internal/codefmt"
	taggeninternal "github.com/sublee/taggen/internal/taggen"
)

// Analyzer validates the usage of Taggen in the package.
var Analyzer = &analysis.Analyzer{
	Name: "taggen",
	Doc:  "linter for taggen usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	tg, err := taggeninternal.New(pkg, "taggen_gen.go")
	if err != nil {
		return nil, err
	}

	if err := tg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pos := codeErr.Pos()
				if !pos.IsValid() && len(pass.Files) != 0 {
					// A position-less error still deserves a report;
					// anchor it to the first file.
					pos = pass.Files[0].Pos()
				}
				pass.Report(analysis.Diagnostic{
					Pos:     pos,
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
