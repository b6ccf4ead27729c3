// golangcilinttaggen package provides a plugin for golangci-lint to integrate
// the Taggen analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-taggen binary that you can use to lint
// your Go code with the Taggen analyzer.
package golangcilinttaggen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/taggen/pkg/taggenanalysis"
)

func init() {
	register.Plugin("taggen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return TaggenLinter{}, nil
}

type TaggenLinter struct{}

func (TaggenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{taggenanalysis.Analyzer}, nil
}

func (TaggenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
