package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sublee/taggen/internal/codefmt"
)

// Config carries the options attached to a module or an enum. A module's
// config is forked for each enum declared under it, so enum options override
// module options without affecting sibling enums.
type Config struct {
	// ReprType is the type argument of the Repr option. It stays nil until
	// the enum declares its representation. Only enums may declare one, so
	// forked configs always start without it.
	ReprType types.Type
	ReprPos  token.Pos

	Number     bool
	FromNumber bool
	Stringer   bool

	// ConstPrefix is meaningful only when HasConstPrefix is set; the empty
	// prefix is a valid choice that generates bare variant names.
	ConstPrefix    string
	HasConstPrefix bool

	StringCase string
}

// Fork returns a copy of the config for an enum declared under a module.
func (c Config) Fork() Config {
	return c
}

// ParseConfig parses every argument as a configuration option into cfg.
func (p *Parser) ParseConfig(cfg *Config, args []ast.Expr) error {
	var errs error
	for _, arg := range args {
		errs = errors.Join(errs, p.ParseConfigArg(cfg, arg))
	}
	return errs
}

// ParseConfigArg parses one configuration option argument into cfg.
func (p *Parser) ParseConfigArg(cfg *Config, arg ast.Expr) error {
	if _, ok := arg.(*ast.Ident); ok {
		return codefmt.Errorf(p, arg, "option must be inlined, not assigned to variable")
	}

	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok {
		// Probably, this case is unreachable because every option type is
		// unexported. The only way to create a valid option is to call an
		// option directive function, or assign it to a variable. The latter
		// one is caught above.
		return codefmt.Errorf(p, arg, "cannot use %c as option", arg)
	}

	return p.ParseOption(cfg, call)
}

func (p *Parser) ParseOption(cfg *Config, call *ast.CallExpr) error {
	name, ok := p.GetDirective(call)
	if !ok {
		return codefmt.Errorf(p, call, "option must be taggen directive")
	}

	switch name {
	case "Repr":
		return p.ParseOptionRepr(cfg, call)
	case "Number":
		return p.ParseOptionBool(&cfg.Number, call)
	case "FromNumber":
		return p.ParseOptionBool(&cfg.FromNumber, call)
	case "Stringer":
		return p.ParseOptionBool(&cfg.Stringer, call)
	case "ConstPrefix":
		return p.ParseOptionConstPrefix(cfg, call)
	case "StringCase":
		return p.ParseOptionStringCase(cfg, call)
	}

	return codefmt.Errorf(p, call.Fun, "%s is not supported option", name)
}

// ParseOptionRepr records the representation type argument of a Repr option.
func (p *Parser) ParseOptionRepr(cfg *Config, call *ast.CallExpr) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	idx, ok := call.Fun.(*ast.IndexExpr)
	if !ok {
		return codefmt.Errorf(p, call, "need a type argument like taggen.Repr[uint8]") // unreachable
	}

	if cfg.ReprType != nil {
		return codefmt.Errorf(p, call, "representation already declared")
	}

	cfg.ReprType = p.Pkg().TypesInfo.TypeOf(idx.Index)
	cfg.ReprPos = idx.Index.Pos()
	return nil
}

func (p *Parser) ParseOptionBool(field *bool, call *ast.CallExpr) error {
	v, err := parseArg1[bool](p, call)
	if err != nil {
		return err
	}

	*field = v
	return nil
}

func (p *Parser) ParseOptionConstPrefix(cfg *Config, call *ast.CallExpr) error {
	v, err := parseArg1[string](p, call)
	if err != nil {
		return err
	}

	// The prefix concatenates with variant names, so it must itself be a
	// valid identifier head.
	if v != "" && !token.IsIdentifier(v) {
		return codefmt.Errorf(p, call, "const prefix %q must be a valid identifier", v)
	}

	cfg.ConstPrefix = v
	cfg.HasConstPrefix = true
	return nil
}

func (p *Parser) ParseOptionStringCase(cfg *Config, call *ast.CallExpr) error {
	v, err := parseArg1[string](p, call)
	if err != nil {
		return err
	}

	if _, ok := StringCaseFunc(v); !ok {
		return codefmt.Errorf(p, call, "%q is not supported string case", v)
	}

	cfg.StringCase = v
	return nil
}

// StringCaseFunc returns the display-name transform for a StringCase option
// value. The empty name is the identity transform.
func StringCaseFunc(name string) (func(string) string, bool) {
	switch name {
	case "":
		return func(s string) string { return s }, true
	case "snake":
		return strcase.ToSnake, true
	case "screaming-snake":
		return strcase.ToScreamingSnake, true
	case "kebab":
		return strcase.ToKebab, true
	case "camel":
		return strcase.ToLowerCamel, true
	case "pascal":
		return strcase.ToCamel, true
	case "lower":
		return strings.ToLower, true
	case "upper":
		return strings.ToUpper, true
	case "title":
		return toTitle, true
	}
	return nil, false
}

// toTitle turns a variant name into space-separated title case, such as
// "DarkAmber" into "Dark Amber". A cases.Caser is stateful, so a fresh one
// is created per call.
func toTitle(s string) string {
	return cases.Title(language.English).String(strcase.ToDelimited(s, ' '))
}
