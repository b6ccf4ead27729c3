// Package schema generates enum code from a YAML manifest instead of
// directive files. The manifest carries the same declarations the directive
// frontend accepts, restricted to unit variants, and flows through the same
// scan and generators, so diagnostics keep the same kinds and messages with
// positions pointing into the manifest.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"iter"
	"maps"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v3"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/gen"
	"github.com/sublee/taggen/internal/taggen/parse"
)

// Generate generates enum code from the manifest at path with the given
// contents. It returns nil code when the manifest declares no enums.
func Generate(path string, data []byte) ([]byte, error) {
	m, errs := parseManifest(path, data)
	if m == nil {
		return nil, errs
	}

	ns := codefmt.NS{}
	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, m.pkg)

	// Enums that parsed cleanly still reach the generators, so sibling
	// declarations with errors do not suppress each other's diagnostics.
	var gens []gen.Gen
	for _, enum := range m.enums {
		g, err := gen.Build(m, enum, ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		gens = append(gens, g)
	}
	if errs != nil {
		return nil, errs
	}
	if len(gens) == 0 {
		return nil, nil
	}

	for _, g := range gens {
		local := maps.Clone(ns)
		g.WriteDefineCode(w.WithNS(local))
		w.Printf("\n")
	}

	return frame(m.pkg.Name, w, &buf), nil
}

// manifest is a parsed manifest. It implements [codefmt.Pkger] over a
// synthetic package whose file set holds the manifest file, so errors render
// manifest positions.
type manifest struct {
	pkg   *packages.Package
	file  *token.File
	enums []*parse.Enum
}

func (m *manifest) Pkg() *packages.Package { return m.pkg }

// pos converts a node's line and column to a position in the manifest file.
func (m *manifest) pos(node *yaml.Node) token.Pos {
	return m.file.LineStart(node.Line) + token.Pos(node.Column-1)
}

func (m *manifest) errorf(node *yaml.Node, format string, args ...any) error {
	return codefmt.Errorf(m, codefmt.Pos(m.pos(node)), format, args...)
}

func parseManifest(path string, data []byte) (*manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	fset := token.NewFileSet()
	file := fset.AddFile(path, -1, len(data))
	file.SetLinesForContent(data)

	m := &manifest{
		pkg:  &packages.Package{Fset: fset, TypesInfo: &types.Info{}},
		file: file,
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty manifest")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, m.errorf(root, "manifest must be a mapping")
	}

	// Manifest-level errors make the manifest unusable and return a nil
	// manifest; enum-level errors are returned alongside the manifest so
	// the enums that parsed cleanly can still be built.
	var errs, enumErrs error
	var enumsNode *yaml.Node

	for key, value := range mapPairs(root) {
		switch key.Value {
		case "package":
			if !token.IsIdentifier(value.Value) {
				errs = errors.Join(errs, m.errorf(value, "invalid package name %q", value.Value))
				continue
			}
			m.pkg.Name = value.Value
			m.pkg.PkgPath = value.Value
			m.pkg.Types = types.NewPackage(value.Value, value.Value)

		case "enums":
			enumsNode = value

		default:
			errs = errors.Join(errs, m.errorf(key, "%s is not supported key", key.Value))
		}
	}

	if m.pkg.Types == nil {
		errs = errors.Join(errs, m.errorf(root, "missing package name"))
	}

	if enumsNode != nil {
		if enumsNode.Kind != yaml.SequenceNode {
			errs = errors.Join(errs, m.errorf(enumsNode, "enums must be a sequence"))
		} else {
			enumErrs = m.parseEnums(enumsNode)
		}
	}

	if errs != nil {
		return nil, errors.Join(errs, enumErrs)
	}
	return m, enumErrs
}

func (m *manifest) parseEnums(node *yaml.Node) error {
	var errs error
	enums := linkedhashmap.New()

	for _, item := range node.Content {
		enum, err := m.parseEnum(item)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if old, ok := enums.Get(enum.Name); ok {
			errs = errors.Join(errs, codefmt.Errorf(m, enum, "enum %s already declared at %b", enum.Name, old.(*parse.Enum)))
			continue
		}
		enums.Put(enum.Name, enum)
	}

	it := enums.Iterator()
	for it.Next() {
		m.enums = append(m.enums, it.Value().(*parse.Enum))
	}
	return errs
}

func (m *manifest) parseEnum(node *yaml.Node) (*parse.Enum, error) {
	if node.Kind != yaml.MappingNode {
		return nil, m.errorf(node, "enum must be a mapping")
	}

	var errs []error
	enum := &parse.Enum{}
	enum.SetSpan(m.pos(node), token.NoPos)

	for key, value := range mapPairs(node) {
		switch key.Value {
		case "name":
			if value.Kind != yaml.ScalarNode || !token.IsIdentifier(value.Value) || value.Value == "_" {
				errs = append(errs, m.errorf(value, "invalid enum name %q", value.Value))
				continue
			}
			enum.Name = value.Value
			enum.NamePos = m.pos(value)

		case "doc":
			enum.Doc = strings.TrimSuffix(value.Value, "\n")

		case "repr":
			if enum.Config.ReprType != nil {
				errs = append(errs, m.errorf(value, "representation already declared"))
				continue
			}

			tn, ok := types.Universe.Lookup(value.Value).(*types.TypeName)
			if !ok {
				errs = append(errs, m.errorf(value, "unsupported representation %s", value.Value))
				continue
			}
			enum.Config.ReprType = tn.Type()
			enum.Config.ReprPos = m.pos(value)

		case "derive":
			errs = append(errs, m.parseDerive(&enum.Config, value)...)

		case "const-prefix":
			if value.Value != "" && !token.IsIdentifier(value.Value) {
				errs = append(errs, m.errorf(value, "const prefix %q must be a valid identifier", value.Value))
				continue
			}
			enum.Config.ConstPrefix = value.Value
			enum.Config.HasConstPrefix = true

		case "string-case":
			if _, ok := parse.StringCaseFunc(value.Value); !ok {
				errs = append(errs, m.errorf(value, "%q is not supported string case", value.Value))
				continue
			}
			enum.Config.StringCase = value.Value

		case "variants":
			errs = append(errs, m.parseVariants(enum, value)...)

		default:
			errs = append(errs, m.errorf(key, "%s is not supported key", key.Value))
		}
	}

	if enum.Name == "" && len(errs) == 0 {
		errs = append(errs, m.errorf(node, "missing enum name"))
	}

	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return enum, nil
}

func (m *manifest) parseDerive(cfg *parse.Config, node *yaml.Node) []error {
	if node.Kind != yaml.SequenceNode {
		return []error{m.errorf(node, "derive must be a sequence")}
	}

	var errs []error
	for _, item := range node.Content {
		switch item.Value {
		case "number":
			cfg.Number = true
		case "fromnumber":
			cfg.FromNumber = true
		case "stringer":
			cfg.Stringer = true
		default:
			errs = append(errs, m.errorf(item, "%s is not supported derive", item.Value))
		}
	}
	return errs
}

// parseVariants parses the variant sequence. A bare string is a unit variant
// with an implicit value; a mapping declares a name and an optional explicit
// value kept as its raw scalar text.
func (m *manifest) parseVariants(enum *parse.Enum, node *yaml.Node) []error {
	if node.Kind != yaml.SequenceNode {
		return []error{m.errorf(node, "variants must be a sequence")}
	}

	var errs []error
	names := linkedhashset.New()

	for _, item := range node.Content {
		v, err := m.parseVariant(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if names.Contains(v.Name) {
			errs = append(errs, codefmt.Errorf(m, codefmt.Pos(v.NamePos), "variant %s already declared in %s", v.Name, enum.Name))
			continue
		}
		names.Add(v.Name)
		enum.Variants = append(enum.Variants, v)
	}
	return errs
}

func (m *manifest) parseVariant(node *yaml.Node) (parse.Variant, error) {
	var v parse.Variant

	switch node.Kind {
	case yaml.ScalarNode:
		if !token.IsIdentifier(node.Value) || node.Value == "_" {
			return v, m.errorf(node, "invalid variant name %q", node.Value)
		}
		v.Name = node.Value
		v.NamePos = m.pos(node)
		return v, nil

	case yaml.MappingNode:
		var errs []error
		for key, value := range mapPairs(node) {
			switch key.Value {
			case "name":
				if value.Kind != yaml.ScalarNode || !token.IsIdentifier(value.Value) || value.Value == "_" {
					errs = append(errs, m.errorf(value, "invalid variant name %q", value.Value))
					continue
				}
				v.Name = value.Value
				v.NamePos = m.pos(value)

			case "value":
				if v.HasValue {
					errs = append(errs, m.errorf(value, "discriminant already declared for %s", v.Name))
					continue
				}
				v.Value = value.Value
				v.HasValue = true
				v.ValuePos = m.pos(value)

			default:
				errs = append(errs, m.errorf(key, "%s is not supported key", key.Value))
			}
		}

		if v.Name == "" && len(errs) == 0 {
			errs = append(errs, m.errorf(node, "missing variant name"))
		}
		if len(errs) != 0 {
			return v, errors.Join(errs...)
		}
		return v, nil
	}

	return v, m.errorf(node, "variant must be a string or a mapping")
}

// mapPairs iterates over the key-value pairs of a mapping node.
func mapPairs(node *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if !yield(node.Content[i], node.Content[i+1]) {
				return
			}
		}
	}
}

func frame(pkgName string, w *codefmt.Writer, buf *bytes.Buffer) []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by github.com/sublee/taggen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n", pkgName)

	if len(w.Imports()) != 0 {
		fmt.Fprintf(&out, "import (\n")
		for alias, imp := range w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&out, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&out, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&out, ")\n")
	}

	out.Write(buf.Bytes())
	code := out.Bytes()

	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
