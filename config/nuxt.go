/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"bennypowers.dev/relativize/internal/logger"
)

// NuxtConfigNames are the recognized project configuration files in priority order.
var NuxtConfigNames = []string{
	"nuxt.config.ts",
	"nuxt.config.mts",
	"nuxt.config.js",
	"nuxt.config.mjs",
	"nuxt.config.cjs",
}

// maxDepth bounds identifier and wrapper unwrapping.
const maxDepth = 16

// NuxtValues holds the settings read from a nuxt config file.
// Empty fields were not set (or could not be evaluated).
type NuxtValues struct {
	RootDir string
	SrcDir  string
	Alias   map[string]string
}

// ParseNuxtConfig statically reads rootDir, srcDir and alias from the
// exported configuration object. The config is never executed: only
// literals and a handful of path helpers are understood.
// configDir stands in for __dirname, process.cwd() and import.meta.url.
func ParseNuxtConfig(src []byte, ext, configDir string) (*NuxtValues, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(languageFor(ext)); err != nil {
		return nil, fmt.Errorf("loading grammar for %s: %w", ext, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parsing %s config failed", ext)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}

	e := &extractor{
		src:      src,
		dir:      filepath.Clean(configDir),
		bindings: make(map[string]*tree_sitter.Node),
	}
	e.collectBindings(root)

	obj := e.exportedObject(root)
	if obj == nil {
		return nil, ErrNoExport
	}

	return e.values(obj), nil
}

func languageFor(ext string) *tree_sitter.Language {
	switch ext {
	case ".ts", ".mts":
		return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	default:
		return tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	}
}

type pair struct {
	key   string
	value *tree_sitter.Node
}

type extractor struct {
	src      []byte
	dir      string
	bindings map[string]*tree_sitter.Node
}

func (e *extractor) text(n *tree_sitter.Node) string {
	return n.Utf8Text(e.src)
}

// collectBindings records top-level `const name = value` declarations so
// `export default config` and `alias: aliases` can be followed.
func (e *extractor) collectBindings(root *tree_sitter.Node) {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		decl := root.NamedChild(i)
		if decl == nil {
			continue
		}
		if decl.Kind() == "export_statement" {
			if d := decl.ChildByFieldName("declaration"); d != nil {
				decl = d
			}
		}
		if decl.Kind() != "lexical_declaration" && decl.Kind() != "variable_declaration" {
			continue
		}
		for j := uint(0); j < decl.NamedChildCount(); j++ {
			d := decl.NamedChild(j)
			if d == nil || d.Kind() != "variable_declarator" {
				continue
			}
			name := d.ChildByFieldName("name")
			value := d.ChildByFieldName("value")
			if name != nil && value != nil && name.Kind() == "identifier" {
				e.bindings[e.text(name)] = value
			}
		}
	}
}

// exportedObject finds the object literal behind `export default` or
// `module.exports =`.
func (e *extractor) exportedObject(root *tree_sitter.Node) *tree_sitter.Node {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		stmt := root.NamedChild(i)
		if stmt == nil {
			continue
		}

		switch stmt.Kind() {
		case "export_statement":
			if !strings.HasPrefix(e.text(stmt), "export default") {
				continue
			}
			value := stmt.ChildByFieldName("value")
			if value == nil && stmt.NamedChildCount() > 0 {
				value = stmt.NamedChild(stmt.NamedChildCount() - 1)
			}
			if obj := e.object(value, 0); obj != nil {
				return obj
			}

		case "expression_statement":
			expr := stmt.NamedChild(0)
			if expr == nil || expr.Kind() != "assignment_expression" {
				continue
			}
			left := expr.ChildByFieldName("left")
			if left != nil && e.text(left) == "module.exports" {
				if obj := e.object(expr.ChildByFieldName("right"), 0); obj != nil {
					return obj
				}
			}
		}
	}
	return nil
}

// object unwraps calls like defineNuxtConfig({...}), type assertions and
// identifiers until it reaches an object literal.
func (e *extractor) object(n *tree_sitter.Node, depth int) *tree_sitter.Node {
	if n == nil || depth > maxDepth {
		return nil
	}

	switch n.Kind() {
	case "object":
		return n
	case "call_expression":
		args := e.arguments(n)
		if len(args) == 0 {
			return nil
		}
		return e.object(args[0], depth+1)
	case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
		return e.object(n.NamedChild(0), depth+1)
	case "identifier":
		return e.object(e.bindings[e.text(n)], depth+1)
	}
	return nil
}

func (e *extractor) pairs(obj *tree_sitter.Node) []pair {
	var out []pair
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		child := obj.NamedChild(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case "pair":
			key := child.ChildByFieldName("key")
			value := child.ChildByFieldName("value")
			if key == nil || value == nil {
				continue
			}
			switch key.Kind() {
			case "property_identifier", "number":
				out = append(out, pair{key: e.text(key), value: value})
			case "string":
				out = append(out, pair{key: e.unquote(key), value: value})
			}

		case "shorthand_property_identifier":
			name := e.text(child)
			if value := e.bindings[name]; value != nil {
				out = append(out, pair{key: name, value: value})
			}
		}
	}
	return out
}

func (e *extractor) values(obj *tree_sitter.Node) *NuxtValues {
	v := &NuxtValues{Alias: make(map[string]string)}

	for _, p := range e.pairs(obj) {
		switch p.key {
		case "rootDir":
			if s, ok := e.path(p.value, 0); ok {
				v.RootDir = s
			}
		case "srcDir":
			if s, ok := e.path(p.value, 0); ok {
				v.SrcDir = s
			}
		case "alias":
			aliasObj := e.object(p.value, 0)
			if aliasObj == nil {
				logger.Warn("alias is not an object literal, ignoring it")
				continue
			}
			for _, ap := range e.pairs(aliasObj) {
				s, ok := e.path(ap.value, 0)
				if !ok {
					logger.Warn("cannot evaluate alias %q (%s), skipping it", ap.key, e.text(ap.value))
					continue
				}
				v.Alias[ap.key] = s
			}
		}
	}

	return v
}

// path evaluates an expression that yields a filesystem path.
func (e *extractor) path(n *tree_sitter.Node, depth int) (string, bool) {
	if n == nil || depth > maxDepth {
		return "", false
	}

	switch n.Kind() {
	case "string":
		return e.unquote(n), true

	case "template_string":
		for i := uint(0); i < n.NamedChildCount(); i++ {
			if c := n.NamedChild(i); c != nil && c.Kind() == "template_substitution" {
				return "", false
			}
		}
		return strings.Trim(e.text(n), "`"), true

	case "identifier":
		name := e.text(n)
		if name == "__dirname" {
			return e.dir, true
		}
		return e.path(e.bindings[name], depth+1)

	case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
		return e.path(n.NamedChild(0), depth+1)

	case "member_expression":
		// new URL('./x', import.meta.url).pathname
		prop := n.ChildByFieldName("property")
		if prop != nil && e.text(prop) == "pathname" {
			return e.fileURL(n.ChildByFieldName("object"), depth+1)
		}

	case "call_expression":
		return e.call(n, depth+1)
	}

	return "", false
}

func (e *extractor) call(n *tree_sitter.Node, depth int) (string, bool) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return "", false
	}

	name := e.text(fn)
	if i := strings.LastIndex(name, "."); i >= 0 && name != "process.cwd" {
		name = name[i+1:]
	}

	args := e.arguments(n)

	switch name {
	case "process.cwd":
		return e.dir, true

	case "fileURLToPath":
		if len(args) != 1 {
			return "", false
		}
		return e.fileURL(args[0], depth)

	case "resolve", "join":
		segments := make([]string, 0, len(args))
		for _, arg := range args {
			s, ok := e.path(arg, depth)
			if !ok {
				return "", false
			}
			segments = append(segments, s)
		}
		if name == "join" {
			return filepath.Join(segments...), true
		}
		resolved := e.dir
		for _, s := range segments {
			if filepath.IsAbs(s) {
				resolved = s
			} else {
				resolved = filepath.Join(resolved, s)
			}
		}
		return filepath.Clean(resolved), true
	}

	return "", false
}

// fileURL evaluates `new URL(ref, import.meta.url)` or a literal file: URL.
func (e *extractor) fileURL(n *tree_sitter.Node, depth int) (string, bool) {
	if n == nil {
		return "", false
	}

	if n.Kind() != "new_expression" {
		s, ok := e.path(n, depth)
		if !ok || !strings.HasPrefix(s, "file://") {
			return "", false
		}
		return strings.TrimPrefix(s, "file://"), true
	}

	ctor := n.ChildByFieldName("constructor")
	if ctor == nil || e.text(ctor) != "URL" {
		return "", false
	}

	args := e.arguments(n)
	if len(args) != 2 || e.text(args[1]) != "import.meta.url" {
		return "", false
	}

	ref, ok := e.path(args[0], depth)
	if !ok {
		return "", false
	}
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref), true
	}
	return filepath.Join(e.dir, ref), true
}

func (e *extractor) arguments(call *tree_sitter.Node) []*tree_sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}

	var out []*tree_sitter.Node
	for i := uint(0); i < args.NamedChildCount(); i++ {
		if a := args.NamedChild(i); a != nil && a.Kind() != "comment" {
			out = append(out, a)
		}
	}
	return out
}

func (e *extractor) unquote(n *tree_sitter.Node) string {
	var b strings.Builder
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "string_fragment":
			b.WriteString(e.text(c))
		case "escape_sequence":
			seq := e.text(c)
			if s, err := strconv.Unquote(`"` + seq + `"`); err == nil {
				b.WriteString(s)
			} else {
				b.WriteString(strings.TrimPrefix(seq, `\`))
			}
		}
	}
	return b.String()
}
