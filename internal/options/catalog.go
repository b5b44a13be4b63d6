// Package options loads option catalogs (sections of option definitions with
// raw default values) and resolves them into typed values for rendering.
package options

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/r9s-ai/optdoc/internal/optfmt"
	"github.com/r9s-ai/optdoc/internal/splitlist"
)

// ErrDuplicateOption is returned when a section defines the same option twice.
var ErrDuplicateOption = errors.New("duplicate option")

// Definition describes one option. Default holds the value as written in the
// catalog: a scalar is parsed as raw text, a list as pre-split tokens, and a
// mapping is used as is.
type Definition struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Help    string   `yaml:"help"`
	Default any      `yaml:"default"`
	Choices []string `yaml:"choices"`
	Hidden  bool     `yaml:"hidden"`
}

type Section struct {
	Name    string       `yaml:"name"`
	Doc     string       `yaml:"doc"`
	Options []Definition `yaml:"options"`
}

type Catalog struct {
	Sections []Section `yaml:"sections"`
}

// Value parses the default of d.
func (d Definition) Value() (any, error) {
	switch v := d.Default.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return v, nil
	case []any:
		toks := make(splitlist.Tokens, 0, len(v))
		for _, item := range v {
			toks = append(toks, fmt.Sprint(item))
		}
		return ParseValue(d, toks)
	case string:
		return ParseValue(d, splitlist.Raw{Text: v})
	default:
		return ParseValue(d, splitlist.Raw{Text: fmt.Sprint(v)})
	}
}

// Resolve parses every option default of s.
func (s Section) Resolve() ([]optfmt.Option, error) {
	out := make([]optfmt.Option, 0, len(s.Options))
	for _, def := range s.Options {
		v, err := def.Value()
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Name, err)
		}
		out = append(out, optfmt.Option{
			Name:   def.Name,
			Type:   def.Type,
			Help:   def.Help,
			Value:  v,
			Hidden: def.Hidden,
		})
	}
	return out, nil
}

// Section returns the section called name.
func (c *Catalog) Section(name string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Load reads a catalog from a YAML file, or from every *.yaml and *.yml file
// of a directory in lexical order. Sections with the same name are merged.
// logger may be nil.
func Load(path string, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog %q: %w", path, err)
	}
	if !st.IsDir() {
		c := &Catalog{}
		if err := c.loadFile(path, logger); err != nil {
			return nil, err
		}
		return c, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %q: %w", path, err)
	}
	c := &Catalog{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !isYAML(name) {
			continue
		}
		if err := c.loadFile(filepath.Join(path, name), logger); err != nil {
			return nil, err
		}
	}
	if len(c.Sections) == 0 {
		logger.Printf("no catalog files in %s", path)
	}
	return c, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (c *Catalog) loadFile(path string, logger *log.Logger) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file %q: %w", path, err)
	}
	file, err := decodeCatalog(src)
	if err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	for _, s := range file.Sections {
		if err := c.add(s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	logger.Printf("loaded %s (%d sections)", path, len(file.Sections))
	return nil
}

// DecodeError reports a catalog file that is not valid YAML or does not match
// the catalog schema. Its message quotes the offending source lines.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q:\n%s", e.Path, yaml.FormatError(e.Err, false, true))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeCatalog(src []byte) (Catalog, error) {
	var file Catalog
	if err := yaml.UnmarshalWithOptions(src, &file, yaml.DisallowUnknownField(), yaml.UseOrderedMap()); err != nil {
		return file, err
	}
	f, err := parser.ParseBytes(src, 0)
	if err != nil {
		return file, err
	}
	for i := range file.Sections {
		for j := range file.Sections[i].Options {
			def := &file.Sections[i].Options[j]
			if def.Default == nil {
				continue
			}
			p, err := yaml.PathString(fmt.Sprintf("$.sections[%d].options[%d].default", i, j))
			if err != nil {
				return file, err
			}
			node, err := p.FilterFile(f)
			if err != nil {
				return file, err
			}
			def.Default = withSourceText(def.Default, node)
		}
	}
	return file, nil
}

// withSourceText replaces decoded scalars of v by their text as written, so
// an unquoted 3.10 stays "3.10" instead of becoming the float 3.1.
// Mappings keep their decoded form.
func withSourceText(v any, node ast.Node) any {
	if seq, ok := node.(*ast.SequenceNode); ok {
		items, ok := v.([]any)
		if !ok || len(items) != len(seq.Values) {
			return v
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
			if text, ok := sourceText(seq.Values[i]); ok {
				out[i] = text
			}
		}
		return out
	}
	if text, ok := sourceText(node); ok {
		return text
	}
	return v
}

func sourceText(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.NullNode:
		return "", false
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		return n.Value.Value, true
	case ast.ScalarNode:
		return n.GetToken().Value, true
	}
	return "", false
}

func (c *Catalog) add(s Section) error {
	for _, def := range s.Options {
		if strings.TrimSpace(def.Name) == "" {
			return fmt.Errorf("section %q: option without a name", s.Name)
		}
		if !knownTypes[def.Type] {
			return fmt.Errorf("option %q: %w %q", def.Name, ErrUnknownType, def.Type)
		}
	}

	idx := -1
	for i := range c.Sections {
		if c.Sections[i].Name == s.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.Sections = append(c.Sections, Section{Name: s.Name, Doc: s.Doc})
		idx = len(c.Sections) - 1
	}
	dst := &c.Sections[idx]
	if dst.Doc == "" {
		dst.Doc = s.Doc
	}
	seen := make(map[string]bool, len(dst.Options))
	for _, def := range dst.Options {
		seen[def.Name] = true
	}
	for _, def := range s.Options {
		if seen[def.Name] {
			return fmt.Errorf("section %q: %w %q", s.Name, ErrDuplicateOption, def.Name)
		}
		seen[def.Name] = true
		dst.Options = append(dst.Options, def)
	}
	return nil
}
