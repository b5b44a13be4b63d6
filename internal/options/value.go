package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/r9s-ai/optdoc/internal/optfmt"
	"github.com/r9s-ai/optdoc/internal/splitlist"
)

// Option value types.
const (
	TypeString    = "string"
	TypeInt       = "int"
	TypeFloat     = "float"
	TypeYN        = "yn"
	TypeChoice    = "choice"
	TypeCSV       = "csv"
	TypeRegexp    = "regexp"
	TypeRegexpCSV = "regexp_csv"
	TypePyVersion = optfmt.TypePyVersion
)

var knownTypes = map[string]bool{
	"":            true,
	TypeString:    true,
	TypeInt:       true,
	TypeFloat:     true,
	TypeYN:        true,
	TypeChoice:    true,
	TypeCSV:       true,
	TypeRegexp:    true,
	TypeRegexpCSV: true,
	TypePyVersion: true,
}

// ErrUnknownType is returned for an option type ParseValue does not know.
var ErrUnknownType = errors.New("unknown option type")

// ValueError reports a value that could not be converted to its option's type.
type ValueError struct {
	Option string
	Type   string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("option %q: invalid %s value %q: %v", e.Option, e.Type, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// ParseValue converts in to the typed value of def:
//
//   - string: the text ([]string tokens are joined with ",")
//   - int, float: a number
//   - yn: a bool from y/yes/true/1 or n/no/false/0
//   - choice: the text, which must be one of def.Choices
//   - csv: []string, split on commas without brace awareness, unquoted
//   - regexp: *regexp2.Regexp
//   - regexp_csv: []*regexp2.Regexp, one per brace-aware token
//   - py_version: []int from "3.8" or "3,8"
//
// Pre-split splitlist.Tokens are used as given by the list types.
func ParseValue(def Definition, in splitlist.Input) (any, error) {
	typ := def.Type
	if typ == "" {
		typ = TypeString
	}
	if !knownTypes[typ] {
		return nil, fmt.Errorf("option %q: %w %q", def.Name, ErrUnknownType, def.Type)
	}
	text := rawText(in)
	fail := func(err error) error {
		return &ValueError{Option: def.Name, Type: typ, Value: text, Err: err}
	}

	switch typ {
	case TypeString:
		return text, nil
	case TypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fail(err)
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fail(err)
		}
		return f, nil
	case TypeYN:
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "y", "yes", "true", "1":
			return true, nil
		case "n", "no", "false", "0":
			return false, nil
		}
		return nil, fail(errors.New("expected yes or no"))
	case TypeChoice:
		v := strings.TrimSpace(text)
		for _, c := range def.Choices {
			if c == v {
				return v, nil
			}
		}
		return nil, fail(fmt.Errorf("expected one of %s", strings.Join(def.Choices, ", ")))
	case TypeCSV:
		if raw, ok := in.(splitlist.Raw); ok {
			return splitlist.SplitStrip(raw.Text, separator(raw)), nil
		}
		return splitlist.Tokenize(in), nil
	case TypeRegexp:
		re, err := regexp2.Compile(text, regexp2.None)
		if err != nil {
			return nil, fail(err)
		}
		return re, nil
	case TypeRegexpCSV:
		var patterns []*regexp2.Regexp
		for _, tok := range splitlist.Tokenize(in) {
			re, err := regexp2.Compile(tok, regexp2.None)
			if err != nil {
				return nil, fail(fmt.Errorf("pattern %q: %w", tok, err))
			}
			patterns = append(patterns, re)
		}
		return patterns, nil
	case TypePyVersion:
		var parts []string
		if toks, ok := in.(splitlist.Tokens); ok {
			parts = toks
		} else {
			parts = strings.Split(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), ".")
		}
		version := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fail(errors.New("expected a version like 3.8"))
			}
			version = append(version, n)
		}
		return version, nil
	}
	return nil, fmt.Errorf("option %q: %w %q", def.Name, ErrUnknownType, def.Type)
}

func rawText(in splitlist.Input) string {
	switch v := in.(type) {
	case splitlist.Raw:
		return v.Text
	case splitlist.Tokens:
		return strings.Join(v, ",")
	}
	return ""
}

func separator(raw splitlist.Raw) rune {
	if raw.Sep == 0 {
		return splitlist.DefaultSeparator
	}
	return raw.Sep
}
