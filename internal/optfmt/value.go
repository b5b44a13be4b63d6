// Package optfmt renders typed option values and option catalogs as text:
// the value form accepted back by the option parser, reStructuredText
// documentation and INI configuration templates.
package optfmt

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/goccy/go-yaml"
)

// Option is one option ready for rendering: its metadata plus its typed value.
type Option struct {
	Name  string
	Type  string
	Help  string
	Value any

	// Hidden options are documented but left out of configuration templates.
	Hidden bool
}

// TypePyVersion marks options whose value is a version tuple rendered with dots.
const TypePyVersion = "py_version"

// FormatValue returns the textual form of value, as a user would write it in
// a configuration file.
func FormatValue(opt Option, value any) string {
	if opt.Type == TypePyVersion {
		if parts, ok := listItems(value); ok {
			return strings.Join(parts, ".")
		}
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case *regexp2.Regexp:
		return v.String()
	case *regexp.Regexp:
		return v.String()
	case yaml.MapSlice:
		pairs := make([]string, 0, len(v))
		for _, item := range v {
			pairs = append(pairs, fmt.Sprintf("%s:%s", itemString(item.Key), itemString(item.Value)))
		}
		return strings.Join(pairs, ",")
	}
	if parts, ok := listItems(value); ok {
		return strings.Join(parts, ",")
	}
	if pairs, ok := mapPairs(value); ok {
		return strings.Join(pairs, ",")
	}
	return fmt.Sprint(value)
}

// itemString renders a list element or mapping entry. Elements are rendered
// plainly, without the list/mapping flattening applied at the top level.
func itemString(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case *regexp2.Regexp:
		return v.String()
	case *regexp.Regexp:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

func listItems(value any) ([]string, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	// []byte is text, not a list.
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts = append(parts, itemString(rv.Index(i).Interface()))
	}
	return parts, true
}

func mapPairs(value any) ([]string, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, itemString(iter.Key().Interface())+":"+itemString(iter.Value().Interface()))
	}
	sort.Strings(pairs)
	return pairs, true
}

// formatFloat renders f positionally when 1e-4 <= |f| < 1e16 and in exponent
// form otherwise. Whole numbers keep a trailing ".0" so they parse back as floats.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, bits)
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var diffSigns = [...]string{"=", "-", "+"}

// DiffString describes the change from old to new: "=" when unchanged,
// otherwise the direction sign followed by the signed magnitude, such as
// "++1.50" or "-+2.00".
func DiffString(old, new float64) string {
	diff := new - old
	if diff == 0 {
		return diffSigns[0]
	}
	sign := diffSigns[2]
	if diff < 0 {
		sign = diffSigns[1]
	}
	return fmt.Sprintf("%s%+.2f", sign, math.Abs(diff))
}

// Comment turns text into a comment block, one "# " prefixed line per input line.
func Comment(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return "# " + strings.Join(lines, "\n# ")
}
