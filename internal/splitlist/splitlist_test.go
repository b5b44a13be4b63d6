package splitlist

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBraced_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "spaces and empties", in: "a, b, c   ,  4,,", want: []string{"a", "b", "c", "4"}},
		{name: "single", in: "a", want: []string{"a"}},
		{name: "newlines", in: "a,\nb,\nc,", want: []string{"a", "b", "c"}},
		{name: "quantifiers", in: `\d{1,2},\w{3,5}`, want: []string{`\d{1,2}`, `\w{3,5}`}},
		{name: "nested", in: "{{1,2}},x", want: []string{"{{1,2}}", "x"}},
		{name: "unbalanced open", in: "{1,2", want: []string{"{1,2"}},
		{name: "unbalanced open later", in: "a,b{1,2,c", want: []string{"a", "b{1,2,c"}},
		{name: "blank only", in: " , \t,\n", want: nil},
		{name: "multibyte", in: "é,ü{1,2},ß", want: []string{"é", "ü{1,2}", "ß"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBraced(tt.in, ','))
		})
	}
}

func TestSplitBraced_EmptyInput(t *testing.T) {
	assert.Empty(t, SplitBraced("", ','))
	assert.Empty(t, Tokenize(Raw{Text: ""}))
}

func TestSplitBraced_OtherSeparator(t *testing.T) {
	assert.Equal(t, []string{"a,b", "c{1;2}", "d"}, SplitBraced("a,b; c{1;2} ;d", ';'))
}

// A stray closing brace leaves depth negative; splitting continues.
func TestSplitBraced_NegativeDepthStillSplits(t *testing.T) {
	assert.Equal(t, []string{"a}", "b", "c"}, SplitBraced("a},b,c", ','))
	assert.Equal(t, []string{"}}", "x{1", "2}"}, SplitBraced("}},x{1,2}", ','))
	// Two closes then one open: depth is -1, still outside any group.
	assert.Equal(t, []string{"}}{", "a"}, SplitBraced("}}{,a", ','))
}

func TestSplitBraced_DegeneratesToPlainSplit(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a,b,c",
		" a , , b ,",
		",,,",
		"x\n,y\t,\tz",
		"'q', \"r\"",
	}
	for _, in := range inputs {
		var want []string
		for _, p := range strings.Split(in, ",") {
			if s := strings.TrimSpace(p); s != "" {
				want = append(want, s)
			}
		}
		assert.Equal(t, want, SplitBraced(in, ','), "input %q", in)
	}
}

func TestFields_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"",
		"a, b, c   ,  4,,",
		`\d{1,2},\w{3,5}`,
		"{1,2",
		"a},b,{c,{d}},e",
		"é,ü{1,2},ß",
	}
	for _, in := range inputs {
		fields := Fields(in, ',')
		assert.Equal(t, in, strings.Join(fields, ","), "input %q", in)

		// Each separator is either a split point or inside a token, never both.
		inside := 0
		for _, f := range fields {
			inside += strings.Count(f, ",")
		}
		assert.Equal(t, strings.Count(in, ","), inside+len(fields)-1, "input %q", in)
	}
}

func TestSplitBraced_InvalidUTF8(t *testing.T) {
	// Invalid bytes scan as utf8.RuneError, one byte each.
	assert.NotPanics(t, func() {
		assert.Equal(t, []string{"a"}, SplitBraced("\xffa\xff", utf8.RuneError))
	})
	assert.Equal(t, []string{"x", "y", "z"}, SplitBraced("x\uFFFDy\xffz", utf8.RuneError))
	assert.Equal(t, []string{"\xffa", "b\xfe"}, SplitBraced("\xffa,b\xfe", ','))

	fields := Fields("x\uFFFDy{\uFFFD}", utf8.RuneError)
	assert.Equal(t, []string{"x", "y{\uFFFD}"}, fields)
	assert.Equal(t, "x\uFFFDy{\uFFFD}", strings.Join(fields, "\uFFFD"))
}

func TestSplitBraced_Idempotent(t *testing.T) {
	inputs := []string{
		"a, b, c   ,  4,,",
		`\d{1,2},\w{3,5}`,
		"{{1,2}}, x{3}, y",
		"{1,2",
	}
	for _, in := range inputs {
		for _, tok := range SplitBraced(in, ',') {
			assert.Equal(t, []string{tok}, SplitBraced(tok, ','), "token %q of %q", tok, in)
		}
	}
}

func TestTokenize_PassThrough(t *testing.T) {
	pre := Tokens{" a ", "", "b,c", "{1,2"}
	assert.Equal(t, []string(pre), Tokenize(pre))
	assert.Nil(t, Tokenize(nil))
	assert.Nil(t, Tokenize(Tokens(nil)))
}

func TestTokenize_RawDefaultsToComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Tokenize(Raw{Text: "a, b"}))
	assert.Equal(t, []string{"a, b"}, Tokenize(Raw{Text: "a, b", Sep: ';'}))
}

func TestSplitStrip(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "4"}, SplitStrip("a, b, c   ,  4,,", ','))
	assert.Equal(t, []string{"a"}, SplitStrip("a", ','))
	assert.Equal(t, []string{"a", "b", "c"}, SplitStrip("a,\nb,\nc,", ','))
	assert.Equal(t, []string{"x", "y"}, SplitStrip(`"x", 'y'`, ','))
	// No brace awareness.
	assert.Equal(t, []string{`\d{1`, `2}`}, SplitStrip(`\d{1,2}`, ','))
	require.Empty(t, SplitStrip("", ','))
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		"":        "",
		`"`:       "",
		`"a"`:     "a",
		`'a'`:     "a",
		`'a"`:     "a",
		`a"`:      "a",
		`"a`:      "a",
		"a":       "a",
		`""a""`:   `"a"`,
		"'quoted": "quoted",
	}
	for in, want := range tests {
		assert.Equal(t, want, Unquote(in), "input %q", in)
	}
}
