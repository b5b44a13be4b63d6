package optfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/r9s-ai/optdoc/internal/textwrap"
)

// simpleList matches values like "a,b-c,d": at least two word-ish items.
var simpleList = regexp.MustCompile(`^([\w-]+,)+[\w-]+$`)

// FormatSection writes an options section in INI format: doc as a comment
// block, the [section] header, then each non-hidden option preceded by its
// help text as comments.
func FormatSection(w io.Writer, section string, options []Option, doc string) error {
	bw := bufio.NewWriter(w)
	if doc != "" {
		fmt.Fprintln(bw, Comment(doc))
	}
	fmt.Fprintf(bw, "[%s]\n", section)
	writeINIOptions(bw, options)
	return bw.Flush()
}

func writeINIOptions(w io.Writer, options []Option) {
	for _, opt := range options {
		if opt.Hidden {
			continue
		}
		fmt.Fprintln(w)
		if help := strings.TrimSpace(opt.Help); help != "" {
			fmt.Fprintln(w, textwrap.Normalize(help, textwrap.DefaultLineLength, "# "))
		}
		if opt.Value == nil {
			fmt.Fprintf(w, "#%s=\n", opt.Name)
			continue
		}
		value := strings.TrimSpace(FormatValue(opt, opt.Value))
		if simpleList.MatchString(value) {
			items := strings.Split(value, ",")
			sep := ",\n " + strings.Repeat(" ", len(opt.Name))
			value = strings.Join(items, sep)
		}
		fmt.Fprintf(w, "%s=%s\n", opt.Name, value)
	}
}
