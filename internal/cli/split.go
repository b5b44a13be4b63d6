package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/r9s-ai/optdoc/internal/splitlist"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	sep   string
	plain bool
}

func newSplitCmd(opts Options) *cobra.Command {
	splitOpts := splitOptions{sep: string(splitlist.DefaultSeparator)}
	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split a delimiter-separated value into tokens",
		Long: "Split a delimiter-separated value into trimmed, non-empty tokens, one per line.\n" +
			"Separators inside {...} groups are kept unless --plain is given.\n" +
			"Without arguments the value is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(splitOpts.sep) != 1 {
				return fmt.Errorf("--sep must be a single character, got %q", splitOpts.sep)
			}
			sep, _ := utf8.DecodeRuneInString(splitOpts.sep)

			text := strings.Join(args, " ")
			if len(args) == 0 {
				src, err := readSource("-", opts.Stdin)
				if err != nil {
					return err
				}
				text = string(src)
			}

			var tokens []string
			if splitOpts.plain {
				tokens = splitlist.SplitStrip(text, sep)
			} else {
				tokens = splitlist.Tokenize(splitlist.Raw{Text: text, Sep: sep})
			}
			for _, tok := range tokens {
				if _, err := fmt.Fprintln(opts.Stdout, tok); err != nil {
					return err
				}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&splitOpts.sep, "sep", splitOpts.sep, "separator character")
	fs.BoolVar(&splitOpts.plain, "plain", false, "split on every separator and unquote tokens")
	return cmd
}
