package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/r9s-ai/optdoc/internal/options"
	"github.com/r9s-ai/optdoc/internal/textdiff"
	"github.com/spf13/cobra"
)

// ErrStale is returned by rst --check when the checked file differs from the generated document.
var ErrStale = errors.New("documentation is out of date")

type rstOptions struct {
	check  string
	output string
	color  string
}

func newRSTCmd(opts Options, flags *globalFlags) *cobra.Command {
	rstOpts := rstOptions{color: "auto"}
	cmd := &cobra.Command{
		Use:   "rst <catalog>",
		Short: "Render an option catalog as reStructuredText",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rstOpts.check != "" && rstOpts.output != "" {
				return errors.New("--check and --output are mutually exclusive")
			}
			colored, err := useColor(rstOpts.color, opts.Stdout)
			if err != nil {
				return err
			}

			catalog, err := options.Load(args[0], flags.logger(opts))
			if err != nil {
				return err
			}
			doc, err := catalog.RST()
			if err != nil {
				return err
			}

			switch {
			case rstOpts.check != "":
				existing, err := readSource(rstOpts.check, opts.Stdin)
				if err != nil {
					return err
				}
				lines := textdiff.Lines(string(existing), doc)
				if !textdiff.Changed(lines) {
					return nil
				}
				if err := textdiff.Render(opts.Stdout, lines, colored); err != nil {
					return err
				}
				return fmt.Errorf("%w: %s", ErrStale, rstOpts.check)
			case rstOpts.output != "":
				return writeOutput(rstOpts.output, nil, doc)
			}
			_, err = io.WriteString(opts.Stdout, doc)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&rstOpts.check, "check", "", "compare with an existing document and fail with a diff when it differs")
	fs.StringVarP(&rstOpts.output, "output", "o", "", "write the document to a file")
	fs.StringVar(&rstOpts.color, "color", rstOpts.color, "colorize diffs: auto, always or never")
	return cmd
}

// useColor resolves a --color mode. auto enables color when w is a terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
}
