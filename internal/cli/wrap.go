package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/r9s-ai/optdoc/internal/textwrap"
	"github.com/spf13/cobra"
)

type wrapOptions struct {
	width  int
	indent string
	write  bool
}

func newWrapCmd(opts Options) *cobra.Command {
	wrapOpts := wrapOptions{width: textwrap.DefaultLineLength}
	cmd := &cobra.Command{
		Use:   "wrap [file|-]",
		Short: "Wrap text to a column width",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("wrap accepts at most one file path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
				if path == "" {
					path = "-"
				}
			}
			if wrapOpts.width < 1 {
				return fmt.Errorf("--width must be positive, got %d", wrapOpts.width)
			}

			src, err := readSource(path, opts.Stdin)
			if err != nil {
				return err
			}
			wrapped := textwrap.Normalize(string(src), wrapOpts.width, wrapOpts.indent)
			if wrapped != "" {
				wrapped += "\n"
			}
			if wrapOpts.write {
				return writeOutput(path, src, wrapped)
			}
			_, err = io.WriteString(opts.Stdout, wrapped)
			return err
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&wrapOpts.width, "width", textwrap.DefaultLineLength, "maximum line width, indent included")
	fs.StringVar(&wrapOpts.indent, "indent", "", "prefix for every output line")
	fs.BoolVarP(&wrapOpts.write, "write", "w", false, "write result back to file")
	return cmd
}

func readSource(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", path, err)
	}
	return src, nil
}

func writeOutput(path string, src []byte, out string) error {
	if path == "-" {
		return errors.New("--write requires a file path")
	}
	if out == string(src) {
		return nil
	}
	mode := os.FileMode(0o644)
	if st, statErr := os.Stat(path); statErr == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(out), mode); err != nil {
		return fmt.Errorf("write file %q: %w", path, err)
	}
	return nil
}
