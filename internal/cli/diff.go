package cli

import (
	"fmt"
	"strconv"

	"github.com/r9s-ai/optdoc/internal/optfmt"
	"github.com/spf13/cobra"
)

func newDiffCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Describe the change between two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse old value %q: %w", args[0], err)
			}
			cur, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse new value %q: %w", args[1], err)
			}
			_, err = fmt.Fprintln(opts.Stdout, optfmt.DiffString(old, cur))
			return err
		},
	}
}
