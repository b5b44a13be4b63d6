package cli

import (
	"github.com/r9s-ai/optdoc/internal/options"
	"github.com/spf13/cobra"
)

func newINICmd(opts Options, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ini <catalog>",
		Short: "Render an option catalog as an INI configuration template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.Load(args[0], flags.logger(opts))
			if err != nil {
				return err
			}
			return catalog.WriteINI(opts.Stdout)
		},
	}
}
