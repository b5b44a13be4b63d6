package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

type Options struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	BuildInfo BuildInfo
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	verbose bool
}

func Run(args []string, opts Options) error {
	resolved := normalizeOptions(opts)
	root := newRootCmd(resolved)
	root.SetArgs(args)
	return root.Execute()
}

func normalizeOptions(opts Options) Options {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}

func newRootCmd(opts Options) *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "optdoc",
		Short:         "Split, format and document linter options",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log catalog loading to stderr")
	cmd.AddCommand(
		newSplitCmd(opts),
		newWrapCmd(opts),
		newRSTCmd(opts, flags),
		newINICmd(opts, flags),
		newDiffCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

func (f *globalFlags) logger(opts Options) *log.Logger {
	if !f.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(opts.Stderr, "optdoc: ", log.LstdFlags)
}
