// Package cli exposes the optdoc command line for embedding in other binaries.
package cli

import internalcli "github.com/r9s-ai/optdoc/internal/cli"

type BuildInfo = internalcli.BuildInfo
type Options = internalcli.Options

// ErrStale is returned by "rst --check" when the checked document is out of date.
var ErrStale = internalcli.ErrStale

func Run(args []string, opts Options) error {
	return internalcli.Run(args, opts)
}
