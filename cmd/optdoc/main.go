package main

import (
	"log"
	"os"

	"github.com/r9s-ai/optdoc/cli"
)

// Set with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "none"
	buildDate = ""
)

func main() {
	logger := log.New(os.Stderr, "optdoc: ", 0)
	err := cli.Run(os.Args[1:], cli.Options{
		BuildInfo: cli.BuildInfo{
			Version:   version,
			Commit:    commit,
			BuildDate: buildDate,
		},
	})
	if err != nil {
		logger.Fatal(err)
	}
}
