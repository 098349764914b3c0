// Package main provides the entry point for modify-commit-info, which writes
// the latest Git commit hash and date into a file in place.
package main

import (
	"context"
	"os"

	"github.com/gorewood/commitstamp/internal/cli"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	return cli.Execute(context.Background(), cli.NewModifyCmd(info), info)
}
