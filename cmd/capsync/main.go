// Package main provides the entry point for the capsync CLI tool.
package main

import "github.com/opencaptable/capsync/cmd/capsync/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
