// Package main is the entry point for the packlist binary.
//
// main stays minimal: configuration, logging and wiring all happen in
// internal/cli so they can be tested without building the binary.
package main

import "github.com/sakif/packlist/internal/cli"

func main() {
	cli.Execute()
}
