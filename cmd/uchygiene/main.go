// Package main is the entry point for the uchygiene binary.
package main

import (
	"os"

	"uchygiene/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
