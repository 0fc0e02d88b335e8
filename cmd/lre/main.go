// Package main is the entry point for the lre CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/lre/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
