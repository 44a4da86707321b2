// Package main provides the CLI entrypoint for optic-gen.
//
// optic-gen is a codegen tool that:
//   - Inspects Go packages (go/types via go/packages) to understand structs
//     and sealed-interface sum types
//   - Derives field lenses and constructor traversals under a naming policy
//   - Writes the accessors next to the inspected types
package main

import (
	"fmt"
	"os"

	"optic-gen/internal/cli"
)

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Println("optic-gen", cli.Version)
		os.Exit(0)
	}

	if err := cli.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
