package main

import (
	"os"

	"github.com/makedist/makedist/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
