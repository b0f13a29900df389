// Package main is the entry point for the pamplemousse CLI.
package main

import (
	"os"

	"github.com/pamplemousse-io/pamplemousse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
