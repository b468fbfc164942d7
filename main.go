// Package main is the entry point for the iro command-line application.
package main

import (
	"github.com/iro-cli/iro/cmd"
	"github.com/iro-cli/iro/config"
	"github.com/iro-cli/iro/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
