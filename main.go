// Package main is the entry point for podspy.
package main

import (
	"github.com/podspy-cli/podspy/cmd"
	"github.com/podspy-cli/podspy/config"
	"github.com/podspy-cli/podspy/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
