// Package main is the entry point of palettekit.
package main

import (
	"github.com/palettekit/palettekit/cmd"
	"github.com/palettekit/palettekit/config"
	"github.com/palettekit/palettekit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
