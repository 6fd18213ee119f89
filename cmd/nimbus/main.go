package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/nimbus/cmd/nimbus/commands"
)

const (
	cmdName = "nimbus"

	shortDesc = "The Nimbus Command Line Interface (CLI)."
	longDesc  = `The Nimbus Command Line Interface (CLI).

Nimbus manages cloud resources from the terminal. Command help text is
authored in YAML documents alongside each command module and merged into
the rendered help at runtime.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
