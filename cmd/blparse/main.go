/*
blparse is a console utility that tokenizes and parses BL programs.
Usage is

	blparse [--config <file>] [-v] parse [-f summary|yaml|json] <file>
	blparse [--config <file>] tokens <file>
	blparse eval <expression>
	blparse version

<file> may be "-" to read standard input. --config names a TOML or YAML settings file.
*/
package main

import (
	"os"

	"github.com/ava12/bl/cmd/blparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
