// Command pcblab runs the PCB Lab mock analysis and catalog engine.
// It serves the HTTP API and offers the scan simulator, catalog queries and
// the resistance calculator from the command line.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
