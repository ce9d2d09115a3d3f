// Package main starts the mousesim command line tool.
package main

import "os"

// main is the entrypoint for mousesim.
func main() {
	os.Exit(run(os.Args[1:]))
}
