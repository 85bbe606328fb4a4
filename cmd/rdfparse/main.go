// rdfparse parses RDF documents from files, URLs or stdin and prints them
// as N-Quads or stores them in a bbolt database.
package main

import (
	"os"

	"github.com/geoknoesis/rdfparse/cmd/rdfparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
