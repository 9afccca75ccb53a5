package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/graeme-hill/loxscan-go/lib"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s tokenize <filename>\n", os.Args[0])
		os.Exit(1)
	}

	command := os.Args[1]
	filename := os.Args[2]

	if command != "tokenize" {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		os.Exit(1)
	}

	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %s\n", filename)
		os.Exit(1)
	}

	scanner := lib.NewScanner(string(contents))
	scanner.Scan()

	// Both channels are always fully rendered; errors only decide the
	// exit code.
	if err := lib.RenderErrors(os.Stderr, scanner.Errors()); err != nil {
		panic(err)
	}
	if err := lib.RenderTokens(os.Stdout, scanner.Tokens()); err != nil {
		panic(err)
	}

	if scanner.HasErrors() {
		os.Exit(65)
	}
}
