// Command yaylint validates a single document and reports whether it is
// well-formed.
//
// Usage: yaylint [--quiet] FILE
//
// FILE may be "-" to read from standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"

	"go.yay.dev/yay"
)

func main() {
	var quiet bool
	var help bool
	getopt.BoolVarLong(&quiet, "quiet", 'q', "suppress the \"ok\" message on success")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "yaylint: exactly one FILE argument is required")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	data, err := readInput(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := yay.Parse(data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !quiet {
		fmt.Println("ok")
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
