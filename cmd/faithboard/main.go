// main is the entry point of the faithboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/faithboard/faithboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
