// Command embodydump inspects and decodes EmBody/HyperSension protocol
// captures from the command line. It is ambient tooling around the pure
// embodycodec core: every byte-level decision lives in the codec
// packages, this binary only does file I/O and presentation.
package main

import (
	"fmt"
	"os"

	"github.com/aidee-health/embodycodec/cmd/embodydump/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
