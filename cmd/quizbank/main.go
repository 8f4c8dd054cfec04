// Command quizbank extracts quiz question banks from exported Word documents.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/quizbank/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
