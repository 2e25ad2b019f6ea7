package main

import (
	"fmt"
	"os"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "source-gmail: %v\n", err)
		os.Exit(1)
	}
}
