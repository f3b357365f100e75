package main

import (
	"fmt"
	"os"

	"inventory/internal/delivery/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
