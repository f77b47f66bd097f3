package main

import (
	"fmt"
	"os"

	"github.com/khalid-nowaf/runetrie/pkg/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
