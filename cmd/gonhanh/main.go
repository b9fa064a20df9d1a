package main

import (
	"fmt"
	"os"

	"gonhanh/cmd/gonhanh/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gonhanh: %v\n", err)
		os.Exit(1)
	}
}
