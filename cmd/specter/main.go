package main

import (
	"os"

	"github.com/govalues/bigdecimal/cmd/specter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
