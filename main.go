package main

import (
	"os"

	"github.com/adapticode/adapticode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
