package main

import (
	"os"

	"github.com/gridshed/gridshed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
