package main

import (
	"os"

	"github.com/dakia/mathquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
