package main

import (
	"os"

	"github.com/universalhex/traitquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
