package main

import (
	"os"

	"github.com/peteraglen/mojaloop-client/cmd/mlctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
