package main

import (
	"os"

	"github.com/voltride/rental-core/cmd/rentalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
