package main

import (
	"os"

	"github.com/carson-networks/cashti-console/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
