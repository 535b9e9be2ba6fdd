package main

import (
	"os"

	"github.com/pershop/pershop-pilote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
