package main

import (
	"os"

	"github.com/kupikrutcher/relationship-app/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
