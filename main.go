package main

import (
	"os"

	"github.com/ahleksu/gail-prac-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
