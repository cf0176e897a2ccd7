package main

import (
	"os"

	"github.com/hfrick/leaveplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
