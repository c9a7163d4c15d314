package main

import (
	"os"

	"github.com/astrium/megascan/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
