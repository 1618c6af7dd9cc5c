package main

import (
	"os"

	"github.com/zkmedar/ctcaematch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
