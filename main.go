package main

import (
	"os"

	"github.com/arjun/roadmapper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
