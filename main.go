package main

import (
	"os"

	"github.com/akhila-3010/job-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
