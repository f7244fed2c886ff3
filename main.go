package main

import (
	"os"

	"github.com/nsharma/studyblocks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
