package main

import (
	"os"

	"github.com/moboufenzi-dev/rapport-stage-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
