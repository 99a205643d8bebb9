package main

import (
	"os"

	"github.com/tanishpoddar/logitrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
