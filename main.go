package main

import (
	"os"

	"github.com/gopak/depsort/cmd"
	"github.com/gopak/depsort/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logging.Error(err.Error())
	}
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
