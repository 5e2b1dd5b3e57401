package main

import (
	"os"

	"github.com/climacurat/climacurat/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
