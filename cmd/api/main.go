package main

import (
	"os"

	"github.com/showgrid/showgrid/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
