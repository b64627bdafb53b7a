package main

import (
	"os"

	"slidedeck/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
