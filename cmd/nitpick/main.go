package main

import (
	"os"

	"github.com/tmorelli/nitpick/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
