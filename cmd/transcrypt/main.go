package main

import (
	"os"

	"github.com/johnquangdev/transcrypt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
