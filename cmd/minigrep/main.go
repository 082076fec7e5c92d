package main

import (
	"os"

	"minigrep/internal/grepcli"
)

func main() {
	if err := grepcli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
