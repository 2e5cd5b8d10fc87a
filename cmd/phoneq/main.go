package main

import (
	"os"

	"github.com/ieee0824/phoneq-go/cmd/phoneq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
