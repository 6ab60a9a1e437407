package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/iliyamo/fyyur/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "✖", err)
		os.Exit(1)
	}
}
