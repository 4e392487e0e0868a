package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/planehq/plane-cli/internal/command"
)

func main() {
	cmd := command.New()
	if err := cmd.Execute(); err != nil {
		marker := color.New(color.FgRed, color.Bold).Sprint("error:")
		fmt.Fprintf(os.Stderr, "%s %v\n", marker, err)
		os.Exit(1)
	}
}
