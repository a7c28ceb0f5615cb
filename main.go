package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rook-computer/alerticon/internal/app"
)

func main() {
	logger := app.NewConsoleLogger(os.Stderr)

	if err := app.New(logger).Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "icon generation error:", err)
		os.Exit(1)
	}
}
