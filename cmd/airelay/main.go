package main

import (
	"fmt"
	"os"

	"github.com/kbukum/airelay/internal/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
