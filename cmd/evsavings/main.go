package main

import (
	"os"

	"github.com/evshift/ev-savings-calculator/cmd/evsavings/cmd"
	"github.com/evshift/ev-savings-calculator/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
