package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const version = "0.3.0"

func main() {
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	runner := NewRunner(RunnerOpts{Output: os.Stdout, Logger: logger})

	if err := runner.App().Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("catalogctl: %v", err)
	}
}
