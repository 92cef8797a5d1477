package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"notify-runner/internal/config"
	"notify-runner/internal/dispatch"
	"notify-runner/internal/logger"
	"notify-runner/internal/runner"
)

// main is the entry point for the one-shot notification runner.
func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "notify-runner: load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notify-runner: init logger: %v\n", err)
		os.Exit(1)
	}

	r := runner.New(cfg, log, dispatch.ShoutrrrFactory, os.Stdin, os.Stdout)
	os.Exit(r.Run(context.Background()))
}
