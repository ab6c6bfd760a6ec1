package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/app"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/config"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// A .env file in the working directory fills in whatever the real
	// environment leaves unset.
	_ = godotenv.Load()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger(false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.New(cfg, log).Run(ctx)
	stop()

	os.Exit(code)
}

// printBuildInfo writes the ldflags-stamped build metadata to stderr,
// keeping stdout free for the run summary.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
