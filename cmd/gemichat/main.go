package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diogo/gemichat/internal/commands"
	"github.com/diogo/gemichat/internal/config"
	"github.com/diogo/gemichat/internal/logger"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gemichat: %v\n", err)
		os.Exit(1)
	}
	logger.Configure(cfg.LogLevel)

	commands.Execute(cfg)
}
