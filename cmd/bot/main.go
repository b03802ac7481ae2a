package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/handranker/internal/bot"
	"github.com/fadedpez/handranker/internal/config"
	"github.com/fadedpez/handranker/internal/discord"
	"github.com/fadedpez/handranker/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default.Error("loading config: %v", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel)).With("env", cfg.Environment)

	if err := cfg.ValidateDiscord(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		logger.Error("creating Discord session: %v", err)
		os.Exit(1)
	}

	b := bot.New(cfg, session, logger)
	if err := b.Start(); err != nil {
		logger.Error("starting bot: %v", err)
		os.Exit(1)
	}

	logger.Info("Bot is running. Press Ctrl+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	b.Shutdown()
}
