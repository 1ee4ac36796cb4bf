package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"premium-store-bot/internal/config"
	"premium-store-bot/internal/database"
	"premium-store-bot/internal/handlers"
	"premium-store-bot/internal/logger"
	"premium-store-bot/internal/server"
	"premium-store-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using process environment")
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	if err := store.Seed(); err != nil {
		log.Warn("failed to seed demo products", zap.Error(err))
	}

	tg := telegram.NewClient(cfg.BotToken, log)

	if len(os.Args) > 1 && os.Args[1] == "setwebhook" {
		if err := tg.SetWebhook(cfg.WebhookURL); err != nil {
			log.Fatal("failed to set webhook", zap.Error(err))
		}
		log.Info("webhook registered", zap.String("url", cfg.WebhookURL))
		return
	}

	bot := handlers.New(store, tg, cfg, log)
	srv := server.New(cfg, bot, log)

	done := make(chan struct{})
	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
		close(done)
	}()

	log.Info("bot webhook server listening",
		zap.String("addr", srv.Addr()),
		zap.String("env", cfg.Env),
		zap.Int("admins", len(cfg.AdminIDs)),
	)
	if err := srv.Start(); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
	<-done
}
