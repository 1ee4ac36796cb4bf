package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"premium-store-bot/internal/admincli"
	"premium-store-bot/internal/config"
	"premium-store-bot/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using process environment")
	}

	cfg := config.Load()

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	if err := store.Seed(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed demo products: %v\n", err)
	}

	admincli.New(store, os.Stdin, os.Stdout).Run()
}
