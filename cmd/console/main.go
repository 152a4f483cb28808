package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/xavierca1/leadtrack/internal/console"
	"github.com/xavierca1/leadtrack/internal/console/client"
)

func main() {
	godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5000/api"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(client.New(apiURL), os.Stdin, os.Stdout)
	c.Run(ctx)
}
