package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	if err := myApp.Initialize(cfg); err != nil {
		fmt.Println("Error initializing app", err)
		os.Exit(1)
	}
	if err := myApp.Run(ctx); err != nil {
		fmt.Println("Error running app", err)
		os.Exit(1)
	}
}
