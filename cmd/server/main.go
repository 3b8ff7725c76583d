package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/elenamoglan/collision-quest/internal/core/engine"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
	"github.com/elenamoglan/collision-quest/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address for the inspection server")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.New(log.LevelInfo)
	srv := server.New(*addr, logger, engine.New(logger))

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	if err := srv.Start(ctx); err != nil {
		fmt.Println("Error starting server:", err)
	}

	<-stopCh
	cancel()
	if err := srv.Stop(context.Background()); err != nil {
		fmt.Println("Error stopping server:", err)
	}
}
