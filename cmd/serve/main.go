package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/dataset"
	"github.com/midbel/scatter/internal/logging"
	"github.com/midbel/scatter/internal/server"
)

func main() {
	var (
		file = flag.String("config", "", "configuration file")
		addr = flag.String("a", "", "listening address")
		data = flag.String("data", "", "location of the dataset")
	)
	flag.Parse()

	cfg, err := config.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Env(os.Getenv)
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *data != "" {
		cfg.Data = *data
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ds, err := dataset.Load(ctx, cfg.Data, cfg.Options())
	if err != nil {
		logger.Error("loading dataset failed", "data", cfg.Data, "err", err)
		os.Exit(2)
	}
	for _, i := range ds.Issues {
		logger.Warn("invalid value in dataset", "line", i.Line, "column", i.Column, "value", i.Value)
	}
	srv, err := server.New(cfg, ds, logger)
	if err != nil {
		logger.Error("creating server failed", "err", err)
		os.Exit(2)
	}
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(2)
	}
}
