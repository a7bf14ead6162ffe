package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/dataset"
	"github.com/midbel/scatter/internal/export"
	"github.com/midbel/scatter/internal/logging"
)

func main() {
	var (
		file = flag.String("config", "", "configuration file")
		dir  = flag.String("dir", ".", "output directory")
		data = flag.String("data", "", "location of the dataset")
	)
	flag.Parse()

	cfg, err := config.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Env(os.Getenv)
	if *data != "" {
		cfg.Data = *data
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ds, err := dataset.Load(ctx, cfg.Data, cfg.Options())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, i := range ds.Issues {
		logger.Warn("invalid value in dataset", "line", i.Line, "column", i.Column, "value", i.Value)
	}
	files, err := export.All(ctx, *dir, ds.Records, cfg.Layout())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, f := range files {
		logger.Info("image written", "file", f)
	}
}
