package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/dataset"
	"github.com/midbel/scatter/internal/logging"
)

const loadTimeout = 30 * time.Second

func main() {
	var (
		file   = flag.String("config", "", "configuration file")
		data   = flag.String("data", "", "location of the dataset")
		field  = flag.String("x", "", "field of the horizontal axis")
		from   = flag.String("from", "", "field selected before x")
		strict = flag.Bool("strict", false, "reject values that are not numbers")
		css    = flag.String("css", "", "write the transitions stylesheet to file")
		result = flag.String("o", "", "output file")
	)
	flag.Parse()

	cfg, err := config.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Env(os.Getenv)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *data
		case "x":
			cfg.Field = *field
		case "strict":
			cfg.Strict = *strict
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	ds, err := dataset.Load(ctx, cfg.Data, cfg.Options())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, i := range ds.Issues {
		logger.Warn("invalid value in dataset", "line", i.Line, "column", i.Column, "value", i.Value)
	}

	to, _ := cfg.InitialField()
	prev := to
	if *from != "" {
		if prev, err = scatter.ParseHorizontal(*from); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	scene, err := scatter.NewScene(ds.Records, cfg.Layout(), prev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	scene.Duration = cfg.Duration
	if scene, err = scatter.NewController(scene).Select(to); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if scene.X().Degenerate() {
		logger.Warn("degenerate horizontal domain", "field", to)
	}
	if scene.Y().Degenerate() {
		logger.Warn("degenerate vertical domain", "field", scatter.Vertical)
	}
	logger.Debug("scene ready", "records", ds.Len(), "from", prev, "to", to, "transitions", len(scene.Transitions()))

	if err := writeTo(*result, scene.Render); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *css == "" {
		return
	}
	err = writeTo(*css, func(w io.Writer) error {
		_, err := io.WriteString(w, scene.Stylesheet())
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func writeTo(file string, write func(io.Writer) error) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return write(w)
}
