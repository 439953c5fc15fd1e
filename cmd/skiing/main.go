// Command skiing prints the length and vertical drop of the longest downhill
// run on an elevation map.
//
//	skiing [OPTIONS] map-file
//
// The map file holds two integers, the number of columns and rows, followed
// by the elevations in row-major order. On success the only output is
//
//	Length: N
//	Drop: D
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fbleibel/redmart-ski/gridgraph"
	"github.com/fbleibel/redmart-ski/internal/config"
	"github.com/fbleibel/redmart-ski/internal/logger"
	"github.com/fbleibel/redmart-ski/skiing"
)

var version = "v0.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "skiing, version: %s\n", version)
		return 0
	}
	if cfg.MapFile == "" {
		fmt.Fprintln(stderr, "Usage: skiing /path/to/map/file")
		return 1
	}

	logger.Level.SetByName(cfg.LogLevel)
	log := logger.New(stderr)

	f, err := os.Open(cfg.MapFile)
	if err != nil {
		log.Debug("open failed", slog.String("path", cfg.MapFile), slog.Any("error", err))
		fmt.Fprintf(stderr, "Can't open %s\n", cfg.MapFile)
		return 1
	}
	defer f.Close()

	g, err := gridgraph.Load(f, cfg.GridOptions())
	if err != nil {
		fmt.Fprintf(stderr, "Invalid map %s: %v\n", cfg.MapFile, err)
		return 1
	}
	log.Info("map loaded",
		slog.String("path", cfg.MapFile),
		slog.Int("columns", g.Columns),
		slog.Int("rows", g.Rows),
		slog.String("connectivity", g.Conn.String()),
	)

	res, err := skiing.Solve(ctx, g, skiing.WithLogger(log))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("interrupted")
		} else {
			log.Error("solve failed", slog.Any("error", err))
		}
		return 1
	}

	if err := skiing.WriteResult(stdout, res); err != nil {
		log.Error("write result", slog.Any("error", err))
		return 1
	}
	return 0
}
