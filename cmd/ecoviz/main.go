//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/app"
	"agent-ecosystem/internal/feed"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

const hudWidth = 240

func main() {
	logger := log.New(os.Stderr, "[ecoviz] ", log.LstdFlags|log.Lmicroseconds)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			logger.Fatalf("config: %v", err)
		}
		// Flags given on the command line win over the file.
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			logger.Fatal(err)
		}
	}
	if cfg.Tick <= 0 {
		logger.Fatalf("tick must be positive, got %s", cfg.Tick)
	}

	ctrl := app.NewController(cfg.EcosystemConfig(), cfg.Tick)
	ctrl.Resize(cfg.Width)
	ctrl.OnSelect = func(rec agent.Record) {
		if rec.URL == "" {
			logger.Printf("selected %s (%s, %s)", rec.Name, rec.Status, agent.FormatBalance(rec.Balance))
			return
		}
		logger.Printf("selected %s: %s", rec.Name, rec.URL)
	}

	docs := &feed.Latest{}
	if cfg.AgentsFile != "" {
		doc, err := feed.LoadFile(cfg.AgentsFile)
		if err != nil {
			logger.Fatalf("agents: %v", err)
		}
		logger.Printf("loaded %d agents from %s", len(doc.Agents), cfg.AgentsFile)
		docs.Publish(doc)
	} else if cfg.FeedURL != "" {
		docs.Publish(feed.Document{Loading: true})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	if cfg.FeedURL != "" {
		sub := &feed.Subscriber{URL: cfg.FeedURL, Logger: logger}
		g.Go(func() error {
			err := sub.Run(gctx, docs)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	panel := 0
	if cfg.HUD {
		panel = hudWidth
	}
	game := app.NewGame(ctrl, docs, gctx.Done(), panel)
	w, h := ctrl.ViewSize()
	ebiten.SetWindowTitle("Agent ecosystem")
	ebiten.SetWindowSize(w+panel, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	stop()
	if err := g.Wait(); err != nil {
		logger.Printf("feed: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		logger.Fatal(runErr)
	}
}
