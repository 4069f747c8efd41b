// Command ecosnap renders the ecosystem view without a window, either as a PNG
// or as coloured text for a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"agent-ecosystem/internal/app"
	"agent-ecosystem/internal/feed"
	"agent-ecosystem/internal/render"
	"agent-ecosystem/internal/termview"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

func main() {
	logger := log.New(os.Stderr, "[ecosnap] ", 0)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("ecosnap", flag.ContinueOnError)
	cfg := app.NewConfig()
	fs.StringVar(&cfg.AgentsFile, "agents", "", "agents document (YAML or JSON)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.Int64Var(&cfg.Seed, "seed", 1, "background noise seed")
	ticks := fs.Int("ticks", 0, "ticks to simulate before the snapshot")
	out := fs.String("out", "", "PNG output path (- for stdout)")
	term := fs.Bool("term", false, "print the grid as coloured text")
	var overrides kvList
	fs.Var(&overrides, "set", "ecosystem override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if cfg.AgentsFile == "" {
		return errors.New("-agents is required")
	}
	if *out == "" && !*term {
		return errors.New("nothing to do: pass -out or -term")
	}
	if *ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", *ticks)
	}
	if cfg.Ecosystem == nil {
		cfg.Ecosystem = map[string]string{}
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		cfg.Ecosystem[parts[0]] = parts[1]
	}

	doc, err := feed.LoadFile(cfg.AgentsFile)
	if err != nil {
		return err
	}
	ctrl := app.NewController(cfg.EcosystemConfig(), cfg.Tick)
	ctrl.Resize(cfg.Width)
	ctrl.Apply(doc)

	// Drive the frame loop on a synthetic clock, one tick per frame.
	now := time.Unix(0, 0)
	ctrl.Frame(now)
	stepped := 0
	for stepped < *ticks && !ctrl.Loading() && ctrl.World().Initialized() {
		now = now.Add(cfg.Tick)
		stepped += ctrl.Frame(now)
	}
	w := ctrl.World()
	logger.Printf("%d agents, generation %d, %d live cells", len(w.Agents()), w.Generation(), w.LiveCount())

	if *term {
		fmt.Fprintln(stdout, termview.Render(w, ctrl.Loading()))
	}
	if *out == "" {
		return nil
	}
	vw, vh := ctrl.ViewSize()
	raster := render.NewRaster(vw, vh)
	ctrl.Render(raster, now)
	dst := stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	if err := png.Encode(dst, raster.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", *out, err)
	}
	return nil
}
