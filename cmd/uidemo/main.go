// Command uidemo renders a demo element tree offscreen, replaying clicks
// through the event handler.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/app"
	"github.com/gogpu/ui/internal/demo"
	"github.com/mattn/go-isatty"
)

func main() {
	var (
		appName = flag.String("app", "counter", "demo to run: counter or chess")
		order   = flag.String("order", "contiguous", "chess square order: contiguous or interleaved")
		clicks  = flag.Int("clicks", 3, "number of clicks to replay")
		frames  = flag.Int("frames", 1, "extra frames to render after the clicks")
		config  = flag.String("config", "", "YAML config file")
		verbose = flag.Bool("v", false, "log per-frame diagnostics")
	)
	flag.Parse()

	ui.SetLogger(newLogger(*verbose))

	cfg := app.DefaultConfig().WithTitle("uidemo")
	if *config != "" {
		var err error
		if cfg, err = app.LoadConfig(*config); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *appName, *order, *clicks, *frames); err != nil {
		log.Fatal(err)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// scenario is a demo tree plus where to click it and what to report.
type scenario struct {
	root   ui.Element
	target func(i int, w, h uint32) (x, y float64)
	report func() []any
}

func newScenario(name, order string) (*scenario, error) {
	switch name {
	case "counter":
		c := demo.NewCounter()
		return &scenario{
			root:   c.Root,
			target: func(_ int, w, h uint32) (float64, float64) { return demo.ButtonCenter(w, h) },
			report: func() []any {
				text, _ := c.Text.Cached()
				return []any{"count", c.Count.Load(), "text", text}
			},
		}, nil
	case "chess":
		o := demo.Contiguous
		switch order {
		case "contiguous":
		case "interleaved":
			o = demo.Interleaved
		default:
			return nil, fmt.Errorf("unknown order %q", order)
		}
		c := demo.NewChess(o)
		return &scenario{
			root: c.Root,
			target: func(i int, w, h uint32) (float64, float64) {
				sq := (i * 7) % (demo.BoardSize * demo.BoardSize)
				return demo.SquareCenter(sq%demo.BoardSize, sq/demo.BoardSize, w, h)
			},
			report: func() []any { return []any{"selected", c.Selected.Load()} },
		}, nil
	default:
		return nil, fmt.Errorf("unknown app %q", name)
	}
}

func run(ctx context.Context, cfg app.Config, name, order string, clicks, frames int) error {
	sc, err := newScenario(name, order)
	if err != nil {
		return err
	}

	gpu, err := app.NewHeadlessGPU(cfg)
	if err != nil {
		return err
	}
	defer gpu.Close()

	h, err := app.NewHandler(gpu, sc.root, gpu.Registry(), gpu.Renderer(), app.WithClearColor(cfg.Clear()))
	if err != nil {
		return err
	}

	events := make(chan app.WindowEvent)
	go func() {
		defer close(events)
		size := gpu.Size()
		send := func(ev app.WindowEvent) bool {
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}
		for i := range clicks {
			x, y := sc.target(i, size.W, size.H)
			if !send(app.CursorMoved{X: x, Y: y}) ||
				!send(app.MouseInput{Pressed: true, Button: ui.ButtonLeft}) ||
				!send(app.MouseInput{Button: ui.ButtonLeft}) {
				return
			}
		}
		for range frames {
			if !send(app.RedrawRequested{}) {
				return
			}
		}
		send(app.CloseRequested{})
	}()

	if err := h.Run(ctx, events); err != nil {
		return err
	}

	stats := h.Stats()
	attrs := append([]any{
		"app", name,
		"frames", h.Frames(),
		"flushes", stats.Flushes,
		"instances", stats.Instances,
	}, sc.report()...)
	ui.Logger().Info("uidemo: done", attrs...)
	return nil
}
