package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gekko3d/ringscene"
	"github.com/gekko3d/ringscene/internal/termview"
	"github.com/gekko3d/ringscene/ring"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	configPath = flag.String("config", "", "Scene config YAML (defaults built in)")
	seed       = flag.Int64("seed", 0, "Random seed; 0 uses the config seed or the clock")
	particles  = flag.Int("particles", 4000, "Ring particle count (0 keeps the config value)")
	fps        = flag.Int("fps", 60, "Frames per second")
	frames     = flag.Uint64("frames", 0, "Stop after this many frames (0 runs until quit)")
	logPath    = flag.String("log", "", "Log file; logging is off when empty")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ringterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := ringscene.DefaultSceneConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ringscene.LoadSceneConfig(*configPath); err != nil {
			return err
		}
	}
	if *particles > 0 {
		cfg.Ring.ParticleCount = *particles
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	var logger ringscene.Logger = ringscene.NewNopLogger()
	if *logPath != "" {
		l, err := ringscene.NewDefaultLogger("ringterm", *debug, *logPath)
		if err != nil {
			return err
		}
		defer l.Sync()
		logger = l
	}

	s := *seed
	if s == 0 {
		s = cfg.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Infof("seed %d", s)

	scene, err := ringscene.NewScene(cfg, ring.NewRandomSource(s))
	if err != nil {
		return err
	}

	app := ringscene.NewAppBuilder().
		UseModule(
			ringscene.LoggingModule{Logger: logger},
			ringscene.TimeModule{},
			ringscene.SceneModule{Scene: scene},
			ringscene.MetricsModule{Registerer: prometheus.NewRegistry()},
			ringscene.FrameLimitModule{Frames: *frames},
		).
		Build()
	stats, _ := ringscene.Resource[ringscene.FrameStats](app)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := termview.New(screen, scene, stats)
	return termview.Run(ctx, screen, app, view, time.Second/time.Duration(*fps))
}
