package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"net/http"
	"os"
	"time"

	"github.com/gekko3d/ringscene"
	"github.com/gekko3d/ringscene/ring"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	configPath  = flag.String("config", "", "Scene config YAML (defaults built in)")
	seed        = flag.Int64("seed", 0, "Random seed; 0 uses the config seed or the clock")
	width       = flag.Int("width", 1280, "Window width")
	height      = flag.Int("height", 720, "Window height")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	metricsAddr = flag.String("metrics-addr", "", "Serve prometheus metrics on this address, e.g. :9090")
)

var hudColor = color.RGBA{R: 0xc8, G: 0xc8, B: 0xd0, A: 0xff}

// game adapts ebiten's update/draw cycle. Update is the frame callback
// source: each call steps the FrameLoop once.
type game struct {
	loop     *ringscene.FrameLoop
	scene    *ringscene.Scene
	stats    *ringscene.FrameStats
	renderer *ringscene.Renderer
	canvas   *ringscene.Canvas
	logger   ringscene.Logger
}

func (g *game) Update() error {
	g.loop.Step()
	if g.loop.Len() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(g.scene.Background)
	ds := g.renderer.Draw(g.canvas)
	if ds.Reprojected && g.logger.DebugEnabled() && g.scene.Ring.Ticks()%600 == 0 {
		g.logger.Debugf("tick %d: %d ring points, %d stars, %d lines", g.scene.Ring.Ticks(), ds.RingPoints, ds.Stars, ds.Lines)
	}
	g.canvas.Label(8, 18, fmt.Sprintf("particles %d  tick %d  frame %s  %.0f fps",
		g.scene.Ring.Len(), g.scene.Ring.Ticks(), g.stats.Last.Round(time.Microsecond), ebiten.ActualFPS()), hudColor)
	screen.WritePixels(g.canvas.Img.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ringscene: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := ringscene.NewDefaultLogger("ringscene", *debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := ringscene.DefaultSceneConfig()
	if *configPath != "" {
		if cfg, err = ringscene.LoadSceneConfig(*configPath); err != nil {
			return err
		}
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", *width, *height)
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

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	app := ringscene.NewAppBuilder().
		UseModule(
			ringscene.LoggingModule{Logger: logger},
			ringscene.TimeModule{},
			ringscene.SceneModule{Scene: scene},
			ringscene.MetricsModule{Registerer: reg},
		).
		Build()
	stats, _ := ringscene.Resource[ringscene.FrameStats](app)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server: %v", err)
			}
		}()
		logger.Infof("serving metrics on %s/metrics", *metricsAddr)
	}

	loop := ringscene.NewFrameLoop()
	app.Attach(loop)
	defer app.Dispose()

	g := &game{
		loop:     loop,
		scene:    scene,
		stats:    stats,
		renderer: ringscene.NewRenderer(scene),
		canvas:   ringscene.NewCanvas(*width, *height),
		logger:   logger,
	}

	ebiten.SetWindowTitle("ringscene")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
