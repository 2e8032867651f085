package ringscene

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FrameStats times the systems of each frame and exports the numbers to
// prometheus. Last and Frames mirror the latest values for on-screen display.
type FrameStats struct {
	Last   time.Duration
	Frames uint64

	frames       prometheus.Counter
	frameSeconds prometheus.Histogram
	particles    prometheus.Gauge

	start time.Time
	now   func() time.Time
}

func NewFrameStats(reg prometheus.Registerer) (*FrameStats, error) {
	s := &FrameStats{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringscene",
			Name:      "frames_total",
			Help:      "Number of frames stepped.",
		}),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ringscene",
			Name:      "frame_seconds",
			Help:      "CPU time spent in frame systems.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		particles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ringscene",
			Name:      "ring_particles",
			Help:      "Particles in the orbiting ring.",
		}),
		now: time.Now,
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{s.frames, s.frameSeconds, s.particles} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *FrameStats) Begin(now time.Time) {
	s.start = now
}

func (s *FrameStats) End(now time.Time, particles int) {
	if s.start.IsZero() {
		return
	}
	s.Last = now.Sub(s.start)
	s.Frames++
	s.frames.Inc()
	s.frameSeconds.Observe(s.Last.Seconds())
	s.particles.Set(float64(particles))
	s.start = time.Time{}
}

// FrameStatsStage runs after Render so frame timings include drawing.
var FrameStatsStage = Stage{Name: "FrameStats"}

// MetricsModule installs FrameStats and brackets every frame with it. It
// expects a *Scene resource.
type MetricsModule struct {
	Registerer prometheus.Registerer
}

func (m MetricsModule) Install(app *App, cmd *Commands) {
	stats, err := NewFrameStats(m.Registerer)
	if err != nil {
		panic(err)
	}
	cmd.AddResources(stats)
	app.UseStage(FrameStatsStage, AfterStage(Render))
	app.UseSystem(System(frameBeginSystem).InStage(PreUpdate))
	app.UseSystem(System(frameEndSystem).InStage(FrameStatsStage))
}

func frameBeginSystem(stats *FrameStats) {
	stats.Begin(stats.now())
}

func frameEndSystem(stats *FrameStats, scene *Scene) {
	stats.End(stats.now(), scene.Ring.Len())
}
