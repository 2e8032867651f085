package ring

import (
	"errors"
	"fmt"
	"math"
)

var ErrBufferSize = errors.New("ring: point cloud buffer size mismatch")

// PointCloud is the renderable the ring writes into. Positions and Colors are
// flat xyz / rgb arrays, three floats per particle. MarkDirty tells the
// renderer the position buffer must be re-uploaded before the next draw.
type PointCloud interface {
	Positions() []float32
	Colors() []float32
	MarkDirty()
}

// Ring owns the particle state and the two parallel render buffers.
// Index i of particles, positions and colors always refers to the same
// particle.
type Ring struct {
	cfg       Config
	particles []Particle
	positions []float32
	colors    []float32
	cloud     PointCloud
	ticks     uint64
}

// New samples cfg.Count particles from src and fills the position and color
// buffers. It fails only on an invalid configuration.
func New(cfg Config, src RandomSource) (*Ring, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("ring: nil random source")
	}

	r := &Ring{
		cfg:       cfg,
		particles: make([]Particle, cfg.Count),
		positions: make([]float32, 3*cfg.Count),
		colors:    make([]float32, 3*cfg.Count),
	}

	for i := range r.particles {
		p := cfg.SampleParticle(src)
		r.particles[i] = p

		c := cfg.ColorFor(p.Radius)
		r.colors[3*i] = float32(c.R)
		r.colors[3*i+1] = float32(c.G)
		r.colors[3*i+2] = float32(c.B)
	}
	r.Rederive()

	return r, nil
}

func (r *Ring) Config() Config { return r.cfg }

func (r *Ring) Len() int { return len(r.particles) }

// Particles exposes the state slice. Callers may read it but must not
// reorder or resize it.
func (r *Ring) Particles() []Particle { return r.particles }

func (r *Ring) Positions() []float32 { return r.positions }

func (r *Ring) Colors() []float32 { return r.colors }

// Ticks is the number of Tick calls since creation.
func (r *Ring) Ticks() uint64 { return r.ticks }

// Bind attaches a renderable. The ring adopts the cloud's position buffer,
// copying the current positions into it, so later ticks write straight into
// renderer memory. The color buffer is copied once.
func (r *Ring) Bind(cloud PointCloud) error {
	if cloud == nil {
		r.cloud = nil
		return nil
	}
	pos, col := cloud.Positions(), cloud.Colors()
	if len(pos) != len(r.positions) || len(col) != len(r.colors) {
		return fmt.Errorf("%w: want %d floats, got positions=%d colors=%d",
			ErrBufferSize, len(r.positions), len(pos), len(col))
	}
	copy(pos, r.positions)
	copy(col, r.colors)
	r.positions = pos
	r.colors = col
	r.cloud = cloud
	cloud.MarkDirty()
	return nil
}

// Rederive recomputes every position from (radius, angle).
func (r *Ring) Rederive() {
	for i := range r.particles {
		r.place(i)
	}
}

func (r *Ring) place(i int) {
	p := &r.particles[i]
	r.positions[3*i] = float32(math.Cos(p.Angle) * p.Radius)
	r.positions[3*i+1] = float32(math.Sin(p.Angle) * p.Radius)
}

// Tick advances every particle by one fixed angular step and marks the bound
// cloud dirty. It does not allocate.
func (r *Ring) Tick() {
	for i := range r.particles {
		r.particles[i].Angle += r.particles[i].Speed
		r.place(i)
	}
	r.ticks++
	if r.cloud != nil {
		r.cloud.MarkDirty()
	}
}
