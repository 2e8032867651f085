package ringscene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/gekko3d/ringscene/ring"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid scene config")

// HexColor is a color written as "#rrggbb" in config files.
type HexColor struct {
	colorful.Color
}

func MustHex(s string) HexColor {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return HexColor{c}
}

func (h *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	h.Color = c
	return nil
}

func (h HexColor) MarshalYAML() (any, error) {
	return h.Hex(), nil
}

// RGBA8 converts to an opaque 8-bit color.
func (h HexColor) RGBA8() color.RGBA {
	r, g, b := h.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

type RingConfig struct {
	ParticleCount int        `yaml:"particle_count"`
	InnerRadius   float64    `yaml:"inner_radius"`
	OuterRadius   float64    `yaml:"outer_radius"`
	SpeedConstant float64    `yaml:"speed_constant"`
	InnerColor    HexColor   `yaml:"inner_color"`
	MidColor      HexColor   `yaml:"mid_color"`
	OuterColor    HexColor   `yaml:"outer_color"`
	Position      [3]float32 `yaml:"position"`
	TiltDegrees   [3]float32 `yaml:"tilt_degrees"`
}

// Ring converts to the sampler configuration.
func (c RingConfig) Ring() ring.Config {
	return ring.Config{
		Count:         c.ParticleCount,
		InnerRadius:   c.InnerRadius,
		OuterRadius:   c.OuterRadius,
		SpeedConstant: c.SpeedConstant,
		Palette: ring.Gradient{
			Inner: c.InnerColor.Color,
			Mid:   c.MidColor.Color,
			Outer: c.OuterColor.Color,
		},
	}
}

// Transform is the fixed placement of the ring renderable.
func (c RingConfig) Transform() Transform {
	return EulerTransform(mgl32.Vec3(c.Position), c.TiltDegrees)
}

type CubeConfig struct {
	Size     float32    `yaml:"size"`
	Position [3]float32 `yaml:"position"`
	Spin     [3]float32 `yaml:"spin"` // radians per tick
	Color    HexColor   `yaml:"color"`
}

type StarfieldConfig struct {
	Count  int      `yaml:"count"`
	Spread float32  `yaml:"spread"`
	Color  HexColor `yaml:"color"`
}

type GridConfig struct {
	Size      float32  `yaml:"size"`
	Divisions int      `yaml:"divisions"`
	Color     HexColor `yaml:"color"`
}

type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

func (c CameraConfig) Camera() Camera {
	return Camera{
		Position:    mgl32.Vec3(c.Position),
		Target:      mgl32.Vec3(c.Target),
		Up:          mgl32.Vec3{0, 1, 0},
		FovYDegrees: c.FovDegrees,
		Near:        c.Near,
		Far:         c.Far,
	}
}

type SceneConfig struct {
	// Seed for the random source; 0 lets the caller pick one.
	Seed       int64           `yaml:"seed"`
	Background HexColor        `yaml:"background"`
	Ring       RingConfig      `yaml:"ring"`
	Cube       CubeConfig      `yaml:"cube"`
	Stars      StarfieldConfig `yaml:"stars"`
	Grid       GridConfig      `yaml:"grid"`
	Camera     CameraConfig    `yaml:"camera"`
}

func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Background: MustHex("#05060a"),
		Ring: RingConfig{
			ParticleCount: 20000,
			InnerRadius:   3,
			OuterRadius:   5,
			SpeedConstant: 0.02,
			InnerColor:    MustHex("#ffd27f"),
			MidColor:      MustHex("#ff5e7e"),
			OuterColor:    MustHex("#5a6cff"),
			TiltDegrees:   [3]float32{-70, 0, 10},
		},
		Cube: CubeConfig{
			Size:  1.5,
			Spin:  [3]float32{0.01, 0.01, 0},
			Color: MustHex("#4fc3f7"),
		},
		Stars: StarfieldConfig{
			Count:  1500,
			Spread: 400,
			Color:  MustHex("#ffffff"),
		},
		Grid: GridConfig{
			Size:      20,
			Divisions: 20,
			Color:     MustHex("#2a2f3a"),
		},
		Camera: CameraConfig{
			Position:   [3]float32{0, 4, 12},
			FovDegrees: 60,
			Near:       0.1,
			Far:        1000,
		},
	}
}

// ParseSceneConfig overlays YAML data on DefaultSceneConfig and validates the
// result.
func ParseSceneConfig(data []byte) (SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

func LoadSceneConfig(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

func (c SceneConfig) Validate() error {
	if err := c.Ring.Ring().Validate(); err != nil {
		return err
	}
	if name, ok := c.nonFinite(); ok {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, name)
	}
	switch {
	case c.Cube.Size < 0:
		return fmt.Errorf("%w: cube size %v is negative", ErrInvalidConfig, c.Cube.Size)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: star count %d is negative", ErrInvalidConfig, c.Stars.Count)
	case c.Stars.Count > 0 && c.Stars.Spread <= 0:
		return fmt.Errorf("%w: star spread must be positive", ErrInvalidConfig)
	case c.Grid.Divisions < 0:
		return fmt.Errorf("%w: grid divisions %d is negative", ErrInvalidConfig, c.Grid.Divisions)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: camera fov %v out of (0, 180)", ErrInvalidConfig, c.Camera.FovDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera near/far %v/%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case mgl32.Vec3(c.Camera.Position).ApproxEqual(mgl32.Vec3(c.Camera.Target)):
		return fmt.Errorf("%w: camera position equals target", ErrInvalidConfig)
	}
	return nil
}

// nonFinite names the first float field holding NaN or Inf.
func (c SceneConfig) nonFinite() (string, bool) {
	fields := []struct {
		name string
		v    []float32
	}{
		{"ring.position", c.Ring.Position[:]},
		{"ring.tilt_degrees", c.Ring.TiltDegrees[:]},
		{"cube.size", []float32{c.Cube.Size}},
		{"cube.position", c.Cube.Position[:]},
		{"cube.spin", c.Cube.Spin[:]},
		{"stars.spread", []float32{c.Stars.Spread}},
		{"grid.size", []float32{c.Grid.Size}},
		{"camera.position", c.Camera.Position[:]},
		{"camera.target", c.Camera.Target[:]},
		{"camera.fov_degrees", []float32{c.Camera.FovDegrees}},
		{"camera.near", []float32{c.Camera.Near}},
		{"camera.far", []float32{c.Camera.Far}},
	}
	for _, f := range fields {
		for _, v := range f.v {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return f.name, true
			}
		}
	}
	return "", false
}

func (c SceneConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
