package ringscene

import (
	"image/color"

	"github.com/gekko3d/ringscene/ring"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene holds everything the viewers draw: the orbiting particle ring, a
// spinning wireframe cube, a static grid and a static starfield.
type Scene struct {
	Ring          *ring.Ring
	RingCloud     *ring.Buffer
	RingTransform Transform

	Cube      *Spinner
	CubeEdges []Segment
	CubeColor color.RGBA

	Stars     []mgl32.Vec3
	StarColor color.RGBA

	Grid      []Segment
	GridColor color.RGBA

	Camera     Camera
	Background color.RGBA
}

// NewScene validates cfg and samples the ring and starfield from src. The ring
// is bound to a fresh ring.Buffer and its transform is fixed here.
func NewScene(cfg SceneConfig, src ring.RandomSource) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r, err := ring.New(cfg.Ring.Ring(), src)
	if err != nil {
		return nil, err
	}
	cloud := ring.NewBufferFor(r.Len())
	if err := r.Bind(cloud); err != nil {
		return nil, err
	}

	return &Scene{
		Ring:          r,
		RingCloud:     cloud,
		RingTransform: cfg.Ring.Transform(),

		Cube: &Spinner{
			Position: mgl32.Vec3(cfg.Cube.Position),
			Rate:     mgl32.Vec3(cfg.Cube.Spin),
		},
		CubeEdges: CubeEdges(cfg.Cube.Size),
		CubeColor: cfg.Cube.Color.RGBA8(),

		Stars:     SampleStarfield(cfg.Stars.Count, cfg.Stars.Spread, src),
		StarColor: cfg.Stars.Color.RGBA8(),

		Grid:      GridLines(cfg.Grid.Size, cfg.Grid.Divisions),
		GridColor: cfg.Grid.Color.RGBA8(),

		Camera:     cfg.Camera.Camera(),
		Background: cfg.Background.RGBA8(),
	}, nil
}

// SceneModule installs a prepared Scene and the per-frame systems that spin
// the cube and advance the ring.
type SceneModule struct {
	Scene *Scene
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	if m.Scene == nil {
		panic("SceneModule: nil scene")
	}
	cmd.AddResources(m.Scene)
	app.UseSystem(System(cubeSpinSystem).InStage(Update))
	app.UseSystem(System(ringOrbitSystem).InStage(Update))

	app.Logger().Infof("scene installed: %d ring particles, %d stars, %d grid lines",
		m.Scene.Ring.Len(), len(m.Scene.Stars), len(m.Scene.Grid))
}

func cubeSpinSystem(scene *Scene) {
	scene.Cube.Tick()
}

func ringOrbitSystem(scene *Scene) {
	scene.Ring.Tick()
}
