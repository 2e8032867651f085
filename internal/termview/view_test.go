package termview

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gekko3d/ringscene"
	"github.com/gekko3d/ringscene/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plotColor = color.RGBA{R: 200, G: 80, B: 40, A: 255}

func newTestScene(t *testing.T) *ringscene.Scene {
	t.Helper()
	cfg := ringscene.DefaultSceneConfig()
	cfg.Ring.ParticleCount = 300
	cfg.Stars.Count = 20
	scene, err := ringscene.NewScene(cfg, ring.NewRandomSource(12))
	require.NoError(t, err)
	return scene
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func statusLine(screen tcell.Screen) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestView_Draw(t *testing.T) {
	screen := newSimScreen(t)
	scene := newTestScene(t)
	v := New(screen, scene, nil)

	w, h := v.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 23, h)

	v.Draw()

	assert.Contains(t, statusLine(screen), "particles 300")
	assert.Positive(t, v.Last().RingPoints)

	glyphs := 0
	for y := 1; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == glyph {
				glyphs++
			}
		}
	}
	assert.Positive(t, glyphs)
}

func TestView_PlotClipsToDrawArea(t *testing.T) {
	screen := newSimScreen(t)
	v := New(screen, newTestScene(t), nil)

	v.Plot(-1, 0, plotColor)
	v.Plot(80, 0, plotColor)
	v.Plot(0, 23, plotColor)
	v.Plot(3, 2, plotColor)

	r, _, _, _ := screen.GetContent(3, 3)
	assert.Equal(t, glyph, r)
	r, _, _, _ = screen.GetContent(0, 0)
	assert.NotEqual(t, glyph, r)
}

func TestRun_StopsOnFrameLimit(t *testing.T) {
	screen := newSimScreen(t)
	scene := newTestScene(t)
	app := ringscene.NewAppBuilder().
		UseModule(
			ringscene.LoggingModule{Logger: ringscene.NewNopLogger()},
			ringscene.SceneModule{Scene: scene},
			ringscene.FrameLimitModule{Frames: 4},
		).
		Build()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, screen, app, New(screen, scene, nil), time.Millisecond)
	require.NoError(t, err)
	assert.True(t, app.Disposed())
	assert.Equal(t, uint64(4), scene.Ring.Ticks())
}

func TestRun_QuitKey(t *testing.T) {
	screen := newSimScreen(t)
	scene := newTestScene(t)
	app := ringscene.NewAppBuilder().UseModule(ringscene.SceneModule{Scene: scene}).Build()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, screen, app, New(screen, scene, nil), time.Millisecond)
	require.NoError(t, err)
	assert.True(t, app.Disposed())
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
