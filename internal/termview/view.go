// Package termview draws a ringscene.Scene into a tcell screen.
package termview

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gekko3d/ringscene"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 0.5

const glyph = '•'

// View is a ringscene.Plotter over a tcell screen. Row 0 is reserved for the
// status line.
type View struct {
	screen   tcell.Screen
	scene    *ringscene.Scene
	renderer *ringscene.Renderer
	stats    *ringscene.FrameStats
	bg       tcell.Style
	last     ringscene.DrawStats
}

func New(screen tcell.Screen, scene *ringscene.Scene, stats *ringscene.FrameStats) *View {
	bg := scene.Background
	return &View{
		screen:   screen,
		scene:    scene,
		renderer: ringscene.NewRenderer(scene),
		stats:    stats,
		bg:       tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))),
	}
}

func (v *View) Size() (int, int) {
	w, h := v.screen.Size()
	return w, h - 1
}

func (v *View) PixelAspect() float32 { return cellAspect }

func (v *View) Plot(x, y int, c color.RGBA) {
	w, h := v.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	style := v.bg.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	v.screen.SetContent(x, y+1, glyph, nil, style)
}

// Last returns the counters of the latest Draw.
func (v *View) Last() ringscene.DrawStats { return v.last }

// Draw renders one frame and shows it.
func (v *View) Draw() {
	v.screen.SetStyle(v.bg)
	v.screen.Clear()
	v.last = v.renderer.Draw(v)
	v.drawStatus()
	v.screen.Show()
}

func (v *View) drawStatus() {
	line := fmt.Sprintf(" particles %d  tick %d", v.scene.Ring.Len(), v.scene.Ring.Ticks())
	if v.stats != nil {
		line += fmt.Sprintf("  frame %s", v.stats.Last.Round(time.Microsecond))
	}
	line += "  [q] quit"
	style := tcell.StyleDefault.Reverse(true)
	w, _ := v.screen.Size()
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, 0, ' ', nil, style)
	}
}

// Run attaches app to a FrameLoop ticking every interval, draws after each
// app step, and returns when ctx ends, the user quits, or the app disposes
// itself. The caller owns the screen and must Fini it afterwards.
func Run(ctx context.Context, screen tcell.Screen, app *ringscene.App, v *View, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := ringscene.NewFrameLoop()
	app.Attach(loop)
	defer app.Dispose()

	draw := loop.RegisterFrameCallback(v.Draw)
	app.OnDispose(func() { loop.CancelFrameCallback(draw) })

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	err := loop.Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
