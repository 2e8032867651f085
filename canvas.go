package ringscene

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA Plotter.
type Canvas struct {
	Img *image.RGBA
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *Canvas) Size() (int, int) {
	b := c.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Plot(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.Img.Rect) {
		return
	}
	i := c.Img.PixOffset(x, y)
	px := c.Img.Pix[i : i+4 : i+4]
	px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Label draws s with its baseline at (x, y) in the 7x13 bitmap face.
func (c *Canvas) Label(x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
