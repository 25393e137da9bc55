package replay

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/brensch/battlecore/engine"
)

const cellPx = 20

var (
	colBackground = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	colHazard     = color.RGBA{0x3a, 0x2a, 0x2a, 0xff}
	colFood       = color.RGBA{0xe0, 0x5d, 0x44, 0xff}
	colGrid       = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

// RenderGIF draws every board in frames as one animated GIF, one frame per
// board, ten ticks per second. Each snake gets a stable color derived from
// its ID so it can be told apart across frames.
func RenderGIF(frames []*engine.Board) ([]byte, error) {
	if len(frames) == 0 {
		return nil, nil
	}
	width, height := frames[0].Width(), frames[0].Height()
	palette := buildPalette()

	out := &gif.GIF{}
	for _, b := range frames {
		img := image.NewPaletted(image.Rect(0, 0, width*cellPx, height*cellPx), palette)
		drawBoard(img, b)
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, 10)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildPalette() color.Palette {
	p := color.Palette{colBackground, colHazard, colFood, colGrid, color.RGBA{0, 0, 0, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}}
	for i := 0; i < int(engine.MaxSnakes); i++ {
		base, light := generateColor(i)
		p = append(p, base, light)
	}
	return p
}

// generateColor derives a distinct, deterministic color pair (body,
// lightened head) for snake index i by walking evenly around the hue
// wheel, so adjacent snake IDs never land on visually similar colors.
func generateColor(i int) (color.RGBA, color.RGBA) {
	hue := float64(i) * 137.508 // golden angle, spreads hues apart
	base := hsvToRGB(hue, 0.65, 0.75)
	return base, lighten(base, 0.35)
}

func hsvToRGB(h, s, v float64) color.RGBA {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	c := v * s
	x := c * (1 - absFloat(modFloat(h/60, 2)-1))
	m := v - c
	var r, g, bl float64
	switch {
	case h < 60:
		r, g, bl = c, x, 0
	case h < 120:
		r, g, bl = x, c, 0
	case h < 180:
		r, g, bl = 0, c, x
	case h < 240:
		r, g, bl = 0, x, c
	case h < 300:
		r, g, bl = x, 0, c
	default:
		r, g, bl = c, 0, x
	}
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((bl + m) * 255),
		A: 0xff,
	}
}

func lighten(c color.RGBA, amount float64) color.RGBA {
	lerp := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.RGBA{R: lerp(c.R), G: lerp(c.G), B: lerp(c.B), A: 0xff}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func modFloat(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}

func drawBoard(img *image.Paletted, b *engine.Board) {
	draw.Draw(img, img.Bounds(), &image.Uniform{colBackground}, image.Point{}, draw.Src)

	for _, pos := range b.AllHazards() {
		fillCell(img, b, pos, colHazard)
	}
	for _, pos := range b.AllFood() {
		fillCell(img, b, pos, colFood)
	}

	for _, id := range b.SnakeIDs() {
		if !b.IsAlive(id) {
			continue
		}
		base, head := generateColor(int(id))
		body := b.SnakeBody(id)
		for i, pos := range body {
			c := base
			if i == 0 {
				c = head
			}
			fillCell(img, b, pos, c)
		}
		drawLabel(img, b, body[0], id)
	}
}

func fillCell(img *image.Paletted, b *engine.Board, pos engine.Position, c color.Color) {
	// Boards render top row first, so flip Y the same way Display does.
	px := pos.X * cellPx
	py := (b.Height() - 1 - pos.Y) * cellPx
	rect := image.Rect(px, py, px+cellPx, py+cellPx)
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}

func drawLabel(img *image.Paletted, b *engine.Board, head engine.Position, id engine.SnakeId) {
	px := head.X*cellPx + cellPx/4
	py := (b.Height()-1-head.Y)*cellPx + cellPx*3/4
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{color.RGBA{0xff, 0xff, 0xff, 0xff}},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(px, py),
	}
	d.DrawString(string(rune('A' + id)))
}
