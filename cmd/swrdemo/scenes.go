package main

import (
	"math"
	"slices"
	"strings"

	"github.com/gogpu/swr"
)

// A scene draws into the whole canvas.
type scene func(c *swr.Canvas) error

var scenes = map[string]scene{
	"polys":     drawPolys,
	"star":      drawStar,
	"gradients": drawGradients,
	"mesh":      drawMesh,
	"circles":   drawCircles,
	"all":       drawAll,
}

func sceneNames() string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// unit scales the canvas so the scene can draw in a 100x100 space.
func unit(c *swr.Canvas) {
	c.Scale(float64(c.Width())/100, float64(c.Height())/100)
}

func drawPolys(c *swr.Canvas) error {
	c.Clear(swr.Hex("#202830"))
	c.Save()
	defer c.Restore()
	unit(c)

	for i := range 6 {
		n := i + 3
		cx := 20 + float64(i%3)*30
		cy := 25 + float64(i/3)*50
		pts := make([]swr.Point, n)
		for k := range pts {
			a := 2 * math.Pi * float64(k) / float64(n)
			pts[k] = swr.Pt(cx+12*math.Cos(a), cy+12*math.Sin(a))
		}
		col := swr.HSL(float64(i)*60, 0.7, 0.55)
		c.DrawConvexPolygon(pts, swr.NewPaint(col.WithAlpha(0.85)))
	}
	return nil
}

func drawStar(c *swr.Canvas) error {
	c.Clear(swr.White)
	c.Save()
	defer c.Restore()
	unit(c)

	star := swr.NewPath()
	for i := range 5 {
		a := -math.Pi/2 + float64(i)*4*math.Pi/5
		x, y := 50+45*math.Cos(a), 50+45*math.Sin(a)
		if i == 0 {
			star.MoveTo(x, y)
		} else {
			star.LineTo(x, y)
		}
	}
	c.DrawPath(star, swr.NewPaint(swr.Hex("#d03030")))

	stroke := swr.NewPath().AddStrokeLine(swr.Pt(10, 90), swr.Pt(90, 90), 4, true)
	c.DrawPath(stroke, swr.NewPaint(swr.Black))
	return nil
}

func drawGradients(c *swr.Canvas) error {
	c.Save()
	defer c.Restore()
	unit(c)

	lin, err := swr.NewLinearGradient(swr.Pt(0, 0), swr.Pt(100, 0),
		[]swr.Color{swr.Red, swr.Green, swr.Blue}, swr.TileClamp)
	if err != nil {
		return err
	}
	c.DrawRect(swr.RectLTRB(0, 0, 100, 50), swr.NewPaint(swr.Black).WithShader(lin))

	rad, err := swr.NewRadialGradient(swr.Pt(50, 75), 10,
		[]swr.Color{swr.White, swr.Hex("#3060c0")}, swr.TileMirror)
	if err != nil {
		return err
	}
	c.DrawRect(swr.RectLTRB(0, 50, 100, 100), swr.NewPaint(swr.Black).WithShader(rad))
	return nil
}

func drawMesh(c *swr.Canvas) error {
	c.Clear(swr.Black)
	c.Save()
	defer c.Restore()
	unit(c)

	// A 2x2 checkerboard stretched over a bent quad and tinted by corner
	// colors.
	tex := swr.NewBitmap(2, 2)
	tex.SetPixel(0, 0, swr.White.Pixel())
	tex.SetPixel(1, 1, swr.White.Pixel())
	tex.SetPixel(1, 0, swr.Hex("#808080").Pixel())
	tex.SetPixel(0, 1, swr.Hex("#808080").Pixel())
	sh, err := swr.NewBitmapShader(tex, swr.Scale(0.125, 0.125), swr.TileRepeat)
	if err != nil {
		return err
	}

	verts := [4]swr.Point{{X: 10, Y: 15}, {X: 90, Y: 5}, {X: 80, Y: 95}, {X: 15, Y: 80}}
	colors := []swr.Color{swr.Red, swr.Green, swr.Blue, swr.White}
	texs := []swr.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	c.DrawQuad(verts, colors, texs, 12, swr.NewPaint(swr.Black).WithShader(sh))
	return nil
}

func drawCircles(c *swr.Canvas) error {
	c.Clear(swr.White)
	c.Save()
	defer c.Restore()
	unit(c)

	for i, col := range []swr.Color{swr.Red, swr.Green, swr.Blue} {
		a := 2*math.Pi*float64(i)/3 - math.Pi/2
		center := swr.Pt(50+15*math.Cos(a), 50+15*math.Sin(a))
		c.DrawPath(swr.NewPath().AddCircle(center, 25, swr.Clockwise),
			swr.NewPaint(col.WithAlpha(0.5)).WithBlendMode(swr.BlendSrcOver))
	}

	ring := swr.NewPath().
		AddCircle(swr.Pt(50, 50), 48, swr.Clockwise).
		AddCircle(swr.Pt(50, 50), 45, swr.CounterClockwise)
	c.DrawPath(ring, swr.NewPaint(swr.Black))
	return nil
}

// drawAll tiles every other scene into a three-column grid.
func drawAll(c *swr.Canvas) error {
	parts := []scene{drawPolys, drawStar, drawGradients, drawMesh, drawCircles}
	c.Clear(swr.Transparent)

	const cols = 3
	rows := (len(parts) + cols - 1) / cols
	w, h := float64(c.Width())/cols, float64(c.Height())/float64(rows)
	for i, fn := range parts {
		sub := swr.NewBitmap(int(w), int(h))
		sc, err := swr.NewCanvas(sub)
		if err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			return err
		}
		sh, err := swr.NewBitmapShader(sub, swr.Identity(), swr.TileClamp)
		if err != nil {
			return err
		}

		c.Save()
		c.Translate(float64(i%cols)*w, float64(i/cols)*h)
		c.DrawRect(swr.RectWH(float64(sub.Width), float64(sub.Height)),
			swr.NewPaint(swr.Black).WithShader(sh))
		c.Restore()
	}
	return nil
}
