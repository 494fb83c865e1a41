// Package painter executes render command lists on an ebiten image.
package painter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/superanimalrun/render"
	"golang.org/x/image/font/gofont/gobold"
)

type Painter struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	white  *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func New() (*Painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("painter: load font: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Painter{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// Draw paints cmds onto dst shifted by (offX, offY), the screen shake.
func (p *Painter) Draw(dst *ebiten.Image, cmds []render.Command, offX, offY float64) {
	for i := range cmds {
		cmd := cmds[i]
		x, y := float32(cmd.X+offX), float32(cmd.Y+offY)
		clr := withAlpha(cmd.Color, cmd.Alpha)
		switch cmd.Kind {
		case render.KindRect:
			vector.FillRect(dst, x, y, float32(cmd.W), float32(cmd.H), clr, false)
		case render.KindStrokeRect:
			vector.StrokeRect(dst, x, y, float32(cmd.W), float32(cmd.H), float32(cmd.StrokeWidth), clr, false)
		case render.KindCircle:
			vector.FillCircle(dst, x, y, float32(cmd.Radius), clr, true)
		case render.KindRoundRect:
			p.fillPath(dst, roundRectPath(x, y, float32(cmd.W), float32(cmd.H), float32(cmd.Radius)), clr)
		case render.KindPolygon:
			p.fillPath(dst, polygonPath(cmd.Points, offX, offY), clr)
		case render.KindGradient:
			p.vertices, p.indices = gradientMesh(p.vertices[:0], p.indices[:0], cmd, offX, offY)
			dst.DrawTriangles(p.vertices, p.indices, p.white, &ebiten.DrawTrianglesOptions{})
		case render.KindText:
			p.drawText(dst, cmd, offX, offY)
		}
	}
}

func (p *Painter) fillPath(dst *ebiten.Image, path *vector.Path, clr color.NRGBA) {
	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range p.vertices {
		p.vertices[i].SrcX = 1
		p.vertices[i].SrcY = 1
		p.vertices[i].ColorR = r
		p.vertices[i].ColorG = g
		p.vertices[i].ColorB = b
		p.vertices[i].ColorA = a
	}
	dst.DrawTriangles(p.vertices, p.indices, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (p *Painter) face(size float64) *text.GoTextFace {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: p.source, Size: size}
	p.faces[size] = f
	return f
}

// drawText places the baseline at the command's Y.
func (p *Painter) drawText(dst *ebiten.Image, cmd render.Command, offX, offY float64) {
	face := p.face(cmd.Size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.X+offX, cmd.Y+offY-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(withAlpha(cmd.Color, cmd.Alpha))
	if cmd.Align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, cmd.Text, face, op)
}

// withAlpha scales the color's opacity, returning a straight-alpha color.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := float64(c.A) * alpha
	switch {
	case a < 0:
		a = 0
	case a > 0xff:
		a = 0xff
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a + 0.5)}
}

func polygonPath(pts []render.Point, offX, offY float64) *vector.Path {
	var path vector.Path
	for i, pt := range pts {
		x, y := float32(pt.X+offX), float32(pt.Y+offY)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()
	return &path
}

func roundRectPath(x, y, w, h, r float32) *vector.Path {
	r = min(r, w/2, h/2)
	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.ArcTo(x+w, y, x+w, y+r, r)
	path.LineTo(x+w, y+h-r)
	path.ArcTo(x+w, y+h, x+w-r, y+h, r)
	path.LineTo(x+r, y+h)
	path.ArcTo(x, y+h, x, y+h-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()
	return &path
}

// gradientMesh builds one quad per pair of adjacent stops, spread evenly from
// top to bottom.
func gradientMesh(vs []ebiten.Vertex, is []uint16, cmd render.Command, offX, offY float64) ([]ebiten.Vertex, []uint16) {
	if len(cmd.Stops) == 0 {
		return vs, is
	}
	stops := cmd.Stops
	if len(stops) == 1 {
		stops = []color.RGBA{stops[0], stops[0]}
	}
	x0, x1 := float32(cmd.X+offX), float32(cmd.X+cmd.W+offX)
	step := cmd.H / float64(len(stops)-1)
	for i, s := range stops {
		y := float32(cmd.Y + offY + step*float64(i))
		clr := withAlpha(s, cmd.Alpha)
		r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
		vs = append(vs,
			ebiten.Vertex{DstX: x0, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		)
		if i == 0 {
			continue
		}
		base := uint16(2 * (i - 1))
		is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	}
	return vs, is
}
