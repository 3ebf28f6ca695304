package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/redpaper/layout"
	"github.com/ByLCY/redpaper/style"
)

// painter 在像素坐标系（左上角原点，y 向下）上提供绘图原语。
// 文本绘制的 y 入参一律为行顶部坐标，基线由字体上升部推算。
type painter struct {
	ctx *canvas.Context
	r   *Renderer
}

type point struct{ x, y float64 }

func rgb(c style.RGB) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

func rgba(c style.RGB, alpha float64) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, alpha)
}

func (p *painter) fillRect(x, y, w, h float64, col color.Color) {
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.SetFillColor(col)
	p.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (p *painter) fillRoundedRect(x, y, w, h, radius float64, col color.Color) {
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.SetFillColor(col)
	p.ctx.DrawPath(x, y, canvas.RoundedRectangle(w, h, radius))
}

func (p *painter) strokeRoundedRect(x, y, w, h, radius, width float64, col color.Color) {
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(col)
	p.ctx.SetStrokeWidth(width)
	p.ctx.DrawPath(x, y, canvas.RoundedRectangle(w, h, radius))
}

func (p *painter) strokeRect(x, y, w, h, width float64, col color.Color) {
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(col)
	p.ctx.SetStrokeWidth(width)
	p.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (p *painter) fillCircle(cx, cy, radius float64, col color.Color) {
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.SetFillColor(col)
	p.ctx.DrawPath(cx-radius, cy-radius, canvas.Circle(radius))
}

func (p *painter) fillEllipse(cx, cy, rx, ry float64, col color.Color) {
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.SetFillColor(col)
	p.ctx.DrawPath(cx-rx, cy-ry, canvas.Ellipse(rx, ry))
}

func (p *painter) fillPolygon(pts []point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	path := &canvas.Path{}
	path.MoveTo(0, 0)
	for _, pt := range pts[1:] {
		path.LineTo(pt.x-pts[0].x, pt.y-pts[0].y)
	}
	path.Close()
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.SetFillColor(col)
	p.ctx.DrawPath(pts[0].x, pts[0].y, path)
}

func (p *painter) line(x1, y1, x2, y2, width float64, col color.Color) {
	path := &canvas.Path{}
	path.MoveTo(0, 0)
	path.LineTo(x2-x1, y2-y1)
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(col)
	p.ctx.SetStrokeWidth(width)
	p.ctx.DrawPath(x1, y1, path)
}

// text 以 (x, y) 为行左上角绘制文本。字体不可用时静默跳过。
func (p *painter) text(x, y, size float64, class layout.FontClass, col color.Color, s string) {
	p.drawAligned(x, y, size, class, col, s, canvas.Left)
}

// textCentered 以 cx 为水平中心绘制文本。
func (p *painter) textCentered(cx, y, size float64, class layout.FontClass, col color.Color, s string) {
	p.drawAligned(cx, y, size, class, col, s, canvas.Center)
}

// textRight 以 rightX 为右边界绘制文本。
func (p *painter) textRight(rightX, y, size float64, class layout.FontClass, col color.Color, s string) {
	p.drawAligned(rightX, y, size, class, col, s, canvas.Right)
}

func (p *painter) drawAligned(anchorX, y, size float64, class layout.FontClass, col color.Color, s string, align canvas.TextAlign) {
	if s == "" {
		return
	}
	face := p.r.face(class, size, col)
	if face == nil {
		return
	}
	baseline := y + face.Metrics().Ascent
	p.ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, s, align))
}
